package repositories

import (
	"testing"
	"time"

	"finanzas/internal/database"
	"finanzas/internal/models"

	"github.com/stretchr/testify/suite"
)

// CategoryRepositoryTestSuite defines the test suite for category repository
type CategoryRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo CategoryRepositoryInterface
}

// SetupTest runs before each test
func (s *CategoryRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
}

// TearDownTest runs after each test
func (s *CategoryRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestCategoryRepositoryTestSuite runs the test suite
func TestCategoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositoryTestSuite))
}

// TestGetAll_Empty tests listing with no categories
func (s *CategoryRepositoryTestSuite) TestGetAll_Empty() {
	categories, err := s.repo.GetAll()
	s.NoError(err)
	s.Empty(categories)
}

// TestGetAll returns every stored category
func (s *CategoryRepositoryTestSuite) TestGetAll() {
	database.CreateTestCategory(s.T(), s.db, "Salario", models.EntryTypeIncome)
	database.CreateTestCategory(s.T(), s.db, "Transporte", models.EntryTypeExpense)

	categories, err := s.repo.GetAll()
	s.NoError(err)
	s.Len(categories, 2)
}

// TestGetByID tests retrieving a category by ID
func (s *CategoryRepositoryTestSuite) TestGetByID() {
	created := database.CreateTestCategory(s.T(), s.db, "Salud", models.EntryTypeExpense)

	category, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal("Salud", category.Name)
	s.Equal(models.EntryTypeExpense, category.Type)
}

// TestGetByID_NotFound tests the sentinel for a missing category
func (s *CategoryRepositoryTestSuite) TestGetByID_NotFound() {
	category, err := s.repo.GetByID(9999)
	s.ErrorIs(err, ErrCategoryNotFound)
	s.Nil(category)
}

// TestCount tests counting categories
func (s *CategoryRepositoryTestSuite) TestCount() {
	count, err := s.repo.Count()
	s.NoError(err)
	s.Zero(count)

	database.CreateTestCategory(s.T(), s.db, "Bonos", models.EntryTypeIncome)

	count, err = s.repo.Count()
	s.NoError(err)
	s.Equal(int64(1), count)
}

// TestDelete_CascadesTransactions verifies deleting a category removes its
// transactions but leaves other categories' transactions untouched.
func (s *CategoryRepositoryTestSuite) TestDelete_CascadesTransactions() {
	food := database.CreateTestCategory(s.T(), s.db, "Alimentación", models.EntryTypeExpense)
	salary := database.CreateTestCategory(s.T(), s.db, "Salario", models.EntryTypeIncome)

	database.CreateTestTransaction(s.T(), s.db, food.ID, 25.50, models.EntryTypeExpense, time.Now())
	database.CreateTestTransaction(s.T(), s.db, food.ID, 12.00, models.EntryTypeExpense, time.Now())
	kept := database.CreateTestTransaction(s.T(), s.db, salary.ID, 1500, models.EntryTypeIncome, time.Now())

	s.NoError(s.repo.Delete(food.ID))

	_, err := s.repo.GetByID(food.ID)
	s.ErrorIs(err, ErrCategoryNotFound)

	var count int64
	s.NoError(s.db.Model(&models.Transaction{}).Count(&count).Error)
	s.Equal(int64(1), count)

	var remaining models.Transaction
	s.NoError(s.db.First(&remaining, kept.ID).Error)
	s.Equal(salary.ID, remaining.CategoryID)
}

// TestDelete_NotFound tests deleting a missing category
func (s *CategoryRepositoryTestSuite) TestDelete_NotFound() {
	s.ErrorIs(s.repo.Delete(9999), ErrCategoryNotFound)
}
