package repositories

import (
	"testing"
	"time"

	"finanzas/internal/database"
	"finanzas/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositoryTestSuite defines the test suite for transaction repository
type TransactionRepositoryTestSuite struct {
	suite.Suite
	db       *database.DB
	repo     TransactionRepositoryInterface
	category *models.Category
}

// SetupTest runs before each test
func (s *TransactionRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.category = database.CreateTestCategory(s.T(), s.db, "Alimentación", models.EntryTypeExpense)
}

// TearDownTest runs after each test
func (s *TransactionRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransactionRepositoryTestSuite runs the test suite
func TestTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}

func (s *TransactionRepositoryTestSuite) newTransaction() *models.Transaction {
	return &models.Transaction{
		Amount:      gofakeit.Price(1, 500),
		Description: gofakeit.Sentence(3),
		Type:        models.EntryTypeExpense,
		CategoryID:  s.category.ID,
		Date:        time.Now(),
	}
}

// TestCreate persists a transaction and loads its category
func (s *TransactionRepositoryTestSuite) TestCreate() {
	transaction := s.newTransaction()

	s.NoError(s.repo.Create(transaction))

	s.NotZero(transaction.ID)
	s.False(transaction.CreatedAt.IsZero())
	s.False(transaction.UpdatedAt.IsZero())
	s.Equal(s.category.ID, transaction.Category.ID)
	s.Equal("Alimentación", transaction.Category.Name)
}

// TestCreate_DefaultsDateToNow covers a transaction created without a date
func (s *TransactionRepositoryTestSuite) TestCreate_DefaultsDateToNow() {
	transaction := s.newTransaction()
	transaction.Date = time.Time{}

	before := time.Now().Add(-time.Minute)
	s.NoError(s.repo.Create(transaction))

	s.False(transaction.Date.IsZero())
	s.True(transaction.Date.After(before))
}

// TestCreate_InvalidTypeRejected covers the BeforeCreate hook
func (s *TransactionRepositoryTestSuite) TestCreate_InvalidTypeRejected() {
	transaction := s.newTransaction()
	transaction.Type = "transfer"

	s.ErrorIs(s.repo.Create(transaction), models.ErrInvalidEntryType)
}

// TestGetAll_OrderedByDateDescending verifies newest-first ordering
func (s *TransactionRepositoryTestSuite) TestGetAll_OrderedByDateDescending() {
	now := time.Now()

	oldest := s.newTransaction()
	oldest.Date = now.AddDate(0, 0, -3)
	s.NoError(s.repo.Create(oldest))

	newest := s.newTransaction()
	newest.Date = now
	s.NoError(s.repo.Create(newest))

	middle := s.newTransaction()
	middle.Date = now.AddDate(0, 0, -1)
	s.NoError(s.repo.Create(middle))

	transactions, err := s.repo.GetAll()
	s.NoError(err)
	s.Require().Len(transactions, 3)

	s.Equal(newest.ID, transactions[0].ID)
	s.Equal(middle.ID, transactions[1].ID)
	s.Equal(oldest.ID, transactions[2].ID)

	for _, transaction := range transactions {
		s.Equal(s.category.ID, transaction.Category.ID, "category must be preloaded")
	}
}

// TestGetByID retrieves a transaction with its category preloaded
func (s *TransactionRepositoryTestSuite) TestGetByID() {
	created := s.newTransaction()
	s.NoError(s.repo.Create(created))

	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal(created.Description, found.Description)
	s.Equal("Alimentación", found.Category.Name)
}

// TestGetByID_NotFound tests the sentinel for a missing transaction
func (s *TransactionRepositoryTestSuite) TestGetByID_NotFound() {
	found, err := s.repo.GetByID(9999)
	s.ErrorIs(err, ErrTransactionNotFound)
	s.Nil(found)
}

// TestUpdate persists changes and keeps timestamps consistent
func (s *TransactionRepositoryTestSuite) TestUpdate() {
	transaction := s.newTransaction()
	s.NoError(s.repo.Create(transaction))

	other := database.CreateTestCategory(s.T(), s.db, "Transporte", models.EntryTypeExpense)

	transaction.Amount = 99.99
	transaction.Description = "Updated description"
	transaction.CategoryID = other.ID
	s.NoError(s.repo.Update(transaction))

	found, err := s.repo.GetByID(transaction.ID)
	s.NoError(err)
	s.Equal(99.99, found.Amount)
	s.Equal("Updated description", found.Description)
	s.Equal("Transporte", found.Category.Name)
	s.False(found.UpdatedAt.Before(found.CreatedAt))
}

// TestDelete removes a transaction
func (s *TransactionRepositoryTestSuite) TestDelete() {
	transaction := s.newTransaction()
	s.NoError(s.repo.Create(transaction))

	s.NoError(s.repo.Delete(transaction.ID))

	_, err := s.repo.GetByID(transaction.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

// TestDelete_NotFound tests deleting a missing transaction
func (s *TransactionRepositoryTestSuite) TestDelete_NotFound() {
	s.ErrorIs(s.repo.Delete(9999), ErrTransactionNotFound)
}

// TestSumAmountByTypeSince sums only matching rows at or after the cutoff
func (s *TransactionRepositoryTestSuite) TestSumAmountByTypeSince() {
	income := database.CreateTestCategory(s.T(), s.db, "Salario", models.EntryTypeIncome)
	monthStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)

	database.CreateTestTransaction(s.T(), s.db, income.ID, 1500, models.EntryTypeIncome, monthStart.AddDate(0, 0, 4))
	database.CreateTestTransaction(s.T(), s.db, income.ID, 200.50, models.EntryTypeIncome, monthStart)
	database.CreateTestTransaction(s.T(), s.db, s.category.ID, 80, models.EntryTypeExpense, monthStart.AddDate(0, 0, 10))
	// previous month, must be excluded
	database.CreateTestTransaction(s.T(), s.db, income.ID, 999, models.EntryTypeIncome, monthStart.AddDate(0, 0, -1))

	total, err := s.repo.SumAmountByTypeSince(models.EntryTypeIncome, monthStart)
	s.NoError(err)
	s.InDelta(1700.50, total, 0.001)

	total, err = s.repo.SumAmountByTypeSince(models.EntryTypeExpense, monthStart)
	s.NoError(err)
	s.InDelta(80, total, 0.001)
}

// TestSumAmountByTypeSince_NoRows returns zero for an empty range
func (s *TransactionRepositoryTestSuite) TestSumAmountByTypeSince_NoRows() {
	total, err := s.repo.SumAmountByTypeSince(models.EntryTypeIncome, time.Now())
	s.NoError(err)
	s.Zero(total)
}
