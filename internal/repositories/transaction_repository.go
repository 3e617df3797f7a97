package repositories

import (
	"errors"
	"fmt"
	"time"

	"finanzas/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// GetAll retrieves all transactions ordered by date descending, with the
// referenced category preloaded.
func (r *transactionRepository) GetAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetByID retrieves a transaction by ID with its category preloaded
func (r *transactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Preload("Category").First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// Create persists a new transaction and loads its category association
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Omit(clause.Associations).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return r.loadCategory(transaction)
}

// Update persists all fields of an existing transaction and reloads its
// category association.
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if err := r.db.Omit(clause.Associations).Save(transaction).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return r.loadCategory(transaction)
}

// loadCategory refreshes the Category association. A fresh destination is
// used because First treats a pre-set primary key as a query condition.
func (r *transactionRepository) loadCategory(transaction *models.Transaction) error {
	var category models.Category
	if err := r.db.First(&category, transaction.CategoryID).Error; err != nil {
		return fmt.Errorf("failed to load transaction category: %w", err)
	}
	transaction.Category = category
	return nil
}

// Delete removes a transaction by ID
func (r *transactionRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Transaction{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// SumAmountByTypeSince sums the amounts of all transactions of the given type
// dated at or after from. Returns 0 when no rows match.
func (r *transactionRepository) SumAmountByTypeSince(entryType string, from time.Time) (float64, error) {
	var result struct {
		Total float64
	}

	if err := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("type = ? AND date >= ?", entryType, from).
		Scan(&result).Error; err != nil {
		return 0, fmt.Errorf("failed to sum %s amounts: %w", entryType, err)
	}

	return result.Total, nil
}
