package repositories

import (
	"time"

	"finanzas/internal/models"
)

// CategoryRepositoryInterface defines category data access
type CategoryRepositoryInterface interface {
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Count() (int64, error)
	Delete(id uint) error
}

// TransactionRepositoryInterface defines transaction data access
type TransactionRepositoryInterface interface {
	GetAll() ([]models.Transaction, error)
	GetByID(id uint) (*models.Transaction, error)
	Create(transaction *models.Transaction) error
	Update(transaction *models.Transaction) error
	Delete(id uint) error
	SumAmountByTypeSince(entryType string, from time.Time) (float64, error)
}
