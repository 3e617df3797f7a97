package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

const maxDescriptionLength = 255

var (
	ErrEmptyDescription   = errors.New("transaction description is required")
	ErrDescriptionTooLong = errors.New("transaction description exceeds 255 characters")
	ErrMissingCategory    = errors.New("transaction category is required")
)

// Transaction is a single income or expense entry. Its type is independent
// of the referenced category's type; the two are never cross-validated.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description string    `gorm:"type:varchar(255);not null" json:"description"`
	Type        string    `gorm:"type:varchar(10);not null" json:"type"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Description == "" {
		return ErrEmptyDescription
	}
	// character limit, not bytes; multibyte descriptions count per rune
	if utf8.RuneCountInString(t.Description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if !IsValidEntryType(t.Type) {
		return ErrInvalidEntryType
	}
	if t.CategoryID == 0 {
		return ErrMissingCategory
	}
	return nil
}

// IsIncome returns true if the transaction is an income entry
func (t *Transaction) IsIncome() bool {
	return t.Type == EntryTypeIncome
}

// IsExpense returns true if the transaction is an expense entry
func (t *Transaction) IsExpense() bool {
	return t.Type == EntryTypeExpense
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transaction"
}
