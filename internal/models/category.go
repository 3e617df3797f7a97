package models

import (
	"errors"

	"gorm.io/gorm"
)

const (
	EntryTypeIncome  = "income"
	EntryTypeExpense = "expense"
)

var (
	ErrInvalidEntryType  = errors.New("invalid entry type")
	ErrEmptyCategoryName = errors.New("category name is required")
)

// Category groups transactions as an income or expense source.
// Deleting a category removes every transaction that references it.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	Type string `gorm:"type:varchar(10);not null" json:"type"`

	// Associations
	Transactions []Transaction `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	return c.Validate()
}

// BeforeUpdate hook for Category
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	if !IsValidEntryType(c.Type) {
		return ErrInvalidEntryType
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "category"
}

// IsValidEntryType checks if the entry type is one of the closed set
func IsValidEntryType(entryType string) bool {
	switch entryType {
	case EntryTypeIncome, EntryTypeExpense:
		return true
	default:
		return false
	}
}

// DefaultCategories returns the categories seeded into an empty store.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Salario", Type: EntryTypeIncome},
		{Name: "Freelance", Type: EntryTypeIncome},
		{Name: "Bonos", Type: EntryTypeIncome},
		{Name: "Alimentación", Type: EntryTypeExpense},
		{Name: "Transporte", Type: EntryTypeExpense},
		{Name: "Utilidades", Type: EntryTypeExpense},
		{Name: "Entretenimiento", Type: EntryTypeExpense},
		{Name: "Salud", Type: EntryTypeExpense},
	}
}
