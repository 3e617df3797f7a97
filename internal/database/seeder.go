package database

import (
	"fmt"
	"log"

	"finanzas/internal/models"

	"gorm.io/gorm"
)

// SeedDefaultCategories inserts the default category set into an empty store.
// The count check and the insert run in one transaction, and the unique index
// on category.name guards against a double insert, so the seed is idempotent
// even across concurrently starting processes.
func (db *DB) SeedDefaultCategories() error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count categories: %w", err)
		}

		if count > 0 {
			return nil
		}

		defaults := models.DefaultCategories()
		if err := tx.Create(&defaults).Error; err != nil {
			return fmt.Errorf("failed to insert default categories: %w", err)
		}

		log.Printf("Seeded %d default categories", len(defaults))
		return nil
	})
}
