package migration

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/model"
)

// Default spending categories registered on a fresh database
var defaultCategories = []string{
	"groceries",
	"medicine",
	"utilities",
	"education",
}

// CreateDefaultCategories registers the default spending categories
func CreateDefaultCategories(ctx context.Context, db *gorm.DB, now time.Time) error {
	for _, name := range defaultCategories {
		var existing model.Category
		err := db.WithContext(ctx).First(&existing, "name = ?", name).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		category := model.Category{
			ID:        uuid.New(),
			Name:      name,
			CreatedAt: now,
		}
		if err := db.WithContext(ctx).Create(&category).Error; err != nil {
			return err
		}
	}

	return nil
}
