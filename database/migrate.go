package database

import (
	"fittrack_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	// uuid_generate_v4 для первичных ключей
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.RevokedToken{},
		&models.Activity{},
		&models.Exercise{},
		&models.FoodSuggestion{},
		&models.ChatLog{},
	)
}
