package repository

import (
	"github.com/Eursukkul/shareit/server/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates every table the server owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ItemRequest{},
		&models.Item{},
		&models.Booking{},
		&models.Comment{},
	)
}
