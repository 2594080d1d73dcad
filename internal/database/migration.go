package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tabelsky/todo-flask-netology/internal/models"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.Todo{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
