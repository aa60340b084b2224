package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/ormeredost-cmd/withdraw-server/internal/models"
)

func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.BankDetail{},
		&models.WithdrawalRequest{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database migration completed successfully")
	return nil
}
