package config

import (
	"fmt"
	"os"

	"vaultpay/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "vaultpay"),
			getenv("DB_PASSWORD", ""),
			getenv("DB_NAME", "vaultpay"),
			getenv("DB_PORT", "5432"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return AutoMigrate(db)
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.DepositRequest{},
		&models.WithdrawalRequest{},
		&models.PaymentMethod{},
		&models.Testimonial{},
		&models.SocialMediaLink{},
		&models.BonusSettings{},
		&models.BonusHistory{},
		&models.Referral{},
		&models.ReferralSettings{},
		&models.Notification{},
		&models.Partner{},
		&models.BetRecord{},
		&models.PlatformStats{},
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
