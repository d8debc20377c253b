package config

import (
	"fmt"
	"os"

	"news-portal-api/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the postgres connection from environment variables and runs
// auto migration for the whole entity range.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_NAME", "news_portal"),
		getenv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := RunMigration(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migration")
	}

	return db
}

// RunMigration auto-migrates every entity the portal persists.
func RunMigration(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Permission{},
		&models.Publisher{},
		&models.Article{},
		&models.Newsletter{},
		&models.Subscription{},
	)
}
