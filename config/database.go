package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storeratings/models"
)

func (c *Config) dsn() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// ConnectDB opens the Postgres connection. TranslateError is on so unique
// index violations surface as gorm.ErrDuplicatedKey and can be mapped to
// Conflict instead of a check-then-insert race.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.dsn()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the three tables and their indexes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Store{}, &models.Rating{})
}
