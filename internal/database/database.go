package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/adaptiv-labs/adaptiv/internal/model"
)

// Connect opens the fulfillment queue database from a full connection URL
// and runs migrations. The database is optional: callers that receive an
// empty dsn should skip the durable queue entirely rather than call this.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate applies the schema. Split out so tests can run it against an
// in-memory database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.FulfillmentJob{}); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
