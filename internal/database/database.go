// Package database opens the Postgres connection behind the Postgres store.
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/flipword/api/internal/model"
)

// The store issues one small query per request, so a handful of
// connections is plenty.
const (
	maxOpenConns    = 5
	maxIdleConns    = 2
	connMaxLifetime = 30 * time.Minute
)

func Connect(databaseURL string) (*gorm.DB, error) {
	return Open(postgres.Open(databaseURL))
}

// Open configures gorm on any dialector. Tests pass a sqlmock-backed one.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Warn),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	return db, nil
}

// Migrate creates the kv_entries table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.KVEntry{}); err != nil {
		return fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return nil
}
