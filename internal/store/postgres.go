package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/flipword/api/internal/model"
)

// PostgresStore keeps values in the kv_entries table. Values must be JSON,
// which is all the topics repository ever writes.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry model.KVEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(entry.Value), nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	entry := model.KVEntry{
		Key:       key,
		Value:     datatypes.JSON(value),
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
