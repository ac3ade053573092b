// Package sqlite stores ledger records in a local SQLite file.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record is one stored key/value pair.
type Record struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

// RecordStore implements usecase.RecordStore with gorm over SQLite.
type RecordStore struct {
	db *gorm.DB
}

// NewRecordStore opens (creating if needed) the database at path and
// migrates the records table.
func NewRecordStore(path string) (*RecordStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &RecordStore{db: db}, nil
}

// Get retrieves a record by key.
func (s *RecordStore) Get(ctx context.Context, key string) (string, bool, error) {
	var rec Record

	err := s.db.WithContext(ctx).Where(&Record{Key: key}).Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get record %s: %w", key, err)
	}

	return rec.Value, true, nil
}

// Set creates or overwrites a record.
func (s *RecordStore) Set(ctx context.Context, key, value string) error {
	rec := Record{Key: key, Value: value, UpdatedAt: time.Now().UTC()}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save record %s: %w", key, err)
	}

	return nil
}

// Close releases the underlying connection.
func (s *RecordStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
