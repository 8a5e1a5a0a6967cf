package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Score is one persisted key-value row
type Score struct {
	Name      string `gorm:"primaryKey;size:64"`
	Value     int
	UpdatedAt time.Time
}

// SQLite is a ScoreStore backed by a local SQLite file through gorm
type SQLite struct {
	db *gorm.DB
}

// Open connects to the database at path, an empty path opens a shared in-memory database
func Open(path string) (*SQLite, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open score store %q: %w", path, err)
	}

	if err := db.AutoMigrate(&Score{}); err != nil {
		return nil, fmt.Errorf("migrate score store: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) (int, error) {
	var row Score
	err := s.db.WithContext(ctx).Where("name = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get %q: %w", key, err)
	}
	return row.Value, nil
}

func (s *SQLite) Set(ctx context.Context, key string, value int) error {
	row := Score{Name: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection pool
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
