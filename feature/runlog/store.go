package runlog

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Store persists run records.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on an established connection. Call Migrate once
// before the first Save.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the sync_runs table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&Run{}); err != nil {
		return fmt.Errorf("failed to migrate run history schema: %w", err)
	}
	return nil
}

// Save inserts one run record.
func (s *Store) Save(ctx context.Context, run *Run) error {
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to save run record: %w", err)
	}
	return nil
}

// Recent returns the latest records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	var runs []Run
	err := s.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load run history: %w", err)
	}
	return runs, nil
}
