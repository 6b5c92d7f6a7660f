package history

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"prefab-manager/core/prefab"
)

// Store persists synchronization records.
type Store struct {
	db *gorm.DB
}

// NewStore creates a history store over an established connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the sync_records table.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Record{})
}

// Append records one finished synchronization pass.
func (s *Store) Append(ctx context.Context, report *prefab.SyncReport) (*Record, error) {
	detail, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("encode sync report: %w", err)
	}

	record := &Record{
		Master:            report.Master,
		Instances:         report.Summary.Instances,
		ComponentsAdded:   report.Summary.ComponentsAdded,
		ComponentsRemoved: report.Summary.ComponentsRemoved,
		PropertiesUpdated: report.Summary.PropertiesUpdated,
		Failures:          report.Summary.Failures,
		Detail:            string(detail),
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("persist sync record: %w", err)
	}
	return record, nil
}

// Recent returns the newest records, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []Record
	err := s.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("query sync records: %w", err)
	}
	return records, nil
}
