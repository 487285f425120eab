// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pwaudit/internal/domain/entity"
)

// CheckRecordRepository stores the audit trail of completed checks.
type CheckRecordRepository interface {
	// CreateCheckRecord persists a single record.
	CreateCheckRecord(ctx context.Context, record *entity.CheckRecord) error

	// SummarizeSince aggregates all records checked at or after since.
	SummarizeSince(ctx context.Context, since time.Time) (*entity.ActivitySummary, error)
}
