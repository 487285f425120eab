// Package memory keeps check records in process memory. It backs the
// activity report when no database is configured.
package memory

import (
	"context"
	"sync"
	"time"

	"pwaudit/internal/domain/entity"
	"pwaudit/internal/domain/repository"
)

// DefaultCapacity is the number of records retained before the oldest are dropped.
const DefaultCapacity = 10_000

// checkRecordRepository is a bounded ring of records.
type checkRecordRepository struct {
	mu       sync.RWMutex
	records  []entity.CheckRecord
	next     int
	full     bool
	capacity int
}

// NewCheckRecordRepository creates a repository holding up to DefaultCapacity records.
func NewCheckRecordRepository() repository.CheckRecordRepository {
	return newCheckRecordRepository(DefaultCapacity)
}

func newCheckRecordRepository(capacity int) *checkRecordRepository {
	return &checkRecordRepository{
		records:  make([]entity.CheckRecord, capacity),
		capacity: capacity,
	}
}

// CreateCheckRecord stores a copy of record, evicting the oldest when full.
func (repo *checkRecordRepository) CreateCheckRecord(ctx context.Context, record *entity.CheckRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.records[repo.next] = *record
	repo.next = (repo.next + 1) % repo.capacity
	if repo.next == 0 {
		repo.full = true
	}

	return nil
}

// SummarizeSince aggregates the retained records checked at or after since.
func (repo *checkRecordRepository) SummarizeSince(ctx context.Context, since time.Time) (*entity.ActivitySummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	size := repo.next
	if repo.full {
		size = repo.capacity
	}

	summary := &entity.ActivitySummary{Since: since}
	for i := range size {
		record := repo.records[i]
		if record.CheckedAt.Before(since) {
			continue
		}
		summary.Tally(record.Source, record.Verdict, 1)
	}

	return summary, nil
}
