// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pwaudit/internal/domain/entity"
	domainerrors "pwaudit/internal/domain/errors"
	"pwaudit/internal/domain/repository"
	"pwaudit/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// checkRecordRepository implements the repository.CheckRecordRepository interface.
type checkRecordRepository struct {
	db *gorm.DB
}

// NewCheckRecordRepository is the constructor for checkRecordRepository.
func NewCheckRecordRepository(db *gorm.DB) repository.CheckRecordRepository {
	return &checkRecordRepository{
		db: db,
	}
}

// CreateCheckRecord persists a single record.
func (repo *checkRecordRepository) CreateCheckRecord(ctx context.Context, record *entity.CheckRecord) error {
	recordM := fromCheckRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return classifyWriteError(err, "check record "+record.ID.String())
	}

	return nil
}

// summaryRow is one GROUP BY bucket of the summary query.
type summaryRow struct {
	Source  string
	Verdict string
	Total   int64
}

// SummarizeSince aggregates records checked at or after since.
func (repo *checkRecordRepository) SummarizeSince(ctx context.Context, since time.Time) (*entity.ActivitySummary, error) {
	var rows []summaryRow

	if err := repo.db.WithContext(ctx).
		Model(&model.CheckRecordModel{}).
		Select("source, verdict, COUNT(*) AS total").
		Where("checked_at >= ?", since).
		Group("source, verdict").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to summarize check records")
	}

	return foldSummaryRows(since, rows), nil
}

func foldSummaryRows(since time.Time, rows []summaryRow) *entity.ActivitySummary {
	summary := &entity.ActivitySummary{Since: since}
	for _, row := range rows {
		summary.Tally(entity.CheckSource(row.Source), entity.Verdict(row.Verdict), row.Total)
	}

	return summary
}

// --- Mapper Functions ---

func fromCheckRecordDomain(record *entity.CheckRecord) *model.CheckRecordModel {
	return &model.CheckRecordModel{
		ID:        record.ID,
		Verdict:   string(record.Verdict),
		Source:    string(record.Source),
		Failed:    record.Failed,
		RequestID: record.RequestID,
		CheckedAt: record.CheckedAt,
	}
}
