package postgres

import (
	stderrors "errors"
	"testing"
	"time"

	"pwaudit/internal/domain/entity"
	domainerrors "pwaudit/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFoldSummaryRows(t *testing.T) {
	since := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	rows := []summaryRow{
		{Source: "password", Verdict: "found", Total: 5},
		{Source: "password", Verdict: "not-found", Total: 7},
		{Source: "password", Verdict: "check-failed", Total: 1},
		{Source: "prefix", Verdict: "", Total: 3},
	}

	summary := foldSummaryRows(since, rows)
	assert.Equal(t, since, summary.Since)
	assert.Equal(t, int64(16), summary.Total)
	assert.Equal(t, int64(5), summary.Found)
	assert.Equal(t, int64(7), summary.NotFound)
	assert.Equal(t, int64(1), summary.CheckFailed)
	assert.Equal(t, int64(3), summary.RangeProxy)
}

func TestFoldSummaryRows_Empty(t *testing.T) {
	summary := foldSummaryRows(time.Time{}, nil)
	assert.Zero(t, summary.Total)
}

func TestFromCheckRecordDomain(t *testing.T) {
	record := &entity.CheckRecord{
		ID:        uuid.New(),
		Verdict:   entity.VerdictFound,
		Source:    entity.CheckSourcePassword,
		RequestID: "req-9",
		CheckedAt: time.Now().UTC(),
	}

	recordM := fromCheckRecordDomain(record)
	assert.Equal(t, record.ID, recordM.ID)
	assert.Equal(t, "found", recordM.Verdict)
	assert.Equal(t, "password", recordM.Source)
	assert.Equal(t, "req-9", recordM.RequestID)
	assert.Equal(t, record.CheckedAt, recordM.CheckedAt)
	assert.Equal(t, "check_records", recordM.TableName())
}

func TestClassifyWriteError(t *testing.T) {
	dup := classifyWriteError(gorm.ErrDuplicatedKey, "check record x")
	assert.ErrorIs(t, dup, gorm.ErrDuplicatedKey)
	assert.Contains(t, dup.Error(), "already exists")

	notNull := classifyWriteError(stderrors.New(`ERROR: null value in column "source" (SQLSTATE 23502)`), "check record x")
	assert.Contains(t, notNull.Error(), "missing a required column")

	other := classifyWriteError(stderrors.New("connection reset"), "check record x")
	var appErr domainerrors.AppError
	assert.ErrorAs(t, other, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}
