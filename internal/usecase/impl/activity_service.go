package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pwaudit/internal/delivery/context"
	"pwaudit/internal/domain/entity"
	"pwaudit/internal/domain/repository"
	"pwaudit/internal/errors"
	"pwaudit/internal/usecase"

	"github.com/google/uuid"
)

type activityService struct {
	recordRepo repository.CheckRecordRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewActivityService creates a new activity service instance
func NewActivityService(recordRepo repository.CheckRecordRepository, logger *slog.Logger) usecase.ActivityUsecase {
	return &activityService{
		recordRepo: recordRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordCheck stores verdict, source and request ID. Nothing derived from
// the password is recorded.
func (srv *activityService) RecordCheck(ctx context.Context, source entity.CheckSource, result *entity.CheckResult, lookupErr error) {
	record := &entity.CheckRecord{
		ID:        uuid.New(),
		Source:    source,
		Failed:    lookupErr != nil,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		CheckedAt: srv.now().UTC(),
	}
	if result != nil {
		record.Verdict = result.Verdict
		record.Failed = record.Failed || result.Verdict == entity.VerdictCheckFailed
	}

	if err := srv.recordRepo.CreateCheckRecord(ctx, record); err != nil {
		srv.log(ctx).Warn("Failed to record check",
			slog.String("source", string(source)),
			slog.Any("error", err),
		)
	}
}

// Summary aggregates records since the given time. A zero since means the
// last 24 hours.
func (srv *activityService) Summary(ctx context.Context, since time.Time) (*entity.ActivitySummary, error) {
	if since.IsZero() {
		since = srv.now().Add(-24 * time.Hour)
	}

	summary, err := srv.recordRepo.SummarizeSince(ctx, since.UTC())
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize check activity")
	}

	return summary, nil
}
