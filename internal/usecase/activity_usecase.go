package usecase

import (
	"context"
	"time"

	"pwaudit/internal/domain/entity"
)

// ActivityUsecase records completed checks and reports on them
type ActivityUsecase interface {
	// RecordCheck stores an audit record for a finished check. Failures are
	// logged, never returned, so recording cannot change a verdict.
	RecordCheck(ctx context.Context, source entity.CheckSource, result *entity.CheckResult, lookupErr error)

	// Summary aggregates records since the given time
	Summary(ctx context.Context, since time.Time) (*entity.ActivitySummary, error)
}
