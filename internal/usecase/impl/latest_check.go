package impl

import (
	"context"
	"sync"

	"pwaudit/internal/domain/entity"
	"pwaudit/internal/usecase"
)

// LatestCheck serializes the results of checks issued by one caller, such as
// an interactive session re-checking as the user types. Every check is tagged
// with a monotonically increasing sequence number; starting a check cancels
// the one in flight, and a result is recorded only if no newer check was
// issued meanwhile. A slow, stale response therefore never overwrites the
// verdict of a newer check.
type LatestCheck struct {
	breachUC usecase.BreachUsecase

	mu        sync.Mutex
	issued    uint64
	cancel    context.CancelFunc
	latest    *entity.CheckResult
	latestSeq uint64
}

// NewLatestCheck creates a tracker around breachUC
func NewLatestCheck(breachUC usecase.BreachUsecase) *LatestCheck {
	return &LatestCheck{breachUC: breachUC}
}

// Check runs a breach check. It returns the result, the sequence number the
// check was issued with, and whether the result is still current. Results
// that are not current have already been discarded.
func (l *LatestCheck) Check(ctx context.Context, password string) (*entity.CheckResult, uint64, bool) {
	checkCtx, seq := l.Begin(ctx)
	result := l.breachUC.CheckBreach(checkCtx, password)

	return result, seq, l.Finish(seq, result)
}

// Begin issues the next sequence number and cancels the check in flight.
// The returned context is cancelled once a newer check begins. Callers that
// must fix the issue order before running checks concurrently call Begin
// synchronously and pair it with Finish.
func (l *LatestCheck) Begin(ctx context.Context) (context.Context, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.issued++
	if l.cancel != nil {
		l.cancel()
	}
	checkCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel

	return checkCtx, l.issued
}

// Finish records result for seq when no newer check has begun and reports
// whether it did.
func (l *LatestCheck) Finish(seq uint64, result *entity.CheckResult) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if seq != l.issued {
		return false
	}

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.latest = result
	l.latestSeq = seq

	return true
}

// Latest returns the most recent current result and its sequence number.
// The result is nil until a check has completed without being superseded.
func (l *LatestCheck) Latest() (*entity.CheckResult, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.latest, l.latestSeq
}

// Issued returns the sequence number of the newest check started.
func (l *LatestCheck) Issued() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.issued
}
