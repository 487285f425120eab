package usecase

import (
	"context"

	"pwaudit/internal/domain/entity"
)

// BreachUsecase defines the k-anonymity breach check use cases
type BreachUsecase interface {
	// CheckBreach digests password, looks up its prefix and tests membership
	// of its suffix locally. It always returns one of the three verdicts; a
	// failed lookup becomes check-failed with a display message.
	CheckBreach(ctx context.Context, password string) *entity.CheckResult

	// Lookup validates a caller-supplied prefix and returns its candidate set.
	// Used by callers that digest locally and only disclose the prefix.
	Lookup(ctx context.Context, rawPrefix string) (*entity.CandidateSet, error)
}
