package impl

import (
	"context"
	"log/slog"

	deliverycontext "pwaudit/internal/delivery/context"
	"pwaudit/internal/domain/entity"
	domainerrors "pwaudit/internal/domain/errors"
	"pwaudit/internal/domain/service"
	"pwaudit/internal/errors"
	"pwaudit/internal/usecase"
)

// breachService implements the BreachUsecase interface. It holds no mutable
// state, so concurrent checks are independent.
type breachService struct {
	digester service.Digester
	lookup   service.BreachLookup
	logger   *slog.Logger
}

// NewBreachService creates a new breach service instance
func NewBreachService(
	digester service.Digester,
	lookup service.BreachLookup,
	logger *slog.Logger,
) usecase.BreachUsecase {
	return &breachService{
		digester: digester,
		lookup:   lookup,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *breachService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckBreach runs hashing, querying and the local membership test.
func (srv *breachService) CheckBreach(ctx context.Context, password string) *entity.CheckResult {
	prefix, suffix := srv.digester.Digest(password).Split()

	set, err := srv.lookup.Lookup(ctx, prefix)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidPrefix) {
			// Only reachable with a broken digester.
			srv.log(ctx).Error("Digester produced an invalid prefix", slog.Any("error", err))
		} else {
			srv.log(ctx).Warn("Breach check could not be completed", slog.Any("error", err))
		}

		return entity.CheckFailed()
	}

	candidate, ok := set.Contains(suffix)
	if !ok {
		return entity.NotFound()
	}

	return entity.Found(max(candidate.Count, 0))
}

// Lookup validates rawPrefix and delegates to the lookup client.
func (srv *breachService) Lookup(ctx context.Context, rawPrefix string) (*entity.CandidateSet, error) {
	prefix, err := entity.ParsePrefix(rawPrefix)
	if err != nil {
		return nil, err
	}

	set, err := srv.lookup.Lookup(ctx, prefix)
	if err != nil {
		srv.log(ctx).Warn("Range lookup failed",
			slog.String("prefix", string(prefix)),
			slog.Any("error", err),
		)

		return nil, err
	}

	return set, nil
}
