package service

import (
	"context"

	"pwaudit/internal/domain/entity"
)

// BreachLookup queries the remote range endpoint for a prefix.
type BreachLookup interface {
	// Lookup returns every candidate the endpoint knows for prefix. An empty
	// set is a valid answer. A malformed prefix fails with ErrInvalidPrefix
	// before any network call; every transport, status or read failure
	// matches ErrLookupFailed.
	Lookup(ctx context.Context, prefix entity.Prefix) (*entity.CandidateSet, error)
}
