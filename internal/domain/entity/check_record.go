package entity

import (
	"time"

	"github.com/google/uuid"
)

// CheckSource identifies which entry point produced a check record.
type CheckSource string

const (
	CheckSourcePassword CheckSource = "password" // Full check performed server-side
	CheckSourcePrefix   CheckSource = "prefix"   // Prefix-only range proxy
)

// CheckRecord is the audit trail of a completed check. It deliberately holds
// no password material: no digest, prefix or suffix.
type CheckRecord struct {
	ID        uuid.UUID
	Verdict   Verdict // Empty for prefix-only lookups, which have no verdict
	Source    CheckSource
	Failed    bool
	RequestID string
	CheckedAt time.Time
}

// ActivitySummary aggregates check records over a time window.
type ActivitySummary struct {
	Since       time.Time `json:"since"`
	Total       int64     `json:"total"`
	Found       int64     `json:"found"`
	NotFound    int64     `json:"not_found"`
	CheckFailed int64     `json:"check_failed"`
	RangeProxy  int64     `json:"range_proxy"`
}

// Tally adds n records with the given source and verdict to the summary.
// Prefix-only lookups have no verdict and are counted as range proxy calls.
func (s *ActivitySummary) Tally(source CheckSource, verdict Verdict, n int64) {
	s.Total += n

	if source == CheckSourcePrefix {
		s.RangeProxy += n
		return
	}

	switch verdict {
	case VerdictFound:
		s.Found += n
	case VerdictNotFound:
		s.NotFound += n
	case VerdictCheckFailed:
		s.CheckFailed += n
	}
}
