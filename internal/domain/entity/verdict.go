package entity

// Verdict is the outcome of a breach check. There are exactly three.
type Verdict string

const (
	VerdictFound       Verdict = "found"
	VerdictNotFound    Verdict = "not-found"
	VerdictCheckFailed Verdict = "check-failed"
)

// CheckFailedMessage is shown when the corpus could not be queried. It never
// contains transport details.
const CheckFailedMessage = "Could not check this password against the breach corpus. Please try again."

// Valid reports whether v is one of the three known verdicts.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictFound, VerdictNotFound, VerdictCheckFailed:
		return true
	default:
		return false
	}
}

// CheckResult is what a caller receives from a breach check.
type CheckResult struct {
	Verdict Verdict `json:"verdict"`
	Count   int     `json:"count"`             // Occurrences in the corpus when found
	Message string  `json:"message,omitempty"` // Set only for check-failed
}

// Found builds a found result.
func Found(count int) *CheckResult {
	return &CheckResult{Verdict: VerdictFound, Count: count}
}

// NotFound builds a not-found result.
func NotFound() *CheckResult {
	return &CheckResult{Verdict: VerdictNotFound}
}

// CheckFailed builds a check-failed result with the display message.
func CheckFailed() *CheckResult {
	return &CheckResult{Verdict: VerdictCheckFailed, Message: CheckFailedMessage}
}

// Breached reports whether the password was found in the corpus.
func (r *CheckResult) Breached() bool {
	return r != nil && r.Verdict == VerdictFound
}
