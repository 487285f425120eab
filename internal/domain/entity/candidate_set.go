package entity

// UnknownCount marks a candidate whose count field could not be parsed.
const UnknownCount = -1

// Candidate is one SUFFIX:COUNT record returned for a prefix.
type Candidate struct {
	Suffix Suffix `json:"suffix"`
	Count  int    `json:"count"` // Informational only; UnknownCount when unparsable
}

// CandidateSet is the ordered list of candidates returned for a single prefix.
// It is rebuilt for every lookup and never shared between passwords.
type CandidateSet struct {
	Prefix     Prefix      `json:"prefix"`
	Candidates []Candidate `json:"suffixes"`
}

// NewCandidateSet creates an empty candidate set for prefix.
func NewCandidateSet(prefix Prefix) *CandidateSet {
	return &CandidateSet{
		Prefix:     prefix,
		Candidates: []Candidate{},
	}
}

// Add appends a candidate, preserving response order.
func (s *CandidateSet) Add(suffix Suffix, count int) {
	s.Candidates = append(s.Candidates, Candidate{Suffix: suffix, Count: count})
}

// Contains reports whether suffix is present, matching case-insensitively.
func (s *CandidateSet) Contains(suffix Suffix) (Candidate, bool) {
	if s == nil {
		return Candidate{}, false
	}

	for _, c := range s.Candidates {
		if c.Suffix.Matches(suffix) {
			return c, true
		}
	}

	return Candidate{}, false
}

// Suffixes returns the candidate suffixes in response order.
func (s *CandidateSet) Suffixes() []Suffix {
	if s == nil {
		return nil
	}

	suffixes := make([]Suffix, 0, len(s.Candidates))
	for _, c := range s.Candidates {
		suffixes = append(suffixes, c.Suffix)
	}

	return suffixes
}

// Len returns the number of candidates.
func (s *CandidateSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Candidates)
}
