package pwned

import (
	"strconv"
	"strings"

	"pwaudit/internal/domain/entity"
)

// ParseRange turns a range response body into a candidate set.
//
// Records are CRLF- or LF-delimited SUFFIX:COUNT lines. Each line is split on
// the first ':'; lines without one, or whose suffix is empty or not hex, are
// skipped and counted in the second return value. Count is informational and
// becomes entity.UnknownCount when it does not parse. With dropPadding set,
// zero-count records (the endpoint's padding) are dropped without being
// counted as malformed.
func ParseRange(prefix entity.Prefix, body []byte, dropPadding bool) (*entity.CandidateSet, int) {
	set := entity.NewCandidateSet(prefix)
	skipped := 0

	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}

		rawSuffix, rawCount, ok := strings.Cut(line, ":")
		if !ok {
			skipped++
			continue
		}

		suffix := strings.ToUpper(strings.TrimSpace(rawSuffix))
		if suffix == "" || !isHex(suffix) {
			skipped++
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(rawCount))
		if err != nil {
			count = entity.UnknownCount
		}
		if dropPadding && count == 0 {
			continue
		}

		set.Add(entity.Suffix(suffix), count)
	}

	return set, skipped
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return false
		}
	}

	return true
}
