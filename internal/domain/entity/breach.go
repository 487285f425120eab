// Package entity contains the core business objects of the breach check:
// digests and their split halves, candidate sets returned by the range
// endpoint, verdicts, and the records kept about completed checks.
package entity

import (
	"strings"

	domainerrors "pwaudit/internal/domain/errors"
)

// Digest lengths in hex characters. The remote corpus indexes passwords by
// their SHA-1 digest, so these are fixed by that format.
const (
	DigestLen = 40
	PrefixLen = 5
	SuffixLen = DigestLen - PrefixLen
)

// Digest is the uppercase hex encoding of a password's SHA-1 hash.
type Digest string

// Prefix is the first PrefixLen hex characters of a Digest. It is the only
// value derived from a password that is ever sent over the network.
type Prefix string

// Suffix is the remainder of a Digest after the Prefix, kept local.
type Suffix string

// Prefix returns the lookup prefix of the digest.
func (d Digest) Prefix() Prefix {
	p, _ := d.Split()
	return p
}

// Suffix returns the comparison suffix of the digest, uppercased.
func (d Digest) Suffix() Suffix {
	_, s := d.Split()
	return s
}

// Split divides the digest into its prefix and suffix. Both halves are
// uppercased; prefix+suffix equals the uppercased digest.
func (d Digest) Split() (Prefix, Suffix) {
	upper := strings.ToUpper(string(d))
	if len(upper) < PrefixLen {
		return Prefix(upper), ""
	}

	return Prefix(upper[:PrefixLen]), Suffix(upper[PrefixLen:])
}

// ParsePrefix validates raw as a PrefixLen-character hex string and returns
// it normalized to uppercase.
func ParsePrefix(raw string) (Prefix, error) {
	if len(raw) != PrefixLen || !isHex(raw) {
		return "", domainerrors.ErrInvalidPrefix
	}

	return Prefix(strings.ToUpper(raw)), nil
}

// Valid reports whether p is a well-formed prefix.
func (p Prefix) Valid() bool {
	return len(p) == PrefixLen && isHex(string(p))
}

// Matches compares two suffixes case-insensitively.
func (s Suffix) Matches(other Suffix) bool {
	return strings.EqualFold(string(s), string(other))
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}

	return true
}
