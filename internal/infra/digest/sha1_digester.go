// Package digest provides the digest producer used for breach lookups.
package digest

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is the index format of the breach corpus, not a security choice
	"encoding/hex"
	"strings"

	"pwaudit/internal/domain/entity"
	"pwaudit/internal/domain/service"
)

// sha1Digester implements service.Digester with SHA-1.
type sha1Digester struct{}

// NewSHA1Digester returns the digester matching the range API's index.
func NewSHA1Digester() service.Digester {
	return &sha1Digester{}
}

// Digest hashes the UTF-8 bytes of password and returns uppercase hex.
func (d *sha1Digester) Digest(password string) entity.Digest {
	return Sum(password)
}

// Sum is the function form of the digester.
func Sum(password string) entity.Digest {
	sum := sha1.Sum([]byte(password)) //nolint:gosec // see import

	return entity.Digest(strings.ToUpper(hex.EncodeToString(sum[:])))
}
