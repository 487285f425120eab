// Package generator implements random password generation on top of
// crypto/rand.
package generator

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"

	"pwaudit/config"
	"pwaudit/internal/domain/service"
	"pwaudit/internal/errors"
)

// maxAttempts bounds the redraws needed to avoid an excluded substring.
const maxAttempts = 64

type randomGenerator struct {
	alphabet []rune
	reader   io.Reader
}

// NewRandomGenerator creates a generator drawing from the configured alphabet.
func NewRandomGenerator(cfg *config.Config) (service.PasswordGenerator, error) {
	return newRandomGenerator(cfg.Generator.Alphabet, rand.Reader)
}

func newRandomGenerator(alphabet string, reader io.Reader) (*randomGenerator, error) {
	runes := []rune(alphabet)
	if len(runes) < 2 {
		return nil, errors.Errorf("generator alphabet needs at least 2 characters, got %d", len(runes))
	}

	return &randomGenerator{alphabet: runes, reader: reader}, nil
}

// Generate draws length characters uniformly from the alphabet. A draw that
// contains exclude is discarded and redrawn.
func (g *randomGenerator) Generate(length int, exclude string) (string, error) {
	if length <= 0 {
		return "", errors.Errorf("length must be positive, got %d", length)
	}

	exclude = strings.ToLower(exclude)
	for range maxAttempts {
		password, err := g.draw(length)
		if err != nil {
			return "", err
		}

		if exclude == "" || !strings.Contains(strings.ToLower(password), exclude) {
			return password, nil
		}
	}

	return "", errors.Errorf("could not avoid %q after %d attempts", exclude, maxAttempts)
}

func (g *randomGenerator) draw(length int) (string, error) {
	upper := big.NewInt(int64(len(g.alphabet)))

	var sb strings.Builder
	sb.Grow(length)
	for range length {
		n, err := rand.Int(g.reader, upper)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		sb.WriteRune(g.alphabet[n.Int64()])
	}

	return sb.String(), nil
}
