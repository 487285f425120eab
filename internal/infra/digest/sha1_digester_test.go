package digest

import (
	"testing"

	"pwaudit/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA1Digester_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		expected entity.Digest
	}{
		{name: "password", password: "password", expected: "5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8"},
		{name: "empty string", password: "", expected: "DA39A3EE5E6B4B0D3255BFEF95601890AFD80709"},
		{name: "abc", password: "abc", expected: "A9993E364706816ABA3E25717850C26C9CD0D89D"},
	}

	digester := NewSHA1Digester()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, digester.Digest(tt.password))
		})
	}
}

func TestSHA1Digester_Deterministic(t *testing.T) {
	t.Parallel()

	digester := NewSHA1Digester()
	for _, password := range []string{"", "password", "Xk9#mQ2vL7pR", "päss wörd", "\x00\xff"} {
		first := digester.Digest(password)
		second := digester.Digest(password)
		assert.Equal(t, first, second, "digest must not change between calls")
	}
}

func TestSHA1Digester_SplitShape(t *testing.T) {
	t.Parallel()

	digester := NewSHA1Digester()
	for _, password := range []string{"", "a", "password", "Xk9#mQ2vL7pR", "correct horse battery staple"} {
		d := digester.Digest(password)
		require.Len(t, d, entity.DigestLen)

		prefix, suffix := d.Split()
		assert.Len(t, prefix, entity.PrefixLen)
		assert.Len(t, suffix, entity.SuffixLen)
		assert.Equal(t, string(d), string(prefix)+string(suffix))
		assert.True(t, prefix.Valid())
	}
}

func TestSHA1Digester_PasswordSplit(t *testing.T) {
	t.Parallel()

	d := Sum("password")
	assert.Equal(t, entity.Prefix("5BAA6"), d.Prefix())
	assert.Equal(t, entity.Suffix("1E4C9B93F3F0682250B6CF8331B7EE68FD8"), d.Suffix())
}
