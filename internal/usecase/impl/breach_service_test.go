package impl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pwaudit/internal/domain/entity"
	domainerrors "pwaudit/internal/domain/errors"
	"pwaudit/internal/infra/digest"
	"pwaudit/internal/infra/pwned"
	mockService "pwaudit/internal/mocks/service"
	"pwaudit/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	passwordPrefix = entity.Prefix("5BAA6")
	passwordSuffix = entity.Suffix("1E4C9B93F3F0682250B6CF8331B7EE68FD8")
)

// breachServiceFixtures holds all test dependencies for breach service tests.
type breachServiceFixtures struct {
	service usecase.BreachUsecase
	lookup  *mockService.MockBreachLookup
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestBreachService(t *testing.T) breachServiceFixtures {
	lookup := mockService.NewMockBreachLookup(t)
	service := NewBreachService(digest.NewSHA1Digester(), lookup, discardLogger())

	return breachServiceFixtures{
		service: service,
		lookup:  lookup,
	}
}

func candidateSet(prefix entity.Prefix, candidates ...entity.Candidate) *entity.CandidateSet {
	set := entity.NewCandidateSet(prefix)
	for _, c := range candidates {
		set.Add(c.Suffix, c.Count)
	}

	return set
}

func TestBreachService_CheckBreach_Found(t *testing.T) {
	fx := createTestBreachService(t)
	ctx := context.Background()

	fx.lookup.EXPECT().
		Lookup(ctx, passwordPrefix).
		Return(candidateSet(passwordPrefix,
			entity.Candidate{Suffix: "0018A45C4D1DEF81644B54AB7F969B88D65", Count: 1},
			entity.Candidate{Suffix: passwordSuffix, Count: 9545824},
		), nil)

	result := fx.service.CheckBreach(ctx, "password")
	assert.Equal(t, entity.VerdictFound, result.Verdict)
	assert.Equal(t, 9545824, result.Count)
	assert.Empty(t, result.Message)
	assert.True(t, result.Breached())
}

func TestBreachService_CheckBreach_MatchIsCaseInsensitive(t *testing.T) {
	fx := createTestBreachService(t)
	ctx := context.Background()

	fx.lookup.EXPECT().
		Lookup(ctx, passwordPrefix).
		Return(candidateSet(passwordPrefix,
			entity.Candidate{Suffix: "1e4c9b93f3f0682250b6cf8331b7ee68fd8", Count: 3},
		), nil)

	result := fx.service.CheckBreach(ctx, "password")
	assert.Equal(t, entity.VerdictFound, result.Verdict)
	assert.Equal(t, 3, result.Count)
}

func TestBreachService_CheckBreach_UnknownCountIsFound(t *testing.T) {
	fx := createTestBreachService(t)
	ctx := context.Background()

	fx.lookup.EXPECT().
		Lookup(ctx, passwordPrefix).
		Return(candidateSet(passwordPrefix,
			entity.Candidate{Suffix: passwordSuffix, Count: entity.UnknownCount},
		), nil)

	result := fx.service.CheckBreach(ctx, "password")
	assert.Equal(t, entity.VerdictFound, result.Verdict)
	assert.Equal(t, 0, result.Count)
}

func TestBreachService_CheckBreach_NotFound(t *testing.T) {
	fx := createTestBreachService(t)
	ctx := context.Background()

	fx.lookup.EXPECT().
		Lookup(ctx, entity.Prefix("2A4B7")).
		Return(entity.NewCandidateSet("2A4B7"), nil)

	result := fx.service.CheckBreach(ctx, "Xk9#mQ2vL7pR")
	assert.Equal(t, entity.VerdictNotFound, result.Verdict)
	assert.Zero(t, result.Count)
	assert.Empty(t, result.Message)
	assert.False(t, result.Breached())
}

func TestBreachService_CheckBreach_LookupFailed(t *testing.T) {
	fx := createTestBreachService(t)
	ctx := context.Background()

	fx.lookup.EXPECT().
		Lookup(ctx, passwordPrefix).
		Return(nil, domainerrors.NewLookupFailedError(errors.New("connection refused"), "dial"))

	result := fx.service.CheckBreach(ctx, "password")
	assert.Equal(t, entity.VerdictCheckFailed, result.Verdict)
	assert.Equal(t, entity.CheckFailedMessage, result.Message)
	assert.NotContains(t, result.Message, "connection refused")
}

func TestBreachService_CheckBreach_InvalidPrefixIsCheckFailed(t *testing.T) {
	lookup := mockService.NewMockBreachLookup(t)
	digester := mockService.NewMockDigester(t)
	service := NewBreachService(digester, lookup, discardLogger())
	ctx := context.Background()

	digester.EXPECT().Digest("x").Return(entity.Digest("XYZ"))
	lookup.EXPECT().
		Lookup(ctx, entity.Prefix("XYZ")).
		Return(nil, domainerrors.ErrInvalidPrefix)

	result := service.CheckBreach(ctx, "x")
	assert.Equal(t, entity.VerdictCheckFailed, result.Verdict)
	assert.NotEmpty(t, result.Message)
}

func TestBreachService_CheckBreach_SendsOnlyPrefix(t *testing.T) {
	fx := createTestBreachService(t)
	ctx := context.Background()

	fx.lookup.EXPECT().
		Lookup(ctx, mock.AnythingOfType("entity.Prefix")).
		Run(func(_ context.Context, prefix entity.Prefix) {
			assert.Len(t, string(prefix), entity.PrefixLen)
		}).
		Return(entity.NewCandidateSet(passwordPrefix), nil)

	fx.service.CheckBreach(ctx, "password")
}

func TestBreachService_Lookup(t *testing.T) {
	fx := createTestBreachService(t)
	ctx := context.Background()

	set := candidateSet(passwordPrefix, entity.Candidate{Suffix: passwordSuffix, Count: 2})
	fx.lookup.EXPECT().Lookup(ctx, passwordPrefix).Return(set, nil)

	got, err := fx.service.Lookup(ctx, "5baa6")
	require.NoError(t, err)
	assert.Equal(t, set, got)
}

func TestBreachService_Lookup_InvalidPrefix(t *testing.T) {
	fx := createTestBreachService(t)

	for _, raw := range []string{"", "5BAA", "5BAA61", "5BAG6", "../.."} {
		_, err := fx.service.Lookup(context.Background(), raw)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPrefix, raw)
	}

	fx.lookup.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}

func TestBreachService_Lookup_PropagatesLookupFailed(t *testing.T) {
	fx := createTestBreachService(t)
	ctx := context.Background()

	fx.lookup.EXPECT().
		Lookup(ctx, passwordPrefix).
		Return(nil, domainerrors.NewLookupFailedError(nil, "status 503"))

	_, err := fx.service.Lookup(ctx, "5BAA6")
	assert.ErrorIs(t, err, domainerrors.ErrLookupFailed)
}

// End-to-end through the real range client against a stub corpus.
func newStubbedBreachService(t *testing.T, handler http.HandlerFunc) usecase.BreachUsecase {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := pwned.NewRangeClient(server.Client(), pwned.Options{
		BaseURL:          server.URL,
		UserAgent:        "pwaudit-test",
		Timeout:          2 * time.Second,
		MaxResponseBytes: 1 << 20,
	}, discardLogger())

	return NewBreachService(digest.NewSHA1Digester(), client, discardLogger())
}

func TestBreachService_EndToEnd(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		status      int
		body        string
		wantVerdict entity.Verdict
		wantCount   int
	}{
		{
			name:        "known breached password",
			password:    "password",
			status:      http.StatusOK,
			body:        "0018A45C4D1DEF81644B54AB7F969B88D65:1\r\n1E4C9B93F3F0682250B6CF8331B7EE68FD8:9545824\r\n",
			wantVerdict: entity.VerdictFound,
			wantCount:   9545824,
		},
		{
			name:        "empty body",
			password:    "Xk9#mQ2vL7pR",
			status:      http.StatusOK,
			body:        "",
			wantVerdict: entity.VerdictNotFound,
		},
		{
			name:        "service unavailable",
			password:    "password",
			status:      http.StatusServiceUnavailable,
			body:        "down for maintenance",
			wantVerdict: entity.VerdictCheckFailed,
		},
		{
			name:        "malformed line next to a match",
			password:    "password",
			status:      http.StatusOK,
			body:        "garbage-without-colon\r\n1E4C9B93F3F0682250B6CF8331B7EE68FD8:12\r\n",
			wantVerdict: entity.VerdictFound,
			wantCount:   12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			service := newStubbedBreachService(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			result := service.CheckBreach(context.Background(), tt.password)
			assert.Equal(t, tt.wantVerdict, result.Verdict)
			assert.Equal(t, tt.wantCount, result.Count)
			assert.Len(t, gotPath, len("/range/")+entity.PrefixLen)

			if tt.wantVerdict == entity.VerdictCheckFailed {
				assert.NotEmpty(t, result.Message)
			} else {
				assert.Empty(t, result.Message)
			}
		})
	}
}
