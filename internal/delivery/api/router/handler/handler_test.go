package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pwaudit/internal/delivery/api/validator"
	"pwaudit/internal/domain/entity"
	domainerrors "pwaudit/internal/domain/errors"
	mockUsecase "pwaudit/internal/mocks/usecase"
	"pwaudit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

type breachHandlerFixtures struct {
	handler    *BreachHandler
	breachUC   *mockUsecase.MockBreachUsecase
	activityUC *mockUsecase.MockActivityUsecase
}

func createTestBreachHandler(t *testing.T) breachHandlerFixtures {
	breachUC := mockUsecase.NewMockBreachUsecase(t)
	activityUC := mockUsecase.NewMockActivityUsecase(t)

	return breachHandlerFixtures{
		handler: NewBreachHandler(BreachHandlerParams{
			BreachUC:   breachUC,
			ActivityUC: activityUC,
			Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		breachUC:   breachUC,
		activityUC: activityUC,
	}
}

func TestBreachHandler_CheckBreach(t *testing.T) {
	tests := []struct {
		name   string
		result *entity.CheckResult
	}{
		{name: "found", result: entity.Found(9545824)},
		{name: "not found", result: entity.NotFound()},
		{name: "check failed", result: entity.CheckFailed()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBreachHandler(t)
			c, rec := newContext(http.MethodPost, "/api/v1/breach/check", `{"password":"password"}`)

			fx.breachUC.EXPECT().CheckBreach(mock.Anything, "password").Return(tt.result)
			fx.activityUC.EXPECT().RecordCheck(mock.Anything, entity.CheckSourcePassword, tt.result, nil).Return()

			require.NoError(t, fx.handler.CheckBreach(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var got entity.CheckResult
			require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
			assert.Equal(t, *tt.result, got)
		})
	}
}

func TestBreachHandler_CheckBreach_TooLong(t *testing.T) {
	fx := createTestBreachHandler(t)
	c, rec := newContext(http.MethodPost, "/api/v1/breach/check", `{"password":"`+strings.Repeat("a", 1025)+`"}`)

	require.NoError(t, fx.handler.CheckBreach(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestBreachHandler_CheckBreach_BadJSON(t *testing.T) {
	fx := createTestBreachHandler(t)
	c, rec := newContext(http.MethodPost, "/api/v1/breach/check", `{"password":`)

	require.NoError(t, fx.handler.CheckBreach(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
}

func TestBreachHandler_Range(t *testing.T) {
	fx := createTestBreachHandler(t)
	c, rec := newContext(http.MethodPost, "/api/v1/breach/range", `{"prefix":"5baa6"}`)

	set := entity.NewCandidateSet("5BAA6")
	set.Add("1E4C9B93F3F0682250B6CF8331B7EE68FD8", 9545824)
	fx.breachUC.EXPECT().Lookup(mock.Anything, "5baa6").Return(set, nil)
	fx.activityUC.EXPECT().
		RecordCheck(mock.Anything, entity.CheckSourcePrefix, (*entity.CheckResult)(nil), nil).
		Return()

	require.NoError(t, fx.handler.Range(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got entity.CandidateSet
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, *set, got)
}

func TestBreachHandler_Range_InvalidPrefix(t *testing.T) {
	fx := createTestBreachHandler(t)
	c, rec := newContext(http.MethodPost, "/api/v1/breach/range", `{"prefix":"zzz"}`)

	fx.breachUC.EXPECT().Lookup(mock.Anything, "zzz").Return(nil, domainerrors.ErrInvalidPrefix)

	require.NoError(t, fx.handler.Range(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PREFIX", decode(t, rec).Error.Code)
	fx.activityUC.AssertNotCalled(t, "RecordCheck", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBreachHandler_Range_LookupFailed(t *testing.T) {
	fx := createTestBreachHandler(t)
	c, rec := newContext(http.MethodPost, "/api/v1/breach/range", `{"prefix":"5BAA6"}`)

	lookupErr := domainerrors.NewLookupFailedError(errors.New("dial tcp: refused"), "transport error")
	fx.breachUC.EXPECT().Lookup(mock.Anything, "5BAA6").Return(nil, lookupErr)
	fx.activityUC.EXPECT().
		RecordCheck(mock.Anything, entity.CheckSourcePrefix, (*entity.CheckResult)(nil), lookupErr).
		Return()

	require.NoError(t, fx.handler.Range(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, "LOOKUP_FAILED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "refused")
}

func TestPasswordHandler_Generate(t *testing.T) {
	passwordUC := mockUsecase.NewMockPasswordUsecase(t)
	h := NewPasswordHandler(PasswordHandlerParams{PasswordUC: passwordUC})
	c, rec := newContext(http.MethodPost, "/api/v1/passwords/generate", `{"length":20,"exclude":"alice"}`)

	passwordUC.EXPECT().
		Generate(usecase.GeneratePasswordRequest{Length: 20, Exclude: "alice"}).
		Return("abcdefghijABCDEFGHIJ", nil)

	require.NoError(t, h.Generate(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got GeneratePasswordResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, "abcdefghijABCDEFGHIJ", got.Password)
	assert.Equal(t, 20, got.Length)
}

func TestPasswordHandler_Generate_Validation(t *testing.T) {
	passwordUC := mockUsecase.NewMockPasswordUsecase(t)
	h := NewPasswordHandler(PasswordHandlerParams{PasswordUC: passwordUC})
	c, rec := newContext(http.MethodPost, "/api/v1/passwords/generate", `{"length":4}`)

	require.NoError(t, h.Generate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestPasswordHandler_Generate_UsecaseError(t *testing.T) {
	passwordUC := mockUsecase.NewMockPasswordUsecase(t)
	h := NewPasswordHandler(PasswordHandlerParams{PasswordUC: passwordUC})
	c, rec := newContext(http.MethodPost, "/api/v1/passwords/generate", `{}`)

	passwordUC.EXPECT().
		Generate(usecase.GeneratePasswordRequest{}).
		Return("", errors.Wrap(domainerrors.ErrGenerationFailed, "entropy"))

	require.NoError(t, h.Generate(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "GENERATION_FAILED", decode(t, rec).Error.Code)
}

func TestActivityHandler_GetActivity(t *testing.T) {
	activityUC := mockUsecase.NewMockActivityUsecase(t)
	h := NewActivityHandler(ActivityHandlerParams{ActivityUC: activityUC})
	c, rec := newContext(http.MethodGet, "/api/v1/admin/activity?since=2026-01-02T03:04:05Z", "")

	since := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	activityUC.EXPECT().
		Summary(mock.Anything, since).
		Return(&entity.ActivitySummary{Since: since, Total: 4, Found: 1, NotFound: 3}, nil)

	require.NoError(t, h.GetActivity(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got entity.ActivitySummary
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, int64(4), got.Total)
	assert.Equal(t, int64(3), got.NotFound)
}

func TestActivityHandler_GetActivity_BadSince(t *testing.T) {
	activityUC := mockUsecase.NewMockActivityUsecase(t)
	h := NewActivityHandler(ActivityHandlerParams{ActivityUC: activityUC})
	c, rec := newContext(http.MethodGet, "/api/v1/admin/activity?since=yesterday", "")

	require.NoError(t, h.GetActivity(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
