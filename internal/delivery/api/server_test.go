package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pwaudit/config"
	apimiddleware "pwaudit/internal/delivery/api/middleware"
	"pwaudit/internal/delivery/api/router"
	"pwaudit/internal/delivery/api/router/handler"
	deliverycontext "pwaudit/internal/delivery/context"
	"pwaudit/internal/domain/entity"
	"pwaudit/internal/domain/service"
	mockService "pwaudit/internal/mocks/service"
	mockUsecase "pwaudit/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo       *echo.Echo
	breachUC   *mockUsecase.MockBreachUsecase
	activityUC *mockUsecase.MockActivityUsecase
	tokenSvc   *mockService.MockTokenService
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	breachUC := mockUsecase.NewMockBreachUsecase(t)
	activityUC := mockUsecase.NewMockActivityUsecase(t)
	passwordUC := mockUsecase.NewMockPasswordUsecase(t)
	tokenSvc := mockService.NewMockTokenService(t)

	e := NewEcho(cfg, logger, router.RouterParams{
		BreachHandler: handler.NewBreachHandler(handler.BreachHandlerParams{
			BreachUC:   breachUC,
			ActivityUC: activityUC,
			Logger:     logger,
		}),
		PasswordHandler: handler.NewPasswordHandler(handler.PasswordHandlerParams{PasswordUC: passwordUC}),
		ActivityHandler: handler.NewActivityHandler(handler.ActivityHandlerParams{ActivityUC: activityUC}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(tokenSvc, logger),
	})

	return serverFixtures{
		echo:       e,
		breachUC:   breachUC,
		activityUC: activityUC,
		tokenSvc:   tokenSvc,
	}
}

func serve(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestServer_Health(t *testing.T) {
	fx := createTestServer(t)

	rec := serve(fx.echo, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CheckBreach_EchoesRequestID(t *testing.T) {
	fx := createTestServer(t)

	fx.breachUC.EXPECT().
		CheckBreach(mock.Anything, "hunter2").
		Return(entity.NotFound())
	fx.activityUC.EXPECT().
		RecordCheck(mock.Anything, entity.CheckSourcePassword, mock.Anything, nil).
		Return()

	rec := serve(fx.echo, http.MethodPost, "/api/v1/breach/check", `{"password":"hunter2"}`,
		map[string]string{deliverycontext.HeaderXRequestID: "req-42"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-42"`)
	assert.Contains(t, rec.Body.String(), `"verdict":"not-found"`)
}

func TestServer_BodyLimit(t *testing.T) {
	fx := createTestServer(t)

	body := `{"password":"` + strings.Repeat("a", 64<<10) + `"}`
	rec := serve(fx.echo, http.MethodPost, "/api/v1/breach/check", body, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_Admin_RequiresToken(t *testing.T) {
	fx := createTestServer(t)

	rec := serve(fx.echo, http.MethodGet, "/api/v1/admin/activity", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))

	rec = serve(fx.echo, http.MethodGet, "/api/v1/admin/activity", "",
		map[string]string{echo.HeaderAuthorization: "Basic abc"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_Admin_InvalidToken(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))

	rec := serve(fx.echo, http.MethodGet, "/api/v1/admin/activity", "",
		map[string]string{echo.HeaderAuthorization: "Bearer bad"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_Admin_RequiresAdminRole(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().
		ValidateToken("auditor-token").
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{"auditor"}}, nil)

	rec := serve(fx.echo, http.MethodGet, "/api/v1/admin/activity", "",
		map[string]string{echo.HeaderAuthorization: "Bearer auditor-token"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
}

func TestServer_Admin_Activity(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().
		ValidateToken("admin-token").
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{"admin"}}, nil)
	fx.activityUC.EXPECT().
		Summary(mock.Anything, mock.Anything).
		Return(&entity.ActivitySummary{Total: 2, Found: 2}, nil)

	rec := serve(fx.echo, http.MethodGet, "/api/v1/admin/activity", "",
		map[string]string{echo.HeaderAuthorization: "Bearer admin-token"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"found":2`)
}

func TestServer_UnknownRoute(t *testing.T) {
	fx := createTestServer(t)

	rec := serve(fx.echo, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", errorCode(t, rec))
}
