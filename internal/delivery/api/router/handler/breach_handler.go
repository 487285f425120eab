package handler

import (
	"log/slog"
	"net/http"

	"pwaudit/internal/delivery/api/response"
	"pwaudit/internal/domain/entity"
	domainerrors "pwaudit/internal/domain/errors"
	"pwaudit/internal/errors"
	"pwaudit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BreachHandlerParams holds dependencies for BreachHandler, injected by Fx.
type BreachHandlerParams struct {
	fx.In

	BreachUC   usecase.BreachUsecase
	ActivityUC usecase.ActivityUsecase
	Logger     *slog.Logger
}

// BreachHandler serves the breach check endpoints
type BreachHandler struct {
	breachUC   usecase.BreachUsecase
	activityUC usecase.ActivityUsecase
	logger     *slog.Logger
}

// NewBreachHandler is the constructor for BreachHandler
func NewBreachHandler(params BreachHandlerParams) *BreachHandler {
	return &BreachHandler{
		breachUC:   params.BreachUC,
		activityUC: params.ActivityUC,
		logger:     params.Logger,
	}
}

// CheckBreachRequest carries the password to check. It is never logged or stored.
type CheckBreachRequest struct {
	Password string `json:"password" validate:"max=1024"`
}

// RangeRequest carries a digest prefix computed by the client
type RangeRequest struct {
	Prefix string `json:"prefix"`
}

// CheckBreach returns the verdict for a password. check-failed is a verdict,
// so every outcome is a 200.
func (h *BreachHandler) CheckBreach(c echo.Context) error {
	var req CheckBreachRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid breach check input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), err.Error())
	}

	ctx := c.Request().Context()
	result := h.breachUC.CheckBreach(ctx, req.Password)
	h.activityUC.RecordCheck(ctx, entity.CheckSourcePassword, result, nil)

	return response.Success(c, http.StatusOK, result)
}

// Range proxies a prefix-only lookup. The caller hashes locally and compares
// suffixes itself, so the server never sees the password.
func (h *BreachHandler) Range(c echo.Context) error {
	var req RangeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid range input")
	}

	ctx := c.Request().Context()
	set, err := h.breachUC.Lookup(ctx, req.Prefix)
	if !errors.Is(err, domainerrors.ErrInvalidPrefix) {
		h.activityUC.RecordCheck(ctx, entity.CheckSourcePrefix, nil, err)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, set)
}
