package handler

import (
	"net/http"
	"time"

	"pwaudit/internal/delivery/api/response"
	domainerrors "pwaudit/internal/domain/errors"
	"pwaudit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
}

// ActivityHandler serves the operator activity report
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{
		activityUC: params.ActivityUC,
	}
}

// GetActivity returns verdict counts since the RFC 3339 time in ?since=.
// Without it the last 24 hours are reported.
func (h *ActivityHandler) GetActivity(c echo.Context) error {
	var since time.Time
	if raw := c.QueryParam("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
				domainerrors.ErrValidationFailed.Message(), "since must be an RFC 3339 timestamp")
		}
		since = parsed
	}

	summary, err := h.activityUC.Summary(c.Request().Context(), since)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
