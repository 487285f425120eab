package handler

import (
	"net/http"

	"pwaudit/internal/delivery/api/response"
	domainerrors "pwaudit/internal/domain/errors"
	"pwaudit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PasswordHandlerParams holds dependencies for PasswordHandler, injected by Fx.
type PasswordHandlerParams struct {
	fx.In

	PasswordUC usecase.PasswordUsecase
}

// PasswordHandler serves password generation
type PasswordHandler struct {
	passwordUC usecase.PasswordUsecase
}

// NewPasswordHandler is the constructor for PasswordHandler
func NewPasswordHandler(params PasswordHandlerParams) *PasswordHandler {
	return &PasswordHandler{
		passwordUC: params.PasswordUC,
	}
}

// GeneratePasswordRequest represents the request body for generating a password
type GeneratePasswordRequest struct {
	Length  int    `json:"length" validate:"omitempty,min=8,max=128"`
	Exclude string `json:"exclude" validate:"max=256"`
}

// GeneratePasswordResponse is returned on success
type GeneratePasswordResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// Generate returns a random password
func (h *PasswordHandler) Generate(c echo.Context) error {
	var req GeneratePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid generation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), err.Error())
	}

	password, err := h.passwordUC.Generate(usecase.GeneratePasswordRequest{
		Length:  req.Length,
		Exclude: req.Exclude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, GeneratePasswordResponse{
		Password: password,
		Length:   len([]rune(password)),
	})
}
