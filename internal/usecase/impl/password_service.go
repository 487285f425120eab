package impl

import (
	"pwaudit/config"
	domainerrors "pwaudit/internal/domain/errors"
	"pwaudit/internal/domain/service"
	"pwaudit/internal/errors"
	"pwaudit/internal/usecase"
)

const (
	minGeneratedLength = 8
	maxGeneratedLength = 128
)

type passwordService struct {
	generator     service.PasswordGenerator
	defaultLength int
}

// NewPasswordService creates a new password service instance
func NewPasswordService(generator service.PasswordGenerator, cfg *config.Config) usecase.PasswordUsecase {
	return &passwordService{
		generator:     generator,
		defaultLength: cfg.Generator.Length,
	}
}

// Generate applies the default length and bounds, then delegates.
func (srv *passwordService) Generate(req usecase.GeneratePasswordRequest) (string, error) {
	length := req.Length
	if length == 0 {
		length = srv.defaultLength
	}
	if length < minGeneratedLength || length > maxGeneratedLength {
		return "", domainerrors.ErrInvalidLength.WithDetails("length must be between 8 and 128")
	}

	password, err := srv.generator.Generate(length, req.Exclude)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrGenerationFailed, err.Error())
	}

	return password, nil
}
