package impl

import (
	"testing"

	"pwaudit/config"
	domainerrors "pwaudit/internal/domain/errors"
	mockService "pwaudit/internal/mocks/service"
	"pwaudit/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPasswordService(t *testing.T) (usecase.PasswordUsecase, *mockService.MockPasswordGenerator) {
	generator := mockService.NewMockPasswordGenerator(t)
	cfg := &config.Config{Generator: config.GeneratorConfig{Length: 16}}

	return NewPasswordService(generator, cfg), generator
}

func TestPasswordService_Generate_DefaultLength(t *testing.T) {
	service, generator := createTestPasswordService(t)

	generator.EXPECT().Generate(16, "alice").Return("0123456789abcdef", nil)

	password, err := service.Generate(usecase.GeneratePasswordRequest{Exclude: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", password)
}

func TestPasswordService_Generate_ExplicitLength(t *testing.T) {
	service, generator := createTestPasswordService(t)

	generator.EXPECT().Generate(32, "").Return("x", nil)

	_, err := service.Generate(usecase.GeneratePasswordRequest{Length: 32})
	require.NoError(t, err)
}

func TestPasswordService_Generate_LengthOutOfRange(t *testing.T) {
	service, _ := createTestPasswordService(t)

	for _, length := range []int{-1, 7, 129} {
		_, err := service.Generate(usecase.GeneratePasswordRequest{Length: length})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidLength, length)
	}
}

func TestPasswordService_Generate_GeneratorError(t *testing.T) {
	service, generator := createTestPasswordService(t)

	generator.EXPECT().Generate(16, "").Return("", errors.New("entropy exhausted"))

	_, err := service.Generate(usecase.GeneratePasswordRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrGenerationFailed)
}
