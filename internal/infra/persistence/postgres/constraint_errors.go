package postgres

import (
	"strings"

	domainerrors "pwaudit/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// classifyWriteError maps an insert failure to the error returned by the
// repository. Constraint violations keep the driver error wrapped so callers
// can still match it.
func classifyWriteError(err error, what string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return errors.Wrapf(err, "%s already exists", what)
	case isNotNullConstraintViolation(err):
		return errors.Wrapf(err, "%s is missing a required column", what)
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create "+what)
	}
}
