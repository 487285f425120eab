package errors

import (
	"net/http"

	"pwaudit/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same business error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Breach-check errors
	ErrInvalidPrefix = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PREFIX",
		"prefix must be exactly 5 hexadecimal characters",
		"",
	)

	ErrLookupFailed = NewBaseError(
		http.StatusBadGateway,
		"LOOKUP_FAILED",
		"could not query the breach corpus, try again",
		"",
	)

	// Generator errors
	ErrInvalidLength = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LENGTH",
		"requested password length is out of range",
		"",
	)

	ErrGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"GENERATION_FAILED",
		"could not generate a password",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)
)

// LookupFailedError reports a failed range query. It matches ErrLookupFailed
// with errors.Is and unwraps to the transport-level cause, which is for logs
// only and never shown to users.
type LookupFailedError struct {
	err     error
	details string
}

// NewLookupFailedError creates a lookup failure caused by err
func NewLookupFailedError(err error, details string) *LookupFailedError {
	return &LookupFailedError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *LookupFailedError) Error() string {
	if e.err == nil {
		return "breach lookup failed: " + e.details
	}

	return errors.Wrap(e.err, "breach lookup failed").Error()
}

// Unwrap returns the underlying cause
func (e *LookupFailedError) Unwrap() error {
	return e.err
}

// Is matches ErrLookupFailed
func (e *LookupFailedError) Is(target error) bool {
	return target == ErrLookupFailed
}

// HTTPCode returns the HTTP status code
func (e *LookupFailedError) HTTPCode() int {
	return ErrLookupFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (e *LookupFailedError) ErrorCode() string {
	return ErrLookupFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *LookupFailedError) Message() string {
	return ErrLookupFailed.Message()
}

// Details returns detailed error information
func (e *LookupFailedError) Details() string {
	return e.details
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the underlying cause
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
