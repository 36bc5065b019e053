package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected failure in a dependency (database, filesystem).
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish code and a user facing message alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil || e.Err == e.kind() {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the cause so errors.Is works against the sentinels above.
func (e *AppError) Unwrap() []error {
	kind := e.kind()
	if e.Err == nil || e.Err == kind {
		return []error{kind}
	}
	return []error{kind, e.Err}
}

func (e *AppError) kind() error {
	switch e.Code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrDuplicate
	case http.StatusBadRequest:
		return ErrValidation
	default:
		return ErrInternal
	}
}

// NotFound builds an AppError that matches ErrNotFound.
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, nil)
}

// Conflict builds an AppError that matches ErrDuplicate.
func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message, nil)
}

// InvalidInput builds an AppError that matches ErrValidation.
func InvalidInput(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

// Message returns the user facing message of err if it is (or wraps) an AppError,
// otherwise err.Error().
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
