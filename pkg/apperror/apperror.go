// Package apperror defines the application error taxonomy and its mapping to
// HTTP status codes. Usecases return *AppError values; handlers render the
// public message and log the wrapped cause.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Type classifies an application error.
type Type int

const (
	// BadRequest represents malformed input, e.g. a non-integer id.
	BadRequest Type = iota
	// Auth represents an authentication failure (bad credentials, bad token).
	Auth
	// Forbidden represents a rejected request on a protected route.
	Forbidden
	// NotFound represents a missing record.
	NotFound
	// Conflict represents a unique-constraint violation.
	Conflict
	// PayloadTooLarge represents an oversized upload.
	PayloadTooLarge
	// Internal represents a store or filesystem failure not otherwise classified.
	Internal
)

// AppError carries a caller-visible message, an error type, and an optional
// underlying cause that is kept for logging only.
type AppError struct {
	Type    Type
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type to an HTTP status code.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case BadRequest:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case PayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// New builds an AppError without an underlying cause.
func New(t Type, message string) *AppError {
	return &AppError{Type: t, Message: message}
}

// Wrap builds an AppError around an underlying error.
func Wrap(t Type, message string, err error) *AppError {
	return &AppError{Type: t, Message: message, Err: err}
}

// From extracts an *AppError from err, or wraps err as Internal with the
// given fallback message.
func From(err error, fallback string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(Internal, fallback, err)
}
