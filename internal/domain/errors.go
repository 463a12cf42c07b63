package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface enables extensible error handling.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// PayloadTooLargeError indicates an upload exceeded the size cap
	PayloadTooLargeError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string        { return e.Message }
func (e *ValidationError) Error() string      { return e.Message }
func (e *PayloadTooLargeError) Error() string { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int        { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int      { return http.StatusBadRequest }
func (e *PayloadTooLargeError) StatusCode() int { return http.StatusRequestEntityTooLarge }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrPayloadTooLarge = errors.New("payload too large")
)

// Is allows errors.Is() to match the sentinel counterparts
func (e *NotFoundError) Is(target error) bool        { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool      { return target == ErrValidation }
func (e *PayloadTooLargeError) Is(target error) bool { return target == ErrPayloadTooLarge }
