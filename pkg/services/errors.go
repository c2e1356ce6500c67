package services

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when a signature or internal token check fails
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrBackendUnavailable is returned when a required store is unreachable;
	// handlers map it to 503 so the queue redelivers
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrProviderRetryable is returned when the provider failed transiently
	ErrProviderRetryable = errors.New("provider error, retryable")

	// ErrProviderPermanent is returned when the provider rejected the send
	ErrProviderPermanent = errors.New("provider error, permanent")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
