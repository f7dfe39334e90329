package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a request payload fails schema validation.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when a document ID is malformed.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrForbidden is returned when an operation is not permitted for the caller.
	ErrForbidden = errors.New("forbidden access")

	// ErrUnauthorized is returned when the caller's identity could not be established.
	ErrUnauthorized = errors.New("unauthorized access")
)

// ValidationError wraps a field-level validation failure so the API layer
// can distinguish malformed payloads from other bad requests.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
