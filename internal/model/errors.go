package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is absent or not owned by the caller.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a user with the same email already exists.
	ErrConflict = errors.New("already exists")
	// ErrUnauthorized is returned when a request lacks a valid session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidToken is returned for any token that fails verification.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrInvalidCredentials is returned when email or password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrCapsuleLocked is returned when sealed data is requested before unlock.
	ErrCapsuleLocked = errors.New("capsule is locked")
	// ErrDisabled is returned by operations switched off in configuration.
	ErrDisabled = errors.New("feature is disabled")
)

// ValidationError describes user-correctable input.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
