package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrInvalidParameter indicates that a caller-supplied parameter is
	// outside its valid range or not one of the recognized values.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap reports every ValidationError as an ErrInvalidParameter so that
// callers can match with errors.Is without inspecting fields.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidParameter
}
