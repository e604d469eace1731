package settings

import (
	"errors"
)

// ValidationError is a locally detected input error. It is raised before any
// store write happens, so the caller can correct the input and retry.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AsValidationError unwraps err into a ValidationError, or returns nil.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}

	return nil
}

var (
	// ErrUnknownFieldType is returned when a definition carries a field type
	// outside the closed enumeration.
	ErrUnknownFieldType = errors.New("unknown field type")

	// ErrUnknownCategory is returned when a definition carries a category
	// outside the closed enumeration.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownSetting is returned when a draft edit addresses an internal
	// name with no live definition.
	ErrUnknownSetting = errors.New("unknown setting")
)
