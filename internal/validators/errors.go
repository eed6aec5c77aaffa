package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrInvalidFields   = errors.New("invalid fields")
)

// ValidationError lists every input field that violated a rule. Field names
// are the JSON names seen by API clients.
type ValidationError struct {
	Fields []string
}

// NewValidationError builds a ValidationError for the given fields.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return ErrInvalidFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

// Unwrap lets errors.Is match ErrInvalidFields.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidFields
}
