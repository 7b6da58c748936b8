package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-marketplace/models"
)

var (
	// ErrValidation is the sentinel every *ValidationError unwraps to.
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedType is returned when the value passed to Validate is
	// not a struct (or pointer to struct).
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError lists every invalid field of a request.
type ValidationError struct {
	Fields []models.FieldError
}

// NewValidationError builds a ValidationError with a single field failure.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []models.FieldError{{Field: field, Message: message}}}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(messages, "; ")
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
