package services

import (
	"errors"

	"cleanpro-backend/validation"
)

// ErrInvalidTransition is returned when an order status change does not
// follow the allowed lifecycle graph.
var ErrInvalidTransition = errors.New("invalid order status transition")

// ValidationError carries the field->messages map produced by the
// validation layer. Nothing is persisted when it is returned.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func invalidInput(fields validation.FieldErrors) error {
	return &ValidationError{Fields: fields}
}
