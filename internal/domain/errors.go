package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, negative quantity).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrInvalidInput is returned for malformed request inputs outside the
// packing-list payload rules — currently an unparsable weather date.
// Handlers should map this to HTTP 400.
var ErrInvalidInput = errors.New("invalid input")

// FieldError names one offending field in a validation failure.
// Field is a dotted path into the payload, e.g. "items.phone-charger.quantity".
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError aggregates every field failure found in one payload so the
// client can surface all problems at once instead of fixing them one at a time.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidation) succeed without callers knowing the
// concrete type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
