package profile

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound: no profile exists for the given user. An expected
	// outcome, never a system fault.
	ErrNotFound = errors.New("profile not found")
	// ErrEntryNotFound: the experience/education identifier matches no
	// sub-record in the collection.
	ErrEntryNotFound = errors.New("profile entry not found")
)

// FieldError is a single (field, message) validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failed check for a request body.
// Validation never causes partial persistence.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

type validator struct {
	fields []FieldError
}

func (v *validator) require(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		v.fields = append(v.fields, FieldError{Field: field, Message: message})
	}
}

func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}
