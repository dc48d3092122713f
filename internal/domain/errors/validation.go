package errors

import (
	"net/http"
	"sort"
	"strings"
)

// FieldErrors maps a field name to the validation message for that field.
type FieldErrors map[string]string

// ValidationError is a field-level validation failure. All offending fields are
// collected before the error is returned so a caller can redisplay every
// problem at once instead of fixing them one round trip at a time.
type ValidationError struct {
	fields FieldErrors
}

// NewValidationError creates a ValidationError from a field error map.
func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation failed: " + e.Details()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "input validation failed"
}

// Details returns all field messages joined in a stable order
func (e *ValidationError) Details() string {
	parts := make([]string, 0, len(e.fields))
	for field, msg := range e.fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)

	return strings.Join(parts, "; ")
}

// Fields returns the per-field validation messages.
func (e *ValidationError) Fields() FieldErrors {
	return e.fields
}
