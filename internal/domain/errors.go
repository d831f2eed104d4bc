package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrBadRequest    = errors.New("bad request")
)

// Error is a domain error with a message that is safe to show to the caller.
// It unwraps to one of the sentinel errors above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NewError creates an Error of the given kind.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NotFoundError reports a missing or invisible resource, e.g. "Project not found".
func NotFoundError(message string) *Error { return NewError(ErrNotFound, message) }

// ForbiddenError reports a role or ownership violation.
func ForbiddenError(message string) *Error { return NewError(ErrForbidden, message) }

// ConflictError reports a state conflict such as a second running timer.
func ConflictError(message string) *Error { return NewError(ErrConflict, message) }

// BadRequestError reports invalid temporal input.
func BadRequestError(message string) *Error { return NewError(ErrBadRequest, message) }

// MissingTagsError lists every tag id that did not resolve inside the organization.
func MissingTagsError(ids []uuid.UUID) *Error {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return NotFoundError(fmt.Sprintf("Tag not found: %s", strings.Join(parts, ", ")))
}

// MessageOf returns the caller-facing message of err, or "" if err carries none.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return ""
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
