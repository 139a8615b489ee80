package domain

import "errors"

// Sentinel errors shared by services and repositories. Controllers map them to HTTP status codes with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("authentication required")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

// ErrAlreadyReviewed is returned when a user reviews the same event twice.
var ErrAlreadyReviewed = &ConflictError{Message: "You already reviewed this event"}

// ErrDuplicateUsername is returned when registering a username that is taken.
var ErrDuplicateUsername = &ConflictError{Message: "a user with that username already exists"}

// ValidationError describes rejected input. It matches ErrInvalidInput.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError returns a ValidationError for field with the given message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// ConflictError reports a uniqueness violation. It matches ErrConflict.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }
