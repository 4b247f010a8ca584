package model

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("not logged in")
)

// AppError carries a client-facing message while matching one of the
// sentinel kinds above through errors.Is.
type AppError struct {
	Kind    error
	Message string
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Is(target error) bool { return e.Kind == target }

func (e *AppError) Unwrap() error { return e.Kind }

func NewValidationError(message string) error {
	return &AppError{Kind: ErrValidation, Message: message}
}

func NewNotFoundError(message string) error {
	return &AppError{Kind: ErrNotFound, Message: message}
}

func NewUnauthenticatedError(message string) error {
	return &AppError{Kind: ErrUnauthenticated, Message: message}
}

// ErrVideoNotFound is reported when the provider returns no item for an id.
// It surfaces as an upstream failure, not a local not-found.
var ErrVideoNotFound = errors.New("Video not found")
