package apperr

import "errors"

// Domain error kinds. Services return these (usually wrapped with context via
// fmt.Errorf("...: %w", ...)) and the HTTP layer maps them to status codes.
var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrConflict         = errors.New("conflict")
)
