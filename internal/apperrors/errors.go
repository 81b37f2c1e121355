package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrIntegrity indicates that a mutation would violate a ledger invariant,
// e.g. a settlement amount outside (0, remaining balance].
var ErrIntegrity = errors.New("integrity violation")

// ErrStorage indicates an opaque failure in the storage backend. Callers may
// retry the whole operation; the engine itself does not deduplicate retries.
var ErrStorage = errors.New("storage error")

// ErrUnauthorized indicates a missing or invalid unlock credential.
var ErrUnauthorized = errors.New("unauthorized")

// AppError wraps a lower-level error with an application status code and
// message. Repositories use it to annotate storage failures while keeping
// the underlying error available via errors.Is/As.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewStorageError wraps a backend failure so that errors.Is matches both
// ErrStorage and the underlying error.
func NewStorageError(message string, err error) *AppError {
	return NewAppError(500, message, fmt.Errorf("%w: %w", ErrStorage, err))
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
