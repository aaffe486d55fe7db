package service

import (
	"errors"
	"fmt"
)

var (
	// ErrAccessDenied means the actor is not permitted to perform the
	// operation. The operation is aborted with no partial effect.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound means the target card or item does not exist.
	// Deletes treat this as a no-op; reads surface it to the caller.
	ErrNotFound = errors.New("not found")

	// ErrBackendUnavailable means the store failed mid-operation. The
	// operation may be retried once the backend recovers.
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// Validation codes carried by ValidationError.
const (
	CodeBlankTitle    = "blank_title"
	CodeBlankName     = "blank_name"
	CodeInvalidFormat = "invalid_format"
	CodeEmptyBatch    = "empty_batch"
)

// ValidationError reports caller input the engine refuses to act on.
// Never retried automatically, never fatal.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(code, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError, returning it if so.
func IsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// backendErr wraps a store failure so handlers can report it as a recoverable
// backend problem rather than a caller mistake. The result matches both
// ErrBackendUnavailable and the underlying cause under errors.Is.
func backendErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrBackendUnavailable, err)
}
