package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Usecase-level sentinel errors. Handlers map these onto HTTP statuses;
// nothing below this layer knows about transport codes.
var (
	// ErrStateConflict: the client acted on stale state (stage mismatch or
	// expired deadline). The caller must refetch and retry, never resubmit.
	ErrStateConflict = errors.New("client and server are desynchronized")

	// ErrCapacity: freshly computed availability cannot satisfy the request,
	// or the locked price drifted beyond tolerance. The draft is rolled back.
	ErrCapacity = errors.New("insufficient room availability")

	ErrNotFound = errors.New("record not found")

	// ErrConfiguration: missing settings key or tariff with no fallback.
	// Fatal, not user-actionable.
	ErrConfiguration = errors.New("configuration error")
)

// ValidationError carries field-keyed messages back to the caller.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func FieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for k, v := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
