package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that an operation would violate a uniqueness or state invariant
// (double open, double close, duplicate currency code).
var ErrConflict = errors.New("conflicting state")

// ErrTransport indicates that the persistence layer could not be reached or failed.
var ErrTransport = errors.New("transport error")

// ErrUnauthorized indicates missing or invalid operator credentials.
var ErrUnauthorized = errors.New("unauthorized")

// Kind classifies an error for the presentation layer.
type Kind string

const (
	KindInvalidInput      Kind = "invalid_input"
	KindConflict          Kind = "conflict"
	KindNotFound          Kind = "not_found"
	KindConnectionProblem Kind = "connection_problem"
	KindUnauthorized      Kind = "unauthorized"
	KindInternal          Kind = "internal"
)

// NewValidationError returns an error matching ErrValidation.
func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// NewConflictError returns an error matching ErrConflict.
func NewConflictError(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}

// NewNotFoundError returns an error matching ErrNotFound.
func NewNotFoundError(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

// NewTransportError wraps a driver failure so that it matches both ErrTransport and the cause.
func NewTransportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
}

// KindOf maps an error onto the kind the user has to react to.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindInvalidInput
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrTransport):
		return KindConnectionProblem
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	default:
		return KindInternal
	}
}

// UserMessage is the sentence shown to the operator for a given kind.
func UserMessage(kind Kind) string {
	switch kind {
	case KindInvalidInput:
		return "Invalid input, please check the values entered"
	case KindConflict:
		return "The till is in a conflicting state for this action"
	case KindNotFound:
		return "The requested item does not exist"
	case KindConnectionProblem:
		return "Connection problem, please retry"
	case KindUnauthorized:
		return "Authentication required"
	default:
		return "Unexpected error"
	}
}
