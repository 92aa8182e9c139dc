package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a catalog failure. The transport layer maps kinds to status codes.
type Kind int

const (
	// KindPersistence is any store failure not covered by another kind, including connectivity.
	KindPersistence Kind = iota
	KindValidation
	KindDuplicate
	KindReferential
	KindNotFound
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindDuplicate:
		return "DuplicateError"
	case KindReferential:
		return "ReferentialError"
	case KindNotFound:
		return "NotFoundError"
	default:
		return "PersistenceError"
	}
}

// Error is a typed catalog failure carrying a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// NewError creates an Error of the given kind wrapping cause (which may be nil).
func NewError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so errors.Is matches by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of err. Errors that carry no kind are persistence failures.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindPersistence
}

// MessageOf returns the message of a typed error, or err.Error() otherwise.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

// Domain errors as sentinel values
var (
	// Kind sentinels
	ErrValidation  = NewError(KindValidation, "validation failed", nil)
	ErrDuplicate   = NewError(KindDuplicate, "duplicate entry found", nil)
	ErrReferential = NewError(KindReferential, "foreign key constraint violation", nil)
	ErrNotFound    = NewError(KindNotFound, "not found", nil)
	ErrPersistence = NewError(KindPersistence, "database error", nil)

	// Product errors
	ErrProductNotFound = NewError(KindNotFound, "product not found", nil)
	ErrEmptyName       = NewError(KindValidation, "product name cannot be empty", nil)
	ErrInvalidPrice    = NewError(KindValidation, "invalid price. price must be positive, have at most 2 decimal places, and be less than 100 million", nil)
	ErrInvalidImageRef = NewError(KindValidation, "invalid image reference", nil)
	ErrInvalidData     = NewError(KindValidation, "invalid data format", nil)
)
