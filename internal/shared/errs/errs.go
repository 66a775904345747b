// Package errs provides the structured error taxonomy shared by the
// springboard containers. Every recoverable failure a public operation
// can report carries one of the types below; callers discriminate with
// IsType (or errors.As) instead of matching message strings.
package errs

import (
	"errors"
	"fmt"
)

// Type categorizes an error for callers and metrics.
type Type string

const (
	// TypeNotFound indicates a name or page that does not resolve.
	TypeNotFound Type = "not_found"
	// TypeDuplicateName indicates a name collision with an existing app or folder.
	TypeDuplicateName Type = "duplicate_name"
	// TypeCapacityExceeded indicates a full list, page set, or dock with no overflow slot.
	TypeCapacityExceeded Type = "capacity_exceeded"
	// TypeInvalidContainer indicates a page or container argument that does not
	// belong to the expected parent.
	TypeInvalidContainer Type = "invalid_container"
	// TypeInvalidIndex indicates an ordinal page or position argument out of range.
	TypeInvalidIndex Type = "invalid_index"
	// TypeNotDeletable indicates a protected app.
	TypeNotDeletable Type = "not_deletable"
	// TypeConflict indicates a structural conflict, e.g. removing a non-empty folder.
	TypeConflict Type = "conflict"
)

// Error is a typed, wrappable error.
type Error struct {
	Type    Type
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithCause attaches an underlying cause.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// NotFound reports a name that does not resolve.
func NotFound(format string, args ...any) *Error {
	return newError(TypeNotFound, format, args...)
}

// DuplicateName reports a name collision.
func DuplicateName(format string, args ...any) *Error {
	return newError(TypeDuplicateName, format, args...)
}

// CapacityExceeded reports a full container with no overflow slot.
func CapacityExceeded(format string, args ...any) *Error {
	return newError(TypeCapacityExceeded, format, args...)
}

// InvalidContainer reports a container argument with the wrong parent.
func InvalidContainer(format string, args ...any) *Error {
	return newError(TypeInvalidContainer, format, args...)
}

// InvalidIndex reports an out-of-range ordinal argument.
func InvalidIndex(format string, args ...any) *Error {
	return newError(TypeInvalidIndex, format, args...)
}

// NotDeletable reports a protected app.
func NotDeletable(format string, args ...any) *Error {
	return newError(TypeNotDeletable, format, args...)
}

// Conflict reports a structural conflict.
func Conflict(format string, args ...any) *Error {
	return newError(TypeConflict, format, args...)
}

func newError(t Type, format string, args ...any) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...)}
}

// IsType reports whether err (or anything it wraps) is an *Error of type t.
func IsType(err error, t Type) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// TypeOf extracts the Type from err, or empty string for untyped errors.
func TypeOf(err error) Type {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return ""
}
