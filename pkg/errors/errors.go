package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the single structured failure type surfaced by the API. Kind and
// Message form the wire envelope; Status drives the HTTP response code.
type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target shares the error's kind, letting callers match
// sentinel errors through wrapping.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

// New creates a new Error instance.
func New(kind string, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, kind string, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios. Duplicate-key conflicts are
// reported as 400 to match the public contract of this API.
var (
	ErrNotFound   = New("not_found", http.StatusNotFound, "resource not found")
	ErrConflict   = New("conflict", http.StatusBadRequest, "conflict")
	ErrValidation = New("validation", http.StatusBadRequest, "validation failed")
	ErrInternal   = New("internal", http.StatusInternalServerError, "internal server error")

	// ErrCacheMiss signals an absent cache entry; it never reaches a client.
	ErrCacheMiss = New("cache_miss", http.StatusInternalServerError, "cache miss")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Kind, ErrInternal.Status, err.Error())
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
