// Package apperr contains the error taxonomy for the ElectroWay API
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error into one of the API failure categories.
type Kind int

const (
	// KindInternal is an unexpected storage or server failure
	KindInternal Kind = iota
	// KindValidation is malformed or missing caller input
	KindValidation
	// KindAuth is a bad credential or a missing/invalid/expired token
	KindAuth
	// KindConflict is a uniqueness violation
	KindConflict
	// KindNotFound is an operation targeting a non-existent owned record
	KindNotFound
)

// Error is an error with a Kind and a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
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

// New creates an Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error with the given kind and message, wrapping err.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// Auth creates an authentication/authorization error.
func Auth(message string) *Error {
	return New(KindAuth, message)
}

// Conflict creates a uniqueness-violation error.
func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// NotFound creates a missing-record error.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Internal creates an internal error wrapping err.
func Internal(message string, err error) *Error {
	return Wrap(KindInternal, message, err)
}

// KindOf returns the Kind of err, or KindInternal when err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf returns the caller-facing message of err. Non-Error values
// fall back to a generic message so internal detail is never leaked.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "Internal server error"
}
