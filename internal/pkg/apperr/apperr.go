// Package apperr defines the error taxonomy shared by services and the
// HTTP boundary. Every expected failure is typed by a Kind that maps to
// a fixed status code; anything unclassified renders as an internal
// error.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) Status() int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Details interface{}
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *Error) Status() int {
	if e == nil {
		return http.StatusInternalServerError
	}
	return e.Kind.Status()
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying cause. The cause
// stays reachable through errors.Is/As.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Forbidden(message string) *Error    { return New(KindForbidden, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }
func InvalidInput(message string) *Error { return New(KindInvalidInput, message) }
func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// WithDetails returns a copy carrying structured detail for the error
// envelope, typically per-field validation messages.
func (e *Error) WithDetails(details interface{}) *Error {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Details = details
	return &clone
}

// KindOf extracts the taxonomy kind from any error in the chain.
// Untyped errors classify as internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) && appErr != nil {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
