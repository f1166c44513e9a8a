package domain

import (
	"errors"
	"fmt"
)

// Kind categorizes a domain error.
type Kind string

const (
	// KindValidation indicates client-detected bad input.
	KindValidation Kind = "validation"

	// KindConflict indicates a business-rule violation.
	KindConflict Kind = "conflict"

	// KindNotFound indicates a referenced id is absent from the snapshot.
	KindNotFound Kind = "not_found"

	// KindTransport indicates a gateway, network or server failure.
	KindTransport Kind = "transport"
)

// Error is the structured error type returned by store operations and
// gateways. Message is user-facing; for transport errors it carries the
// server-supplied message when one was available.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Validationf creates a validation error with a formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflictf creates a conflict error with a formatted message.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf creates a not-found error with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Transport creates a transport error. The message should prefer the
// server-supplied text; cause may carry the underlying network error.
func Transport(message string, cause error) *Error {
	if message == "" {
		message = "request failed"
	}
	return &Error{Kind: KindTransport, Message: message, Cause: cause}
}

func hasKind(err error, kind Kind) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

// IsValidation reports whether err is a validation error.
// Uses errors.As to handle wrapped errors.
func IsValidation(err error) bool { return hasKind(err, KindValidation) }

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool { return hasKind(err, KindConflict) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return hasKind(err, KindNotFound) }

// IsTransport reports whether err is a transport error.
func IsTransport(err error) bool { return hasKind(err, KindTransport) }

// UserMessage extracts the user-facing message from err, falling back
// to the given generic message for errors without one.
func UserMessage(err error, fallback string) string {
	var de *Error
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return fallback
}
