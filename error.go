package skim

import (
	"errors"
	"fmt"
)

// Application error codes. These map cleanly onto HTTP status classes at the
// server boundary but are transport-agnostic within the domain.
const (
	EINVALID       = "invalid"       // validation failed (bad URL, bad input)
	ENOTFOUND      = "not_found"     // entity does not exist
	EUNAUTHORIZED  = "unauthorized"  // missing or rejected credential
	EUNPROCESSABLE = "unprocessable" // content cannot be processed (no extractable text, no structured object)
	ETIMEOUT       = "timeout"       // deadline elapsed before the operation completed
	EUNAVAILABLE   = "unavailable"   // upstream source or service failed
	EINTERNAL      = "internal"      // internal error (storage, unexpected state)
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is safe to show to an end user.
	Message string
}

// Error implements the error interface. Not meant for end users; use
// ErrorMessage for user-facing output.
func (e *Error) Error() string {
	return fmt.Sprintf("skim error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error."; nil returns the
// empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
