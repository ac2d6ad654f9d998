// Package apierr defines the error type every handler funnels failures
// through. Errors carry an HTTP status code so the responder can tell
// client faults (4xx) from server faults (5xx); anything that is not an
// *Error is treated as an unclassified server fault.
package apierr

import (
	"fmt"
	"net/http"
	"runtime/debug"
)

// Error is a classified API failure.
type Error struct {
	StatusCode int
	Message    string
	Err        error
	Stack      string
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

// IsClientFault reports whether the error is the caller's fault.
func (e *Error) IsClientFault() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// New creates an error with an explicit status code.
func New(statusCode int, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    message,
		Stack:      string(debug.Stack()),
	}
}

// Wrap classifies an underlying error with a status code and message.
func Wrap(statusCode int, message string, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
		Stack:      string(debug.Stack()),
	}
}

// BadRequest is a 400 client fault.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// NotFound is a 404 client fault.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Internal is a 500 server fault wrapping the underlying cause.
func Internal(message string, err error) *Error {
	return Wrap(http.StatusInternalServerError, message, err)
}

// Upstream classifies a third-party API failure with the upstream's
// status code when one is known, 500 otherwise.
func Upstream(statusCode int, message string, err error) *Error {
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	return Wrap(statusCode, message, err)
}
