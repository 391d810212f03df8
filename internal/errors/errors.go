// Package errors provides coded errors for dockmon's failure taxonomy.
// Codes let callers decide policy (retry, degrade, drop) without string
// matching on messages.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for categorizing failures
const (
	ErrQuery  = "QUERY"  // external runtime command failed or timed out
	ErrParse  = "PARSE"  // malformed field value
	ErrRender = "RENDER" // unexpected failure while building display output
)

// Error is a coded error with an optional underlying cause.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// New creates a coded error.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an existing error.
func Wrap(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, Cause: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for use with errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a coded Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
