// Package errors provides structured error types for diagraft.
//
// Every failure in the tool is fatal and user-facing: the process either
// rewrites the target document completely or terminates before touching it.
// This package gives those failures machine-readable codes so the CLI can
// report them consistently and tests can assert on categories instead of
// message text.
//
// # Error Codes
//
// Codes follow the failure taxonomy of the generation run:
//   - MISSING_*: required model structure absent
//   - INVALID_*: malformed model records or configuration
//   - DANGLING_*: references to entities that do not exist
//   - MARKER_*: problems locating the splice region in the target document
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidKind, "unknown kind %q", kind)
//	if errors.Is(err, errors.ErrCodeInvalidKind) {
//	    // handle validation error
//	}
//
//	// Wrap underlying I/O errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "read model %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure categories of a generation run.
const (
	// Model structure errors
	ErrCodeMissingSection Code = "MISSING_SECTION"
	ErrCodeInvalidModel   Code = "INVALID_MODEL"
	ErrCodeInvalidEntity  Code = "INVALID_ENTITY"

	// Relation errors
	ErrCodeInvalidKind      Code = "INVALID_KIND"
	ErrCodeInvalidRoute     Code = "INVALID_ROUTE"
	ErrCodeDanglingRelation Code = "DANGLING_RELATION"

	// Target document errors
	ErrCodeMarkerNotFound Code = "MARKER_NOT_FOUND"
	ErrCodeMarkerOrder    Code = "MARKER_ORDER"

	// Environment errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
