// Package errors provides coded errors for folio.
//
// Every failure a user can cause (a bad profile, an unknown format, a
// missing file) carries a [Code], so the CLI can choose an exit status and
// tests can assert on the kind of failure rather than its wording.
//
//	err := errors.New(errors.ErrCodeInvalidProfile, "duplicate highlight title %q", title)
//	if errors.Is(err, errors.ErrCodeInvalidProfile) {
//	    ...
//	}
//
// Validators for URLs, paths and fixed choices live in validation.go.
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidProfile Code = "INVALID_PROFILE"
	ErrCodeInvalidURL     Code = "INVALID_URL"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"
	ErrCodeSectionNotFound Code = "SECTION_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Exit statuses returned by [ExitCode].
const (
	ExitFailure = 1 // internal or environmental failure
	ExitUsage   = 2 // the user's input was rejected
)

// Error is a coded error with an optional hint and cause.
type Error struct {
	Code    Code
	Message string
	Hint    string // e.g. a "did you mean" suggestion
	Cause   error
}

// Error formats as "CODE: message (hint): cause".
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithHint sets the hint and returns e.
func (e *Error) WithHint(format string, args ...any) *Error {
	e.Hint = fmt.Sprintf(format, args...)
	return e
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message and hint without the code prefix, followed
// by the user message of the cause, if any. Errors that are not *Error are
// returned as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	msg := e.Message
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	if e.Cause != nil {
		msg += ": " + UserMessage(e.Cause)
	}
	return msg
}

// ExitCode maps err to a process exit status: [ExitUsage] for rejected
// input, [ExitFailure] otherwise, and 0 for nil.
func ExitCode(err error) int {
	switch GetCode(err) {
	case "":
		if err == nil {
			return 0
		}
		return ExitFailure
	case ErrCodeInternal:
		return ExitFailure
	}
	return ExitUsage
}
