package errdef

import (
	"errors"
	"fmt"
)

// Code identifies a failure family so callers can branch on what went
// wrong without string-matching error text.
type Code string

const (
	CodeUnknown         Code = "unknown"
	CodeMalformedJSON   Code = "malformed_json"
	CodeSchemaViolation Code = "schema_violation"
	CodeInvalidURL      Code = "invalid_url"
	CodeNetwork         Code = "network"
	CodeTimeout         Code = "timeout"
	CodeFilesystem      Code = "filesystem"
	CodeHistory         Code = "history"
	CodeConfig          Code = "config"
)

// Error is a coded error, optionally wrapping a cause.
type Error struct {
	Code    Code
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

// New creates a coded error with a fixed message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a code and context message. A nil err yields nil.
func Wrap(code Code, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of the outermost coded error in err's chain,
// or CodeUnknown when none is present.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
