package errors

import (
	"errors"
	"fmt"
)

// AppError is the error type surfaced by the batch tools. Every run
// failure maps to one of the codes in codes.go; the process exits
// non-zero whenever an AppError reaches the entrypoint.
type AppError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Err     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// MissingInputFile reports a source file that does not exist
func MissingInputFile(path string) *AppError {
	return New(CodeMissingInputFile, fmt.Sprintf("input file not found: %s", path))
}

// Transformation wraps any failure during a read/transform/write run
func Transformation(message string, err error) *AppError {
	e := New(CodeTransformationError, message)
	e.Err = err
	return e
}

// InvalidCoordinate reports a non-numeric latitude or longitude field
func InvalidCoordinate(field, value string, err error) *AppError {
	e := New(CodeInvalidCoordinate, fmt.Sprintf("invalid %s value %q", field, value))
	e.Err = err
	return e
}

// CodeOf extracts the machine code of an error chain, empty when it
// carries no AppError
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
