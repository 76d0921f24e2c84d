package errors

import "errors"

// Code classifies an AppError for programmatic handling.
type Code string

// Codes surfaced by the classification domain.
const (
	CodeEmptyInput      Code = "empty_input"
	CodeInvalidValence  Code = "invalid_valence"
	CodeUnknownStrategy Code = "unknown_strategy"
	CodeInvalidInput    Code = "invalid_input"
)

// AppError encodes domain specific error details.
type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap produces a new AppError instance.
func Wrap(code Code, message string, err error) error {
	if err == nil {
		return &AppError{Code: code, Message: message}
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// IsCode helps callers differentiate failures.
func IsCode(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
