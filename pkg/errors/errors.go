package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category with a stable string for testing
// and log filtering.
type ErrorCode string

const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Registry and selection errors
	ErrUnknownOperation ErrorCode = "UNKNOWN_OPERATION"

	// Run-time errors
	ErrPreflight        ErrorCode = "PREFLIGHT"
	ErrOperationExecute ErrorCode = "OPERATION_EXECUTE"
	ErrOperationTimeout ErrorCode = "OPERATION_TIMEOUT"
	ErrConfirmRead      ErrorCode = "CONFIRM_READ"
	ErrCommandRun       ErrorCode = "COMMAND_RUN"
	ErrReportWrite      ErrorCode = "REPORT_WRITE"
	ErrInterrupted      ErrorCode = "INTERRUPTED"
)

// CleanerError is a structured error carrying a stable code, a message,
// optional details, and an optionally wrapped cause.
type CleanerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CleanerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CleanerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is; two CleanerErrors match when their codes match
func (e *CleanerError) Is(target error) bool {
	var targetErr *CleanerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a CleanerError with the given code and message
func New(code ErrorCode, message string) *CleanerError {
	return &CleanerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a CleanerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CleanerError {
	return &CleanerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CleanerError. Returns nil for a nil
// cause so call sites can wrap unconditionally.
func Wrap(err error, code ErrorCode, message string) *CleanerError {
	if err == nil {
		return nil
	}
	return &CleanerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CleanerError {
	if err == nil {
		return nil
	}
	return &CleanerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CleanerError) WithDetail(key string, value interface{}) *CleanerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cleanerErr *CleanerError
	if errors.As(err, &cleanerErr) {
		return cleanerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if it
// is not a CleanerError
func GetErrorCode(err error) ErrorCode {
	var cleanerErr *CleanerError
	if errors.As(err, &cleanerErr) {
		return cleanerErr.Code
	}
	return ErrUnknown
}
