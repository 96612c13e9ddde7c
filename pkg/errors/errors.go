package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Rendering errors
	ErrNotApplicable ErrorCode = "NOT_APPLICABLE"
	ErrRenderFailed  ErrorCode = "RENDER_FAILED"

	// Hook errors
	ErrHookFailed ErrorCode = "HOOK_FAILED"

	// Output errors
	ErrWriteFailed ErrorCode = "WRITE_FAILED"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Catalog errors
	ErrCatalogLoad ErrorCode = "CATALOG_LOAD"
)

// MsgkitError represents a structured error with code and details
type MsgkitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MsgkitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MsgkitError) Unwrap() error {
	return e.Wrapped
}

// Is matches any *MsgkitError carrying the same code
func (e *MsgkitError) Is(target error) bool {
	var targetErr *MsgkitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MsgkitError with the given code and message
func New(code ErrorCode, message string) *MsgkitError {
	return &MsgkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MsgkitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MsgkitError {
	return &MsgkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MsgkitError
func Wrap(err error, code ErrorCode, message string) *MsgkitError {
	if err == nil {
		return nil
	}
	return &MsgkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MsgkitError {
	if err == nil {
		return nil
	}
	return &MsgkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MsgkitError) WithDetail(key string, value interface{}) *MsgkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *MsgkitError) WithDetails(details map[string]interface{}) *MsgkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var msgkitErr *MsgkitError
	if errors.As(err, &msgkitErr) {
		return msgkitErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MsgkitError
func GetErrorCode(err error) ErrorCode {
	var msgkitErr *MsgkitError
	if errors.As(err, &msgkitErr) {
		return msgkitErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MsgkitError
func GetErrorDetails(err error) map[string]interface{} {
	var msgkitErr *MsgkitError
	if errors.As(err, &msgkitErr) {
		return msgkitErr.Details
	}
	return nil
}

// As reports whether err is a MsgkitError and returns it
func As(err error) (*MsgkitError, bool) {
	var msgkitErr *MsgkitError
	if errors.As(err, &msgkitErr) {
		return msgkitErr, true
	}
	return nil, false
}
