// Package errors provides error types and handling for cataziza.
// Every hard failure still exits the process with code 1; error codes exist
// for logs, tests, and programmatic branching, not for exit statuses.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// AppError represents an application error with a stable code.
type AppError struct {
	// Code is an error code string for programmatic handling
	Code string
	// Message is a user-friendly error message
	Message string
	// Cause is the underlying error (for error wrapping)
	Cause error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is to work with AppError.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code != "" && e.Code == t.Code
	}
	return false
}

// Predefined error codes.
const (
	// ErrCodeInvalidInput marks rejected user input (bad phase, bad flag value).
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeConfig marks configuration loading or validation failures.
	ErrCodeConfig = "CONFIG_ERROR"
	// ErrCodeCredentials marks missing or unusable cloud credentials.
	ErrCodeCredentials = "CREDENTIALS_ERROR"
	// ErrCodeTerraform marks a failed terraform step (init/validate/plan/apply).
	ErrCodeTerraform = "TERRAFORM_ERROR"
	// ErrCodeTimeout marks a readiness wait that hit its hard deadline.
	// Distinguishable from other failures so callers can tell "still not
	// ready" apart from "broken".
	ErrCodeTimeout = "TIMEOUT"
	// ErrCodeVerification marks a failed post-deployment verification suite.
	ErrCodeVerification = "VERIFICATION_FAILED"
	// ErrCodeHealthCheck marks a health run that found error-status categories.
	ErrCodeHealthCheck = "HEALTH_CHECK_FAILED"
	// ErrCodeNotFound marks a required cloud resource that does not exist.
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeInternal marks unexpected internal failures.
	ErrCodeInternal = "INTERNAL_ERROR"
)

// New creates an AppError with an arbitrary code.
func New(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Convenience constructors for common errors

// NewInvalidInputError creates an invalid input error.
func NewInvalidInputError(message string, cause error) *AppError {
	return New(ErrCodeInvalidInput, message, cause)
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *AppError {
	return New(ErrCodeConfig, message, cause)
}

// NewCredentialsError creates a credentials error.
func NewCredentialsError(message string, cause error) *AppError {
	return New(ErrCodeCredentials, message, cause)
}

// NewTerraformError creates an error for a failed terraform step.
func NewTerraformError(step string, cause error) *AppError {
	return New(ErrCodeTerraform, fmt.Sprintf("terraform %s failed", step), cause)
}

// NewTimeoutError creates a timeout error for an operation that was still
// not ready when its deadline elapsed.
func NewTimeoutError(operation string, timeout time.Duration) *AppError {
	return New(ErrCodeTimeout, fmt.Sprintf("timed out after %s waiting for %s", timeout, operation), nil)
}

// NewVerificationError creates an error for a failed verification suite.
func NewVerificationError(message string, cause error) *AppError {
	return New(ErrCodeVerification, message, cause)
}

// NewHealthCheckError creates an error for a health run with error-status categories.
func NewHealthCheckError(message string) *AppError {
	return New(ErrCodeHealthCheck, message, nil)
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(message string, cause error) *AppError {
	return New(ErrCodeNotFound, message, cause)
}

// NewInternalError creates an internal error.
func NewInternalError(message string, cause error) *AppError {
	return New(ErrCodeInternal, message, cause)
}

// GetErrorCode extracts the error code from an error.
// Returns empty string if the error is not an AppError.
func GetErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetErrorMessage extracts a user-friendly message from an error.
func GetErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// GetErrorDetails extracts detailed error information including the underlying cause.
// Returns the underlying error message if available, otherwise returns the main error message.
func GetErrorDetails(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Cause != nil {
			return appErr.Cause.Error()
		}
		return appErr.Message
	}
	return err.Error()
}

// IsTimeout reports whether the error chain contains a timeout AppError.
func IsTimeout(err error) bool {
	return GetErrorCode(err) == ErrCodeTimeout
}
