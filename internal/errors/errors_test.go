package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeTerraform,
				Message: "terraform plan failed",
				Cause:   errors.New("exit status 1"),
			},
			expected: "terraform plan failed: exit status 1",
		},
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "VPC not found",
				Cause:   nil,
			},
			expected: "VPC not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewTerraformError("apply", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestAppError_Is(t *testing.T) {
	timeout := NewTimeoutError("probe instance to reach RUNNING", time.Minute)
	wrapped := fmt.Errorf("phase 1 connectivity check: %w", timeout)

	assert.True(t, errors.Is(wrapped, &AppError{Code: ErrCodeTimeout}))
	assert.False(t, errors.Is(wrapped, &AppError{Code: ErrCodeTerraform}))
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "app error",
			err:      NewInvalidInputError("invalid phase: 7. Must be 0-6", nil),
			expected: ErrCodeInvalidInput,
		},
		{
			name:     "wrapped app error",
			err:      fmt.Errorf("deploy: %w", NewCredentialsError("no application default credentials", nil)),
			expected: ErrCodeCredentials,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorCode(tt.err))
		})
	}
}

func TestGetErrorDetails(t *testing.T) {
	cause := errors.New("connection refused")
	withCause := NewTerraformError("init", cause)
	withoutCause := NewHealthCheckError("2 categories reported errors")

	assert.Equal(t, "connection refused", GetErrorDetails(withCause))
	assert.Equal(t, "2 categories reported errors", GetErrorDetails(withoutCause))
	assert.Equal(t, "boom", GetErrorDetails(errors.New("boom")))
}

func TestIsTimeout(t *testing.T) {
	timeout := NewTimeoutError("cloud SQL instance to become RUNNABLE", 5*time.Minute)

	assert.True(t, IsTimeout(timeout))
	assert.True(t, IsTimeout(fmt.Errorf("wrapped: %w", timeout)))
	assert.False(t, IsTimeout(NewTerraformError("plan", errors.New("exit status 1"))))
	assert.Contains(t, timeout.Error(), "timed out after 5m0s")
}
