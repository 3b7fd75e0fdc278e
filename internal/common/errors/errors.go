// Package errors provides standardized error handling for the API surface.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Input errors: rejected immediately, no state mutated.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Lookup errors: surfaced as an empty state, not a failure.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Upstream LLM errors: absorbed by the fallback path, never user-facing.
	ErrCodeUpstreamUnavailable  ErrorCode = "UPSTREAM_UNAVAILABLE"
	ErrCodeLLMTimeout           ErrorCode = "LLM_TIMEOUT"
	ErrCodeLLMMalformedResponse ErrorCode = "LLM_MALFORMED_RESPONSE"

	// Infrastructure errors: hard failures, silent data loss is unacceptable.
	ErrCodePersistenceFailure       ErrorCode = "PERSISTENCE_FAILURE"
	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeSearchQueryFailed        ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeInternal                 ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Is lets errors.Is match two StandardErrors by code.
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	return ok && t.Code == e.Code
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidInputError creates a non-retryable input validation error.
func NewInvalidInputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Message:   "Invalid input",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError creates a non-retryable lookup error.
func NewNotFoundError(what string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   fmt.Sprintf("%s not found", what),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamUnavailableError wraps a failed LLM call. Callers are expected
// to recover locally rather than surface this to the user.
func NewUpstreamUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamUnavailable,
		Message:   "Upstream recommendation service unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMTimeoutError creates a retryable timeout error for the Gemini call.
func NewLLMTimeoutError(timeout time.Duration) *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMTimeout,
		Message:   "LLM call exceeded its deadline",
		Details:   fmt.Sprintf("timeout: %s", timeout),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMMalformedResponseError marks an LLM response that carried no usable
// structured payload.
func NewLLMMalformedResponseError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMMalformedResponse,
		Message:   "LLM response contained no parseable career data",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPersistenceFailureError wraps a failed storage write.
func NewPersistenceFailureError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePersistenceFailure,
		Message:   fmt.Sprintf("Storage operation failed: %s", op),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionError wraps a failed connection attempt.
func NewDatabaseConnectionError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchQueryFailedError wraps a failed similarity search.
func NewSearchQueryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchQueryFailed,
		Message:   "Similarity search failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps any unexpected error.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Classification
// ==========================

// IsSoftFailure reports whether the error is absorbed by a fallback path
// instead of being surfaced to the end user.
func IsSoftFailure(code ErrorCode) bool {
	switch code {
	case ErrCodeUpstreamUnavailable, ErrCodeLLMTimeout, ErrCodeLLMMalformedResponse:
		return true
	}
	return false
}

// GetErrorCategory groups codes for logging and metrics labels.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeInvalidInput:
		return "input"
	case ErrCodeNotFound:
		return "lookup"
	case ErrCodeUpstreamUnavailable, ErrCodeLLMTimeout, ErrCodeLLMMalformedResponse:
		return "upstream"
	case ErrCodePersistenceFailure, ErrCodeDatabaseConnectionFailed, ErrCodeSearchQueryFailed:
		return "infrastructure"
	default:
		return "internal"
	}
}
