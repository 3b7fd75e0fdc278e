package errors

import (
	"errors"
	"net/http"
	"time"
)

// HTTPStatus maps an error code to the status returned by the API.
// Soft failures never reach this mapping; they are absorbed before the
// handler responds.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Normalize ensures any error is represented as a StandardError.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Response is the JSON body returned for failed requests.
type Response struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// ToResponse converts an error into the wire representation.
func ToResponse(err error) (int, Response) {
	stdErr := Normalize(err)
	return HTTPStatus(stdErr.Code), Response{
		Code:    stdErr.Code,
		Message: stdErr.Message,
		Details: stdErr.Details,
	}
}
