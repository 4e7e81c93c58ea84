package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries an HTTP status code alongside the user-facing message.
// Op names the operation that produced the error for log correlation.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Op      string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// InvalidInput covers malformed URLs, unknown summary modes, and empty input.
func InvalidInput(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// NotFound covers missing transcripts and unknown run IDs.
func NotFound(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func Internal(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func RateLimitExceeded(op string) *AppError {
	return &AppError{
		Code:    http.StatusTooManyRequests,
		Message: "Rate limit exceeded",
		Op:      op,
	}
}

func IsNotFound(err error) bool {
	return codeOf(err) == http.StatusNotFound
}

func IsInvalidInput(err error) bool {
	return codeOf(err) == http.StatusBadRequest
}

// Code returns the HTTP status for err, defaulting to 500 for unknown errors.
func Code(err error) int {
	if code := codeOf(err); code != 0 {
		return code
	}
	return http.StatusInternalServerError
}

func codeOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return 0
}
