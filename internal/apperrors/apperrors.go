package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries the HTTP status a failure should surface as. Message is
// safe to show to clients for 4xx codes; Err is only ever logged.
type AppError struct {
	Code    int
	Message string
	Err     error
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

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func Validation(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, nil)
}

// Conflict is reported as 400, matching what the web client expects for
// duplicate usernames and emails.
func Conflict(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, nil)
}

func Storage(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

// Code returns the HTTP status for err, 500 when err is not an AppError.
func Code(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
