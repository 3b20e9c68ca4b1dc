package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode defines the application error codes
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthenticated    ErrorCode = "UNAUTHENTICATED"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeForbidden          ErrorCode = "FORBIDDEN"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeInvalidRole        ErrorCode = "INVALID_ROLE"

	// Storage errors
	ErrCodeConflict ErrorCode = "CONFLICT"
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	ErrCodeDBError  ErrorCode = "DB_ERROR"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// statusByCode maps each error code to its canonical HTTP status.
var statusByCode = map[ErrorCode]int{
	ErrCodeUnauthenticated:    http.StatusUnauthorized,
	ErrCodeInvalidToken:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeInvalidCredentials: http.StatusBadRequest,
	ErrCodeInvalidRole:        http.StatusBadRequest,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeDBError:            http.StatusInternalServerError,
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeRequiredField:      http.StatusBadRequest,
	ErrCodeInvalidEmail:       http.StatusBadRequest,
	ErrCodeInvalidFormat:      http.StatusBadRequest,
}

// AppError defines an application error
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status for the error code.
func (e *AppError) Status() int {
	if s, ok := statusByCode[e.Code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError checks whether the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts an AppError from an error chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
