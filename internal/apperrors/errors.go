package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is authenticated but may not access the resource.
var ErrForbidden = errors.New("access forbidden")

// ErrInternal indicates an infrastructure failure the caller cannot fix.
var ErrInternal = errors.New("internal error")

// AppError pairs a sentinel error code with a user-facing message and the underlying cause.
type AppError struct {
	Code    error
	Message string
	Err     error
}

// NewAppError creates an AppError. Code should be one of the sentinels above.
func NewAppError(code error, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Is lets errors.Is match an AppError against its sentinel code.
func (e *AppError) Is(target error) bool {
	return e.Code == target
}

func (e *AppError) Unwrap() error {
	return e.Err
}
