package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidObjectID  = errors.New("invalid object id format")

	// Persistence errors
	ErrDatabaseError = errors.New("database error")
)

// Teacher Errors
var (
	ErrTeacherNotFound = errors.New("teacher not found")
)

// Student Errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Classroom Errors
var (
	ErrClassroomNotFound = errors.New("classroom not found")
)

// Quiz Errors
var (
	ErrQuizNotFound = errors.New("quiz not found")
)

// FieldError describes a single field-level validation violation. Only
// domain-relevant detail crosses this boundary; execution context stays out.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err         error
	Message     string
	FieldErrors []FieldError
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithFieldErrors attaches field-level violation detail to the error
func (e *CustomError) WithFieldErrors(fieldErrors []FieldError) *CustomError {
	e.FieldErrors = fieldErrors
	return e
}

// NewDatabaseError classifies a store failure. The driver detail stays in
// the message for the log; the boundary maps the error to a generic server
// response and never echoes the cause.
func NewDatabaseError(message string, err error) error {
	return &CustomError{
		Err:     ErrDatabaseError,
		Message: fmt.Sprintf("%s: %v", message, err),
	}
}

// NewValidationError creates a validation failure carrying per-field detail
func NewValidationError(message string, fieldErrors []FieldError) error {
	return &CustomError{
		Err:         ErrValidationFailed,
		Message:     message,
		FieldErrors: fieldErrors,
	}
}
