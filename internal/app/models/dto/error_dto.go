package dto

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/apperrors"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInvalidID        ErrorCode = "VAL_002"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeDatabaseError  ErrorCode = "SRV_002"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code    ErrorCode   `json:"code" example:"VAL_001"`
	Message string      `json:"message" example:"teacher is required"`
	Field   string      `json:"field,omitempty" example:"teacher"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2026-08-30T12:01:05.123Z"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "objectid":
		return e.Field() + " must be a 24 character hex identifier"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

// safeValue returns the offending value where it is safe to echo back to the
// caller. Anything that is not a plain scalar is withheld.
func safeValue(e validator.FieldError) string {
	switch v := e.Value().(type) {
	case string:
		return v
	case int, int32, int64, float32, float64, bool:
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}

// FieldErrors converts a validation error into per-field violation detail.
// Binding errors that are not field-level (malformed JSON and the like)
// produce an empty slice; the caller falls back to a generic message.
func FieldErrors(err error) []apperrors.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, apperrors.FieldError{
			Field:   fe.Field(),
			Message: formatValidationError(fe),
			Value:   safeValue(fe),
		})
	}
	return out
}

// HandleValidationError shapes a binding/validation failure into an
// ErrorDetail carrying per-field detail and no internal trace.
func HandleValidationError(err error) *ErrorDetail {
	fieldErrors := FieldErrors(err)
	if len(fieldErrors) == 0 {
		return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format")
	}
	detail := NewErrorDetail(ErrorCodeValidationFailed, "Validation failed")
	if len(fieldErrors) == 1 {
		detail = detail.WithField(fieldErrors[0].Field)
	}
	return detail.WithDetails(fieldErrors)
}
