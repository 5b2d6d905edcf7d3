package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models/dto"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/apperrors"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/logger"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError maps a classified error to its HTTP response. Every
// pipeline step reports success or a single classified failure; this is the
// one place failures become status codes and payloads. Validation failures
// keep their per-field detail, everything unexpected collapses to a generic
// server error with the cause logged but never sent to the caller.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && len(custom.FieldErrors) > 0 {
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, custom.Message).
				WithDetails(custom.FieldErrors),
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Teacher not found"),
		})
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found"),
		})
	case errors.Is(err, apperrors.ErrClassroomNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Classroom not found"),
		})
	case errors.Is(err, apperrors.ErrQuizNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Quiz not found"),
		})
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
	case errors.Is(err, apperrors.ErrInvalidObjectID):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidID, "Invalid identifier format"),
		})
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"),
		})
	case errors.Is(err, apperrors.ErrDatabaseError):
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("requestId", c.GetString("requestId")).
			Msg("Store operation failed")
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database error"),
		})
	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("requestId", c.GetString("requestId")).
			Msg("Unhandled error")
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
