package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models/dto"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/validation"
)

// RequireObjectID validates the named path parameter before any handler
// touches the store. A missing or malformed identifier aborts the chain with
// a client error; the check is purely structural and never performs a
// lookup, so a bad id can not surface as a database failure downstream.
func RequireObjectID(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param(param)
		if token == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidID,
				"Missing required "+param+" parameter in the request path").WithField(param)
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		if !validation.IsObjectID(token) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidID,
				"Invalid "+param+" parameter in the request path").WithField(param)
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}
