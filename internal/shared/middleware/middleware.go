package middleware

import (
	"net/http"

	"blogtags/internal/shared/constants"
	"blogtags/internal/shared/utils/response"
	"blogtags/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		c.Set(logger.RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// MethodNotAllowed answers routes hit with an unsupported method
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.RespondError(c, http.StatusMethodNotAllowed, constants.MSG_METHOD_NOT_ALLOWED)
	}
}

// NotFound answers unknown routes
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.RespondError(c, http.StatusNotFound, constants.MSG_NOT_FOUND)
	}
}
