// api/middleware/request_id.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dev-mohitbeniwal/casa/api/util"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID when present, otherwise mints one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}
		c.Set(util.ContextRequestIDKey, requestID)
		c.Request = c.Request.WithContext(util.WithRequestID(c.Request.Context(), requestID))
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
