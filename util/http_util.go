// api/util/http_util.go
package util

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
)

const (
	ContextUserIDKey    = "userID"
	ContextRequestIDKey = "requestID"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", code),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("requestID", c.GetString(ContextRequestIDKey)),
	}
	if code >= 500 {
		logger.Error(message, fields...)
	} else {
		logger.Info(message, fields...)
	}
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}

// GetUserIDFromContext returns the authenticated user id set by the auth middleware.
func GetUserIDFromContext(c *gin.Context) (int64, error) {
	userID, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, echo_errors.ErrUnauthenticated
	}
	id, ok := userID.(int64)
	if !ok || id <= 0 {
		return 0, echo_errors.ErrUnauthenticated
	}
	return id, nil
}

type requestIDKey struct{}

// WithRequestID stores the request id in ctx so it survives past the gin context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	return requestID
}
