// api/middleware/auth.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

// TokenParser verifies a bearer token and returns its subject.
type TokenParser interface {
	ParseToken(tokenString string) (int64, error)
}

// AuthMiddleware requires a valid bearer token and stores the subject under
// util.ContextUserIDKey. Whether the subject still exists is checked by the
// services when they resolve the principal.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			util.RespondWithError(c, http.StatusUnauthorized, "Authentication required", echo_errors.ErrUnauthenticated)
			return
		}

		userID, err := tokens.ParseToken(strings.TrimSpace(tokenString))
		if err != nil {
			if errors.Is(err, echo_errors.ErrTokenExpired) {
				util.RespondWithError(c, http.StatusUnauthorized, "Token expired", err)
			} else {
				util.RespondWithError(c, http.StatusUnauthorized, "Invalid token", err)
			}
			return
		}

		c.Set(util.ContextUserIDKey, userID)
		c.Next()
	}
}
