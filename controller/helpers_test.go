package controller_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/casa/api/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authAs stands in for the token middleware and authenticates every request as userID.
func authAs(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(util.ContextUserIDKey, userID)
		c.Next()
	}
}

// noAuth lets requests through without an identity.
func noAuth(c *gin.Context) {
	c.Next()
}

func serve(router *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	message, _ := decodeBody(t, w)["message"].(string)
	return message
}
