package handler

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"

	"community-board-api/internal/middleware"
	"community-board-api/internal/response"
)

// setupTestRouter creates a bare gin engine for handler tests
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// authAs injects an authenticated viewer without going through the JWT
// middleware
func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

// unwrapData decodes the success envelope and re-decodes its data field
// into out
func unwrapData(t *testing.T, body []byte, out interface{}) {
	t.Helper()

	var resp response.SuccessResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !resp.Success {
		t.Errorf("Expected success=true, got false")
	}

	dataBytes, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("Failed to re-marshal data: %v", err)
	}
	if err := json.Unmarshal(dataBytes, out); err != nil {
		t.Fatalf("Failed to unmarshal data: %v", err)
	}
}

// errorCode extracts the error code from an error envelope
func errorCode(t *testing.T, body []byte) string {
	t.Helper()

	var resp response.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Failed to unmarshal error response: %v", err)
	}
	return resp.Error.Code
}
