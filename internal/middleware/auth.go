package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"community-board-api/internal/response"
)

// UserIDKey is the gin context key holding the authenticated user's id
const UserIDKey = "user_id"

// CurrentUserID returns the viewer's user id, or "" for anonymous requests
func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get(UserIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// Auth returns a middleware that requires a valid bearer token and stores
// the token's user id in the context
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticate(c, jwtSecret)
		if !ok {
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth resolves the viewer for endpoints readable anonymously. A
// missing Authorization header passes through with an empty viewer; a
// present but invalid token is still rejected.
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		userID, ok := authenticate(c, jwtSecret)
		if !ok {
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func authenticate(c *gin.Context, jwtSecret string) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authorization header is required")
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid authorization header format")
		return "", false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid or expired token")
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid token claims")
		return "", false
	}

	userID := extractUserID(claims)
	if userID == "" {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in token")
		return "", false
	}
	return userID, true
}

// extractUserID supports both our user_id claim and the standard sub claim
func extractUserID(claims jwt.MapClaims) string {
	if uid, ok := claims["user_id"].(string); ok {
		return uid
	}
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}
