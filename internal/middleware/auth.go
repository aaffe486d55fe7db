package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/funfriday/backend/internal/auth"
)

const (
	// UserIDKey is the gin context key for the authenticated user ID.
	UserIDKey = "user_id"
	// EmailKey is the gin context key for the authenticated user's email.
	EmailKey = "email"
)

// UserID extracts the authenticated user ID from the gin context.
// Returns empty string if not set.
func UserID(c *gin.Context) string {
	userID, _ := c.Value(UserIDKey).(string)
	return userID
}

// RequireAuth validates the Bearer token on every request and stores the user
// ID and email in the request context. Requests without a valid token are
// rejected with 401 before reaching a handler.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": auth.ErrMissingToken.Error()})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": auth.ErrInvalidToken.Error()})
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": auth.ErrInvalidToken.Error()})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}
