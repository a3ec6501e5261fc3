package api

import (
	"net/http"
	"strings"

	"nfg/fitness-site/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName carries the signed admin session token.
	SessionCookieName = "nfg_session"

	contextAdminKey = "adminUser"
)

// AuthMiddleware gates the admin surface on a valid session token, read from
// the session cookie or (as a fallback) a bearer Authorization header.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				token = parts[1]
			}
		}
		if token == "" {
			abortWithError(c, http.StatusUnauthorized, "Please sign in to access Admin.")
			return
		}

		subject, err := authService.ValidateToken(token)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "Session expired or invalid. Please sign in again.")
			return
		}

		c.Set(contextAdminKey, subject)
		c.Next()
	}
}

// Helper to return JSON error response and abort request.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
