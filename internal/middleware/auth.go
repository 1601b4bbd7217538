package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/flipword/api/internal/auth"
	"github.com/flipword/api/internal/model"
	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key holding the verified *model.SessionTokenPayload.
const SessionKey = "session"

// SessionToken extracts the admin token from the session cookie, falling
// back to an "Authorization: Bearer" header.
func SessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AdminMiddleware requires a valid admin session token.
func AdminMiddleware(sessions *auth.SessionService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := sessions.Verify(SessionToken(c))
		if err != nil {
			if errors.Is(err, auth.ErrMissingSecret) {
				logger.Error("admin session secret is not configured")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "admin sessions are not configured"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(SessionKey, payload)
		c.Next()
	}
}

// Session returns the payload stored by AdminMiddleware.
func Session(c *gin.Context) (*model.SessionTokenPayload, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil, false
	}
	payload, ok := v.(*model.SessionTokenPayload)
	return payload, ok
}
