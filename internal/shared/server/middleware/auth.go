package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"docextract-backend/internal/sessions"
	"docextract-backend/internal/shared/server/respond"
)

const (
	userIDKey      = "userId"
	userEmailKey   = "userEmail"
	userNameKey    = "userName"
	userPictureKey = "userPicture"

	// SessionCookie carries the session token for browser clients.
	SessionCookie = "session_token"
)

// Auth resolves the request's session token through the guard and stores the
// identity in the gin context. Requests without a live session are rejected
// before any storage or upstream access happens.
func Auth(guard sessions.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				token = strings.TrimSpace(cookie)
			}
		}
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid session", nil)
			return
		}

		ident, err := guard.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, sessions.ErrNoSession) {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid session", nil)
				return
			}
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to resolve session", nil)
			return
		}

		c.Set(userIDKey, ident.UserID)
		if ident.Email != "" {
			c.Set(userEmailKey, ident.Email)
		}
		if ident.Name != "" {
			c.Set(userNameKey, ident.Name)
		}
		if ident.Picture != "" {
			c.Set(userPictureKey, ident.Picture)
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// UserEmailFromContext fetches the user email set by the auth middleware.
func UserEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userEmailKey)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}

// UserNameFromContext fetches the user name set by the auth middleware.
func UserNameFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userNameKey)
	if name, ok := val.(string); ok {
		return name
	}
	return ""
}

// UserPictureFromContext fetches the user picture set by the auth middleware.
func UserPictureFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userPictureKey)
	if picture, ok := val.(string); ok {
		return picture
	}
	return ""
}
