package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware guards routes behind the admin session.
type Middleware struct {
	sessions *SessionManager
}

// NewMiddleware creates the session guard middleware.
func NewMiddleware(sessions *SessionManager) *Middleware {
	return &Middleware{sessions: sessions}
}

// RequireAPI rejects unauthenticated API requests with a 401 JSON payload.
func (m *Middleware) RequireAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.sessions.IsAuthenticated(c.Request) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// RequirePage redirects unauthenticated page requests to the login view,
// preserving the original path for the post-login redirect.
func (m *Middleware) RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.sessions.IsAuthenticated(c.Request) {
			c.Redirect(http.StatusFound, "/login?next="+c.Request.URL.Path)
			c.Abort()
			return
		}
		c.Next()
	}
}

// isLocalPath validates that a redirect path stays on this site, guarding
// against open redirects via the next parameter.
func isLocalPath(path string) bool {
	if path == "" {
		return false
	}
	if !strings.HasPrefix(path, "/") {
		return false
	}
	if strings.HasPrefix(path, "//") {
		return false
	}
	if strings.Contains(path, "://") {
		return false
	}
	if strings.Contains(path, "\\") {
		return false
	}
	return true
}

// SanitizeRedirectPath returns a safe redirect path, defaulting to "/".
func SanitizeRedirectPath(path string) string {
	if isLocalPath(path) {
		return path
	}
	return "/"
}
