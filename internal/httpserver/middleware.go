package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"warung-pos/internal/domain"
	"warung-pos/internal/service/auth"
)

const sessionKey = "session"

// authMiddleware verifies the bearer token and stores the session on the
// gin context for handlers downstream.
func authMiddleware(svc authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}
		sess, err := svc.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// requireAdmin gates admin-only routes. Must run after authMiddleware.
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		if sess.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}

func currentSession(c *gin.Context) auth.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return auth.Session{}
	}
	sess, _ := v.(auth.Session)
	return sess
}
