package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/insanmekan/journal_management_app/internal/core/ports/services"
)

// RequireSession rejects requests arriving before an operator session has
// been established. Read-only public routes stay outside this gate.
func RequireSession(session portssvc.SessionReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
			return
		}
		c.Next()
	}
}

// RequireAdmin additionally demands an admin-level session user.
func RequireAdmin(session portssvc.SessionReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.Current()
		if user == nil || !user.Role.IsAdminLevel() {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		c.Next()
	}
}
