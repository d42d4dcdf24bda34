package middleware

import (
	"net/http"

	"task_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// RequireInstructor rejects callers that are not active Instructors. It runs
// before the handler reads the request body.
func RequireInstructor() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User not found in context, ensure JWT middleware runs first"})
			return
		}

		if !service.IsInstructor(user) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action."})
			return
		}

		c.Next()
	}
}
