package middleware

import (
	"net/http"
	"strings"

	"task_tracker/internal/model"
	"task_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const AuthUserKey = "authUser"

// JWTAuthMiddleware creates a middleware for JWT authentication. The token
// must resolve to an active user, who is stored under AuthUserKey.
func JWTAuthMiddleware(auth service.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided."})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			if service.IsAuthError(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Given token not valid for any token type"})
				return
			}
			log.Error("token authentication failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(AuthUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by JWTAuthMiddleware, or nil.
func CurrentUser(c *gin.Context) *model.User {
	val, exists := c.Get(AuthUserKey)
	if !exists {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}
