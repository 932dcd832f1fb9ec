package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/jwt"
)

// AuthMiddleware returns a Gin middleware that validates JWT tokens and injects claims into the context.
func AuthMiddleware(tokenManager jwt.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := tokenManager.ValidateAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "access token expired", "code": "token_not_valid"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid access token", "code": "token_not_valid"})
			return
		}
		// Inject claims into context for downstream handlers
		c.Request.Header.Set("X-User-Id", fmt.Sprintf("%d", claims.UserID))
		c.Request.Header.Set("X-Username", claims.Username)
		c.Next()
	}
}

// OptionalAuthMiddleware injects claims when a valid token is present but
// lets anonymous requests through untouched.
func OptionalAuthMiddleware(tokenManager jwt.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Never trust identity headers supplied by the caller.
		c.Request.Header.Del("X-User-Id")
		c.Request.Header.Del("X-Username")
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString := strings.TrimPrefix(header, "Bearer ")
			if claims, err := tokenManager.ValidateAccessToken(tokenString); err == nil {
				c.Request.Header.Set("X-User-Id", fmt.Sprintf("%d", claims.UserID))
				c.Request.Header.Set("X-Username", claims.Username)
			}
		}
		c.Next()
	}
}
