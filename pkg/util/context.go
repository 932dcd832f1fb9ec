package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetUserID reads the authenticated user id injected by the auth middleware
// via the X-User-Id header.
func GetUserID(c *gin.Context) (uint, bool) {
	raw := c.GetHeader("X-User-Id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// GetUsername reads the authenticated username injected via X-Username.
func GetUsername(c *gin.Context) (string, bool) {
	username := c.GetHeader("X-Username")
	if username == "" {
		return "", false
	}
	return username, true
}
