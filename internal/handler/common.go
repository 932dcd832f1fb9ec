package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

// respondError maps service errors to API responses. Validation failures
// come back as a field-to-messages map with status 400.
func respondError(c *gin.Context, err error) {
	if verrs, ok := domain.AsValidationErrors(err); ok {
		c.JSON(http.StatusBadRequest, verrs)
		return
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"detail": "You do not have permission to perform this action."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
	}
}

func respondBadBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": "Malformed request body: " + err.Error()})
}

// parseID parses a numeric path segment; the second return is false for
// non-numeric segments so callers can treat them as custom actions.
func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
