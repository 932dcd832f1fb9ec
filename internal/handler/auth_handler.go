package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/service"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/logger"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/util"
)

// AuthHandler exposes registration, login, token refresh, logout, and the
// current-user endpoint.
type AuthHandler struct {
	auth *service.AuthService
	log  *logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Register handles POST /api/auth/register/.
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}
	user, err := h.auth.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/auth/login/.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}
	pair, err := h.auth.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "No active account found with the given credentials"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Refresh handles POST /api/auth/token/refresh/.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req domain.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Refresh == "" {
		c.JSON(http.StatusBadRequest, gin.H{"refresh": []string{"This field is required."}})
		return
	}
	pair, err := h.auth.Refresh(req.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired", "code": "token_not_valid"})
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Logout handles POST /api/auth/logout/. The refresh token is blacklisted.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req domain.LogoutRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.Refresh != "" {
		if err := h.auth.Logout(req.Refresh); err != nil {
			h.log.Errorf("logout revocation failed: %v", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Successfully logged out."})
}

// CurrentUser handles GET /api/auth/user/.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := util.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
		return
	}
	user, err := h.auth.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
