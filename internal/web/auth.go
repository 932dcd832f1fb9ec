package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/client"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

// LoginPage renders the login form.
func (h *Handlers) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// LoginPost authenticates and stores the session in cookies.
func (h *Handlers) LoginPost(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	api, store := h.apiClient(c)
	_, err := api.Login(c.Request.Context(), username, password)
	if err != nil {
		var apiErr *client.APIError
		msg := "Login failed. Please try again."
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			msg = "Invalid username or password."
		}
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"error": msg, "username": username})
		return
	}
	h.syncCookies(c, store)
	c.Redirect(http.StatusFound, "/recipes")
}

// RegisterPage renders the registration form.
func (h *Handlers) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// RegisterPost creates the account and logs the user in.
func (h *Handlers) RegisterPost(c *gin.Context) {
	req := domain.RegisterRequest{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	api, store := h.apiClient(c)
	_, err := api.Register(c.Request.Context(), req)
	if err != nil {
		var apiErr *client.APIError
		data := gin.H{"username": req.Username, "email": req.Email}
		if errors.As(err, &apiErr) && apiErr.Fields != nil {
			data["fieldErrors"] = apiErr.Fields
		} else {
			data["error"] = "Registration failed. Please try again."
		}
		c.HTML(http.StatusBadRequest, "register.html", data)
		return
	}

	if _, err := api.Login(c.Request.Context(), req.Username, req.Password); err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	h.syncCookies(c, store)
	c.Redirect(http.StatusFound, "/recipes")
}

// Logout revokes the refresh token and clears the cookies.
func (h *Handlers) Logout(c *gin.Context) {
	api, _ := h.apiClient(c)
	if err := api.Logout(c.Request.Context()); err != nil {
		h.log.Errorf("logout failed: %v", err)
	}
	clearCookies(c)
	c.Redirect(http.StatusFound, "/login")
}
