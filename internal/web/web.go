// Package web serves the browser frontend. Each request gets its own API
// client seeded from the session cookies; any tokens rotated during the
// request are written back before the response.
package web

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/client"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/logger"
)

const (
	cookieAccess  = "access_token"
	cookieRefresh = "refresh_token"
	cookieUser    = "user"
)

// Handlers holds the shared state for the frontend handlers.
type Handlers struct {
	apiURL string
	log    *logger.Logger
}

// NewHandlers creates the frontend handler set talking to the given API.
func NewHandlers(apiURL string, log *logger.Logger) *Handlers {
	return &Handlers{apiURL: apiURL, log: log}
}

// sessionFromCookies rebuilds the API session from the request cookies.
func sessionFromCookies(c *gin.Context) client.Session {
	session := client.Session{}
	if v, err := c.Cookie(cookieAccess); err == nil {
		session.AccessToken = v
	}
	if v, err := c.Cookie(cookieRefresh); err == nil {
		session.RefreshToken = v
	}
	if v, err := c.Cookie(cookieUser); err == nil && v != "" {
		var user domain.User
		if json.Unmarshal([]byte(v), &user) == nil {
			session.User = &user
		}
	}
	return session
}

// apiClient builds a per-request client over a memory store seeded from
// the cookies. The store is returned so the handler can sync it back.
func (h *Handlers) apiClient(c *gin.Context) (*client.Client, *client.MemoryStore) {
	store := client.NewMemoryStoreWith(sessionFromCookies(c))
	return client.New(h.apiURL, store, h.log), store
}

// syncCookies writes the (possibly rotated or cleared) session back to
// the browser.
func (h *Handlers) syncCookies(c *gin.Context, store *client.MemoryStore) {
	session, err := store.Load()
	if err != nil {
		h.log.Errorf("failed to load session for cookie sync: %v", err)
		return
	}
	if session.AccessToken == "" && session.RefreshToken == "" {
		clearCookies(c)
		return
	}
	c.SetCookie(cookieAccess, session.AccessToken, 0, "/", "", false, true)
	c.SetCookie(cookieRefresh, session.RefreshToken, 0, "/", "", false, true)
	if session.User != nil {
		if data, err := json.Marshal(session.User); err == nil {
			c.SetCookie(cookieUser, string(data), 0, "/", "", false, false)
		}
	}
}

func clearCookies(c *gin.Context) {
	c.SetCookie(cookieAccess, "", -1, "/", "", false, true)
	c.SetCookie(cookieRefresh, "", -1, "/", "", false, true)
	c.SetCookie(cookieUser, "", -1, "/", "", false, false)
}

// currentUser returns the cookie-cached account, or nil when logged out.
func currentUser(c *gin.Context) *domain.User {
	return sessionFromCookies(c).User
}
