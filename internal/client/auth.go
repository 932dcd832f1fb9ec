package client

import (
	"context"
	"net/http"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

// Login authenticates, stores the returned token pair, and caches the
// current user.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.User, error) {
	resp, err := c.do(ctx, http.MethodPost, "/auth/login/", domain.LoginRequest{Username: username, Password: password}, "")
	if err != nil {
		return nil, err
	}
	var pair domain.TokenPair
	if err := decode(resp, &pair); err != nil {
		return nil, err
	}
	session := Session{AccessToken: pair.Access, RefreshToken: pair.Refresh}
	if err := c.store.Save(session); err != nil {
		return nil, err
	}

	user, err := c.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	session.User = user
	if err := c.store.Save(session); err != nil {
		return nil, err
	}
	return user, nil
}

// Register creates an account. The caller still needs to log in.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	resp, err := c.Post(ctx, "/auth/register/", req)
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := decode(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout revokes the refresh token server-side and clears the session.
// The local session is cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	session, err := c.store.Load()
	if err != nil {
		return err
	}
	if session.RefreshToken != "" {
		resp, err := c.Post(ctx, "/auth/logout/", domain.LogoutRequest{Refresh: session.RefreshToken})
		if err != nil {
			c.log.Errorf("logout request failed: %v", err)
		} else {
			resp.Body.Close()
		}
	}
	return c.store.Clear()
}

// CurrentUser fetches the authenticated account.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	resp, err := c.Get(ctx, "/auth/user/")
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := decode(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CachedUser returns the user stored at login time without a network call.
func (c *Client) CachedUser() *domain.User {
	session, err := c.store.Load()
	if err != nil {
		return nil
	}
	return session.User
}
