package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/logger"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8000/api"

// refreshThreshold is how close to expiry an access token may get before
// the client refreshes it ahead of a request.
const refreshThreshold = 300 * time.Second

// ErrSessionExpired is returned when the refresh token is missing or
// rejected. The session has been cleared; the user must log in again.
var ErrSessionExpired = errors.New("session expired, please log in again")

// APIError is a non-2xx response from the backend. Validation failures
// carry per-field messages.
type APIError struct {
	StatusCode int
	Detail     string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Client is a token-aware HTTP client for the backend API. It attaches
// bearer tokens, refreshes soon-to-expire access tokens before use, and
// retries a request once when the backend answers 401.
//
// Refresh is single-flight: concurrent requests that each observe a stale
// token share one refresh call and all proceed with its result.
type Client struct {
	baseURL string
	http    *http.Client
	store   SessionStore
	refresh singleflight.Group
	log     *logger.Logger
}

// BaseURLFromEnv returns the configured API base URL, honoring the
// REACT_APP_API_URL override.
func BaseURLFromEnv() string {
	if url := os.Getenv("REACT_APP_API_URL"); url != "" {
		return url
	}
	return DefaultBaseURL
}

// New creates a Client for the given base URL and session store.
func New(baseURL string, store SessionStore, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
		store:   store,
		log:     log,
	}
}

// IsAuthenticated reports whether a token pair is currently stored.
func (c *Client) IsAuthenticated() bool {
	s, err := c.store.Load()
	if err != nil {
		return false
	}
	return s.AccessToken != "" && s.RefreshToken != ""
}

// Session returns the stored session.
func (c *Client) Session() (Session, error) {
	return c.store.Load()
}

// Request issues an authenticated HTTP request. The body, if non-nil, is
// JSON-encoded. The raw response is returned; callers parse the body and
// check the status for business-level errors.
func (c *Client) Request(ctx context.Context, method, endpoint string, body any) (*http.Response, error) {
	session, err := c.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	token := session.AccessToken
	if token != "" && tokenExpiringSoon(token) {
		refreshed, err := c.refreshAccessToken(ctx)
		if err != nil {
			return nil, err
		}
		token = refreshed
	}

	resp, err := c.do(ctx, method, endpoint, body, token)
	if err != nil {
		c.log.Errorf("%s %s failed: %v", method, endpoint, err)
		return nil, err
	}

	// A 401 with a token present means the token went stale between the
	// expiry check and the backend's validation. Refresh and retry once.
	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		resp.Body.Close()
		refreshed, err := c.refreshAccessToken(ctx)
		if err != nil {
			return nil, err
		}
		resp, err = c.do(ctx, method, endpoint, body, refreshed)
		if err != nil {
			c.log.Errorf("%s %s retry failed: %v", method, endpoint, err)
			return nil, err
		}
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, token string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.http.Do(req)
}

// refreshAccessToken exchanges the refresh token for a new pair. Only one
// refresh runs at a time; concurrent callers share its outcome. A failed
// refresh clears the session so the caller is forced to re-authenticate.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	token, err, _ := c.refresh.Do("refresh", func() (any, error) {
		session, err := c.store.Load()
		if err != nil {
			return "", fmt.Errorf("failed to load session: %w", err)
		}
		if session.RefreshToken == "" {
			return "", ErrSessionExpired
		}

		resp, err := c.do(ctx, http.MethodPost, "/auth/token/refresh/", map[string]string{"refresh": session.RefreshToken}, "")
		if err != nil {
			return "", fmt.Errorf("refresh request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			// Fail closed: a rejected refresh logs the user out rather
			// than looping.
			if clearErr := c.store.Clear(); clearErr != nil {
				c.log.Errorf("failed to clear session: %v", clearErr)
			}
			return "", ErrSessionExpired
		}

		var pair struct {
			Access  string `json:"access"`
			Refresh string `json:"refresh"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
			return "", fmt.Errorf("failed to parse refresh response: %w", err)
		}
		session.AccessToken = pair.Access
		if pair.Refresh != "" {
			session.RefreshToken = pair.Refresh
		}
		if err := c.store.Save(session); err != nil {
			return "", fmt.Errorf("failed to save session: %w", err)
		}
		c.log.Debug("access token refreshed")
		return pair.Access, nil
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

// tokenExpiringSoon inspects the unverified exp claim. Signature checking
// belongs to the backend; the client only needs the expiry time.
func tokenExpiringSoon(token string) bool {
	claims := jwtlib.RegisteredClaims{}
	if _, _, err := jwtlib.NewParser().ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Until(claims.ExpiresAt.Time) < refreshThreshold
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, endpoint string) (*http.Response, error) {
	return c.Request(ctx, http.MethodGet, endpoint, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body any) (*http.Response, error) {
	return c.Request(ctx, http.MethodPost, endpoint, body)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body any) (*http.Response, error) {
	return c.Request(ctx, http.MethodPut, endpoint, body)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, endpoint string, body any) (*http.Response, error) {
	return c.Request(ctx, http.MethodPatch, endpoint, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string) (*http.Response, error) {
	return c.Request(ctx, http.MethodDelete, endpoint, nil)
}

// decode parses a response into out, converting non-2xx statuses into
// *APIError. A nil out discards the body.
func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	data, _ := io.ReadAll(resp.Body)
	var detail struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(data, &detail) == nil && detail.Detail != "" {
		apiErr.Detail = detail.Detail
	} else {
		var fields map[string][]string
		if json.Unmarshal(data, &fields) == nil {
			apiErr.Fields = fields
		}
	}
	return apiErr
}
