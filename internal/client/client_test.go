package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/jwt"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/logger"
)

const testSecret = "test-secret"

func makeToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	access, _, err := jwt.NewTokenManagerWithoutRedis(testSecret).GenerateToken(1, "alice", ttl, ttl)
	require.NoError(t, err)
	return access
}

func makePair(t *testing.T, ttl time.Duration) (string, string) {
	t.Helper()
	access, refresh, err := jwt.NewTokenManagerWithoutRedis(testSecret).GenerateToken(1, "alice", ttl, ttl)
	require.NoError(t, err)
	return access, refresh
}

func newTestClient(t *testing.T, srv *httptest.Server, session Session) (*Client, *MemoryStore) {
	t.Helper()
	store := NewMemoryStoreWith(session)
	return New(srv.URL, store, logger.New("debug")), store
}

func TestRefreshIsSingleFlight(t *testing.T) {
	expiring := makeToken(t, time.Minute) // inside the 300s threshold
	fresh := makeToken(t, time.Hour)

	var refreshCalls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/token/refresh/":
			atomic.AddInt64(&refreshCalls, 1)
			time.Sleep(100 * time.Millisecond) // hold concurrent callers in the same flight
			json.NewEncoder(w).Encode(map[string]string{"access": fresh, "refresh": "rotated"})
		default:
			w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv, Session{AccessToken: expiring, RefreshToken: "refresh"})

	const n = 10
	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer done.Done()
			start.Wait()
			resp, err := c.Get(context.Background(), "/recipes/")
			assert.NoError(t, err)
			if resp != nil {
				resp.Body.Close()
			}
		}()
	}
	start.Done()
	done.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&refreshCalls))
}

func TestFailedRefreshClearsSession(t *testing.T) {
	expiring := makeToken(t, time.Minute)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/token/refresh/" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Token is invalid or expired", "code": "token_not_valid"})
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, store := newTestClient(t, srv, Session{AccessToken: expiring, RefreshToken: "stale"})

	_, err := c.Get(context.Background(), "/recipes/")
	assert.ErrorIs(t, err, ErrSessionExpired)

	session, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, session.AccessToken)
	assert.Empty(t, session.RefreshToken)
	assert.False(t, c.IsAuthenticated())
}

func TestRefreshFailsWithoutRefreshToken(t *testing.T) {
	expiring := makeToken(t, time.Minute)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv, Session{AccessToken: expiring})
	_, err := c.Get(context.Background(), "/recipes/")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestRetriesOnceAfter401(t *testing.T) {
	revoked := makeToken(t, time.Hour) // outside the refresh threshold
	fresh := makeToken(t, 2*time.Hour) // distinct exp so the tokens differ

	var recipeCalls, refreshCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/token/refresh/":
			refreshCalls++
			json.NewEncoder(w).Encode(map[string]string{"access": fresh})
		case "/recipes/":
			recipeCalls++
			if r.Header.Get("Authorization") != "Bearer "+fresh {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"detail": "token revoked", "code": "token_not_valid"})
				return
			}
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	c, store := newTestClient(t, srv, Session{AccessToken: revoked, RefreshToken: "refresh"})

	resp, err := c.Get(context.Background(), "/recipes/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, recipeCalls)
	assert.Equal(t, 1, refreshCalls)

	session, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, fresh, session.AccessToken)
}

func TestForbiddenIsNotRetried(t *testing.T) {
	token := makeToken(t, time.Hour)

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/token/refresh/" {
			t.Error("403 must not trigger a refresh")
			return
		}
		calls++
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"detail": "You do not have permission to perform this action."})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv, Session{AccessToken: token, RefreshToken: "refresh"})

	resp, err := c.Get(context.Background(), "/recipes/1/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 1, calls)
}

func TestAnonymous401IsNotRetried(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Authentication credentials were not provided."})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv, Session{})

	resp, err := c.Get(context.Background(), "/meal-plans/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 1, calls)
}

func TestLoginStoresTokensAndCachesUser(t *testing.T) {
	access, refresh := makePair(t, time.Hour)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login/":
			var req domain.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "alice", req.Username)
			json.NewEncoder(w).Encode(domain.TokenPair{Access: access, Refresh: refresh})
		case "/auth/user/":
			assert.Equal(t, "Bearer "+access, r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(domain.User{ID: 1, Username: "alice", Email: "alice@example.com"})
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c, store := newTestClient(t, srv, Session{})

	user, err := c.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	session, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, access, session.AccessToken)
	assert.Equal(t, refresh, session.RefreshToken)
	require.NotNil(t, session.User)
	assert.Equal(t, "alice", session.User.Username)
	assert.True(t, c.IsAuthenticated())
}

func TestCreateRecipePayload(t *testing.T) {
	token := makeToken(t, time.Hour)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/recipes/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Chocolate Chip Cookies", payload["name"])
		assert.Equal(t, float64(15), payload["prep_time"])
		assert.Equal(t, float64(12), payload["cook_time"])
		assert.Equal(t, "dinner", payload["category"])
		assert.Equal(t, "easy", payload["difficulty"])
		assert.Equal(t, "", payload["description"])
		ingredients, ok := payload["ingredients"].([]any)
		require.True(t, ok)
		require.Len(t, ingredients, 1)
		first := ingredients[0].(map[string]any)
		assert.Equal(t, "Flour", first["name"])
		assert.Equal(t, "2 cups", first["measurement"])
		assert.Equal(t, float64(0), first["order"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 7, "name": "Chocolate Chip Cookies"}`))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv, Session{AccessToken: token, RefreshToken: "refresh"})

	created, err := c.CreateRecipe(context.Background(), domain.Recipe{
		Name:       "Chocolate Chip Cookies",
		PrepTime:   15,
		CookTime:   12,
		Category:   "dinner",
		Difficulty: "easy",
		Ingredients: []domain.Ingredient{
			{Name: "Flour", Measurement: "2 cups", Order: 0},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)
}

func TestDecodeValidationError(t *testing.T) {
	token := makeToken(t, time.Hour)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string][]string{"name": {"This field is required."}})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv, Session{AccessToken: token, RefreshToken: "refresh"})

	_, err := c.CreateRecipe(context.Background(), domain.Recipe{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, []string{"This field is required."}, apiErr.Fields["name"])
}
