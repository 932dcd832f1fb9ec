package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	tm := NewTokenManagerWithoutRedis("secret")

	access, refresh, err := tm.GenerateToken(42, "alice", time.Hour, 24*time.Hour)
	require.NoError(t, err)

	claims, err := tm.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	claims, err = tm.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestTokenTypeEnforced(t *testing.T) {
	tm := NewTokenManagerWithoutRedis("secret")
	access, refresh, err := tm.GenerateToken(1, "alice", time.Hour, time.Hour)
	require.NoError(t, err)

	_, err = tm.ValidateAccessToken(refresh)
	assert.Error(t, err)
	_, err = tm.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	tm := NewTokenManagerWithoutRedis("secret")
	access, _, err := tm.GenerateToken(1, "alice", -time.Minute, time.Hour)
	require.NoError(t, err)

	_, err = tm.ValidateAccessToken(access)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestWrongSecretRejected(t *testing.T) {
	access, _, err := NewTokenManagerWithoutRedis("secret").GenerateToken(1, "alice", time.Hour, time.Hour)
	require.NoError(t, err)

	_, err = NewTokenManagerWithoutRedis("other").ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestRefreshRotates(t *testing.T) {
	tm := NewTokenManagerWithoutRedis("secret")
	_, refresh, err := tm.GenerateToken(1, "alice", time.Hour, time.Hour)
	require.NoError(t, err)

	newAccess, newRefresh, err := tm.RefreshToken(refresh, time.Hour, time.Hour)
	require.NoError(t, err)

	claims, err := tm.ValidateAccessToken(newAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	_, err = tm.ValidateRefreshToken(newRefresh)
	assert.NoError(t, err)
}
