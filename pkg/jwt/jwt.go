package jwt

import (
	"context"
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// ErrTokenExpired is returned when a token has expired.
var ErrTokenExpired = errors.New("token is expired")

// ErrTokenRevoked is returned when a refresh token has been blacklisted.
var ErrTokenRevoked = errors.New("token is revoked")

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom JWT claims structure.
type Claims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwtlib.RegisteredClaims
}

// TokenManager provides methods for generating, validating, and revoking JWT tokens.
type TokenManager interface {
	// accessToken, refreshToken, error
	GenerateToken(userID uint, username string, accessTokenExp, refreshTokenExp time.Duration) (string, string, error)
	// RefreshToken validates the refresh token and issues a rotated access/refresh pair.
	RefreshToken(refreshToken string, accessTokenExp, refreshTokenExp time.Duration) (string, string, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)
	RevokeToken(tokenString string, expiresIn time.Duration) error
	IsTokenRevoked(tokenString string) (bool, error)
}

// NewTokenManager creates a new TokenManager with the given secret key and Redis client.
func NewTokenManager(secretKey string, redisClient *redis.Client) TokenManager {
	return &tokenManager{secretKey: secretKey, redis: redisClient}
}

// NewTokenManagerWithoutRedis creates a TokenManager without a revocation
// blacklist (useful for tests and token-only validation).
func NewTokenManagerWithoutRedis(secretKey string) TokenManager {
	return &tokenManager{secretKey: secretKey}
}

// tokenManager implements TokenManager with Redis for the refresh blacklist.
type tokenManager struct {
	secretKey string
	redis     *redis.Client
}

func (j *tokenManager) sign(userID uint, username, tokenType string, exp time.Duration) (string, error) {
	claims := Claims{
		UserID:    userID,
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(exp)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GenerateToken creates a new access and refresh JWT token for a user.
func (j *tokenManager) GenerateToken(userID uint, username string, accessTokenExp, refreshTokenExp time.Duration) (string, string, error) {
	accessTokenStr, err := j.sign(userID, username, TokenTypeAccess, accessTokenExp)
	if err != nil {
		return "", "", err
	}
	refreshTokenStr, err := j.sign(userID, username, TokenTypeRefresh, refreshTokenExp)
	if err != nil {
		return "", "", err
	}
	return accessTokenStr, refreshTokenStr, nil
}

// RefreshToken validates the refresh token, revokes it, and issues a rotated pair.
func (j *tokenManager) RefreshToken(refreshToken string, accessTokenExp, refreshTokenExp time.Duration) (string, string, error) {
	claims, err := j.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	newAccess, newRefresh, err := j.GenerateToken(claims.UserID, claims.Username, accessTokenExp, refreshTokenExp)
	if err != nil {
		return "", "", err
	}
	// Blacklist the old refresh token until it would naturally expire.
	_ = j.RevokeToken(refreshToken, 0)
	return newAccess, newRefresh, nil
}

func (j *tokenManager) parse(tokenString string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenString, &Claims{}, func(token *jwtlib.Token) (interface{}, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ValidateAccessToken parses and validates an access token (no blacklist check).
func (j *tokenManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := j.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, errors.New("not an access token")
	}
	return claims, nil
}

// ValidateRefreshToken parses and validates a refresh token and checks the Redis blacklist.
func (j *tokenManager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	if j.redis != nil {
		isRevoked, err := j.IsTokenRevoked(tokenString)
		if err != nil {
			return nil, err
		}
		if isRevoked {
			return nil, ErrTokenRevoked
		}
	}
	claims, err := j.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, errors.New("not a refresh token")
	}
	return claims, nil
}

// RevokeToken stores a refresh token in the Redis blacklist until it expires.
func (j *tokenManager) RevokeToken(tokenString string, expiresIn time.Duration) error {
	if j.redis == nil {
		return nil
	}
	claims, err := j.parse(tokenString)
	if err != nil {
		return errors.New("invalid token for revocation")
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil // already expired
	}
	if expiresIn == 0 || expiresIn > ttl {
		expiresIn = ttl
	}
	return j.redis.Set(context.Background(), j.redisKey(tokenString), "revoked", expiresIn).Err()
}

// IsTokenRevoked checks if the token is blacklisted in Redis.
func (j *tokenManager) IsTokenRevoked(tokenString string) (bool, error) {
	if j.redis == nil {
		return false, nil
	}
	res, err := j.redis.Exists(context.Background(), j.redisKey(tokenString)).Result()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// redisKey generates a Redis key for a JWT token.
func (j *tokenManager) redisKey(tokenString string) string {
	return "jwt:blacklist:" + tokenString
}
