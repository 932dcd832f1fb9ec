package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/jwt"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/logger"
)

// ErrInvalidCredentials is returned when login credentials do not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService handles registration, login, and token lifecycle.
type AuthService struct {
	users      domain.UserRepository
	tokens     jwt.TokenManager
	accessTTL  time.Duration
	refreshTTL time.Duration
	log        *logger.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, tokens jwt.TokenManager, accessTTL, refreshTTL time.Duration, log *logger.Logger) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		log:        log,
	}
}

// Register validates the request and creates the account with a bcrypt hash.
func (s *AuthService) Register(req domain.RegisterRequest) (*domain.User, error) {
	errs := domain.ValidationErrors{}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" {
		errs.Add("username", "This field is required.")
	} else if len(req.Username) > 150 {
		errs.Add("username", "Ensure this field has no more than 150 characters.")
	}
	if req.Email == "" {
		errs.Add("email", "This field is required.")
	} else if !emailRe.MatchString(req.Email) {
		errs.Add("email", "Enter a valid email address.")
	}
	if req.Password == "" {
		errs.Add("password", "This field is required.")
	} else if len(req.Password) < 8 {
		errs.Add("password", "This password is too short. It must contain at least 8 characters.")
	}

	if req.Username != "" {
		if _, err := s.users.GetByUsername(req.Username); err == nil {
			errs.Add("username", "A user with that username already exists.")
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	if req.Email != "" {
		if _, err := s.users.GetByEmail(req.Email); err == nil {
			errs.Add("email", "A user with that email already exists.")
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	s.log.Infof("registered user %s", user.Username)
	return user, nil
}

// Login checks the credentials and issues a token pair.
func (s *AuthService) Login(req domain.LoginRequest) (*domain.TokenPair, error) {
	user, err := s.users.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	access, refresh, err := s.tokens.GenerateToken(user.ID, user.Username, s.accessTTL, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	s.log.Debugf("user %s logged in", user.Username)
	return &domain.TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh rotates the token pair. The old refresh token is blacklisted.
func (s *AuthService) Refresh(refreshToken string) (*domain.TokenPair, error) {
	access, refresh, err := s.tokens.RefreshToken(refreshToken, s.accessTTL, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{Access: access, Refresh: refresh}, nil
}

// Logout revokes the given refresh token.
func (s *AuthService) Logout(refreshToken string) error {
	return s.tokens.RevokeToken(refreshToken, 0)
}

// GetUser returns the account with the given id.
func (s *AuthService) GetUser(id uint) (*domain.User, error) {
	return s.users.GetByID(id)
}
