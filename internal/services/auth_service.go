package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SessionStore is the slice of the Redis client that holds admin sessions.
type SessionStore interface {
	SetAdminSession(token, username string, ttl time.Duration) error
	GetAdminSession(token string) (string, error)
	DeleteAdminSession(token string) error
}

// AuthService guards the admin surface. With no password configured it is
// disabled and the admin routes stay open, matching the original
// unauthenticated deployment.
type AuthService interface {
	Enabled() bool
	Login(username, password string) (string, error)
	Validate(token string) (string, error)
	Logout(token string) error
}

type authService struct {
	username     string
	passwordHash []byte
	sessions     SessionStore
	sessionTTL   time.Duration
}

func NewAuthService(username, password string, sessions SessionStore, sessionTTL time.Duration) (AuthService, error) {
	s := &authService{
		username:   username,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
	if password == "" {
		return s, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	s.passwordHash = hash
	return s, nil
}

func (s *authService) Enabled() bool {
	return len(s.passwordHash) > 0
}

// Login checks the credentials and issues a session token with the
// configured TTL.
func (s *authService) Login(username, password string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("%w: authentication is disabled", ErrValidation)
	}
	if username != s.username {
		return "", fmt.Errorf("%w: invalid credentials", ErrValidation)
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", fmt.Errorf("%w: invalid credentials", ErrValidation)
	}

	token, err := newSessionToken()
	if err != nil {
		return "", err
	}
	if err := s.sessions.SetAdminSession(token, username, s.sessionTTL); err != nil {
		return "", fmt.Errorf("%w: storing session: %v", ErrPersistence, err)
	}
	return token, nil
}

// Validate resolves a session token to its username.
func (s *authService) Validate(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: missing session token", ErrValidation)
	}
	username, err := s.sessions.GetAdminSession(token)
	if err != nil {
		return "", fmt.Errorf("%w: session expired or unknown", ErrNotFound)
	}
	return username, nil
}

func (s *authService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteAdminSession(token)
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
