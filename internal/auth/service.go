// Package auth implements the admin session gate: a single configured
// admin identity whose authentication state travels as an opaque,
// server-side session token in an HTTP-only cookie.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/example/kyoushitsu/internal/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotConfigured      = errors.New("admin credentials are not configured")
)

// Service validates logins against the single configured admin identity.
// The plaintext password from the environment is hashed once at startup;
// only the hash is kept in memory afterwards.
type Service struct {
	username     string
	passwordHash []byte
}

// NewService hashes the configured admin password and returns the service.
func NewService(cfg config.Auth) (*Service, error) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil, ErrNotConfigured
	}

	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &Service{
		username:     cfg.AdminUsername,
		passwordHash: hash,
	}, nil
}

// Authenticate checks the supplied credentials against the admin identity.
// Both checks always run so a wrong username costs the same as a wrong
// password.
func (s *Service) Authenticate(username, password string) error {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))

	if !usernameMatch || passwordErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}
