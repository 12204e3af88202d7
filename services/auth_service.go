package services

import (
	"time"

	"github.com/cleaningmadeasy/laundry-api/config"
	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues admin access tokens against the configured credentials.
type AuthService struct {
	username string
	password string
	secret   []byte
}

// NewAuthService creates an auth service from the application configuration
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
		secret:   []byte(cfg.JWTSecret),
	}
}

// Login checks the supplied credentials and returns a signed token valid
// for 24 hours. Returns ErrInvalidCredentials on mismatch.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.username || password != s.password {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"role":     "administrator",
		"iat":      now.Unix(),
		"exp":      now.Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
