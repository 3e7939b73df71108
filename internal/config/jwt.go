// Package config provides environment-driven configuration for the resume
// screener: JWT session tokens, password hashing, MongoDB, and upload limits.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// CookieName is the HTTP-only session cookie carrying the JWT.
const CookieName = "auth-token"

// JWTConfig holds configuration for session token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig creates a JWT configuration from environment variables.
// It reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS (default: 168,
// i.e. seven days, matching the session cookie lifetime).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "168"
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
	}
	if expirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", expirationHours)
	}

	return &JWTConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
	}, nil
}

// CookieMaxAge returns the session cookie lifetime in seconds.
func (c *JWTConfig) CookieMaxAge() int {
	return c.ExpirationHours * 3600
}
