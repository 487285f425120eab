package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by operator access tokens.
type Claims struct {
	UserID uuid.UUID `json:"sub"`
	Roles  []string  `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole reports whether the claims grant role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// TokenService issues and validates access tokens for the operator endpoints.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a subject with roles.
	GenerateAccessToken(userID uuid.UUID, roles []string, ttl time.Duration) (string, error)

	// ValidateToken checks signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}
