package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for tokens minted or verified by the service.
type Claims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// TokenProvider supplies the bearer token attached to routing calls.
type TokenProvider interface {
	// Token returns the token for the current call. An empty token with a nil
	// error means no token is available.
	Token(ctx context.Context) (string, error)
}

// TokenService mints and validates JWTs signed with the service secret.
type TokenService interface {
	// GenerateServiceToken creates a short-lived token for service-to-service calls.
	GenerateServiceToken(subject string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetServiceTokenDuration returns the configured lifetime of service tokens.
	GetServiceTokenDuration() time.Duration
}
