// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"itinerary/config"
	"itinerary/internal/domain/service"
)

// ScopeRouteOptimize is granted to service tokens sent to the routing service.
const ScopeRouteOptimize = "routing:optimize"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing service tokens.
	issuer string        // Issuer claim; checked on validation when set.
	ttl    time.Duration // Time-to-live for service tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	svc := &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    5 * time.Minute,
		now:    time.Now,
	}
	if cfg.Auth != nil {
		svc.issuer = cfg.Auth.Issuer
		if cfg.Auth.ServiceTokenTTL > 0 {
			svc.ttl = cfg.Auth.ServiceTokenTTL
		}
	}

	return svc, nil
}

// GenerateServiceToken creates a short-lived token scoped to route optimization.
func (s *jwtService) GenerateServiceToken(subject string) (string, error) {
	now := s.now()
	claims := &service.Claims{
		Scope: ScopeRouteOptimize,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign service token")
	}

	return signed, nil
}

// ValidateToken checks the signature, expiry and issuer of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(s.secret), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.Wrap(err, "failed to parse token structure")
		}

		return nil, errors.Wrap(err, "invalid token")
	}

	return claims, nil
}

// GetServiceTokenDuration returns the configured lifetime of service tokens.
func (s *jwtService) GetServiceTokenDuration() time.Duration {
	return s.ttl
}
