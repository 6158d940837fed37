package middleware

import (
	"strings"

	"itinerary/config"
	"itinerary/internal/delivery/api/response"
	deliverycontext "itinerary/internal/delivery/context"
	"itinerary/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Config *config.Config
	Tokens service.TokenService `optional:"true"`
}

// AuthMiddleware forwards the caller's bearer token to the use cases and,
// when auth.verifyInbound is set, rejects requests whose token does not validate.
type AuthMiddleware struct {
	tokens service.TokenService
	verify bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) (*AuthMiddleware, error) {
	verify := params.Config.Auth != nil && params.Config.Auth.VerifyInbound
	if verify && params.Tokens == nil {
		return nil, errors.New("auth.verifyInbound requires a token service")
	}

	return &AuthMiddleware{tokens: params.Tokens, verify: verify}, nil
}

// Authenticate stores the bearer token on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, present, wellFormed := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))

		if m.verify {
			if !present {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
			}
			if !wellFormed {
				return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
			}
			if _, err := m.tokens.ValidateToken(token); err != nil {
				return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
			}
		}

		if wellFormed {
			ctx := deliverycontext.WithBearerToken(c.Request().Context(), token)
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

func bearerToken(header string) (token string, present, wellFormed bool) {
	if header == "" {
		return "", false, false
	}

	token, ok := strings.CutPrefix(header, bearerPrefix)
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return "", true, false
	}

	return token, true, true
}
