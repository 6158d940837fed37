package auth

import (
	"context"

	"itinerary/config"
	deliverycontext "itinerary/internal/delivery/context"
	"itinerary/internal/domain/service"

	"go.uber.org/fx"
)

// chainTokenProvider picks the first available token: the caller's forwarded
// bearer token, the configured static token, then a freshly minted service token.
type chainTokenProvider struct {
	staticToken string
	subject     string
	tokens      service.TokenService
}

// TokenProviderParams holds dependencies for the token provider, injected by Fx.
type TokenProviderParams struct {
	fx.In

	Config *config.Config
	Tokens service.TokenService `optional:"true"`
}

// NewTokenProvider creates the token provider used for routing calls.
func NewTokenProvider(params TokenProviderParams) service.TokenProvider {
	provider := &chainTokenProvider{
		subject: params.Config.Env.ServiceName,
		tokens:  params.Tokens,
	}
	if params.Config.Auth != nil {
		provider.staticToken = params.Config.Auth.StaticToken
	}
	if provider.subject == "" {
		provider.subject = "itinerary"
	}

	return provider
}

func (p *chainTokenProvider) Token(ctx context.Context) (string, error) {
	if token := deliverycontext.GetBearerToken(ctx); token != "" {
		return token, nil
	}

	if p.staticToken != "" {
		return p.staticToken, nil
	}

	if p.tokens == nil {
		return "", nil
	}

	return p.tokens.GenerateServiceToken(p.subject)
}
