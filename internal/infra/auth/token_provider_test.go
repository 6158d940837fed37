package auth

import (
	"context"
	"testing"

	"itinerary/config"
	deliverycontext "itinerary/internal/delivery/context"
	mockSvc "itinerary/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenProvider_PrefersForwardedToken(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	provider := NewTokenProvider(TokenProviderParams{
		Config: &config.Config{Auth: &config.AuthConfig{StaticToken: "static"}},
		Tokens: tokens,
	})

	ctx := deliverycontext.WithBearerToken(context.Background(), "forwarded")
	token, err := provider.Token(ctx)

	require.NoError(t, err)
	assert.Equal(t, "forwarded", token)
}

func TestTokenProvider_FallsBackToStaticToken(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	provider := NewTokenProvider(TokenProviderParams{
		Config: &config.Config{Auth: &config.AuthConfig{StaticToken: "static"}},
		Tokens: tokens,
	})

	token, err := provider.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "static", token)
}

func TestTokenProvider_MintsServiceToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "itinerary-api"
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().GenerateServiceToken("itinerary-api").Return("minted", nil)

	provider := NewTokenProvider(TokenProviderParams{Config: cfg, Tokens: tokens})
	token, err := provider.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "minted", token)
}

func TestTokenProvider_NoSource(t *testing.T) {
	provider := NewTokenProvider(TokenProviderParams{Config: &config.Config{}})

	token, err := provider.Token(context.Background())

	require.NoError(t, err)
	assert.Empty(t, token)
}
