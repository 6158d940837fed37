package context

import "context"

// WithBearerToken stores the caller's bearer token so it can be forwarded to
// the routing service.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, KeyBearerToken, token)
}

// GetBearerToken returns the forwarded bearer token or an empty string.
func GetBearerToken(ctx context.Context) string {
	token, _ := ctx.Value(KeyBearerToken).(string)

	return token
}
