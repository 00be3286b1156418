package token

import "context"

type contextKey struct{ name string }

func (c contextKey) String() string { return c.name }

var (
	tokenContextKey   = &contextKey{name: "token"}
	payloadContextKey = &contextKey{name: "token_payload"}
)

// SetToken stores the raw token string in ctx.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// GetToken returns the raw token stored by SetToken.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// SetPayload stores a verified payload in ctx.
func SetPayload[T any](ctx context.Context, payload T) context.Context {
	return context.WithValue(ctx, payloadContextKey, payload)
}

// GetPayload returns the payload stored by SetPayload.
// The second value is false if nothing was stored or the type differs.
func GetPayload[T any](ctx context.Context) (T, bool) {
	payload, ok := ctx.Value(payloadContextKey).(T)
	return payload, ok
}
