package auth

import "context"

type contextKey struct{}

// WithUser stashes the logged-in username into the request context.
func WithUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, contextKey{}, username)
}

// UserFromContext returns the username put there by the auth middleware.
func UserFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(contextKey{}).(string)
	return username, ok && username != ""
}
