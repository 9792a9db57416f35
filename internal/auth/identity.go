// Package auth turns bearer credentials into a user id. Three kinds of
// credential are accepted: HS256 JWTs minted by this service, personal
// access tokens, and (when configured) OIDC ID tokens.
package auth

import "context"

// Identity sources.
const (
	SourceJWT   = "jwt"
	SourceToken = "token"
	SourceOIDC  = "oidc"
)

// Identity is the authenticated caller.
type Identity struct {
	UserID string
	Source string
}

type contextKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

// UserIDFromContext returns the caller's user id, or "" if the request was
// not authenticated.
func UserIDFromContext(ctx context.Context) string {
	id, _ := IdentityFromContext(ctx)
	return id.UserID
}
