package auth

import (
	"context"
	"errors"
	"fmt"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
)

// OIDCVerifier accepts ID tokens issued by an external OpenID Connect
// provider for the configured client. The token subject becomes the user id.
type OIDCVerifier struct {
	verifier *gooidc.IDTokenVerifier
}

// NewOIDCVerifier performs provider discovery against issuer.
func NewOIDCVerifier(ctx context.Context, issuer, clientID string) (*OIDCVerifier, error) {
	provider, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("OIDC provider discovery failed for %s: %w", issuer, err)
	}
	return &OIDCVerifier{verifier: provider.Verifier(&gooidc.Config{ClientID: clientID})}, nil
}

func (v *OIDCVerifier) Verify(ctx context.Context, raw string) (Identity, error) {
	tok, err := v.verifier.Verify(ctx, raw)
	if err != nil {
		return Identity{}, fmt.Errorf("id_token verification: %w", err)
	}
	if tok.Subject == "" {
		return Identity{}, errors.New("id_token has no subject")
	}
	return Identity{UserID: tok.Subject, Source: SourceOIDC}, nil
}
