package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/joestump/joe-bookmarks/internal/logger"
	"github.com/joestump/joe-bookmarks/internal/metrics"
)

var errNotPersonalToken = errors.New("not a personal access token")

// Verifier turns a raw bearer credential into an Identity.
type Verifier interface {
	Verify(ctx context.Context, raw string) (Identity, error)
}

// PATVerifier checks personal access tokens against the token store and
// records their last use in the background.
type PATVerifier struct {
	tokens TokenStore
	log    logger.Logger
	now    func() time.Time
}

func NewPATVerifier(tokens TokenStore, log logger.Logger) *PATVerifier {
	return &PATVerifier{tokens: tokens, log: log, now: time.Now}
}

func (v *PATVerifier) Verify(ctx context.Context, raw string) (Identity, error) {
	if !strings.HasPrefix(raw, TokenPrefix) {
		return Identity{}, errNotPersonalToken
	}
	rec, err := v.tokens.GetByHash(ctx, HashToken(raw))
	if err != nil {
		return Identity{}, err
	}
	if !rec.Active(v.now()) {
		return Identity{}, errors.New("token revoked or expired")
	}

	go func(id string) {
		if err := v.tokens.UpdateLastUsed(context.Background(), id); err != nil {
			v.log.Debug("update token last_used_at", logger.String("token_id", id), logger.Error(err))
		}
	}(rec.ID)

	return Identity{UserID: rec.UserID, Source: SourceToken}, nil
}

// BearerAuth authenticates API requests from the Authorization header.
// Verifiers are tried in order and the first success wins.
type BearerAuth struct {
	verifiers []Verifier
	log       logger.Logger
}

func NewBearerAuth(log logger.Logger, verifiers ...Verifier) *BearerAuth {
	return &BearerAuth{verifiers: verifiers, log: log}
}

// Authenticate injects the caller's Identity into the request context or
// answers 401 {"error":"unauthorized"}.
func (a *BearerAuth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			writeUnauthorized(w)
			return
		}

		for _, v := range a.verifiers {
			id, err := v.Verify(r.Context(), raw)
			if err != nil {
				continue
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
			return
		}

		a.log.Debug("bearer credential rejected", logger.String("path", r.URL.Path))
		writeUnauthorized(w)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeUnauthorized(w http.ResponseWriter) {
	metrics.AuthFailuresTotal.Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
