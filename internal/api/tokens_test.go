package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/joestump/joe-bookmarks/internal/api"
	"github.com/joestump/joe-bookmarks/internal/auth"
)

func TestTokens_CreateListRevoke(t *testing.T) {
	env := newTestEnv(t)
	alice := jwtFor(t, env, "alice")

	rec := do(t, env, http.MethodPost, "/tokens", alice, map[string]string{"name": "laptop", "expires_in": "720h"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d; body: %s", rec.Code, rec.Body.String())
	}
	created := decode[api.TokenCreatedResponse](t, rec)
	if !strings.HasPrefix(created.Token, auth.TokenPrefix) {
		t.Errorf("token = %q, want %s prefix", created.Token, auth.TokenPrefix)
	}
	if created.Name != "laptop" || created.ExpiresAt == nil {
		t.Errorf("created = %+v", created)
	}
	if d := time.Until(*created.ExpiresAt); d < 719*time.Hour || d > 721*time.Hour {
		t.Errorf("expires in %v, want about 720h", d)
	}

	// The new token authenticates as alice.
	rec = do(t, env, http.MethodGet, "/tokens", created.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list with new token: status = %d", rec.Code)
	}
	list := decode[api.TokenListResponse](t, rec)
	if len(list.Tokens) != 1 || list.Tokens[0].ID != created.ID {
		t.Fatalf("list = %+v", list)
	}
	if strings.Contains(rec.Body.String(), created.Token) {
		t.Error("list response leaks the plaintext token")
	}

	// Bob cannot revoke alice's token.
	rec = do(t, env, http.MethodDelete, "/tokens/"+created.ID, jwtFor(t, env, "bob"), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("foreign revoke: status = %d, want 404", rec.Code)
	}

	rec = do(t, env, http.MethodDelete, "/tokens/"+created.ID, alice, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("revoke: status = %d; body: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, env, http.MethodGet, "/tokens", created.Token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("revoked token: status = %d, want 401", rec.Code)
	}
}

func TestTokens_Create_Validation(t *testing.T) {
	env := newTestEnv(t)
	alice := jwtFor(t, env, "alice")

	tests := []struct {
		name string
		body any
		want string
	}{
		{name: "missing name", body: map[string]string{}, want: `{"error":"name is required"}`},
		{name: "blank name", body: map[string]string{"name": "   "}, want: `{"error":"name is required"}`},
		{name: "bad duration", body: map[string]string{"name": "x", "expires_in": "soon"}, want: `{"error":"expires_in must be a positive duration"}`},
		{name: "negative duration", body: map[string]string{"name": "x", "expires_in": "-1h"}, want: `{"error":"expires_in must be a positive duration"}`},
		{name: "malformed", body: `{`, want: `{"error":"Invalid request body"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, env, http.MethodPost, "/tokens", alice, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.want {
				t.Errorf("body = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTokens_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := do(t, env, method, "/tokens", "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s /tokens: status = %d, want 401", method, rec.Code)
		}
	}
}
