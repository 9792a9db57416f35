package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/joestump/joe-bookmarks/internal/api"
	"github.com/joestump/joe-bookmarks/internal/auth"
	"github.com/joestump/joe-bookmarks/internal/bookmarks"
	"github.com/joestump/joe-bookmarks/internal/logger"
	"github.com/joestump/joe-bookmarks/internal/shortcode"
	"github.com/joestump/joe-bookmarks/internal/store"
	"github.com/joestump/joe-bookmarks/internal/testutil"
)

// testEnv wires the full API router over an in-memory database.
type testEnv struct {
	Router     http.Handler
	Bookmarks  *store.BookmarkStore
	Redirector *bookmarks.Redirector
	TokenStore *auth.SQLTokenStore
	JWT        *auth.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)
	log := logger.NewNop()

	gen, err := shortcode.New("", shortcode.DefaultMinLength)
	if err != nil {
		t.Fatalf("shortcode.New: %v", err)
	}
	clock := testutil.NewClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	bs := store.NewBookmarkStore(db, gen, store.WithClock(clock.Now))
	ts := auth.NewSQLTokenStore(db)
	jwtSvc, err := auth.NewJWTService("test-secret", "joe-bookmarks", time.Hour)
	if err != nil {
		t.Fatalf("NewJWTService: %v", err)
	}

	router := api.NewAPIRouter(api.Deps{
		Auth:      auth.NewBearerAuth(log, jwtSvc, auth.NewPATVerifier(ts, log)),
		Bookmarks: bookmarks.NewService(bs, nil, log),
		Tokens:    ts,
		Logger:    log,
	})
	return &testEnv{
		Router:     router,
		Bookmarks:  bs,
		Redirector: bookmarks.NewRedirector(bs, nil, log),
		TokenStore: ts,
		JWT:        jwtSvc,
	}
}

// jwtFor signs an identity token for userID.
func jwtFor(t *testing.T, env *testEnv, userID string) string {
	t.Helper()
	tok, err := env.JWT.Sign(userID)
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}
	return tok
}

// seedToken creates a personal access token for userID and returns the plaintext.
func seedToken(t *testing.T, env *testEnv, userID string) string {
	t.Helper()
	plaintext, hash, err := auth.GenerateToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := env.TokenStore.Create(context.Background(), userID, "test-token", hash, nil); err != nil {
		t.Fatalf("create token: %v", err)
	}
	return plaintext
}

// do sends a request through the router. body may be nil, a string (sent
// raw) or any value (JSON-encoded).
func do(t *testing.T, env *testEnv, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		buf, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode %T: %v (body %q)", v, err, rec.Body.String())
	}
	return v
}
