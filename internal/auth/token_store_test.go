package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/joestump/joe-bookmarks/internal/auth"
	"github.com/joestump/joe-bookmarks/internal/store"
	"github.com/joestump/joe-bookmarks/internal/testutil"
)

const testUser = "user-1"

func newTokenStore(t *testing.T) *auth.SQLTokenStore {
	t.Helper()
	return auth.NewSQLTokenStore(testutil.NewTestDB(t))
}

func TestGenerateToken(t *testing.T) {
	plaintext, hash, err := auth.GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if !strings.HasPrefix(plaintext, auth.TokenPrefix) || len(plaintext) < 40 {
		t.Errorf("plaintext = %q", plaintext)
	}
	if len(hash) != 64 {
		t.Errorf("hash length = %d, want 64", len(hash))
	}
	if got := auth.HashToken(plaintext); got != hash {
		t.Errorf("HashToken = %q, want %q", got, hash)
	}

	other, _, _ := auth.GenerateToken()
	if other == plaintext {
		t.Error("two tokens are identical")
	}
}

func TestTokenStore_CreateAndGetByHash(t *testing.T) {
	ts := newTokenStore(t)
	ctx := context.Background()
	_, hash, _ := auth.GenerateToken()

	rec, err := ts.Create(ctx, testUser, "laptop", hash, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID == "" || rec.UserID != testUser || rec.Name != "laptop" {
		t.Errorf("Create = %+v", rec)
	}

	got, err := ts.GetByHash(ctx, hash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if got.ID != rec.ID || got.LastUsedAt.Valid || got.ExpiresAt.Valid || got.RevokedAt.Valid {
		t.Errorf("GetByHash = %+v", got)
	}
	if !got.Active(time.Now()) {
		t.Error("fresh token is not active")
	}
}

func TestTokenStore_GetByHash_NotFound(t *testing.T) {
	ts := newTokenStore(t)
	_, err := ts.GetByHash(context.Background(), "nonexistent-hash")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetByHash(nonexistent) = %v, want ErrNotFound", err)
	}
}

func TestTokenStore_Revoke(t *testing.T) {
	ts := newTokenStore(t)
	ctx := context.Background()
	_, hash, _ := auth.GenerateToken()
	rec, err := ts.Create(ctx, testUser, "revoke-me", hash, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := ts.Revoke(ctx, rec.ID, "someone-else"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Revoke by non-owner = %v, want ErrNotFound", err)
	}
	if err := ts.Revoke(ctx, rec.ID, testUser); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if err := ts.Revoke(ctx, rec.ID, testUser); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second Revoke = %v, want ErrNotFound", err)
	}

	got, err := ts.GetByHash(ctx, hash)
	if err != nil {
		t.Fatalf("GetByHash after revoke: %v", err)
	}
	if !got.RevokedAt.Valid || got.Active(time.Now()) {
		t.Error("revoked token still active")
	}
}

func TestTokenStore_ExpiredToken(t *testing.T) {
	ts := newTokenStore(t)
	ctx := context.Background()
	_, hash, _ := auth.GenerateToken()
	expired := time.Now().Add(-time.Hour)
	if _, err := ts.Create(ctx, testUser, "expired", hash, &expired); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := ts.GetByHash(ctx, hash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if !got.ExpiresAt.Valid || got.Active(time.Now()) {
		t.Errorf("expired token = %+v, want inactive", got)
	}
}

func TestTokenStore_ListByUser(t *testing.T) {
	ts := newTokenStore(t)
	ctx := context.Background()

	for _, name := range []string{"one", "two"} {
		_, hash, _ := auth.GenerateToken()
		if _, err := ts.Create(ctx, testUser, name, hash, nil); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}
	_, hash, _ := auth.GenerateToken()
	if _, err := ts.Create(ctx, "user-2", "other", hash, nil); err != nil {
		t.Fatalf("Create other: %v", err)
	}

	records, err := ts.ListByUser(ctx, testUser)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}

	none, err := ts.ListByUser(ctx, "nobody")
	if err != nil {
		t.Fatalf("ListByUser(nobody): %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("ListByUser(nobody) = %#v, want empty slice", none)
	}
}

func TestTokenStore_UpdateLastUsed(t *testing.T) {
	ts := newTokenStore(t)
	ctx := context.Background()
	_, hash, _ := auth.GenerateToken()
	rec, err := ts.Create(ctx, testUser, "track-usage", hash, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := ts.UpdateLastUsed(ctx, rec.ID); err != nil {
		t.Fatalf("UpdateLastUsed: %v", err)
	}
	got, err := ts.GetByHash(ctx, hash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if !got.LastUsedAt.Valid {
		t.Error("LastUsedAt not set after update")
	}
}
