package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/joestump/joe-bookmarks/internal/db"
	_ "modernc.org/sqlite"
)

// NewTestDB opens an in-memory SQLite DB and runs all goose migrations.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	// A file URI with shared cache names the in-memory database after the
	// test so tests stay isolated. A single connection serializes concurrent
	// goroutines (e.g. the async last_used_at update) instead of failing with
	// SQLITE_LOCKED under shared cache.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return conn
}
