package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateBookmarks, downCreateBookmarks)
}

// short_url is NULL between the insert and the code assignment inside the
// create transaction; unique indexes accept any number of NULLs.
func upCreateBookmarks(ctx context.Context, tx *sql.Tx) error {
	err := execAll(bookmarksUpStmts(), func(stmt string) error {
		_, err := tx.ExecContext(ctx, stmt)
		return err
	})
	if err != nil {
		return fmt.Errorf("create bookmarks table: %w", err)
	}
	return nil
}

func downCreateBookmarks(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS bookmarks`)
	return err
}

func bookmarksUpStmts() []string {
	switch dialect {
	case "postgres":
		return []string{
			`CREATE TABLE IF NOT EXISTS bookmarks (
    id         BIGSERIAL PRIMARY KEY,
    url        TEXT NOT NULL,
    short_url  TEXT,
    body       TEXT NOT NULL DEFAULT '',
    user_id    TEXT NOT NULL,
    visits     BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS bookmarks_url_idx ON bookmarks (url)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS bookmarks_short_url_idx ON bookmarks (short_url)`,
			`CREATE INDEX IF NOT EXISTS bookmarks_user_id_idx ON bookmarks (user_id, id)`,
		}
	case "mysql":
		// InnoDB caps index keys at 3072 bytes, too short for a 2048-character
		// utf8mb4 url, so uniqueness is enforced on its SHA-256 instead.
		return []string{
			`CREATE TABLE IF NOT EXISTS bookmarks (
    id         BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
    url        VARCHAR(2048) NOT NULL,
    url_hash   BINARY(32) AS (UNHEX(SHA2(url, 256))) STORED NOT NULL,
    short_url  VARCHAR(32) NULL,
    body       TEXT NOT NULL,
    user_id    VARCHAR(255) NOT NULL,
    visits     BIGINT NOT NULL DEFAULT 0,
    created_at DATETIME(6) NOT NULL,
    updated_at DATETIME(6) NOT NULL,
    UNIQUE KEY bookmarks_url_idx (url_hash),
    UNIQUE KEY bookmarks_short_url_idx (short_url),
    KEY bookmarks_user_id_idx (user_id, id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		}
	default: // sqlite3
		return []string{
			`CREATE TABLE IF NOT EXISTS bookmarks (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    url        TEXT NOT NULL,
    short_url  TEXT,
    body       TEXT NOT NULL DEFAULT '',
    user_id    TEXT NOT NULL,
    visits     INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS bookmarks_url_idx ON bookmarks (url)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS bookmarks_short_url_idx ON bookmarks (short_url)`,
			`CREATE INDEX IF NOT EXISTS bookmarks_user_id_idx ON bookmarks (user_id, id)`,
		}
	}
}
