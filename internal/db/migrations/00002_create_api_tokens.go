package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateAPITokens, downCreateAPITokens)
}

func upCreateAPITokens(ctx context.Context, tx *sql.Tx) error {
	err := execAll(apiTokensUpStmts(), func(stmt string) error {
		_, err := tx.ExecContext(ctx, stmt)
		return err
	})
	if err != nil {
		return fmt.Errorf("create api_tokens table: %w", err)
	}
	return nil
}

func downCreateAPITokens(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS api_tokens`)
	return err
}

func apiTokensUpStmts() []string {
	switch dialect {
	case "postgres":
		return []string{
			`CREATE TABLE IF NOT EXISTS api_tokens (
    id           TEXT PRIMARY KEY,
    user_id      TEXT NOT NULL,
    name         TEXT NOT NULL,
    token_hash   TEXT NOT NULL,
    last_used_at TIMESTAMPTZ,
    expires_at   TIMESTAMPTZ,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    revoked_at   TIMESTAMPTZ
)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS api_tokens_hash_idx ON api_tokens (token_hash)`,
			`CREATE INDEX IF NOT EXISTS api_tokens_user_id_idx ON api_tokens (user_id)`,
		}
	case "mysql":
		return []string{
			`CREATE TABLE IF NOT EXISTS api_tokens (
    id           VARCHAR(36) NOT NULL PRIMARY KEY,
    user_id      VARCHAR(255) NOT NULL,
    name         VARCHAR(255) NOT NULL,
    token_hash   CHAR(64) NOT NULL,
    last_used_at DATETIME(6) NULL,
    expires_at   DATETIME(6) NULL,
    created_at   DATETIME(6) NOT NULL,
    revoked_at   DATETIME(6) NULL,
    UNIQUE KEY api_tokens_hash_idx (token_hash),
    KEY api_tokens_user_id_idx (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		}
	default: // sqlite3
		return []string{
			`CREATE TABLE IF NOT EXISTS api_tokens (
    id           TEXT PRIMARY KEY,
    user_id      TEXT NOT NULL,
    name         TEXT NOT NULL,
    token_hash   TEXT NOT NULL,
    last_used_at DATETIME,
    expires_at   DATETIME,
    created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    revoked_at   DATETIME
)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS api_tokens_hash_idx ON api_tokens (token_hash)`,
			`CREATE INDEX IF NOT EXISTS api_tokens_user_id_idx ON api_tokens (user_id)`,
		}
	}
}
