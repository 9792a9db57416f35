package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/joestump/joe-bookmarks/internal/store"
)

// TokenPrefix marks personal access tokens so the middleware can tell them
// apart from JWTs without a database lookup.
const TokenPrefix = "jb_"

// TokenRecord is a row in api_tokens. Only the SHA-256 of the plaintext is stored.
type TokenRecord struct {
	ID         string       `db:"id"`
	UserID     string       `db:"user_id"`
	Name       string       `db:"name"`
	TokenHash  string       `db:"token_hash"`
	LastUsedAt sql.NullTime `db:"last_used_at"`
	ExpiresAt  sql.NullTime `db:"expires_at"`
	CreatedAt  time.Time    `db:"created_at"`
	RevokedAt  sql.NullTime `db:"revoked_at"`
}

// Active reports whether the token is neither revoked nor expired at now.
func (r *TokenRecord) Active(now time.Time) bool {
	if r.RevokedAt.Valid {
		return false
	}
	return !r.ExpiresAt.Valid || r.ExpiresAt.Time.After(now)
}

// TokenStore persists personal access tokens.
type TokenStore interface {
	Create(ctx context.Context, userID, name, tokenHash string, expiresAt *time.Time) (*TokenRecord, error)
	GetByHash(ctx context.Context, hash string) (*TokenRecord, error)
	ListByUser(ctx context.Context, userID string) ([]*TokenRecord, error)
	Revoke(ctx context.Context, id, userID string) error
	UpdateLastUsed(ctx context.Context, id string) error
}

type SQLTokenStore struct {
	db *sqlx.DB
}

func NewSQLTokenStore(db *sqlx.DB) *SQLTokenStore {
	return &SQLTokenStore{db: db}
}

const tokenColumns = `id, user_id, name, token_hash, last_used_at, expires_at, created_at, revoked_at`

func (s *SQLTokenStore) q(query string) string { return s.db.Rebind(query) }

func (s *SQLTokenStore) Create(ctx context.Context, userID, name, tokenHash string, expiresAt *time.Time) (*TokenRecord, error) {
	rec := &TokenRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		TokenHash: tokenHash,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	if expiresAt != nil {
		rec.ExpiresAt = sql.NullTime{Time: expiresAt.UTC().Truncate(time.Microsecond), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO api_tokens (id, user_id, name, token_hash, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), rec.ID, rec.UserID, rec.Name, rec.TokenHash, rec.ExpiresAt, rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// GetByHash returns the token with the given hash, or store.ErrNotFound.
// Revoked and expired tokens are returned too; callers check Active.
func (s *SQLTokenStore) GetByHash(ctx context.Context, hash string) (*TokenRecord, error) {
	var rec TokenRecord
	err := s.db.GetContext(ctx, &rec, s.q(`SELECT `+tokenColumns+` FROM api_tokens WHERE token_hash = ?`), hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByUser returns the user's tokens, newest first.
func (s *SQLTokenStore) ListByUser(ctx context.Context, userID string) ([]*TokenRecord, error) {
	records := []*TokenRecord{}
	err := s.db.SelectContext(ctx, &records, s.q(`
		SELECT `+tokenColumns+` FROM api_tokens WHERE user_id = ? ORDER BY created_at DESC, id
	`), userID)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Revoke marks a token revoked. It returns store.ErrNotFound when the token
// does not exist, belongs to someone else or is already revoked.
func (s *SQLTokenStore) Revoke(ctx context.Context, id, userID string) error {
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE api_tokens SET revoked_at = ? WHERE id = ? AND user_id = ? AND revoked_at IS NULL
	`), time.Now().UTC(), id, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *SQLTokenStore) UpdateLastUsed(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, s.q(`UPDATE api_tokens SET last_used_at = ? WHERE id = ?`), time.Now().UTC(), id)
	return err
}

// GenerateToken returns a new plaintext token (TokenPrefix followed by the
// base62 form of 32 random bytes) and its hex SHA-256 hash.
func GenerateToken() (plaintext, hash string, err error) {
	b := make([]byte, 32)
	if _, err = rand.Read(b); err != nil {
		return "", "", err
	}

	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	encoded := make([]byte, 0, 44)
	n := new(big.Int).SetBytes(b)
	base := big.NewInt(62)
	mod := new(big.Int)
	for n.Sign() > 0 {
		n.DivMod(n, base, mod)
		encoded = append(encoded, alphabet[mod.Int64()])
	}
	for i, j := 0, len(encoded)-1; i < j; i, j = i+1, j-1 {
		encoded[i], encoded[j] = encoded[j], encoded[i]
	}

	plaintext = TokenPrefix + string(encoded)
	return plaintext, HashToken(plaintext), nil
}

func HashToken(plaintext string) string {
	h := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(h[:])
}
