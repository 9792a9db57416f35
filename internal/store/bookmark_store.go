package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/joestump/joe-bookmarks/internal/shortcode"
)

// Bookmark represents a row in the bookmarks table.
type Bookmark struct {
	ID        int64     `db:"id"`
	URL       string    `db:"url"`
	ShortURL  string    `db:"short_url"`
	Body      string    `db:"body"`
	UserID    string    `db:"user_id"`
	Visits    int64     `db:"visits"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// short_url is only NULL inside the create transaction.
const bookmarkColumns = `id, url, COALESCE(short_url, '') AS short_url, body, user_id, visits, created_at, updated_at`

// BookmarkStore is the sqlx-backed bookmark repository. Every read and write
// except the redirect path is scoped to an owner.
type BookmarkStore struct {
	db    *sqlx.DB
	codes *shortcode.Generator
	now   func() time.Time
}

// Option configures a BookmarkStore.
type Option func(*BookmarkStore)

// WithClock replaces time.Now as the source of created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *BookmarkStore) { s.now = now }
}

func NewBookmarkStore(db *sqlx.DB, codes *shortcode.Generator, opts ...Option) *BookmarkStore {
	s := &BookmarkStore{db: db, codes: codes, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp is the current UTC time at the microsecond precision PostgreSQL
// and MySQL store, so values returned from writes match later reads.
func (s *BookmarkStore) timestamp() time.Time { return s.now().UTC().Truncate(time.Microsecond) }

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *BookmarkStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a bookmark and assigns its short code in one transaction.
// The code is derived from the new row id; if a candidate is already taken
// the next attempt is tried, up to shortcode.MaxAttempts.
func (s *BookmarkStore) Create(ctx context.Context, userID, url, body string) (*Bookmark, error) {
	now := s.timestamp()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	id, err := s.insert(ctx, tx, userID, url, body, now)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrURLTaken
		}
		return nil, err
	}

	code, err := s.assignShortURL(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &Bookmark{
		ID:        id,
		URL:       url,
		ShortURL:  code,
		Body:      body,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *BookmarkStore) insert(ctx context.Context, tx *sqlx.Tx, userID, url, body string, now time.Time) (int64, error) {
	const insert = `INSERT INTO bookmarks (url, short_url, body, user_id, visits, created_at, updated_at)
		VALUES (?, NULL, ?, ?, 0, ?, ?)`

	// MySQL has no RETURNING; lib/pq has no LastInsertId.
	if s.db.DriverName() == "mysql" {
		res, err := tx.ExecContext(ctx, s.q(insert), url, body, userID, now, now)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}

	var id int64
	err := tx.QueryRowxContext(ctx, s.q(insert+` RETURNING id`), url, body, userID, now, now).Scan(&id)
	return id, err
}

func (s *BookmarkStore) assignShortURL(ctx context.Context, tx *sqlx.Tx, id int64) (string, error) {
	for attempt := 0; attempt < shortcode.MaxAttempts; attempt++ {
		code, err := s.codes.Generate(id, attempt)
		if err != nil {
			return "", fmt.Errorf("generate short url: %w", err)
		}

		var taken int
		err = tx.GetContext(ctx, &taken, s.q(`SELECT COUNT(*) FROM bookmarks WHERE short_url = ?`), code)
		if err != nil {
			return "", err
		}
		if taken > 0 {
			continue
		}

		_, err = tx.ExecContext(ctx, s.q(`UPDATE bookmarks SET short_url = ? WHERE id = ?`), code, id)
		if err != nil {
			return "", err
		}
		return code, nil
	}
	return "", ErrShortURLUnavailable
}

// GetByOwner returns the bookmark with id if it belongs to userID, or ErrNotFound.
func (s *BookmarkStore) GetByOwner(ctx context.Context, id int64, userID string) (*Bookmark, error) {
	var b Bookmark
	err := s.db.GetContext(ctx, &b, s.q(`SELECT `+bookmarkColumns+` FROM bookmarks WHERE id = ? AND user_id = ?`), id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByShortURL returns the bookmark with the given code regardless of owner.
// Only the redirect path uses it.
func (s *BookmarkStore) GetByShortURL(ctx context.Context, code string) (*Bookmark, error) {
	var b Bookmark
	err := s.db.GetContext(ctx, &b, s.q(`SELECT `+bookmarkColumns+` FROM bookmarks WHERE short_url = ?`), code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByOwner returns one page of userID's bookmarks in id order together
// with the owner's total count. page is 1-based.
func (s *BookmarkStore) ListByOwner(ctx context.Context, userID string, page, perPage int) ([]*Bookmark, int, error) {
	var total int
	err := s.db.GetContext(ctx, &total, s.q(`SELECT COUNT(*) FROM bookmarks WHERE user_id = ?`), userID)
	if err != nil {
		return nil, 0, err
	}

	items := []*Bookmark{}
	offset := (page - 1) * perPage
	if total == 0 || offset >= total {
		return items, total, nil
	}

	err = s.db.SelectContext(ctx, &items, s.q(`
		SELECT `+bookmarkColumns+` FROM bookmarks
		WHERE user_id = ?
		ORDER BY id ASC
		LIMIT ? OFFSET ?
	`), userID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListAllByOwner returns every bookmark of userID in id order.
func (s *BookmarkStore) ListAllByOwner(ctx context.Context, userID string) ([]*Bookmark, error) {
	items := []*Bookmark{}
	err := s.db.SelectContext(ctx, &items, s.q(`
		SELECT `+bookmarkColumns+` FROM bookmarks WHERE user_id = ? ORDER BY id ASC
	`), userID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces url and body of a bookmark owned by userID and refreshes
// updated_at. short_url, visits and created_at are left untouched.
func (s *BookmarkStore) Update(ctx context.Context, id int64, userID, url, body string) (*Bookmark, error) {
	now := s.timestamp()
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE bookmarks SET url = ?, body = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`), url, body, now, id, userID)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrURLTaken
		}
		return nil, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	return s.GetByOwner(ctx, id, userID)
}

// Delete removes a bookmark owned by userID.
func (s *BookmarkStore) Delete(ctx context.Context, id int64, userID string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM bookmarks WHERE id = ? AND user_id = ?`), id, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementVisits adds one to the visit counter of the bookmark with code.
// The increment happens in SQL so concurrent redirects never lose a count.
func (s *BookmarkStore) IncrementVisits(ctx context.Context, code string) error {
	res, err := s.db.ExecContext(ctx, s.q(`UPDATE bookmarks SET visits = visits + 1 WHERE short_url = ?`), code)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of bookmarks across all owners.
func (s *BookmarkStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM bookmarks`)
	return n, err
}
