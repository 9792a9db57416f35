// Package bookmarks holds the bookmark rules: url validation, ownership,
// pagination, stats and short-code resolution. Every owner-scoped operation
// takes the caller's user id explicitly.
package bookmarks

import (
	"context"
	"errors"

	"github.com/joestump/joe-bookmarks/internal/errx"
	"github.com/joestump/joe-bookmarks/internal/logger"
	"github.com/joestump/joe-bookmarks/internal/metrics"
	"github.com/joestump/joe-bookmarks/internal/store"
)

var (
	ErrInvalidURL   = errors.New("invalid url")
	ErrDuplicateURL = errors.New("bookmark already exists")
	ErrNotFound     = errors.New("bookmark not found")
)

// Store is the persistence the service needs. *store.BookmarkStore satisfies it.
type Store interface {
	Create(ctx context.Context, userID, url, body string) (*store.Bookmark, error)
	GetByOwner(ctx context.Context, id int64, userID string) (*store.Bookmark, error)
	ListByOwner(ctx context.Context, userID string, page, perPage int) ([]*store.Bookmark, int, error)
	ListAllByOwner(ctx context.Context, userID string) ([]*store.Bookmark, error)
	Update(ctx context.Context, id int64, userID, url, body string) (*store.Bookmark, error)
	Delete(ctx context.Context, id int64, userID string) error
}

// Page is one page of an owner's bookmarks.
type Page struct {
	Items []*store.Bookmark
	Meta  Meta
}

// Summary is the per-bookmark visit report returned by Stats.
type Summary struct {
	ID       int64
	URL      string
	ShortURL string
	Visits   int64
}

type Service struct {
	store Store
	cache URLCache
	log   logger.Logger
}

// NewService wires the service. A nil cache disables redirect cache eviction.
func NewService(st Store, cache URLCache, log logger.Logger) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	return &Service{store: st, cache: cache, log: log}
}

func (s *Service) Create(ctx context.Context, uid, url, body string) (*store.Bookmark, error) {
	const op = "bookmarks.Create"
	if err := ValidateURL(url); err != nil {
		return nil, errx.E(op, errx.Invalid, err)
	}

	b, err := s.store.Create(ctx, uid, url, body)
	switch {
	case errors.Is(err, store.ErrURLTaken):
		return nil, errx.E(op, errx.Conflict, ErrDuplicateURL)
	case err != nil:
		return nil, errx.E(op, errx.Internal, err)
	}

	metrics.BookmarksCreatedTotal.Inc()
	s.log.Debug("bookmark created",
		logger.Int64("id", b.ID),
		logger.String("short_url", b.ShortURL),
		logger.String("user_id", uid))
	return b, nil
}

func (s *Service) Get(ctx context.Context, uid string, id int64) (*store.Bookmark, error) {
	const op = "bookmarks.Get"
	b, err := s.store.GetByOwner(ctx, id, uid)
	if err != nil {
		return nil, storeErr(op, err)
	}
	return b, nil
}

// List returns the requested page of uid's bookmarks in creation order.
// page and perPage are normalized with NormalizePaging first.
func (s *Service) List(ctx context.Context, uid string, page, perPage int) (*Page, error) {
	const op = "bookmarks.List"
	page, perPage = NormalizePaging(page, perPage)

	items, total, err := s.store.ListByOwner(ctx, uid, page, perPage)
	if err != nil {
		return nil, errx.E(op, errx.Internal, err)
	}
	return &Page{Items: items, Meta: NewMeta(page, perPage, total)}, nil
}

// Update replaces url and body. Ownership is checked before the url so a
// foreign id reports NotFound, never Invalid.
func (s *Service) Update(ctx context.Context, uid string, id int64, url, body string) (*store.Bookmark, error) {
	const op = "bookmarks.Update"
	if _, err := s.store.GetByOwner(ctx, id, uid); err != nil {
		return nil, storeErr(op, err)
	}
	if err := ValidateURL(url); err != nil {
		return nil, errx.E(op, errx.Invalid, err)
	}

	b, err := s.store.Update(ctx, id, uid, url, body)
	switch {
	case errors.Is(err, store.ErrURLTaken):
		return nil, errx.E(op, errx.Conflict, ErrDuplicateURL)
	case err != nil:
		return nil, storeErr(op, err)
	}

	s.evict(ctx, b.ShortURL)
	return b, nil
}

func (s *Service) Delete(ctx context.Context, uid string, id int64) error {
	const op = "bookmarks.Delete"
	b, err := s.store.GetByOwner(ctx, id, uid)
	if err != nil {
		return storeErr(op, err)
	}
	if err := s.store.Delete(ctx, id, uid); err != nil {
		return storeErr(op, err)
	}
	s.evict(ctx, b.ShortURL)
	return nil
}

// Stats reports visits for every bookmark uid owns, in creation order.
func (s *Service) Stats(ctx context.Context, uid string) ([]Summary, error) {
	const op = "bookmarks.Stats"
	items, err := s.store.ListAllByOwner(ctx, uid)
	if err != nil {
		return nil, errx.E(op, errx.Internal, err)
	}
	out := make([]Summary, 0, len(items))
	for _, b := range items {
		out = append(out, Summary{ID: b.ID, URL: b.URL, ShortURL: b.ShortURL, Visits: b.Visits})
	}
	return out, nil
}

// evict drops a code from the redirect cache. Failures only delay the
// change until the entry's TTL expires, so they are logged, not returned.
func (s *Service) evict(ctx context.Context, code string) {
	if err := s.cache.Delete(ctx, code); err != nil {
		s.log.Warn("evict cached short url", logger.String("short_url", code), logger.Error(err))
	}
}

func storeErr(op string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return errx.E(op, errx.NotFound, ErrNotFound)
	}
	return errx.E(op, errx.Internal, err)
}
