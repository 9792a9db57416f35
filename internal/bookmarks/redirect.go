package bookmarks

import (
	"context"
	"errors"

	"github.com/joestump/joe-bookmarks/internal/errx"
	"github.com/joestump/joe-bookmarks/internal/logger"
	"github.com/joestump/joe-bookmarks/internal/metrics"
	"github.com/joestump/joe-bookmarks/internal/shortcode"
	"github.com/joestump/joe-bookmarks/internal/store"
)

// RedirectStore is the persistence the redirect path needs.
type RedirectStore interface {
	IncrementVisits(ctx context.Context, code string) error
	GetByShortURL(ctx context.Context, code string) (*store.Bookmark, error)
}

// Redirector resolves short codes to target urls. It is unauthenticated and
// owner-agnostic.
type Redirector struct {
	store RedirectStore
	cache URLCache
	log   logger.Logger
}

// NewRedirector wires the redirector. A nil cache reads every url from the store.
func NewRedirector(st RedirectStore, cache URLCache, log logger.Logger) *Redirector {
	if cache == nil {
		cache = noopCache{}
	}
	return &Redirector{store: st, cache: cache, log: log}
}

// Resolve counts one visit for code and returns its target url. Every call
// counts, including repeats from the same client.
func (r *Redirector) Resolve(ctx context.Context, code string) (string, error) {
	const op = "bookmarks.Resolve"
	if err := shortcode.Validate(code); err != nil {
		metrics.RedirectsTotal.WithLabelValues("not_found").Inc()
		return "", errx.E(op, errx.NotFound, ErrNotFound)
	}

	if err := r.store.IncrementVisits(ctx, code); err != nil {
		return "", r.fail(op, err)
	}

	url, ok, err := r.cache.Get(ctx, code)
	switch {
	case err != nil:
		metrics.CacheOperations.WithLabelValues("error").Inc()
		r.log.Warn("read cached short url", logger.String("short_url", code), logger.Error(err))
	case ok:
		metrics.CacheOperations.WithLabelValues("hit").Inc()
		metrics.RedirectsTotal.WithLabelValues("found").Inc()
		return url, nil
	default:
		metrics.CacheOperations.WithLabelValues("miss").Inc()
	}

	b, err := r.store.GetByShortURL(ctx, code)
	if err != nil {
		return "", r.fail(op, err)
	}
	r.fill(ctx, code, b.URL)

	metrics.RedirectsTotal.WithLabelValues("found").Inc()
	return b.URL, nil
}

// fill caches url for code, then reads the row again. An edit or delete that
// committed between the first read and the Set may have evicted before the
// Set landed, so a changed or missing row drops the entry again. Evictions
// run after commit, which makes the second read enough to close the gap.
func (r *Redirector) fill(ctx context.Context, code, url string) {
	if err := r.cache.Set(ctx, code, url); err != nil {
		r.log.Warn("cache short url", logger.String("short_url", code), logger.Error(err))
		return
	}

	cur, err := r.store.GetByShortURL(ctx, code)
	if err == nil && cur.URL == url {
		return
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		r.log.Warn("recheck cached short url", logger.String("short_url", code), logger.Error(err))
	}
	if err := r.cache.Delete(ctx, code); err != nil {
		r.log.Warn("drop stale cached short url", logger.String("short_url", code), logger.Error(err))
	}
}

func (r *Redirector) fail(op string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		metrics.RedirectsTotal.WithLabelValues("not_found").Inc()
		return errx.E(op, errx.NotFound, ErrNotFound)
	}
	metrics.RedirectsTotal.WithLabelValues("error").Inc()
	return errx.E(op, errx.Internal, err)
}
