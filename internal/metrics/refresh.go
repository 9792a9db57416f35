package metrics

import (
	"context"
	"time"

	"github.com/joestump/joe-bookmarks/internal/logger"
)

// Counter reports the number of stored bookmarks.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// RefreshBookmarksTotal sets BookmarksTotal now and then every interval until
// ctx is cancelled. It blocks; run it in its own goroutine.
func RefreshBookmarksTotal(ctx context.Context, c Counter, interval time.Duration, log logger.Logger) {
	refresh := func() {
		n, err := c.Count(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.Warn("refresh bookmarks gauge", logger.Error(err))
			}
			return
		}
		BookmarksTotal.Set(float64(n))
	}

	refresh()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}
