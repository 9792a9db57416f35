package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/joe-bookmarks/internal/bookmarks"
	"github.com/joestump/joe-bookmarks/internal/errx"
	"github.com/joestump/joe-bookmarks/internal/logger"
	"github.com/joestump/joe-bookmarks/internal/metrics"
)

// ResolveHandler redirects short urls to their targets. It is public.
type ResolveHandler struct {
	redirector *bookmarks.Redirector
	log        logger.Logger
}

func NewResolveHandler(r *bookmarks.Redirector, log logger.Logger) *ResolveHandler {
	return &ResolveHandler{redirector: r, log: log}
}

// Resolve counts the visit and answers 302 to the bookmark's url, or 404
// {"error":"Not found"} for unknown codes.
func (h *ResolveHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { metrics.RedirectDuration.Observe(time.Since(start).Seconds()) }()

	code := chi.URLParam(r, "short_url")
	url, err := h.redirector.Resolve(r.Context(), code)
	switch {
	case errx.KindOf(err) == errx.NotFound:
		writeError(w, http.StatusNotFound, "Not found")
		return
	case err != nil:
		h.log.Error("resolve short url", logger.String("short_url", code), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, url, http.StatusFound)
}
