package api

import (
	"net/http"
	"strconv"

	"github.com/joestump/joe-bookmarks/internal/bookmarks"
)

// parsePagination reads page and per_page from the query string. Missing or
// non-numeric values fall back to the defaults; the service caps per_page.
func parsePagination(r *http.Request) (page, perPage int) {
	q := r.URL.Query()
	page = bookmarks.DefaultPage
	perPage = bookmarks.DefaultPerPage

	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		page = p
	}
	if pp, err := strconv.Atoi(q.Get("per_page")); err == nil && pp > 0 {
		perPage = pp
	}
	return page, perPage
}
