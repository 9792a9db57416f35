package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/joe-bookmarks/internal/auth"
	"github.com/joestump/joe-bookmarks/internal/bookmarks"
	"github.com/joestump/joe-bookmarks/internal/logger"
)

// Deps holds everything the /api/v1 router needs.
type Deps struct {
	Auth      *auth.BearerAuth
	Bookmarks *bookmarks.Service
	Tokens    auth.TokenStore
	Logger    logger.Logger
}

// NewAPIRouter creates the chi sub-router mounted at /api/v1. Every route
// requires a bearer credential and answers with application/json.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(jsonContentType)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, msgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	r.Group(func(r chi.Router) {
		r.Use(deps.Auth.Authenticate)
		registerBookmarkRoutes(r, deps.Bookmarks, deps.Logger)
		registerTokenRoutes(r, deps.Tokens, deps.Logger)
	})

	return r
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
