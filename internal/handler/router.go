package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/joestump/joe-bookmarks/docs/swagger"
	"github.com/joestump/joe-bookmarks/internal/bookmarks"
	"github.com/joestump/joe-bookmarks/internal/logger"
)

// Deps holds everything the top-level router needs.
type Deps struct {
	API        http.Handler // mounted at /api/v1
	Redirector *bookmarks.Redirector
	DB         Pinger
	Logger     logger.Logger
}

// NewRouter assembles the root router. Named routes are registered before
// the short url catch-all so they always win.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(deps.Logger))
	r.Use(recoverer(deps.Logger))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Method(http.MethodGet, "/healthz", NewHealthHandler(deps.DB, deps.Logger))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/api/docs/*", httpSwagger.WrapHandler)
	r.Mount("/api/v1", deps.API)

	r.Get("/{short_url}", NewResolveHandler(deps.Redirector, deps.Logger).Resolve)

	return r
}
