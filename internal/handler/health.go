package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/joestump/joe-bookmarks/internal/build"
	"github.com/joestump/joe-bookmarks/internal/logger"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	build.Info
}

// HealthHandler reports liveness plus database reachability.
type HealthHandler struct {
	db      Pinger
	log     logger.Logger
	started time.Time
}

func NewHealthHandler(db Pinger, log logger.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log, started: time.Now()}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{Status: "ok", UptimeSeconds: time.Since(h.started).Seconds(), Info: build.Current()}
	status := http.StatusOK
	if err := h.db.PingContext(ctx); err != nil {
		h.log.Warn("health check: database unreachable", logger.Error(err))
		resp.Status = "unavailable"
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
