package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RedirectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "joebookmarks_redirects_total",
		Help: "Short url resolution attempts by outcome (found, not_found, error).",
	}, []string{"status"})

	RedirectDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "joebookmarks_redirect_duration_seconds",
		Help:    "Time from request receipt to redirect response.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
	})

	CacheOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "joebookmarks_url_cache_operations_total",
		Help: "Redirect url cache lookups by result (hit, miss, error).",
	}, []string{"result"})

	BookmarksCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "joebookmarks_bookmarks_created_total",
		Help: "Bookmarks successfully created.",
	})

	BookmarksTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "joebookmarks_bookmarks_total",
		Help: "Total number of bookmarks in the database.",
	})

	AuthFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "joebookmarks_auth_failures_total",
		Help: "API requests rejected with 401.",
	})
)
