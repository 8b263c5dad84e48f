// Package metrics provides Prometheus instrumentation for the simulator.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SimulationRunsTotal counts simulation runs by outcome.
	SimulationRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ppcsim_simulation_runs_total",
		Help: "Total simulation runs",
	}, []string{"result"})

	// SimulationDuration tracks how long the engine takes for one run.
	SimulationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ppcsim_simulation_duration_seconds",
		Help:    "Engine time per simulated week in seconds",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
	})

	// RecordsTotal counts stored daily performance records by entity type.
	RecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ppcsim_records_total",
		Help: "Daily performance records produced",
	}, []string{"entity_type"})

	// SkippedEntitiesTotal counts entities left out for configuration reasons.
	SkippedEntitiesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ppcsim_skipped_entities_total",
		Help: "Targeting entities skipped because of their configuration",
	})

	// SpendTotal accumulates simulated ad spend.
	SpendTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ppcsim_spend_total",
		Help: "Cumulative simulated ad spend",
	})

	// SummaryCacheTotal counts summary cache lookups by result (hit, miss).
	SummaryCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ppcsim_summary_cache_total",
		Help: "Campaign summary cache lookups",
	}, []string{"result"})

	// HTTPRequestsTotal counts HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ppcsim_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request duration by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ppcsim_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "path"})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware returns an HTTP middleware that records request metrics.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		duration := time.Since(start).Seconds()

		path := routePattern(r)
		HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// routePattern prefers the matched chi pattern so label cardinality stays
// bounded by the number of routes.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
