package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ppcsim/internal/core/port"
	"ppcsim/internal/metrics"
)

const dateLayout = "2006-01-02"

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the simulation use case and a logger for structured logging.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    port.SimulationUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Every route is
// instrumented and Prometheus metrics are served on /metrics.
func NewHandler(svc port.SimulationUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(metrics.Middleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/simulations", h.handleRunSimulation)
		r.Post("/simulations/batch", h.handleRunBatch)
		r.Get("/stats/campaigns", h.handleCampaignStats)
	})
	r.Handle("/metrics", metrics.Handler())
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeError maps use case errors onto status codes. Unknown errors are
// logged and hidden behind a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, port.ErrOwnerRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrNoCampaigns):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, port.ErrRunExists):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error(msg, slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
