// Package api exposes the Olympic Games collections as JSON.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	service "github.com/okian/olympia/internal/app"
	"github.com/okian/olympia/internal/domain/model"
)

// Dependencies required by HTTP handlers.
type Dependencies interface {
	Disciplines(ctx context.Context) ([]model.Discipline, error)
	Countries(ctx context.Context, page int) (model.CountryPage, error)
	Events(ctx context.Context, page int) (model.EventPage, error)
	Event(ctx context.Context, page, id int) (EventDetail, error)
}

// EventDetail mirrors the read shape of a single event.
type EventDetail = service.EventDetail

// Server wires HTTP routes for the JSON API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	olympicHandler *OlympicHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		olympicHandler: NewOlympicHandler(deps),
	}
}

// Register attaches all HTTP routes to r.
func (s *Server) Register(_ context.Context, r chi.Router) {
	if r == nil {
		panic("router is nil")
	}
	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/disciplines", MetricsMiddleware(s.olympicHandler.HandleDisciplines, "api_disciplines"))
		r.Get("/countries", MetricsMiddleware(s.olympicHandler.HandleCountries, "api_countries"))
		r.Get("/events", MetricsMiddleware(s.olympicHandler.HandleEvents, "api_events"))
		r.Get("/events/{id}", MetricsMiddleware(s.olympicHandler.HandleEvent, "api_event"))
	})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeUpstreamError translates a failed lookup into a status code.
func writeUpstreamError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "upstream_timeout", err)
	default:
		writeError(w, http.StatusBadGateway, "upstream_error", err)
	}
}
