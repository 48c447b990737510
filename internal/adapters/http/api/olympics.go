package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/okian/olympia/internal/domain/pagination"
)

// OlympicHandler serves the Olympic Games collections.
type OlympicHandler struct {
	deps Dependencies
}

// NewOlympicHandler creates a new handler.
func NewOlympicHandler(deps Dependencies) *OlympicHandler {
	return &OlympicHandler{deps: deps}
}

// HandleDisciplines handles GET /api/disciplines.
func (h *OlympicHandler) HandleDisciplines(w http.ResponseWriter, r *http.Request) {
	ds, err := h.deps.Disciplines(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": ds})
}

// HandleCountries handles GET /api/countries?page=N.
func (h *OlympicHandler) HandleCountries(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_countries"
	page, err := pageParam(op, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	cp, err := h.deps.Countries(r.Context(), page)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cp)
}

// HandleEvents handles GET /api/events?page=N.
func (h *OlympicHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_events"
	page, err := pageParam(op, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	ep, err := h.deps.Events(r.Context(), page)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ep)
}

// HandleEvent handles GET /api/events/{id}?page=N.
func (h *OlympicHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_event"
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", badRequest(op, "id must be a positive integer"))
		return
	}
	page, err := pageParam(op, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	detail, err := h.deps.Event(r.Context(), page, id)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// pageParam reads the optional page query parameter. Absent means page 1.
func pageParam(op string, r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	page := pagination.ParsePage(raw, 0)
	if page < 1 {
		return 0, badRequest(op, "page must be a positive integer")
	}
	return page, nil
}
