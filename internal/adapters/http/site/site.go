// Package site renders the Olympic Games viewer as server-side HTML pages.
package site

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/okian/olympia/internal/adapters/http/api"
	service "github.com/okian/olympia/internal/app"
	"github.com/okian/olympia/internal/domain/navigation"
	"github.com/okian/olympia/internal/domain/pagination"
	"github.com/okian/olympia/pkg/logger"
)

// Error constants.
var (
	ErrRender = errors.New("site render failed")
)

// Query parameters.
const (
	eventParam = "evento"
	pageParam  = "page"
)

// Dependencies required by the page handlers.
type Dependencies interface {
	DisciplinesView(ctx context.Context, visitorID string) service.DisciplinesView
	CountriesView(ctx context.Context, visitorID string, page int) service.CountriesView
	EventsView(ctx context.Context, visitorID string, page, selectedID int) service.EventsView
	GamesStartPage() int
}

// Handler serves the site pages.
type Handler struct {
	deps     Dependencies
	pages    *renderer
	visitors *visitorCookie
	logger   logger.Logger
}

// Option applies a configuration option to the Handler.
type Option func(*Handler)

// WithLogger sets the handler logger.
func WithLogger(l logger.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithSecureCookie marks the visitor cookie Secure.
func WithSecureCookie(secure bool) Option {
	return func(h *Handler) {
		h.visitors.secure = secure
	}
}

// New creates the site handler.
func New(deps Dependencies, opts ...Option) *Handler {
	h := &Handler{
		deps:     deps,
		pages:    newRenderer(),
		visitors: &visitorCookie{name: VisitorCookie},
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register attaches the page routes to r.
func (h *Handler) Register(_ context.Context, r chi.Router) {
	if r == nil {
		panic("router is nil")
	}

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(staticFS())))

	r.Group(func(r chi.Router) {
		r.Use(h.visitors.Middleware)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, navigation.SportsPath, http.StatusFound)
		})
		r.Get(navigation.SportsPath, api.MetricsMiddleware(h.HandleSports, "site_home"))
		r.Get(navigation.GamesPath, func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, navigation.GamesHref(h.deps.GamesStartPage()), http.StatusFound)
		})
		r.Get(navigation.GamesPath+"/{page}", api.MetricsMiddleware(h.HandleGames, "site_games"))
		r.Get(navigation.MedalsPath, api.MetricsMiddleware(h.HandleMedals, "site_medals"))
		r.NotFound(api.MetricsMiddleware(h.HandleNotFound, "site_not_found"))
	})
}

// HandleSports handles GET /home.
func (h *Handler) HandleSports(w http.ResponseWriter, r *http.Request) {
	view := h.deps.DisciplinesView(r.Context(), VisitorID(r.Context()))
	h.render(w, r, "home", sportsPage{
		layout:      h.layout(r, "Lista de Esportes", view.Err),
		Disciplines: view.Disciplines,
	})
}

// HandleGames handles GET /jogos/{page}. The evento query parameter opens
// the detail view of an event on that page.
func (h *Handler) HandleGames(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePage(chi.URLParam(r, "page"), 1)
	selected := pagination.ParsePage(r.URL.Query().Get(eventParam), 0)

	view := h.deps.EventsView(r.Context(), VisitorID(r.Context()), page, selected)
	h.render(w, r, "jogos", gamesPage{
		layout:   h.layout(r, "Lista de Jogos", view.Err),
		Page:     page,
		Events:   eventCards(page, view.Events),
		Pager:    newPagerLinks(view.Pager, navigation.GamesHref),
		Modal:    view.Modal,
		CloseURL: navigation.GamesHref(page),
	})
}

// HandleMedals handles GET /medalhas?page=N.
func (h *Handler) HandleMedals(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePage(r.URL.Query().Get(pageParam), 1)

	view := h.deps.CountriesView(r.Context(), VisitorID(r.Context()), page)
	h.render(w, r, "medalhas", medalsPage{
		layout:    h.layout(r, "Medalhas por País", view.Err),
		Countries: view.Countries,
		Pager:     newPagerLinks(view.Pager, medalsHref),
	})
}

// HandleNotFound renders the shell for unknown routes.
func (h *Handler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "notfound", h.layout(r, "Página não encontrada", ""))
}

func (h *Handler) layout(r *http.Request, title, errMsg string) layout {
	return layout{
		Title: title,
		Tabs:  navigation.Bar(r.URL.Path, h.deps.GamesStartPage()),
		Err:   errMsg,
	}
}

func medalsHref(page int) string {
	return navigation.MedalsPath + "?" + pageParam + "=" + strconv.Itoa(page)
}
