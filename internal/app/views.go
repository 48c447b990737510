package service

import (
	"context"

	"github.com/okian/olympia/internal/domain/fetch"
	"github.com/okian/olympia/internal/domain/model"
	"github.com/okian/olympia/internal/domain/pagination"
	"github.com/okian/olympia/internal/domain/selection"
	"github.com/okian/olympia/pkg/logger"
	"github.com/okian/olympia/pkg/metrics"
)

// View names used in logs and metrics.
const (
	ViewDisciplines = "disciplines"
	ViewCountries   = "countries"
	ViewEvents      = "events"
)

// DisciplinesView is the content of the sports tab.
type DisciplinesView struct {
	Disciplines []model.Discipline
	Err         string
}

// CountriesView is the content of the medals tab.
type CountriesView struct {
	Countries []model.Country
	Meta      model.Meta
	Pager     pagination.Pager
	Err       string
}

// EventsView is the content of the games tab.
type EventsView struct {
	Events    []model.Event
	Pager     pagination.Pager
	Selection selection.Selection
	Modal     *selection.Modal
	Err       string
	// Reused is set when the loaded page was served without a new request.
	Reused bool
}

// DisciplinesView loads the discipline list for a visitor.
func (s *Service) DisciplinesView(ctx context.Context, visitorID string) DisciplinesView {
	v := s.store.Touch(ctx, visitorID)

	data, applied, err := fetch.Load(ctx, &v.Disciplines, 0, s.source.Disciplines)
	s.settled(ctx, ViewDisciplines, applied, err)
	if err != nil {
		return DisciplinesView{Err: fetch.Message(err)}
	}
	return DisciplinesView{Disciplines: data}
}

// CountriesView loads one page of the medal table for a visitor.
func (s *Service) CountriesView(ctx context.Context, visitorID string, page int) CountriesView {
	page = max(page, 1)
	v := s.store.Touch(ctx, visitorID)

	data, applied, err := fetch.Load(ctx, &v.Countries, page, func(ctx context.Context) (model.CountryPage, error) {
		return s.source.Countries(ctx, page)
	})
	s.settled(ctx, ViewCountries, applied, err)
	if err != nil {
		return CountriesView{Err: fetch.Message(err), Pager: pagination.NewPager(page, page, s.pagerWindow)}
	}
	return CountriesView{
		Countries: data.Countries,
		Meta:      data.Meta,
		Pager:     pagination.NewPager(page, data.Meta.LastPage, s.pagerWindow),
	}
}

// EventsView loads one page of events for a visitor and resolves the open
// detail view. Opening the detail of an event on the page the visitor
// already has loaded does not issue a new request.
func (s *Service) EventsView(ctx context.Context, visitorID string, page, selectedID int) EventsView {
	page = max(page, 1)
	v := s.store.Touch(ctx, visitorID)

	var view EventsView
	view.Selection.Open(selectedID)

	state := v.Events.Snapshot()
	var data model.EventPage
	if view.Selection.IsOpen() && state.Loaded && !state.Loading && state.Key == page {
		data = state.Data
		view.Reused = true
		metrics.RecordViewReuse(ViewEvents)
	} else {
		var (
			applied bool
			err     error
		)
		data, applied, err = fetch.Load(ctx, &v.Events, page, func(ctx context.Context) (model.EventPage, error) {
			return s.source.Events(ctx, page)
		})
		s.settled(ctx, ViewEvents, applied, err)
		if err != nil {
			view.Err = fetch.Message(err)
			view.Pager = pagination.NewPager(page, page, s.pagerWindow)
			return view
		}
	}

	view.Events = data.Events
	view.Pager = pagination.NewPager(page, data.LastPage, s.pagerWindow)
	view.Modal = selection.Resolve(view.Selection, selection.EventIndex(data.Events))
	return view
}

func (s *Service) settled(ctx context.Context, view string, applied bool, err error) {
	if err != nil {
		s.report(ctx, view, err)
	}
	if !applied && ctx.Err() == nil {
		metrics.RecordStaleDiscarded(view)
		s.logger.Debug(ctx, "discarded superseded response", logger.String("view", view))
	}
}
