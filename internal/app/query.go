package service

import (
	"context"
	"fmt"

	"github.com/okian/olympia/internal/domain/model"
	"github.com/okian/olympia/internal/domain/selection"
)

// EventDetail is one event with its competitors ranked for display.
type EventDetail struct {
	Event       model.Event        `json:"event"`
	Competitors []model.Competitor `json:"competitors"`
}

// Disciplines returns every discipline without touching visitor state.
func (s *Service) Disciplines(ctx context.Context) ([]model.Discipline, error) {
	ds, err := s.source.Disciplines(ctx)
	if err != nil {
		s.report(ctx, ViewDisciplines, err)
		return nil, err
	}
	return ds, nil
}

// Countries returns one page of the medal table without touching visitor state.
func (s *Service) Countries(ctx context.Context, page int) (model.CountryPage, error) {
	cp, err := s.source.Countries(ctx, max(page, 1))
	if err != nil {
		s.report(ctx, ViewCountries, err)
		return model.CountryPage{}, err
	}
	return cp, nil
}

// Events returns one page of events without touching visitor state.
func (s *Service) Events(ctx context.Context, page int) (model.EventPage, error) {
	ep, err := s.source.Events(ctx, max(page, 1))
	if err != nil {
		s.report(ctx, ViewEvents, err)
		return model.EventPage{}, err
	}
	return ep, nil
}

// Event returns the event with id from the given page.
// Returns ErrEventNotFound when the page does not hold it.
func (s *Service) Event(ctx context.Context, page, id int) (EventDetail, error) {
	ep, err := s.Events(ctx, page)
	if err != nil {
		return EventDetail{}, err
	}
	var sel selection.Selection
	sel.Open(id)
	modal := selection.Resolve(sel, selection.EventIndex(ep.Events))
	if modal == nil {
		return EventDetail{}, fmt.Errorf("%w: id %d on page %d", ErrEventNotFound, id, max(page, 1))
	}
	return EventDetail{Event: modal.Event, Competitors: modal.Competitors}, nil
}
