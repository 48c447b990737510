// Package selection tracks which event is open in the detail view and
// derives the ranked competitor list shown there.
package selection

import (
	"slices"

	"github.com/okian/olympia/internal/domain/model"
)

// Selection is the open/closed state of the detail view.
// The zero value is closed with no event selected.
type Selection struct {
	open bool
	id   int
}

// Open selects id. Opening with the zero id is the same as Close.
func (s *Selection) Open(id int) {
	if id == 0 {
		s.Close()
		return
	}
	s.open = true
	s.id = id
}

// Close resets the selection.
func (s *Selection) Close() {
	s.open = false
	s.id = 0
}

// IsOpen reports whether an event is selected.
func (s Selection) IsOpen() bool { return s.open }

// ID returns the selected event id, 0 when closed.
func (s Selection) ID() int { return s.id }

// Index maps a collection by key. Build it alongside the fetched collection
// so repeated lookups do not rescan the slice.
type Index[K comparable, V any] struct {
	byKey map[K]int
	items []V
}

// NewIndex indexes items by key. The first item wins on duplicate keys.
func NewIndex[K comparable, V any](items []V, key func(V) K) *Index[K, V] {
	idx := &Index[K, V]{byKey: make(map[K]int, len(items)), items: items}
	for i, it := range items {
		k := key(it)
		if _, dup := idx.byKey[k]; !dup {
			idx.byKey[k] = i
		}
	}
	return idx
}

// Lookup returns the item stored under k.
func (x *Index[K, V]) Lookup(k K) (V, bool) {
	var zero V
	if x == nil {
		return zero, false
	}
	i, ok := x.byKey[k]
	if !ok {
		return zero, false
	}
	return x.items[i], true
}

// EventIndex indexes events by id.
func EventIndex(events []model.Event) *Index[int, model.Event] {
	return NewIndex(events, func(e model.Event) int { return e.ID })
}

// Ranked returns a copy of competitors ordered by ascending position.
// Equal positions keep their upstream order.
func Ranked(competitors []model.Competitor) []model.Competitor {
	out := slices.Clone(competitors)
	slices.SortStableFunc(out, func(a, b model.Competitor) int {
		return a.Position - b.Position
	})
	return out
}

// Visible drops competitors without a country id.
func Visible(competitors []model.Competitor) []model.Competitor {
	out := make([]model.Competitor, 0, len(competitors))
	for _, c := range competitors {
		if c.CountryID != "" {
			out = append(out, c)
		}
	}
	return out
}

// Modal is the content of the open detail view.
type Modal struct {
	Event       model.Event
	Competitors []model.Competitor
}

// Resolve builds the detail view for sel against the loaded events.
// It returns nil when nothing is selected or the selected id is not loaded.
func Resolve(sel Selection, idx *Index[int, model.Event]) *Modal {
	if !sel.IsOpen() {
		return nil
	}
	ev, ok := idx.Lookup(sel.ID())
	if !ok {
		return nil
	}
	return &Modal{
		Event:       ev,
		Competitors: Visible(Ranked(ev.Competitors)),
	}
}
