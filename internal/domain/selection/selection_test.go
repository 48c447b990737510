package selection

import (
	"testing"

	"github.com/okian/olympia/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSelection(t *testing.T) {
	Convey("Given a closed selection", t, func() {
		var sel Selection

		So(sel.IsOpen(), ShouldBeFalse)
		So(sel.ID(), ShouldEqual, 0)

		Convey("When opening event 42", func() {
			sel.Open(42)

			Convey("Then both the flag and the id are set", func() {
				So(sel.IsOpen(), ShouldBeTrue)
				So(sel.ID(), ShouldEqual, 42)
			})

			Convey("And closing resets both", func() {
				sel.Close()
				So(sel.IsOpen(), ShouldBeFalse)
				So(sel.ID(), ShouldEqual, 0)
			})
		})

		Convey("When opening the zero id", func() {
			sel.Open(7)
			sel.Open(0)

			Convey("Then the selection is closed", func() {
				So(sel.IsOpen(), ShouldBeFalse)
				So(sel.ID(), ShouldEqual, 0)
			})
		})
	})
}

func TestRanked(t *testing.T) {
	Convey("Given competitors out of order", t, func() {
		input := []model.Competitor{
			{Name: "C", CountryID: "BRA", Position: 3},
			{Name: "A", CountryID: "", Position: 1},
			{Name: "B", CountryID: "USA", Position: 2},
		}

		Convey("When ranking them", func() {
			ranked := Ranked(input)

			Convey("Then they are ordered by ascending position", func() {
				So(ranked[0].Position, ShouldEqual, 1)
				So(ranked[1].Position, ShouldEqual, 2)
				So(ranked[2].Position, ShouldEqual, 3)
			})

			Convey("And the input keeps its original order", func() {
				So(input[0].Name, ShouldEqual, "C")
				So(input[1].Name, ShouldEqual, "A")
				So(input[2].Name, ShouldEqual, "B")
			})

			Convey("And hiding empty countries keeps them in the sort input", func() {
				visible := Visible(ranked)
				So(visible, ShouldHaveLength, 2)
				So(visible[0].Name, ShouldEqual, "B")
				So(visible[1].Name, ShouldEqual, "C")
				So(ranked, ShouldHaveLength, 3)
			})
		})
	})

	Convey("Given ties", t, func() {
		ranked := Ranked([]model.Competitor{
			{Name: "first", Position: 1},
			{Name: "second", Position: 1},
		})

		Convey("Then upstream order is preserved", func() {
			So(ranked[0].Name, ShouldEqual, "first")
			So(ranked[1].Name, ShouldEqual, "second")
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Given loaded events", t, func() {
		events := []model.Event{
			{ID: 1, DetailedEventName: "Heat 1"},
			{ID: 2, DetailedEventName: "Final", Competitors: []model.Competitor{
				{Name: "Silver", CountryID: "USA", Position: 2},
				{Name: "Gold", CountryID: "KEN", Position: 1},
				{Name: "Unplaced", CountryID: "", Position: 0},
			}},
		}
		idx := EventIndex(events)

		Convey("When the selection is closed", func() {
			So(Resolve(Selection{}, idx), ShouldBeNil)
		})

		Convey("When the selected id is not loaded", func() {
			var sel Selection
			sel.Open(42)

			Convey("Then nothing is rendered", func() {
				So(Resolve(sel, idx), ShouldBeNil)
			})
		})

		Convey("When a loaded event is selected", func() {
			var sel Selection
			sel.Open(2)
			m := Resolve(sel, idx)

			Convey("Then the modal holds the event and its ranked competitors", func() {
				So(m, ShouldNotBeNil)
				So(m.Event.ID, ShouldEqual, 2)
				So(m.Competitors, ShouldHaveLength, 2)
				So(m.Competitors[0].Name, ShouldEqual, "Gold")
				So(m.Competitors[1].Name, ShouldEqual, "Silver")
			})

			Convey("And the loaded event keeps its competitor order", func() {
				So(events[1].Competitors[0].Name, ShouldEqual, "Silver")
			})
		})

		Convey("When the index is nil", func() {
			var sel Selection
			sel.Open(1)
			So(Resolve(sel, nil), ShouldBeNil)
		})
	})
}

func TestIndex(t *testing.T) {
	Convey("Given duplicate keys", t, func() {
		idx := NewIndex([]string{"a1", "a2", "b1"}, func(s string) byte { return s[0] })

		Convey("Then the first item wins", func() {
			v, ok := idx.Lookup('a')
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "a1")
		})

		Convey("And unknown keys miss", func() {
			_, ok := idx.Lookup('z')
			So(ok, ShouldBeFalse)
		})
	})
}

func TestEventIndex(t *testing.T) {
	Convey("Given a loaded page of events", t, func() {
		idx := EventIndex([]model.Event{{ID: 4}, {ID: 9}})

		Convey("Then a loaded id is found", func() {
			ev, ok := idx.Lookup(9)
			So(ok, ShouldBeTrue)
			So(ev.ID, ShouldEqual, 9)
		})

		Convey("And an id from another page is not", func() {
			_, ok := idx.Lookup(10)
			So(ok, ShouldBeFalse)
		})
	})
}
