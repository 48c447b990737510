package site

import (
	"net/url"
	"strconv"

	"github.com/okian/olympia/internal/domain/model"
	"github.com/okian/olympia/internal/domain/navigation"
	"github.com/okian/olympia/internal/domain/pagination"
	"github.com/okian/olympia/internal/domain/selection"
)

// errorer exposes the inline failure message of a page.
type errorer interface {
	ErrMessage() string
}

type layout struct {
	Title string
	Tabs  []navigation.Item
	Err   string
}

func (l layout) ErrMessage() string { return l.Err }

type sportsPage struct {
	layout
	Disciplines []model.Discipline
}

type eventCard struct {
	model.Event
	Href string
}

type gamesPage struct {
	layout
	Page     int
	Events   []eventCard
	Pager    pagerLinks
	Modal    *selection.Modal
	CloseURL string
}

type medalsPage struct {
	layout
	Countries []model.Country
	Pager     pagerLinks
}

type pageLink struct {
	Number  int
	Href    string
	Current bool
}

// pagerLinks is a Pager with its hrefs resolved. PrevHref and NextHref are
// empty when the control is disabled.
type pagerLinks struct {
	Links    []pageLink
	PrevHref string
	NextHref string
	Current  int
	Total    int
}

func newPagerLinks(p pagination.Pager, href func(int) string) pagerLinks {
	out := pagerLinks{
		Links:   make([]pageLink, 0, len(p.Pages)),
		Current: p.Current,
		Total:   p.Total,
	}
	for _, n := range p.Pages {
		out.Links = append(out.Links, pageLink{Number: n, Href: href(n), Current: p.IsCurrent(n)})
	}
	if p.HasPrev {
		out.PrevHref = href(p.Prev)
	}
	if p.HasNext {
		out.NextHref = href(p.Next)
	}
	return out
}

func eventCards(page int, events []model.Event) []eventCard {
	base := navigation.GamesHref(page)
	cards := make([]eventCard, 0, len(events))
	for _, ev := range events {
		q := url.Values{}
		q.Set(eventParam, strconv.Itoa(ev.ID))
		cards = append(cards, eventCard{Event: ev, Href: base + "?" + q.Encode()})
	}
	return cards
}
