// Package navigation derives the active top-bar tab from the request route.
// The route is the only input; tab links navigate and never set state.
package navigation

import (
	"strconv"
	"strings"
)

// Tab names one of the three top-level views.
type Tab string

const (
	TabSports Tab = "lista de esportes"
	TabGames  Tab = "lista de jogos"
	TabMedals Tab = "medalhas e paises"
)

// Route prefixes of the three views.
const (
	SportsPath = "/home"
	GamesPath  = "/jogos"
	MedalsPath = "/medalhas"
)

// ForPath returns the tab that owns path. Unmatched paths belong to the
// medals tab.
func ForPath(path string) Tab {
	switch {
	case strings.HasPrefix(path, SportsPath):
		return TabSports
	case strings.HasPrefix(path, GamesPath):
		return TabGames
	default:
		return TabMedals
	}
}

// GamesHref is the link for page of the games list.
func GamesHref(page int) string {
	if page < 1 {
		page = 1
	}
	return GamesPath + "/" + strconv.Itoa(page)
}

// Item is one rendered tab link.
type Item struct {
	Tab    Tab
	Label  string
	Href   string
	Active bool
}

// Bar returns the tab bar for path. gamesStart is the page the games tab links to.
func Bar(path string, gamesStart int) []Item {
	active := ForPath(path)
	items := []Item{
		{Tab: TabSports, Label: "Lista de Esportes", Href: SportsPath},
		{Tab: TabGames, Label: "Lista de Jogos", Href: GamesHref(gamesStart)},
		{Tab: TabMedals, Label: "Medalhas e Paises", Href: MedalsPath},
	}
	for i := range items {
		items[i].Active = items[i].Tab == active
	}
	return items
}
