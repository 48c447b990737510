// Package model contains the Olympic Games records passed between layers.
// Fields mirror the payloads of the upstream olympic-games API; records are
// never mutated after they are decoded.
package model

// Discipline is a sport category within the Games.
type Discipline struct {
	ID               Code   `json:"id"`
	Name             string `json:"name"`
	PictogramURL     string `json:"pictogram_url"`
	PictogramURLDark string `json:"pictogram_url_dark"`
}

// Country is a national delegation with its medal table entry.
type Country struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Continent       string `json:"continent"`
	FlagURL         string `json:"flag_url"`
	GoldMedals      int    `json:"gold_medals"`
	SilverMedals    int    `json:"silver_medals"`
	BronzeMedals    int    `json:"bronze_medals"`
	TotalMedals     int    `json:"total_medals"`
	Rank            int    `json:"rank"`
	RankTotalMedals int    `json:"rank_total_medals"`
}

// Competitor is an entrant (individual or team) in an event.
type Competitor struct {
	Name           string  `json:"competitor_name"`
	CountryID      string  `json:"country_id"`
	CountryFlagURL string  `json:"country_flag_url"`
	Position       int     `json:"position"`
	ResultMark     string  `json:"result_mark"`
	ResultPosition string  `json:"result_position"`
	Outcome        Outcome `json:"result_winnerLoserTie"`
}

// Event is a scheduled competition instance within a discipline.
type Event struct {
	ID                  int          `json:"id"`
	Day                 string       `json:"day"`
	StartDate           string       `json:"start_date"`
	EndDate             string       `json:"end_date"`
	Name                *string      `json:"name"`
	EventName           string       `json:"event_name"`
	DetailedEventName   string       `json:"detailed_event_name"`
	DisciplineName      string       `json:"discipline_name"`
	DisciplinePictogram string       `json:"discipline_pictogram"`
	VenueName           string       `json:"venue_name"`
	Status              Status       `json:"status"`
	IsLive              Flag         `json:"is_live"`
	IsMedalEvent        Flag         `json:"is_medal_event"`
	Competitors         []Competitor `json:"competitors"`
}

// Title returns the most specific display name available for the event.
func (e Event) Title() string {
	switch {
	case e.DetailedEventName != "":
		return e.DetailedEventName
	case e.EventName != "":
		return e.EventName
	case e.Name != nil:
		return *e.Name
	default:
		return e.DisciplineName
	}
}

// Outcome tags a competitor result as a win, loss or tie.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeLoss Outcome = "L"
	OutcomeTie  Outcome = "T"
)

// IsWinner reports whether the competitor won the event.
func (o Outcome) IsWinner() bool { return o == OutcomeWin }

// Links is the pagination link block of a collection envelope.
type Links struct {
	First string `json:"first"`
	Last  string `json:"last"`
	Prev  string `json:"prev"`
	Next  string `json:"next"`
}

// Meta is the pagination metadata block of a collection envelope.
type Meta struct {
	CurrentPage int    `json:"current_page"`
	From        int    `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          int    `json:"to"`
	Total       int    `json:"total"`
}

// EventPage is one page of events plus the total page count.
type EventPage struct {
	Events   []Event `json:"data"`
	Page     int     `json:"page"`
	LastPage int     `json:"last_page"`
}

// CountryPage is one page of countries with the upstream metadata.
type CountryPage struct {
	Countries []Country `json:"data"`
	Meta      Meta      `json:"meta"`
}
