package players

import (
	"strings"

	"github.com/preston-bernstein/nba-viewer/internal/domain/teams"
)

// Player represents the normalized player shape (balldontlie-aligned).
// Height and weight are optional upstream; nil means unknown.
type Player struct {
	ID           int        `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Position     string     `json:"position"`
	HeightFeet   *int       `json:"heightFeet"`
	HeightInches *int       `json:"heightInches"`
	WeightPounds *int       `json:"weightPounds"`
	Team         teams.Team `json:"team"`
}

// FullName joins first and last name, skipping blanks.
func (p Player) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// PageMeta carries the upstream pagination cursor for a page of players.
// NextPage is nil on the terminal page.
type PageMeta struct {
	CurrentPage int  `json:"currentPage"`
	NextPage    *int `json:"nextPage"`
	TotalPages  int  `json:"totalPages"`
	PerPage     int  `json:"perPage"`
	TotalCount  int  `json:"totalCount"`
}

// Page is one upstream page of players in server order.
type Page struct {
	Players []Player `json:"players"`
	Meta    PageMeta `json:"meta"`
}

// HasNext reports whether the upstream advertised a following page.
func (p Page) HasNext() bool {
	return p.Meta.NextPage != nil
}
