package players

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
)

// Unknown is shown for any detail field the upstream left out or blank.
const Unknown = "Unknown"

// Detail is the display projection of a player.
type Detail struct {
	ID           int    `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Position     string `json:"position"`
	HeightFeet   string `json:"heightFeet"`
	HeightInches string `json:"heightInches"`
	WeightPounds string `json:"weightPounds"`
	Team         string `json:"team"`
	TeamID       int    `json:"teamId"`
}

// NewDetail projects p for the detail view.
func NewDetail(p players.Player) Detail {
	return Detail{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Position:     orUnknown(p.Position),
		HeightFeet:   optionalInt(p.HeightFeet),
		HeightInches: optionalInt(p.HeightInches),
		WeightPounds: optionalInt(p.WeightPounds),
		Team:         orUnknown(p.Team.Name),
		TeamID:       p.Team.ID,
	}
}

// FullName joins first and last name.
func (d Detail) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// Item is the list-row projection of a player.
type Item struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Position  string `json:"position"`
	Team      string `json:"team"`
}

// NewItem projects p for a list row.
func NewItem(p players.Player) Item {
	return Item{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  p.Position,
		Team:      p.Team.Name,
	}
}

// NewItems projects a slice of players.
func NewItems(ps []players.Player) []Item {
	out := make([]Item, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewItem(p))
	}
	return out
}

func optionalInt(v *int) string {
	if v == nil {
		return Unknown
	}
	return strconv.Itoa(*v)
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return Unknown
	}
	return s
}
