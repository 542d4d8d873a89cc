package teams

import (
	"strings"

	"github.com/preston-bernstein/nba-viewer/internal/domain/teams"
)

// Unknown is shown for any team field the upstream left blank.
const Unknown = "Unknown"

// Detail is the display projection of a team.
type Detail struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"fullName"`
	Name         string `json:"name"`
}

// NewDetail projects t for the detail view.
func NewDetail(t teams.Team) Detail {
	return Detail{
		ID:           t.ID,
		Abbreviation: orUnknown(t.Abbreviation),
		City:         orUnknown(t.City),
		Conference:   orUnknown(t.Conference),
		Division:     orUnknown(t.Division),
		FullName:     orUnknown(t.FullName),
		Name:         orUnknown(t.Name),
	}
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return Unknown
	}
	return s
}
