package balldontlie

import (
	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-viewer/internal/domain/teams"
)

func mapPage(resp playersResponse) players.Page {
	out := make([]players.Player, 0, len(resp.Data))
	for _, p := range resp.Data {
		out = append(out, mapPlayer(p))
	}
	return players.Page{
		Players: out,
		Meta:    mapMeta(resp.Meta),
	}
}

func mapPlayer(p playerResponse) players.Player {
	return players.Player{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Position:     p.Position,
		HeightFeet:   p.HeightFeet,
		HeightInches: p.HeightInches,
		WeightPounds: p.WeightPounds,
		Team:         mapTeam(p.Team),
	}
}

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		ID:           t.ID,
		Name:         t.Name,
		FullName:     t.FullName,
		Abbreviation: t.Abbreviation,
		City:         t.City,
		Conference:   t.Conference,
		Division:     t.Division,
	}
}

// mapMeta normalizes the terminal-page sentinel: an absent, null or zero next_page
// means no further page, as does a current page at or past total_pages.
func mapMeta(m metaResponse) players.PageMeta {
	meta := players.PageMeta{
		CurrentPage: m.CurrentPage,
		TotalPages:  m.TotalPages,
		PerPage:     m.PerPage,
		TotalCount:  m.TotalCount,
	}
	if m.NextPage == nil || *m.NextPage <= 0 {
		return meta
	}
	if m.TotalPages > 0 && m.CurrentPage >= m.TotalPages {
		return meta
	}
	next := *m.NextPage
	meta.NextPage = &next
	return meta
}
