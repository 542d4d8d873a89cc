package providers

import (
	"context"

	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-viewer/internal/domain/teams"
)

// PlayerProvider lists and resolves players from an upstream source.
// ListPlayers pages are 1-based; a perPage <= 0 lets the provider apply its default.
// An empty search means no filter.
type PlayerProvider interface {
	ListPlayers(ctx context.Context, page, perPage int, search string) (players.Page, error)
	GetPlayer(ctx context.Context, id int) (players.Player, error)
}

// TeamProvider resolves a single team.
type TeamProvider interface {
	GetTeam(ctx context.Context, id int) (teams.Team, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	PlayerProvider
	TeamProvider
}
