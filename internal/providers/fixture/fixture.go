package fixture

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-viewer/internal/domain/teams"
	"github.com/preston-bernstein/nba-viewer/internal/providers"
)

const (
	providerName   = "fixture"
	defaultPerPage = 35
)

//go:embed roster.yaml
var defaultRoster []byte

type rosterFile struct {
	Teams   []teamEntry   `yaml:"teams"`
	Players []playerEntry `yaml:"players"`
}

type teamEntry struct {
	ID           int    `yaml:"id"`
	Abbreviation string `yaml:"abbreviation"`
	City         string `yaml:"city"`
	Conference   string `yaml:"conference"`
	Division     string `yaml:"division"`
	FullName     string `yaml:"full_name"`
	Name         string `yaml:"name"`
}

type playerEntry struct {
	ID           int    `yaml:"id"`
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	Position     string `yaml:"position"`
	HeightFeet   *int   `yaml:"height_feet"`
	HeightInches *int   `yaml:"height_inches"`
	WeightPounds *int   `yaml:"weight_pounds"`
	TeamID       int    `yaml:"team_id"`
}

// Provider serves a static roster useful for local testing and offline browsing.
type Provider struct {
	once    sync.Once
	raw     []byte
	err     error
	players []players.Player
	byID    map[int]players.Player
	teams   map[int]teams.Team
}

// New creates a fixture provider backed by the embedded roster.
func New() *Provider {
	return &Provider{raw: defaultRoster}
}

// NewFromYAML creates a fixture provider from a caller-supplied roster document.
func NewFromYAML(raw []byte) *Provider {
	return &Provider{raw: raw}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string { return providerName }

func (p *Provider) load() error {
	p.once.Do(func() {
		var doc rosterFile
		if err := yaml.Unmarshal(p.raw, &doc); err != nil {
			p.err = fmt.Errorf("fixture: parse roster: %w: %v", providers.ErrDecode, err)
			return
		}

		p.teams = make(map[int]teams.Team, len(doc.Teams))
		for _, t := range doc.Teams {
			p.teams[t.ID] = teams.Team{
				ID:           t.ID,
				Abbreviation: t.Abbreviation,
				City:         t.City,
				Conference:   t.Conference,
				Division:     t.Division,
				FullName:     t.FullName,
				Name:         t.Name,
			}
		}

		p.players = make([]players.Player, 0, len(doc.Players))
		p.byID = make(map[int]players.Player, len(doc.Players))
		for _, e := range doc.Players {
			pl := players.Player{
				ID:           e.ID,
				FirstName:    e.FirstName,
				LastName:     e.LastName,
				Position:     e.Position,
				HeightFeet:   e.HeightFeet,
				HeightInches: e.HeightInches,
				WeightPounds: e.WeightPounds,
				Team:         p.teams[e.TeamID],
			}
			p.players = append(p.players, pl)
			p.byID[pl.ID] = pl
		}
	})
	return p.err
}

// ListPlayers pages through the roster in file order, optionally filtered by a
// case-insensitive name search.
func (p *Provider) ListPlayers(ctx context.Context, page, perPage int, search string) (players.Page, error) {
	if err := ctx.Err(); err != nil {
		return players.Page{}, err
	}
	if err := p.load(); err != nil {
		return players.Page{}, err
	}
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	matches := p.filter(search)
	total := len(matches)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	out := make([]players.Player, end-start)
	copy(out, matches[start:end])

	meta := players.PageMeta{
		CurrentPage: page,
		TotalPages:  totalPages,
		PerPage:     perPage,
		TotalCount:  total,
	}
	if page < totalPages {
		next := page + 1
		meta.NextPage = &next
	}
	return players.Page{Players: out, Meta: meta}, nil
}

// GetPlayer resolves a roster entry by id.
func (p *Provider) GetPlayer(ctx context.Context, id int) (players.Player, error) {
	if err := ctx.Err(); err != nil {
		return players.Player{}, err
	}
	if err := p.load(); err != nil {
		return players.Player{}, err
	}
	pl, ok := p.byID[id]
	if !ok {
		return players.Player{}, fmt.Errorf("fixture: player %d: %w", id, providers.ErrNotFound)
	}
	return pl, nil
}

// GetTeam resolves a team by id.
func (p *Provider) GetTeam(ctx context.Context, id int) (teams.Team, error) {
	if err := ctx.Err(); err != nil {
		return teams.Team{}, err
	}
	if err := p.load(); err != nil {
		return teams.Team{}, err
	}
	t, ok := p.teams[id]
	if !ok {
		return teams.Team{}, fmt.Errorf("fixture: team %d: %w", id, providers.ErrNotFound)
	}
	return t, nil
}

func (p *Provider) filter(search string) []players.Player {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return p.players
	}
	out := make([]players.Player, 0)
	for _, pl := range p.players {
		if strings.Contains(strings.ToLower(pl.FirstName+" "+pl.LastName), needle) {
			out = append(out, pl)
		}
	}
	return out
}
