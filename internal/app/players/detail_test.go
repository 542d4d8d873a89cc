package players

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-viewer/internal/domain/teams"
	"github.com/preston-bernstein/nba-viewer/internal/teststubs"
)

func TestNewDetailRendersMeasurements(t *testing.T) {
	d := NewDetail(players.Player{
		ID:           237,
		FirstName:    "LeBron",
		LastName:     "James",
		Position:     "F",
		HeightFeet:   teststubs.IntPtr(6),
		HeightInches: teststubs.IntPtr(0),
		WeightPounds: teststubs.IntPtr(250),
		Team:         teams.Team{ID: 14, Name: "Lakers"},
	})

	assert.Equal(t, "6", d.HeightFeet)
	assert.Equal(t, "0", d.HeightInches, "zero inches is a value, not unknown")
	assert.Equal(t, "250", d.WeightPounds)
	assert.Equal(t, "Lakers", d.Team)
	assert.Equal(t, 14, d.TeamID)
	assert.Equal(t, "LeBron James", d.FullName())
}

func TestNewDetailUsesUnknownSentinel(t *testing.T) {
	d := NewDetail(players.Player{ID: 1, FirstName: "Alex", LastName: "Abrines"})

	assert.Equal(t, Unknown, d.HeightFeet)
	assert.Equal(t, Unknown, d.HeightInches)
	assert.Equal(t, Unknown, d.WeightPounds)
	assert.Equal(t, Unknown, d.Position)
	assert.Equal(t, Unknown, d.Team)
	assert.NotEqual(t, "", d.HeightFeet)
	assert.NotEqual(t, "null", d.HeightFeet)
}

func TestNewItems(t *testing.T) {
	items := NewItems([]players.Player{
		{ID: 1, FirstName: "A", LastName: "B", Position: "G", Team: teams.Team{Name: "Hawks"}},
		{ID: 2},
	})
	assert.Len(t, items, 2)
	assert.Equal(t, Item{ID: 1, FirstName: "A", LastName: "B", Position: "G", Team: "Hawks"}, items[0])
	assert.Equal(t, 2, items[1].ID)
}
