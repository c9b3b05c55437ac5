package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseTournaments() []TournamentRecord {
	return []TournamentRecord{
		{Year: 1930, Host: "Uruguay", Continent: "South America", Winner: "Uruguay", GoalsScored: 70},
	}
}

func TestNew_BuildsIndexes(t *testing.T) {
	matches := []MatchRecord{
		{MatchID: 1, Year: 1930, HomeTeam: "Uruguay", AwayTeam: "Argentina", HomeGoals: 4, AwayGoals: 2},
		{MatchID: 2, Year: 1930, HomeTeam: "France", AwayTeam: "Mexico", HomeGoals: 4, AwayGoals: 1},
	}

	d, err := New(baseTournaments(), matches, nil)
	require.NoError(t, err)

	_, ok := d.TournamentByYear(1930)
	assert.True(t, ok)
	assert.Len(t, d.MatchesByYear(1930), 2)

	m, ok := d.MatchByID(2)
	require.True(t, ok)
	assert.Equal(t, "France", m.HomeTeam)

	assert.True(t, d.HasTeam("Mexico"))
	assert.False(t, d.HasTeam("Brazil"))
}

func TestNew_RejectsOrphanMatch(t *testing.T) {
	matches := []MatchRecord{
		{MatchID: 1, Year: 1934, HomeTeam: "Italy", AwayTeam: "USA", HomeGoals: 7, AwayGoals: 1},
	}

	_, err := New(baseTournaments(), matches, nil)
	assert.Error(t, err)
}

func TestNew_RejectsNegativeGoals(t *testing.T) {
	matches := []MatchRecord{
		{MatchID: 1, Year: 1930, HomeTeam: "Uruguay", AwayTeam: "Argentina", HomeGoals: -1},
	}

	_, err := New(baseTournaments(), matches, nil)
	assert.Error(t, err)
}

func TestNew_RejectsHostlessTournament(t *testing.T) {
	_, err := New([]TournamentRecord{{Year: 1930}}, nil, nil)
	assert.Error(t, err)
}
