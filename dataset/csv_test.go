package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDir(t *testing.T) {
	d, err := LoadDir("testdata")
	require.NoError(t, err)

	assert.Len(t, d.Tournaments, 2)
	assert.Len(t, d.Matches, 3) // duplicate and yearless rows dropped
	assert.Len(t, d.Players, 3)
}

func TestLoadDir_MissingFiles(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	assert.Error(t, err)
}

func TestParseTournaments_BOMAndThousands(t *testing.T) {
	d, err := LoadDir("testdata")
	require.NoError(t, err)

	t1930, ok := d.TournamentByYear(1930)
	require.True(t, ok) // the BOM must not break the Year column
	assert.Equal(t, "Uruguay", t1930.Host)
	assert.Equal(t, "South America", t1930.Continent)
	assert.Equal(t, 590549, t1930.Attendance)

	t2014, ok := d.TournamentByYear(2014)
	require.True(t, ok)
	assert.Equal(t, 3386810, t2014.Attendance)
	assert.Equal(t, 171, t2014.GoalsScored)
}

func TestParseMatches_FloatsAndDedupe(t *testing.T) {
	d, err := LoadDir("testdata")
	require.NoError(t, err)

	final, ok := d.MatchByID(1087)
	require.True(t, ok)
	assert.Equal(t, 4, final.HomeGoals)
	assert.Equal(t, 2, final.AwayGoals)
	assert.Equal(t, 68346, final.Attendance)
	assert.Equal(t, time.Date(1930, 7, 30, 14, 15, 0, 0, time.UTC), final.Kickoff)

	// the replacement-rune stadium name gets its known correction
	semi, ok := d.MatchByID(300186461)
	require.True(t, ok)
	assert.Equal(t, "Estádio Jornalista Mário Filho", semi.Stadium)
}

func TestParsePlayers_Transliteration(t *testing.T) {
	d, err := LoadDir("testdata")
	require.NoError(t, err)

	var names []string
	for _, p := range d.Players {
		names = append(names, p.PlayerName)
	}
	assert.Contains(t, names, "Thomas Mueller")
	assert.NotContains(t, names, "Thomas MÃ¼ller")
}

func TestParseIntLoose(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1930", 1930, true},
		{"1930.0", 1930, true},
		{"3.0", 3, true},
		{"590.549", 590549, true},
		{"1.045.246", 1045246, true},
		{"3,386,810", 3386810, true},
		{"", 0, false},
		{"n/a", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseIntLoose(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseKickoff(t *testing.T) {
	got := parseKickoff("13 Jul 1930 - 15:00")
	assert.Equal(t, time.Date(1930, 7, 13, 15, 0, 0, 0, time.UTC), got)

	assert.True(t, parseKickoff("").IsZero())
	assert.True(t, parseKickoff("not a date").IsZero())
}
