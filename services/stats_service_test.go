package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldcup-service/dataset"
)

func kickoff(value string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return t
}

// newTestDataset builds a small dataset with well-known results: the
// 1930 final, the 2014 Mineirazo semifinal and the 2022 final among
// them.
func newTestDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	tournaments := []dataset.TournamentRecord{
		{
			Year: 1930, Host: "Uruguay", Continent: "South America",
			Winner: "Uruguay", RunnerUp: "Argentina", Third: "USA", Fourth: "Yugoslavia",
			GoalsScored: 70, QualifiedTeams: 13, MatchesPlayed: 18, Attendance: 590549,
		},
		{
			Year: 2014, Host: "Brazil", Continent: "South America",
			Winner: "Germany", RunnerUp: "Argentina", Third: "Netherlands", Fourth: "Brazil",
			GoalsScored: 171, QualifiedTeams: 32, MatchesPlayed: 64, Attendance: 3386810,
		},
		{
			Year: 2022, Host: "Qatar", Continent: "Asia",
			Winner: "Argentina", RunnerUp: "France", Third: "Croatia", Fourth: "Morocco",
			GoalsScored: 172, QualifiedTeams: 32, MatchesPlayed: 64, Attendance: 3404252,
		},
	}

	matches := []dataset.MatchRecord{
		{
			MatchID: 1085, Year: 1930, Stage: "Group 1", Kickoff: kickoff("1930-07-13 15:00"),
			HomeTeam: "France", AwayTeam: "Mexico", HomeGoals: 4, AwayGoals: 1,
			HomeInitials: "FRA", AwayInitials: "MEX",
		},
		{
			MatchID: 1096, Year: 1930, Stage: "Final", Kickoff: kickoff("1930-07-30 14:15"),
			HomeTeam: "Uruguay", AwayTeam: "Argentina", HomeGoals: 4, AwayGoals: 2,
			HomeInitials: "URU", AwayInitials: "ARG",
		},
		{
			MatchID: 300186478, Year: 2014, Stage: "Group A", Kickoff: kickoff("2014-06-12 17:00"),
			HomeTeam: "Brazil", AwayTeam: "Croatia", HomeGoals: 3, AwayGoals: 1,
			HomeInitials: "BRA", AwayInitials: "CRO",
		},
		{
			MatchID: 300186474, Year: 2014, Stage: "Group G", Kickoff: kickoff("2014-06-16 13:00"),
			HomeTeam: "Germany", AwayTeam: "Portugal", HomeGoals: 4, AwayGoals: 0,
			HomeInitials: "GER", AwayInitials: "POR",
		},
		{
			MatchID: 300186461, Year: 2014, Stage: "Semi-finals", Kickoff: kickoff("2014-07-08 17:00"),
			HomeTeam: "Brazil", AwayTeam: "Germany", HomeGoals: 1, AwayGoals: 7,
			HomeInitials: "BRA", AwayInitials: "GER",
		},
		{
			MatchID: 300186501, Year: 2014, Stage: "Final", Kickoff: kickoff("2014-07-13 16:00"),
			HomeTeam: "Germany", AwayTeam: "Argentina", HomeGoals: 1, AwayGoals: 0,
			HomeInitials: "GER", AwayInitials: "ARG",
		},
		{
			MatchID: 400235459, Year: 2022, Stage: "Group C", Kickoff: kickoff("2022-11-26 19:00"),
			HomeTeam: "Argentina", AwayTeam: "Mexico", HomeGoals: 2, AwayGoals: 0,
			HomeInitials: "ARG", AwayInitials: "MEX",
		},
		{
			MatchID: 400235458, Year: 2022, Stage: "Semi-finals", Kickoff: kickoff("2022-12-14 22:00"),
			HomeTeam: "France", AwayTeam: "Morocco", HomeGoals: 2, AwayGoals: 0,
			HomeInitials: "FRA", AwayInitials: "MAR",
		},
		{
			MatchID: 400128082, Year: 2022, Stage: "Final", Kickoff: kickoff("2022-12-18 18:00"),
			HomeTeam: "Argentina", AwayTeam: "France", HomeGoals: 3, AwayGoals: 3,
			HomeInitials: "ARG", AwayInitials: "FRA",
			WinConditions: "Argentina win on penalties (4 - 2)",
		},
	}

	players := []dataset.PlayerEventRecord{
		{MatchID: 400128082, TeamInitials: "FRA", PlayerName: "Kylian Mbappe", Event: "G80' P81' P118'"},
		{MatchID: 400235458, TeamInitials: "FRA", PlayerName: "Kylian Mbappe", Event: "G10'"},
		{MatchID: 400128082, TeamInitials: "ARG", PlayerName: "Lionel Messi", Event: "P23' G108'"},
		{MatchID: 400235459, TeamInitials: "ARG", PlayerName: "Lionel Messi", Event: "P45'"},
		{MatchID: 400235459, TeamInitials: "ARG", PlayerName: "Julian Alvarez", Event: "G46' G51'"},
		{MatchID: 400235458, TeamInitials: "FRA", PlayerName: "Olivier Giroud", Event: "G17' G22'"},
		{MatchID: 400128082, TeamInitials: "ARG", PlayerName: "Enzo Fernandez", Event: "OG36'"},
		{MatchID: 400128082, TeamInitials: "ARG", PlayerName: "Emiliano Martinez", Event: ""},
		{MatchID: 300186461, TeamInitials: "GER", PlayerName: "Andre Schuerrle", Event: "G69' G79'"},
	}

	d, err := dataset.New(tournaments, matches, players)
	require.NoError(t, err)
	return d
}

func newTestService(t *testing.T) *StatsService {
	t.Helper()
	return NewStatsService(newTestDataset(t), time.Minute)
}

func TestTournamentSummary(t *testing.T) {
	s := newTestService(t)

	summary, err := s.TournamentSummary(1930)
	require.NoError(t, err)

	assert.Equal(t, "Uruguay", summary.Host)
	assert.Equal(t, "South America", summary.HostContinent)
	assert.Equal(t, 70, summary.GoalsScored)
	assert.Equal(t, 590549, summary.Attendance)

	require.Len(t, summary.Medals, 4)
	assert.Equal(t, Medal{Place: 1, Team: "Uruguay", FlagURL: "https://flagcdn.com/w320/uy.png"}, summary.Medals[0])
	assert.Equal(t, "Argentina", summary.Medals[1].Team)
	assert.Equal(t, "Yugoslavia", summary.Medals[3].Team)
}

func TestTournamentSummary_AllYearsValid(t *testing.T) {
	s := newTestService(t)

	for _, year := range s.Dataset().Years() {
		summary, err := s.TournamentSummary(year)
		require.NoError(t, err)
		assert.NotEmpty(t, summary.Host, "year %d", year)
		assert.GreaterOrEqual(t, summary.GoalsScored, 0, "year %d", year)
	}
}

func TestTournamentSummary_NotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.TournamentSummary(1942)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTournamentMatches_Ordering(t *testing.T) {
	s := newTestService(t)

	matches, err := s.TournamentMatches(2014)
	require.NoError(t, err)
	require.Len(t, matches, 4)

	// group stage first, then semi, then final
	assert.Equal(t, "Group A", matches[0].Stage)
	assert.Equal(t, "Group G", matches[1].Stage)
	assert.Equal(t, "Semi-finals", matches[2].Stage)
	assert.Equal(t, "Final", matches[3].Stage)

	assert.Equal(t, 8, matches[2].TotalGoals)
}

func TestTeamJourney(t *testing.T) {
	s := newTestService(t)

	journey, err := s.TeamJourney(2014, "Germany")
	require.NoError(t, err)
	require.Len(t, journey, 3)

	assert.Equal(t, "Group G", journey[0].Stage)
	assert.Equal(t, "Semi-finals", journey[1].Stage)
	assert.Equal(t, "Final", journey[2].Stage)

	semi := journey[1]
	assert.Equal(t, "Brazil", semi.Opponent)
	assert.Equal(t, 7, semi.GoalsFor)
	assert.Equal(t, 1, semi.GoalsAgainst)
	assert.Equal(t, ResultWin, semi.Result)

	for _, jm := range journey {
		switch {
		case jm.GoalsFor > jm.GoalsAgainst:
			assert.Equal(t, ResultWin, jm.Result)
		case jm.GoalsFor < jm.GoalsAgainst:
			assert.Equal(t, ResultLoss, jm.Result)
		default:
			assert.Equal(t, ResultDraw, jm.Result)
		}
	}
}

func TestTeamJourney_DrawCarriesWinConditions(t *testing.T) {
	s := newTestService(t)

	journey, err := s.TeamJourney(2022, "Argentina")
	require.NoError(t, err)
	require.Len(t, journey, 2)

	final := journey[1]
	assert.Equal(t, "Final", final.Stage)
	assert.Equal(t, ResultDraw, final.Result)
	assert.Equal(t, "Argentina win on penalties (4 - 2)", final.WinConditions)
}

func TestTeamJourney_NotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.TeamJourney(2026, "Brazil")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.TeamJourney(2014, "Wakanda")
	assert.ErrorIs(t, err, ErrNotFound)

	// team exists, but not in that edition
	_, err = s.TeamJourney(1930, "Germany")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHeadToHead_Mineirazo(t *testing.T) {
	s := newTestService(t)

	result, err := s.HeadToHead("Brazil", "Germany")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Matches)
	assert.Equal(t, 0, result.WinsA)
	assert.Equal(t, 1, result.WinsB)
	assert.Equal(t, 0, result.Draws)
	assert.Equal(t, 1, result.GoalsA)
	assert.Equal(t, 7, result.GoalsB)

	require.Len(t, result.History, 1)
	semi := result.History[0]
	assert.Equal(t, 2014, semi.Year)
	assert.Equal(t, "Semi-finals", semi.Stage)
	assert.Equal(t, "Germany", semi.Winner)
}

func TestHeadToHead_Symmetric(t *testing.T) {
	s := newTestService(t)

	ab, err := s.HeadToHead("Brazil", "Germany")
	require.NoError(t, err)
	ba, err := s.HeadToHead("Germany", "Brazil")
	require.NoError(t, err)

	assert.Equal(t, ab.Matches, ba.Matches)
	assert.Equal(t, ab.WinsA, ba.WinsB)
	assert.Equal(t, ab.WinsB, ba.WinsA)
	assert.Equal(t, ab.Draws, ba.Draws)
	assert.Equal(t, ab.GoalsA, ba.GoalsB)
	assert.Equal(t, ab.GoalsB, ba.GoalsA)
	assert.Equal(t, ab.History, ba.History)
}

func TestHeadToHead_WinsPlusDrawsEqualMatches(t *testing.T) {
	s := newTestService(t)

	pairs := [][2]string{
		{"Brazil", "Germany"},
		{"Argentina", "France"},
		{"Uruguay", "Argentina"},
		{"Germany", "Argentina"},
	}
	for _, pair := range pairs {
		result, err := s.HeadToHead(pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, result.Matches, result.WinsA+result.WinsB+result.Draws,
			"%s vs %s", pair[0], pair[1])
	}
}

func TestHeadToHead_NeverMet(t *testing.T) {
	s := newTestService(t)

	// both exist, never played each other
	result, err := s.HeadToHead("France", "Portugal")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Matches)
	assert.Empty(t, result.History)
}

func TestHeadToHead_Errors(t *testing.T) {
	s := newTestService(t)

	_, err := s.HeadToHead("Brazil", "Wakanda")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.HeadToHead("Brazil", "Brazil")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.HeadToHead("", "Brazil")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPlacements(t *testing.T) {
	s := newTestService(t)

	placements := s.Placements()
	require.NotEmpty(t, placements)

	// Argentina: one title (2022) and two runner-up finishes
	assert.Equal(t, "Argentina", placements[0].Country)
	assert.Equal(t, 1, placements[0].First)
	assert.Equal(t, 2, placements[0].Second)
	assert.Equal(t, 3, placements[0].Total)

	// totals never increase down the list
	for i := 1; i < len(placements); i++ {
		assert.GreaterOrEqual(t, placements[i-1].Total, placements[i].Total)
	}
}

func TestMapData(t *testing.T) {
	s := newTestService(t)

	entries := s.MapData()
	byISO := make(map[string]MapEntry, len(entries))
	for _, e := range entries {
		byISO[e.ISO3] = e
	}

	germany, ok := byISO["DEU"]
	require.True(t, ok)
	assert.Equal(t, 1, germany.Titles)
	assert.Equal(t, 1, germany.Appearances) // 2014 only in the fixture

	argentina := byISO["ARG"]
	assert.Equal(t, 1, argentina.Titles)
	assert.Equal(t, 3, argentina.TopFour)
	assert.Equal(t, 3, argentina.Appearances)
}

func TestYearsAndTeams(t *testing.T) {
	d := newTestDataset(t)

	assert.Equal(t, []int{2022, 2014, 1930}, d.Years())

	teams := d.Teams()
	assert.Contains(t, teams, "Brazil")
	assert.Contains(t, teams, "Morocco")
	assert.True(t, sortedStrings(teams))
}

func sortedStrings(values []string) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}
