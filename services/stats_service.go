package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"worldcup-service/dataset"
	"worldcup-service/metrics"
)

// StatsService derives the dashboard views from the immutable dataset.
// All operations are read-only lookups; the only state besides the
// dataset reference is the query cache.
type StatsService struct {
	data  *dataset.Dataset
	cache *QueryCache
}

// NewStatsService creates a stats service over the given dataset.
func NewStatsService(data *dataset.Dataset, cacheTTL time.Duration) *StatsService {
	return &StatsService{
		data:  data,
		cache: NewQueryCache(cacheTTL),
	}
}

// Dataset exposes the underlying dataset for selector endpoints.
func (s *StatsService) Dataset() *dataset.Dataset {
	return s.data
}

// Match results from the perspective of one team.
const (
	ResultWin  = "win"
	ResultDraw = "draw"
	ResultLoss = "loss"
)

// Medal is one podium placement of a tournament.
type Medal struct {
	Place   int    `json:"place"`
	Team    string `json:"team"`
	FlagURL string `json:"flag_url,omitempty"`
}

// TournamentSummary is the per-edition overview.
type TournamentSummary struct {
	Year           int     `json:"year"`
	Host           string  `json:"host"`
	HostContinent  string  `json:"host_continent"`
	GoalsScored    int     `json:"goals_scored"`
	QualifiedTeams int     `json:"qualified_teams"`
	MatchesPlayed  int     `json:"matches_played"`
	Attendance     int     `json:"attendance"`
	Medals         []Medal `json:"medals"`
}

// TournamentSummary returns the overview for one World Cup year.
func (s *StatsService) TournamentSummary(year int) (*TournamentSummary, error) {
	defer metrics.TimeAggregation("tournament_summary")()

	t, ok := s.data.TournamentByYear(year)
	if !ok {
		return nil, fmt.Errorf("tournament %d: %w", year, ErrNotFound)
	}

	summary := &TournamentSummary{
		Year:           t.Year,
		Host:           t.Host,
		HostContinent:  t.Continent,
		GoalsScored:    t.GoalsScored,
		QualifiedTeams: t.QualifiedTeams,
		MatchesPlayed:  t.MatchesPlayed,
		Attendance:     t.Attendance,
	}
	for place, team := range map[int]string{1: t.Winner, 2: t.RunnerUp, 3: t.Third, 4: t.Fourth} {
		if team == "" {
			continue
		}
		summary.Medals = append(summary.Medals, Medal{
			Place:   place,
			Team:    team,
			FlagURL: dataset.FlagURL(team),
		})
	}
	sort.Slice(summary.Medals, func(i, j int) bool {
		return summary.Medals[i].Place < summary.Medals[j].Place
	})
	return summary, nil
}

// TournamentMatch is one match row of the per-edition detail view.
type TournamentMatch struct {
	dataset.MatchRecord
	TotalGoals int `json:"total_goals"`
}

// TournamentMatches returns all matches of a year in play order, with
// the per-match total goals used by the goals chart.
func (s *StatsService) TournamentMatches(year int) ([]TournamentMatch, error) {
	defer metrics.TimeAggregation("tournament_matches")()

	key := GenerateCacheKey("tournament_matches", year)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]TournamentMatch), nil
	}

	if _, ok := s.data.TournamentByYear(year); !ok {
		return nil, fmt.Errorf("tournament %d: %w", year, ErrNotFound)
	}

	records := s.data.MatchesByYear(year)
	matches := make([]TournamentMatch, 0, len(records))
	for _, m := range records {
		matches = append(matches, TournamentMatch{
			MatchRecord: *m,
			TotalGoals:  m.HomeGoals + m.AwayGoals,
		})
	}
	sortMatches(matches)

	s.cache.Set(key, matches)
	return matches, nil
}

// JourneyMatch is one step of a team's run through a tournament.
type JourneyMatch struct {
	MatchID       int64     `json:"match_id"`
	Stage         string    `json:"stage"`
	Kickoff       time.Time `json:"kickoff"`
	Stadium       string    `json:"stadium,omitempty"`
	City          string    `json:"city,omitempty"`
	Opponent      string    `json:"opponent"`
	OpponentFlag  string    `json:"opponent_flag,omitempty"`
	GoalsFor      int       `json:"goals_for"`
	GoalsAgainst  int       `json:"goals_against"`
	Result        string    `json:"result"`
	WinConditions string    `json:"win_conditions,omitempty"`
}

// TeamJourney returns a team's matches in one tournament, ordered by
// stage then kickoff, with results derived from the goal counts.
func (s *StatsService) TeamJourney(year int, team string) ([]JourneyMatch, error) {
	defer metrics.TimeAggregation("team_journey")()

	team = strings.TrimSpace(team)
	if team == "" {
		return nil, fmt.Errorf("team name: %w", ErrInvalidInput)
	}
	if _, ok := s.data.TournamentByYear(year); !ok {
		return nil, fmt.Errorf("tournament %d: %w", year, ErrNotFound)
	}

	var journey []JourneyMatch
	for _, m := range s.data.MatchesByYear(year) {
		var goalsFor, goalsAgainst int
		var opponent string
		switch team {
		case m.HomeTeam:
			goalsFor, goalsAgainst, opponent = m.HomeGoals, m.AwayGoals, m.AwayTeam
		case m.AwayTeam:
			goalsFor, goalsAgainst, opponent = m.AwayGoals, m.HomeGoals, m.HomeTeam
		default:
			continue
		}
		journey = append(journey, JourneyMatch{
			MatchID:       m.MatchID,
			Stage:         m.Stage,
			Kickoff:       m.Kickoff,
			Stadium:       m.Stadium,
			City:          m.City,
			Opponent:      opponent,
			OpponentFlag:  dataset.FlagURL(opponent),
			GoalsFor:      goalsFor,
			GoalsAgainst:  goalsAgainst,
			Result:        resultOf(goalsFor, goalsAgainst),
			WinConditions: m.WinConditions,
		})
	}
	if len(journey) == 0 {
		return nil, fmt.Errorf("team %q in %d: %w", team, year, ErrNotFound)
	}

	sort.SliceStable(journey, func(i, j int) bool {
		oi, oj := stageOrder(journey[i].Stage), stageOrder(journey[j].Stage)
		if oi != oj {
			return oi < oj
		}
		return journey[i].Kickoff.Before(journey[j].Kickoff)
	})
	return journey, nil
}

// HeadToHeadMatch is one meeting of the pair, kept in the result so the
// UI can list the full history.
type HeadToHeadMatch struct {
	MatchID       int64     `json:"match_id"`
	Year          int       `json:"year"`
	Stage         string    `json:"stage"`
	Kickoff       time.Time `json:"kickoff"`
	HomeTeam      string    `json:"home_team"`
	AwayTeam      string    `json:"away_team"`
	HomeGoals     int       `json:"home_goals"`
	AwayGoals     int       `json:"away_goals"`
	Winner        string    `json:"winner,omitempty"` // empty on a draw
	WinConditions string    `json:"win_conditions,omitempty"`
}

// HeadToHeadResult aggregates all meetings of an unordered team pair.
// Swapping the arguments mirrors the A/B fields but describes the same
// record.
type HeadToHeadResult struct {
	TeamA   string            `json:"team_a"`
	TeamB   string            `json:"team_b"`
	FlagA   string            `json:"flag_a,omitempty"`
	FlagB   string            `json:"flag_b,omitempty"`
	Matches int               `json:"matches"`
	WinsA   int               `json:"wins_a"`
	WinsB   int               `json:"wins_b"`
	Draws   int               `json:"draws"`
	GoalsA  int               `json:"goals_a"`
	GoalsB  int               `json:"goals_b"`
	History []HeadToHeadMatch `json:"history"`
}

// HeadToHead aggregates every meeting of the pair across all years.
// Both teams must exist in the dataset; a pair that exists but never
// met yields a zero-valued result rather than an error.
func (s *StatsService) HeadToHead(teamA, teamB string) (*HeadToHeadResult, error) {
	defer metrics.TimeAggregation("head_to_head")()

	teamA, teamB = strings.TrimSpace(teamA), strings.TrimSpace(teamB)
	if teamA == "" || teamB == "" {
		return nil, fmt.Errorf("team pair: %w", ErrInvalidInput)
	}
	if teamA == teamB {
		return nil, fmt.Errorf("team pair %q vs itself: %w", teamA, ErrInvalidInput)
	}
	if !s.data.HasTeam(teamA) {
		return nil, fmt.Errorf("team %q: %w", teamA, ErrNotFound)
	}
	if !s.data.HasTeam(teamB) {
		return nil, fmt.Errorf("team %q: %w", teamB, ErrNotFound)
	}

	result := &HeadToHeadResult{
		TeamA: teamA,
		TeamB: teamB,
		FlagA: dataset.FlagURL(teamA),
		FlagB: dataset.FlagURL(teamB),
	}
	for i := range s.data.Matches {
		m := &s.data.Matches[i]
		var goalsA, goalsB int
		switch {
		case m.HomeTeam == teamA && m.AwayTeam == teamB:
			goalsA, goalsB = m.HomeGoals, m.AwayGoals
		case m.HomeTeam == teamB && m.AwayTeam == teamA:
			goalsA, goalsB = m.AwayGoals, m.HomeGoals
		default:
			continue
		}

		result.Matches++
		result.GoalsA += goalsA
		result.GoalsB += goalsB
		var winner string
		switch {
		case goalsA > goalsB:
			result.WinsA++
			winner = teamA
		case goalsB > goalsA:
			result.WinsB++
			winner = teamB
		default:
			result.Draws++
		}

		result.History = append(result.History, HeadToHeadMatch{
			MatchID:       m.MatchID,
			Year:          m.Year,
			Stage:         m.Stage,
			Kickoff:       m.Kickoff,
			HomeTeam:      m.HomeTeam,
			AwayTeam:      m.AwayTeam,
			HomeGoals:     m.HomeGoals,
			AwayGoals:     m.AwayGoals,
			Winner:        winner,
			WinConditions: m.WinConditions,
		})
	}

	sort.SliceStable(result.History, func(i, j int) bool {
		if result.History[i].Year != result.History[j].Year {
			return result.History[i].Year < result.History[j].Year
		}
		return result.History[i].Kickoff.Before(result.History[j].Kickoff)
	})
	return result, nil
}

func resultOf(goalsFor, goalsAgainst int) string {
	switch {
	case goalsFor > goalsAgainst:
		return ResultWin
	case goalsFor < goalsAgainst:
		return ResultLoss
	default:
		return ResultDraw
	}
}

// stageOrder ranks the stage names seen in the data so knockout rounds
// sort after the groups. Unknown stages sort with the group stage.
func stageOrder(stage string) int {
	s := strings.ToLower(strings.TrimSpace(stage))
	switch {
	case strings.Contains(s, "round of 16"):
		return 1
	case strings.Contains(s, "quarter"):
		return 2
	case strings.Contains(s, "semi"):
		return 3
	case strings.Contains(s, "third"):
		return 4
	case s == "final":
		return 5
	default:
		return 0
	}
}

func sortMatches(matches []TournamentMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		oi, oj := stageOrder(matches[i].Stage), stageOrder(matches[j].Stage)
		if oi != oj {
			return oi < oj
		}
		if !matches[i].Kickoff.Equal(matches[j].Kickoff) {
			return matches[i].Kickoff.Before(matches[j].Kickoff)
		}
		return matches[i].MatchID < matches[j].MatchID
	})
}
