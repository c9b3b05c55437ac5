package dataset

import (
	"sort"
	"time"
)

// TournamentRecord is one World Cup edition from WorldCups.csv.
type TournamentRecord struct {
	Year           int    `json:"year"`
	Host           string `json:"host"`
	Continent      string `json:"continent"`
	Winner         string `json:"winner"`
	RunnerUp       string `json:"runner_up"`
	Third          string `json:"third"`
	Fourth         string `json:"fourth"`
	GoalsScored    int    `json:"goals_scored"`
	QualifiedTeams int    `json:"qualified_teams"`
	MatchesPlayed  int    `json:"matches_played"`
	Attendance     int    `json:"attendance"`
}

// MatchRecord is one played match from WorldCupMatches.csv.
type MatchRecord struct {
	MatchID           int64     `json:"match_id"`
	RoundID           int64     `json:"round_id"`
	Year              int       `json:"year"`
	Kickoff           time.Time `json:"kickoff"`
	Stage             string    `json:"stage"`
	Stadium           string    `json:"stadium"`
	City              string    `json:"city"`
	HomeTeam          string    `json:"home_team"`
	AwayTeam          string    `json:"away_team"`
	HomeInitials      string    `json:"home_initials"`
	AwayInitials      string    `json:"away_initials"`
	HomeGoals         int       `json:"home_goals"`
	AwayGoals         int       `json:"away_goals"`
	HalfTimeHomeGoals int       `json:"half_time_home_goals"`
	HalfTimeAwayGoals int       `json:"half_time_away_goals"`
	WinConditions     string    `json:"win_conditions,omitempty"`
	Attendance        int       `json:"attendance"`
	Referee           string    `json:"referee,omitempty"`
}

// PlayerEventRecord is one lineup row from WorldCupPlayers.csv. The Event
// column carries coded match events, e.g. "G40' G78'" or "P63'".
type PlayerEventRecord struct {
	RoundID      int64  `json:"round_id"`
	MatchID      int64  `json:"match_id"`
	TeamInitials string `json:"team_initials"`
	CoachName    string `json:"coach_name"`
	LineUp       string `json:"line_up"`
	ShirtNumber  int    `json:"shirt_number"`
	PlayerName   string `json:"player_name"`
	Position     string `json:"position"`
	Event        string `json:"event"`
}

// Dataset holds the three record sets loaded at startup. It is read-only
// for the lifetime of the process; all lookups go through the indexes
// built in New.
type Dataset struct {
	Tournaments []TournamentRecord
	Matches     []MatchRecord
	Players     []PlayerEventRecord

	tournamentByYear map[int]*TournamentRecord
	matchesByYear    map[int][]*MatchRecord
	matchByID        map[int64]*MatchRecord
	teamSet          map[string]bool
}

// New builds a Dataset and its lookup indexes from the given record sets
// and validates the cross-record invariants.
func New(tournaments []TournamentRecord, matches []MatchRecord, players []PlayerEventRecord) (*Dataset, error) {
	d := &Dataset{
		Tournaments:      tournaments,
		Matches:          matches,
		Players:          players,
		tournamentByYear: make(map[int]*TournamentRecord, len(tournaments)),
		matchesByYear:    make(map[int][]*MatchRecord),
		matchByID:        make(map[int64]*MatchRecord, len(matches)),
		teamSet:          make(map[string]bool),
	}

	for i := range d.Tournaments {
		t := &d.Tournaments[i]
		d.tournamentByYear[t.Year] = t
	}
	for i := range d.Matches {
		m := &d.Matches[i]
		d.matchesByYear[m.Year] = append(d.matchesByYear[m.Year], m)
		d.matchByID[m.MatchID] = m
		d.teamSet[m.HomeTeam] = true
		d.teamSet[m.AwayTeam] = true
	}

	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// TournamentByYear returns the tournament record for a year, if present.
func (d *Dataset) TournamentByYear(year int) (*TournamentRecord, bool) {
	t, ok := d.tournamentByYear[year]
	return t, ok
}

// MatchesByYear returns all matches of one tournament.
func (d *Dataset) MatchesByYear(year int) []*MatchRecord {
	return d.matchesByYear[year]
}

// MatchByID returns the match with the given MatchID, if present.
func (d *Dataset) MatchByID(id int64) (*MatchRecord, bool) {
	m, ok := d.matchByID[id]
	return m, ok
}

// HasTeam reports whether a team name appears in any match.
func (d *Dataset) HasTeam(name string) bool {
	return d.teamSet[name]
}

// Years returns all tournament years, newest first.
func (d *Dataset) Years() []int {
	years := make([]int, 0, len(d.tournamentByYear))
	for y := range d.tournamentByYear {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Teams returns the distinct team names across all matches, sorted.
func (d *Dataset) Teams() []string {
	teams := make([]string, 0, len(d.teamSet))
	for t := range d.teamSet {
		teams = append(teams, t)
	}
	sort.Strings(teams)
	return teams
}
