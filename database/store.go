package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"worldcup-service/dataset"
)

// Store reads and writes the dataset snapshot tables.
type Store struct {
	db     *sql.DB
	driver string
}

// NewStore wraps a connected snapshot database.
func NewStore(db *sql.DB, driver string) *Store {
	return &Store{db: db, driver: driver}
}

// ImportDataset replaces the snapshot contents with the given dataset
// in one transaction.
func (s *Store) ImportDataset(ctx context.Context, d *dataset.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"world_cup_players", "world_cup_matches", "world_cups"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	insertCup := fmt.Sprintf(`INSERT INTO world_cups
		(year, host, continent, winner, runner_up, third, fourth,
		 goals_scored, qualified_teams, matches_played, attendance)
		VALUES (%s)`, placeholders(s.driver, 11))
	for i := range d.Tournaments {
		t := &d.Tournaments[i]
		if _, err := tx.ExecContext(ctx, insertCup,
			t.Year, t.Host, t.Continent, t.Winner, t.RunnerUp, t.Third, t.Fourth,
			t.GoalsScored, t.QualifiedTeams, t.MatchesPlayed, t.Attendance,
		); err != nil {
			return fmt.Errorf("insert tournament %d: %w", t.Year, err)
		}
	}

	insertMatch := fmt.Sprintf(`INSERT INTO world_cup_matches
		(match_id, round_id, year, kickoff, stage, stadium, city,
		 home_team, away_team, home_initials, away_initials,
		 home_goals, away_goals, ht_home_goals, ht_away_goals,
		 win_conditions, attendance, referee)
		VALUES (%s)`, placeholders(s.driver, 18))
	for i := range d.Matches {
		m := &d.Matches[i]
		var kickoff interface{}
		if !m.Kickoff.IsZero() {
			kickoff = m.Kickoff
		}
		if _, err := tx.ExecContext(ctx, insertMatch,
			m.MatchID, m.RoundID, m.Year, kickoff, m.Stage, m.Stadium, m.City,
			m.HomeTeam, m.AwayTeam, m.HomeInitials, m.AwayInitials,
			m.HomeGoals, m.AwayGoals, m.HalfTimeHomeGoals, m.HalfTimeAwayGoals,
			m.WinConditions, m.Attendance, m.Referee,
		); err != nil {
			return fmt.Errorf("insert match %d: %w", m.MatchID, err)
		}
	}

	insertPlayer := fmt.Sprintf(`INSERT INTO world_cup_players
		(round_id, match_id, team_initials, coach_name, line_up,
		 shirt_number, player_name, position, event)
		VALUES (%s)`, placeholders(s.driver, 9))
	for i := range d.Players {
		p := &d.Players[i]
		if _, err := tx.ExecContext(ctx, insertPlayer,
			p.RoundID, p.MatchID, p.TeamInitials, p.CoachName, p.LineUp,
			p.ShirtNumber, p.PlayerName, p.Position, p.Event,
		); err != nil {
			return fmt.Errorf("insert player row for match %d: %w", p.MatchID, err)
		}
	}

	return tx.Commit()
}

// LoadDataset reads the full snapshot back into a validated Dataset.
func (s *Store) LoadDataset(ctx context.Context) (*dataset.Dataset, error) {
	tournaments, err := s.loadTournaments(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.loadMatches(ctx)
	if err != nil {
		return nil, err
	}
	players, err := s.loadPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.New(tournaments, matches, players)
}

func (s *Store) loadTournaments(ctx context.Context) ([]dataset.TournamentRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		year, host, continent, winner, runner_up, third, fourth,
		goals_scored, qualified_teams, matches_played, attendance
		FROM world_cups ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("query tournaments: %w", err)
	}
	defer rows.Close()

	var out []dataset.TournamentRecord
	for rows.Next() {
		var t dataset.TournamentRecord
		if err := rows.Scan(
			&t.Year, &t.Host, &t.Continent, &t.Winner, &t.RunnerUp, &t.Third, &t.Fourth,
			&t.GoalsScored, &t.QualifiedTeams, &t.MatchesPlayed, &t.Attendance,
		); err != nil {
			return nil, fmt.Errorf("scan tournament: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) loadMatches(ctx context.Context) ([]dataset.MatchRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		match_id, round_id, year, kickoff, stage, stadium, city,
		home_team, away_team, home_initials, away_initials,
		home_goals, away_goals, ht_home_goals, ht_away_goals,
		win_conditions, attendance, referee
		FROM world_cup_matches ORDER BY year, match_id`)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var out []dataset.MatchRecord
	for rows.Next() {
		var m dataset.MatchRecord
		var kickoff sql.NullTime
		if err := rows.Scan(
			&m.MatchID, &m.RoundID, &m.Year, &kickoff, &m.Stage, &m.Stadium, &m.City,
			&m.HomeTeam, &m.AwayTeam, &m.HomeInitials, &m.AwayInitials,
			&m.HomeGoals, &m.AwayGoals, &m.HalfTimeHomeGoals, &m.HalfTimeAwayGoals,
			&m.WinConditions, &m.Attendance, &m.Referee,
		); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		if kickoff.Valid {
			m.Kickoff = kickoff.Time.UTC()
		} else {
			m.Kickoff = time.Time{}
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) loadPlayers(ctx context.Context) ([]dataset.PlayerEventRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		round_id, match_id, team_initials, coach_name, line_up,
		shirt_number, player_name, position, event
		FROM world_cup_players ORDER BY match_id`)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	var out []dataset.PlayerEventRecord
	for rows.Next() {
		var p dataset.PlayerEventRecord
		if err := rows.Scan(
			&p.RoundID, &p.MatchID, &p.TeamInitials, &p.CoachName, &p.LineUp,
			&p.ShirtNumber, &p.PlayerName, &p.Position, &p.Event,
		); err != nil {
			return nil, fmt.Errorf("scan player row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Counts returns the row count per snapshot table, for the importer
// summary.
func (s *Store) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, 3)
	for _, table := range []string{"world_cups", "world_cup_matches", "world_cup_players"} {
		var n int
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}
