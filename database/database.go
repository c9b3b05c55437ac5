package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver names as registered with database/sql.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Connect opens the snapshot database. A postgres:// or postgresql://
// URL selects lib/pq; anything else is treated as a SQLite file path.
func Connect(databaseURL string) (*sql.DB, string, error) {
	driver := DriverSQLite
	dsn := databaseURL
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		driver = DriverPostgres
	} else {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", databaseURL)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, driver, nil
}

// Migrate creates the snapshot tables. DDL stays in the dialect both
// backends accept.
func Migrate(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS world_cups (
			year INTEGER PRIMARY KEY,
			host TEXT NOT NULL,
			continent TEXT,
			winner TEXT,
			runner_up TEXT,
			third TEXT,
			fourth TEXT,
			goals_scored INTEGER DEFAULT 0,
			qualified_teams INTEGER DEFAULT 0,
			matches_played INTEGER DEFAULT 0,
			attendance INTEGER DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS world_cup_matches (
			match_id BIGINT PRIMARY KEY,
			round_id BIGINT,
			year INTEGER NOT NULL,
			kickoff TIMESTAMP,
			stage TEXT,
			stadium TEXT,
			city TEXT,
			home_team TEXT NOT NULL,
			away_team TEXT NOT NULL,
			home_initials TEXT,
			away_initials TEXT,
			home_goals INTEGER DEFAULT 0,
			away_goals INTEGER DEFAULT 0,
			ht_home_goals INTEGER DEFAULT 0,
			ht_away_goals INTEGER DEFAULT 0,
			win_conditions TEXT,
			attendance INTEGER DEFAULT 0,
			referee TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_year ON world_cup_matches(year)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_home_team ON world_cup_matches(home_team)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_away_team ON world_cup_matches(away_team)`,

		`CREATE TABLE IF NOT EXISTS world_cup_players (
			round_id BIGINT,
			match_id BIGINT NOT NULL,
			team_initials TEXT,
			coach_name TEXT,
			line_up TEXT,
			shirt_number INTEGER DEFAULT 0,
			player_name TEXT NOT NULL,
			position TEXT,
			event TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_players_match_id ON world_cup_players(match_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// placeholders builds the parameter list for an INSERT in the driver's
// placeholder style: "$1, $2, ..." for postgres, "?, ?, ..." otherwise.
func placeholders(driver string, n int) string {
	marks := make([]string, n)
	for i := range marks {
		if driver == DriverPostgres {
			marks[i] = fmt.Sprintf("$%d", i+1)
		} else {
			marks[i] = "?"
		}
	}
	return strings.Join(marks, ", ")
}
