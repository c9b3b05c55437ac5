package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"worldcup-service/logger"
)

// The dataset ships as the classic CSV trio. File names are fixed; the
// directory they live in comes from config.
const (
	TournamentsFile = "WorldCups.csv"
	MatchesFile     = "WorldCupMatches.csv"
	PlayersFile     = "WorldCupPlayers.csv"
)

// LoadDir reads the three CSV files from dir, cleans them and builds the
// validated Dataset. Any missing or malformed file is fatal to the load.
func LoadDir(dir string) (*Dataset, error) {
	tournaments, err := loadFile(dir, TournamentsFile, ParseTournaments)
	if err != nil {
		return nil, err
	}
	matches, err := loadFile(dir, MatchesFile, ParseMatches)
	if err != nil {
		return nil, err
	}
	players, err := loadFile(dir, PlayersFile, ParsePlayers)
	if err != nil {
		return nil, err
	}

	logger.Printf("Loaded %d tournaments, %d matches, %d player rows from %s",
		len(tournaments), len(matches), len(players), dir)

	return New(tournaments, matches, players)
}

func loadFile[T any](dir, name string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	records, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return records, nil
}

// header maps cleaned column names to their index.
type header map[string]int

func (h header) get(row []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(row) {
		return ""
	}
	return CleanCell(row[i])
}

func readTable(r io.Reader) (header, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("empty file")
	}

	h := make(header, len(rows[0]))
	for i, name := range rows[0] {
		// utf-8-sig files carry a BOM on the first header cell
		name = strings.TrimPrefix(name, "\ufeff")
		h[strings.TrimSpace(name)] = i
	}
	return h, rows[1:], nil
}

// ParseTournaments parses WorldCups.csv. Rows without a numeric year are
// dropped, matching the source data's trailing junk rows.
func ParseTournaments(r io.Reader) ([]TournamentRecord, error) {
	h, rows, err := readTable(r)
	if err != nil {
		return nil, err
	}

	var out []TournamentRecord
	for _, row := range rows {
		year, ok := parseIntLoose(h.get(row, "Year"))
		if !ok {
			continue
		}
		host := h.get(row, "Country")
		t := TournamentRecord{
			Year:      year,
			Host:      host,
			Continent: ContinentOf(host),
			Winner:    h.get(row, "Winner"),
			RunnerUp:  h.get(row, "Runners-Up"),
			Third:     h.get(row, "Third"),
			Fourth:    h.get(row, "Fourth"),
		}
		t.GoalsScored, _ = parseIntLoose(h.get(row, "GoalsScored"))
		t.QualifiedTeams, _ = parseIntLoose(h.get(row, "QualifiedTeams"))
		t.MatchesPlayed, _ = parseIntLoose(h.get(row, "MatchesPlayed"))
		t.Attendance, _ = parseIntLoose(h.get(row, "Attendance"))
		out = append(out, t)
	}
	return out, nil
}

// ParseMatches parses WorldCupMatches.csv, dropping rows without a year
// and deduplicating by MatchID (first occurrence wins).
func ParseMatches(r io.Reader) ([]MatchRecord, error) {
	h, rows, err := readTable(r)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool)
	var out []MatchRecord
	for _, row := range rows {
		year, ok := parseIntLoose(h.get(row, "Year"))
		if !ok {
			continue
		}
		matchID, _ := parseInt64(h.get(row, "MatchID"))
		if matchID != 0 && seen[matchID] {
			continue
		}
		seen[matchID] = true

		m := MatchRecord{
			MatchID:       matchID,
			Year:          year,
			Stage:         h.get(row, "Stage"),
			Stadium:       h.get(row, "Stadium"),
			City:          h.get(row, "City"),
			HomeTeam:      h.get(row, "Home Team Name"),
			AwayTeam:      h.get(row, "Away Team Name"),
			HomeInitials:  h.get(row, "Home Team Initials"),
			AwayInitials:  h.get(row, "Away Team Initials"),
			WinConditions: h.get(row, "Win conditions"),
			Referee:       h.get(row, "Referee"),
		}
		m.RoundID, _ = parseInt64(h.get(row, "RoundID"))
		m.HomeGoals, _ = parseIntLoose(h.get(row, "Home Team Goals"))
		m.AwayGoals, _ = parseIntLoose(h.get(row, "Away Team Goals"))
		m.HalfTimeHomeGoals, _ = parseIntLoose(h.get(row, "Half-time Home Goals"))
		m.HalfTimeAwayGoals, _ = parseIntLoose(h.get(row, "Half-time Away Goals"))
		m.Attendance, _ = parseIntLoose(h.get(row, "Attendance"))
		m.Kickoff = parseKickoff(h.get(row, "Datetime"))
		out = append(out, m)
	}
	return out, nil
}

// ParsePlayers parses WorldCupPlayers.csv.
func ParsePlayers(r io.Reader) ([]PlayerEventRecord, error) {
	h, rows, err := readTable(r)
	if err != nil {
		return nil, err
	}

	var out []PlayerEventRecord
	for _, row := range rows {
		p := PlayerEventRecord{
			TeamInitials: h.get(row, "Team Initials"),
			CoachName:    h.get(row, "Coach Name"),
			LineUp:       h.get(row, "Line-up"),
			PlayerName:   h.get(row, "Player Name"),
			Position:     h.get(row, "Position"),
			Event:        h.get(row, "Event"),
		}
		p.RoundID, _ = parseInt64(h.get(row, "RoundID"))
		p.MatchID, _ = parseInt64(h.get(row, "MatchID"))
		p.ShirtNumber, _ = parseIntLoose(h.get(row, "Shirt Number"))
		if p.PlayerName == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// parseIntLoose parses the numeric forms the source files mix freely:
// plain ints, dot-thousands attendance ("590.549", "1.045.246") and
// float-formatted counts ("3.0", "1930.0").
func parseIntLoose(s string) (int, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if isDotThousands(s) {
		if n, err := strconv.Atoi(strings.ReplaceAll(s, ".", "")); err == nil {
			return n, true
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

// isDotThousands reports whether s uses dots as thousands separators:
// every group after the first must be exactly three digits. "4444.0" is
// a float, "590.549" is 590549.
func isDotThousands(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return false
	}
	for i, p := range parts {
		if p == "" {
			return false
		}
		if i > 0 && len(p) != 3 {
			return false
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

func parseInt64(s string) (int64, bool) {
	n, ok := parseIntLoose(s)
	return int64(n), ok
}

// kickoffLayouts covers the formats seen in the matches file.
var kickoffLayouts = []string{
	"02 Jan 2006 - 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
}

func parseKickoff(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range kickoffLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
