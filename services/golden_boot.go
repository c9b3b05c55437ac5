package services

import (
	"fmt"
	"sort"
	"strings"

	"worldcup-service/dataset"
	"worldcup-service/metrics"
)

// GoldenBootEntry is one scorer in the per-tournament ranking.
type GoldenBootEntry struct {
	Year       int    `json:"year"`
	PlayerName string `json:"player_name"`
	Team       string `json:"team"`
	TeamFlag   string `json:"team_flag,omitempty"`
	Goals      int    `json:"goals"`
	Penalties  int    `json:"penalties"`
}

// GoldenBoot ranks a tournament's scorers by goals descending, ties
// broken by player name ascending. topN <= 0 returns the full ranking.
// Goals come from the coded Event column of the player rows; own goals
// and missed penalties do not count for the scorer.
func (s *StatsService) GoldenBoot(year, topN int) ([]GoldenBootEntry, error) {
	defer metrics.TimeAggregation("golden_boot")()

	if _, ok := s.data.TournamentByYear(year); !ok {
		return nil, fmt.Errorf("tournament %d: %w", year, ErrNotFound)
	}

	key := GenerateCacheKey("golden_boot", year)
	ranking, ok := s.cachedRanking(key)
	if !ok {
		ranking = s.buildRanking(year)
		s.cache.Set(key, ranking)
	}

	if topN > 0 && topN < len(ranking) {
		ranking = ranking[:topN]
	}
	return ranking, nil
}

func (s *StatsService) cachedRanking(key string) ([]GoldenBootEntry, bool) {
	cached, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	ranking, ok := cached.([]GoldenBootEntry)
	return ranking, ok
}

func (s *StatsService) buildRanking(year int) []GoldenBootEntry {
	teamByInitials := s.teamNamesByInitials(year)

	type scorerKey struct {
		player   string
		initials string
	}
	type tally struct {
		goals     int
		penalties int
	}
	scorers := make(map[scorerKey]*tally)

	for i := range s.data.Players {
		p := &s.data.Players[i]
		if p.Event == "" {
			continue
		}
		m, ok := s.data.MatchByID(p.MatchID)
		if !ok || m.Year != year {
			continue
		}
		goals, penalties := ParseGoalEvents(p.Event)
		if goals == 0 {
			continue
		}
		k := scorerKey{player: p.PlayerName, initials: p.TeamInitials}
		t := scorers[k]
		if t == nil {
			t = &tally{}
			scorers[k] = t
		}
		t.goals += goals
		t.penalties += penalties
	}

	ranking := make([]GoldenBootEntry, 0, len(scorers))
	for k, t := range scorers {
		team := teamByInitials[k.initials]
		if team == "" {
			team = k.initials
		}
		ranking = append(ranking, GoldenBootEntry{
			Year:       year,
			PlayerName: k.player,
			Team:       team,
			TeamFlag:   dataset.FlagURL(team),
			Goals:      t.goals,
			Penalties:  t.penalties,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Goals != ranking[j].Goals {
			return ranking[i].Goals > ranking[j].Goals
		}
		return ranking[i].PlayerName < ranking[j].PlayerName
	})
	return ranking
}

// teamNamesByInitials maps "BRA" style initials to full team names using
// that year's match records.
func (s *StatsService) teamNamesByInitials(year int) map[string]string {
	names := make(map[string]string)
	for _, m := range s.data.MatchesByYear(year) {
		if m.HomeInitials != "" {
			names[m.HomeInitials] = m.HomeTeam
		}
		if m.AwayInitials != "" {
			names[m.AwayInitials] = m.AwayTeam
		}
	}
	return names
}

// ParseGoalEvents counts scored goals in an Event cell like
// "G40' G78' P89'". G is a goal, P a converted penalty; OG (own goal),
// MP (missed penalty) and the card/substitution codes do not score.
// The second return value is how many of the goals were penalties.
func ParseGoalEvents(events string) (goals, penalties int) {
	for _, token := range strings.Fields(events) {
		token = strings.ToUpper(strings.TrimSpace(token))
		switch {
		case strings.HasPrefix(token, "OG"), strings.HasPrefix(token, "MP"):
			// no goal for the scorer
		case strings.HasPrefix(token, "G"):
			goals++
		case strings.HasPrefix(token, "P"):
			goals++
			penalties++
		}
	}
	return goals, penalties
}
