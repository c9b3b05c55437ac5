package dataset

import "fmt"

// validate checks the cross-record invariants after load. The dataset is
// rejected as a whole on the first violation; the process should not
// start with a partially consistent dataset.
func (d *Dataset) validate() error {
	for i := range d.Matches {
		m := &d.Matches[i]
		if _, ok := d.tournamentByYear[m.Year]; !ok {
			return fmt.Errorf("match %d references year %d with no tournament record", m.MatchID, m.Year)
		}
		if m.HomeGoals < 0 || m.AwayGoals < 0 {
			return fmt.Errorf("match %d has negative goal count", m.MatchID)
		}
		if m.HomeTeam == "" || m.AwayTeam == "" {
			return fmt.Errorf("match %d is missing a team name", m.MatchID)
		}
	}
	for i := range d.Tournaments {
		t := &d.Tournaments[i]
		if t.Host == "" {
			return fmt.Errorf("tournament %d has no host", t.Year)
		}
		if t.GoalsScored < 0 {
			return fmt.Errorf("tournament %d has negative goals", t.Year)
		}
	}
	return nil
}
