package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"worldcup-service/dataset"
	"worldcup-service/logger"
	"worldcup-service/services"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("Failed to encode response: %v", err)
	}
}

// writeError maps the service error taxonomy onto HTTP statuses. A 404
// renders as an empty placeholder view on the dashboard side.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]interface{}{
		"error": err.Error(),
	})
}

func yearFromRequest(r *http.Request) (int, error) {
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil {
		return 0, services.ErrInvalidInput
	}
	return year, nil
}

// handleHealth reports liveness and dataset size.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	d := s.stats.Dataset()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"time":        time.Now().Unix(),
		"tournaments": len(d.Tournaments),
		"matches":     len(d.Matches),
	})
}

// handleListTournaments returns all editions, newest first, for the
// year selector.
func (s *Server) handleListTournaments(w http.ResponseWriter, r *http.Request) {
	d := s.stats.Dataset()
	tournaments := make([]dataset.TournamentRecord, len(d.Tournaments))
	copy(tournaments, d.Tournaments)
	sort.Slice(tournaments, func(i, j int) bool {
		return tournaments[i].Year > tournaments[j].Year
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tournaments": tournaments,
	})
}

// handleTournamentSummary returns the overview for one year.
func (s *Server) handleTournamentSummary(w http.ResponseWriter, r *http.Request) {
	year, err := yearFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	summary, err := s.stats.TournamentSummary(year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// handleTournamentMatches returns the ordered match list of one year.
func (s *Server) handleTournamentMatches(w http.ResponseWriter, r *http.Request) {
	year, err := yearFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	matches, err := s.stats.TournamentMatches(year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"year":    year,
		"matches": matches,
	})
}

// handleGoldenBoot returns the scorer ranking for one year. ?top=N
// truncates the list.
func (s *Server) handleGoldenBoot(w http.ResponseWriter, r *http.Request) {
	year, err := yearFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	topN := 0
	if top := r.URL.Query().Get("top"); top != "" {
		topN, err = strconv.Atoi(top)
		if err != nil || topN < 0 {
			writeError(w, services.ErrInvalidInput)
			return
		}
	}

	ranking, err := s.stats.GoldenBoot(year, topN)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"year":    year,
		"ranking": ranking,
	})
}

// handleListTeams returns the distinct team names for the selectors.
func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"teams": s.stats.Dataset().Teams(),
	})
}

// handleTeamJourney returns one team's run through a tournament;
// ?year=Y selects the edition.
func (s *Server) handleTeamJourney(w http.ResponseWriter, r *http.Request) {
	team := mux.Vars(r)["team"]
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, services.ErrInvalidInput)
		return
	}

	journey, err := s.stats.TeamJourney(year, team)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"year":    year,
		"team":    team,
		"journey": journey,
	})
}

// handleHeadToHead returns the all-time record between ?team_a and
// ?team_b.
func (s *Server) handleHeadToHead(w http.ResponseWriter, r *http.Request) {
	teamA := r.URL.Query().Get("team_a")
	teamB := r.URL.Query().Get("team_b")

	result, err := s.stats.HeadToHead(teamA, teamB)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handlePlacements returns the all-time top-4 placement counts.
func (s *Server) handlePlacements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"placements": s.stats.Placements(),
	})
}

// handleMapData returns the ISO3-keyed aggregates for the choropleth.
func (s *Server) handleMapData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"countries": s.stats.MapData(),
	})
}

// handleFlag resolves a team name to its flag URL.
func (s *Server) handleFlag(w http.ResponseWriter, r *http.Request) {
	team := mux.Vars(r)["team"]
	url := dataset.FlagURL(team)
	if url == "" {
		writeError(w, services.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"team":     team,
		"flag_url": url,
	})
}
