package services

import (
	"sort"

	"worldcup-service/dataset"
	"worldcup-service/metrics"
)

// PlacementCount holds one country's top-4 finishes across all
// tournaments.
type PlacementCount struct {
	Country string `json:"country"`
	FlagURL string `json:"flag_url,omitempty"`
	First   int    `json:"first"`
	Second  int    `json:"second"`
	Third   int    `json:"third"`
	Fourth  int    `json:"fourth"`
	Total   int    `json:"total"`
}

// Placements aggregates top-4 finishes per country across all editions,
// ordered by total finishes descending (ties by country name).
func (s *StatsService) Placements() []PlacementCount {
	defer metrics.TimeAggregation("placements")()

	key := GenerateCacheKey("placements", nil)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]PlacementCount)
	}

	counts := make(map[string]*PlacementCount)
	bump := func(country string, place int) {
		if country == "" {
			return
		}
		c := counts[country]
		if c == nil {
			c = &PlacementCount{Country: country, FlagURL: dataset.FlagURL(country)}
			counts[country] = c
		}
		switch place {
		case 1:
			c.First++
		case 2:
			c.Second++
		case 3:
			c.Third++
		case 4:
			c.Fourth++
		}
		c.Total++
	}

	for i := range s.data.Tournaments {
		t := &s.data.Tournaments[i]
		bump(t.Winner, 1)
		bump(t.RunnerUp, 2)
		bump(t.Third, 3)
		bump(t.Fourth, 4)
	}

	out := make([]PlacementCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, *c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Country < out[j].Country
	})

	s.cache.Set(key, out)
	return out
}

// MapEntry is one country on the choropleth. Historic names consolidate
// into a single entry per ISO3 code (all the Germanys become DEU).
type MapEntry struct {
	ISO3        string `json:"iso3"`
	Country     string `json:"country"`
	Titles      int    `json:"titles"`
	TopFour     int    `json:"top_four"`
	Appearances int    `json:"appearances"`
}

// MapData aggregates per-ISO3 figures for the world map: titles, top-4
// finishes and tournament appearances.
func (s *StatsService) MapData() []MapEntry {
	defer metrics.TimeAggregation("map_data")()

	key := GenerateCacheKey("map_data", nil)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]MapEntry)
	}

	entries := make(map[string]*MapEntry)
	// appearance years per ISO3, so co-named historic teams count once
	appearanceYears := make(map[string]map[int]bool)
	// pick the display name seen in the most recent tournament
	nameYear := make(map[string]int)

	touch := func(country string, year int) *MapEntry {
		iso3, ok := dataset.ISO3(country)
		if !ok {
			return nil
		}
		e := entries[iso3]
		if e == nil {
			e = &MapEntry{ISO3: iso3, Country: country}
			entries[iso3] = e
			appearanceYears[iso3] = make(map[int]bool)
		}
		if year > nameYear[iso3] {
			nameYear[iso3] = year
			e.Country = country
		}
		return e
	}

	for i := range s.data.Matches {
		m := &s.data.Matches[i]
		for _, team := range []string{m.HomeTeam, m.AwayTeam} {
			if e := touch(team, m.Year); e != nil {
				appearanceYears[e.ISO3][m.Year] = true
			}
		}
	}
	for i := range s.data.Tournaments {
		t := &s.data.Tournaments[i]
		for place, team := range map[int]string{1: t.Winner, 2: t.RunnerUp, 3: t.Third, 4: t.Fourth} {
			if team == "" {
				continue
			}
			e := touch(team, t.Year)
			if e == nil {
				continue
			}
			e.TopFour++
			if place == 1 {
				e.Titles++
			}
		}
	}

	out := make([]MapEntry, 0, len(entries))
	for iso3, e := range entries {
		e.Appearances = len(appearanceYears[iso3])
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ISO3 < out[j].ISO3 })

	s.cache.Set(key, out)
	return out
}
