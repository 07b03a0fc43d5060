// Package dataset loads the pre-scored weekly stat sheet the analysis
// service serves from. The sheet is immutable after load; scores are
// computed upstream and carried verbatim.
package dataset

import (
	"fmt"
	"os"
	"strings"

	"github.com/gridironhq/startsit/internal/analysis"
	"github.com/gridironhq/startsit/internal/model"
	"github.com/gridironhq/startsit/internal/roster"

	"gopkg.in/yaml.v3"
)

// fantasyPositions limits team lookups to the positions the scoring model
// upstream is built for. QB/K/DEF rows are ignored even if present.
var fantasyPositions = map[string]bool{"RB": true, "WR": true, "TE": true}

// Row is one player-week line in the stat sheet.
type Row struct {
	Name       string  `yaml:"name"`
	Team       string  `yaml:"team"`
	Position   string  `yaml:"position"`
	Week       int     `yaml:"week"`
	Volume     int     `yaml:"volume"` // carries + targets
	Yards      int     `yaml:"yards"`  // rushing + receiving
	Receptions int     `yaml:"receptions"`
	TD         int     `yaml:"td"`
	RecoScore  float64 `yaml:"reco_score"`
}

// Sheet holds one season of weekly rows.
type Sheet struct {
	Season int   `yaml:"season"`
	Rows   []Row `yaml:"players"`
}

// Load reads and validates a stat sheet from path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read sheet: %w", err)
	}
	return Parse(data)
}

// Parse decodes a stat sheet from raw YAML.
func Parse(data []byte) (*Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("dataset: parse sheet: %w", err)
	}
	if s.Season <= 0 {
		return nil, fmt.Errorf("dataset: sheet has no season")
	}
	for i, row := range s.Rows {
		if strings.TrimSpace(row.Name) == "" {
			return nil, fmt.Errorf("dataset: row %d has no name", i)
		}
		if row.Week <= 0 {
			return nil, fmt.Errorf("dataset: row %d (%s) has no week", i, row.Name)
		}
	}
	return &s, nil
}

// PlayerWeek finds the first row whose name contains the query,
// case-insensitively, for the given week.
func (s *Sheet) PlayerWeek(name string, week int) (Row, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return Row{}, false
	}
	for _, row := range s.Rows {
		if row.Week == week && strings.Contains(strings.ToLower(row.Name), query) {
			return row, true
		}
	}
	return Row{}, false
}

// TeamWeek returns every fantasy-relevant row for a team and week.
func (s *Sheet) TeamWeek(team string, week int) []Row {
	var rows []Row
	for _, row := range s.Rows {
		if row.Week == week && row.Team == team && fantasyPositions[row.Position] {
			rows = append(rows, row)
		}
	}
	return rows
}

// AnalyzeWeek resolves an input as a team or player lookup and returns the
// matching records. A team input yields one record per fantasy player on
// that team; a player input yields at most one. Missing data returns an
// empty slice, never an error.
func (s *Sheet) AnalyzeWeek(input string, year, week int) ([]model.PlayerRecord, error) {
	if year != s.Season {
		return nil, nil
	}

	var rows []Row
	if roster.IsTeamInput(input) {
		rows = s.TeamWeek(roster.Normalize(input), week)
	} else if row, ok := s.PlayerWeek(input, week); ok {
		rows = []Row{row}
	}

	records := make([]model.PlayerRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.PlayerRecord{
			PlayerName:     row.Name,
			Team:           row.Team,
			Position:       row.Position,
			Volume:         row.Volume,
			Yards:          row.Yards,
			Receptions:     row.Receptions,
			Touchdowns:     row.TD,
			RecoScore:      row.RecoScore,
			RecoConclusion: analysis.ClassifyScore(row.RecoScore).Conclusion(),
			InputYear:      year,
			InputWeek:      week,
		})
	}
	return records, nil
}
