package model

// PlayerRecord is one scored player as the analysis API returns it.
// It is the canonical type for serving, transport, and display; once
// received it is only read, never mutated.
type PlayerRecord struct {
	PlayerName     string  `json:"player_name"`
	Team           string  `json:"team"`
	Position       string  `json:"position"`
	Volume         int     `json:"volume"` // carries + targets
	Yards          int     `json:"yards"`  // rushing + receiving
	Receptions     int     `json:"receptions"`
	Touchdowns     int     `json:"td"`
	RecoScore      float64 `json:"reco_score"` // 0-100, computed upstream
	RecoConclusion string  `json:"reco_conclusion"`
	InputYear      int     `json:"input_year"`
	InputWeek      int     `json:"input_week"`
}

// AnalyzeRequest is the body of POST /analyze_player. Year and week travel
// as strings; the server coerces them and rejects non-numeric values.
type AnalyzeRequest struct {
	PlayerOrTeamInput string `json:"player_or_team_input"`
	Year              string `json:"year"`
	Week              string `json:"week"`
}

// FormInputs holds the raw trimmed form fields collected before a
// submission. Built fresh per submit, discarded after the request settles.
type FormInputs struct {
	PlayerOrTeam string
	Week         string
	Year         string
}

// Complete reports whether every required field is present.
func (f FormInputs) Complete() bool {
	return f.PlayerOrTeam != "" && f.Week != "" && f.Year != ""
}
