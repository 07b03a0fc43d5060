package model

// Shared defaults used by both the server and TUI binaries.
// Season and week track the current NFL season.
const (
	DefaultSeason = 2025
	DefaultWeek   = 15

	DefaultAPIPort  = 8040
	DefaultEndpoint = "http://127.0.0.1:8040/analyze_player"
)
