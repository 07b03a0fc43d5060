package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gridironhq/startsit/internal/analysis"
)

// Shared palette. Tier colors line up with the 75/45 score cuts.
var (
	ColorGreen  = lipgloss.Color("#44FF44")
	ColorYellow = lipgloss.Color("#FFD700")
	ColorRed    = lipgloss.Color("#FF4444")
	ColorGray   = lipgloss.Color("240")
	ColorWhite  = lipgloss.Color("#FFFFFF")
	ColorNavy   = lipgloss.Color("#1A2B4C")
	ColorBlue   = lipgloss.Color("#00AAFF")
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorNavy).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)

// tierColor maps a tier to its display color. The list view collapses the
// three tiers onto the red/yellow/green ramp; the detail view uses the
// same mapping for its conclusion line.
func tierColor(t analysis.Tier) lipgloss.Color {
	switch t {
	case analysis.TierMustStart:
		return ColorGreen
	case analysis.TierFlex:
		return ColorYellow
	default:
		return ColorRed
	}
}

// tierStyle styles text in the tier's color.
func tierStyle(t analysis.Tier) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(tierColor(t)).Bold(t == analysis.TierMustStart)
}
