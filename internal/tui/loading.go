package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinnerFrame selects the current frame based on wall time so the
// indicator animates on each re-render.
func spinnerFrame() string {
	return spinnerFrames[time.Now().UnixMilli()/120%int64(len(spinnerFrames))]
}

// SpinnerTickMsg triggers a re-render while a request is in flight.
type SpinnerTickMsg struct{}

// scheduleSpinnerTick re-schedules spinner ticks while submitting.
func (m *AnalyzeModel) scheduleSpinnerTick() tea.Cmd {
	if !m.submitting {
		return nil
	}
	return tea.Tick(120*time.Millisecond, func(_ time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}
