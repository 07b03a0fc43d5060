package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridironhq/startsit/internal/analysis"
	"github.com/gridironhq/startsit/internal/apiclient"
	"github.com/gridironhq/startsit/internal/model"
)

// analyzeResultMsg delivers a settled request back to the event loop.
type analyzeResultMsg struct {
	records []model.PlayerRecord
	err     error
}

func (m *AnalyzeModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m *AnalyzeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case analyzeResultMsg:
		m.submitting = false
		m.applyResult(msg)
		return m, nil

	case SpinnerTickMsg:
		return m, m.scheduleSpinnerTick()
	}

	return m, m.updateFocusedInput(msg)
}

func (m *AnalyzeModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		m.setFocus((m.focusIdx + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focusIdx + fieldCount - 1) % fieldCount)
		return m, nil
	case "enter":
		return m, m.submit()
	}
	return m, m.updateFocusedInput(msg)
}

// updateFocusedInput forwards a message to whichever text input has focus.
func (m *AnalyzeModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return cmd
}

// submit validates the form and dispatches the analysis request. A failed
// validation never issues a network call: the error is surfaced and the
// form stays submittable. While a request is in flight further submits are
// ignored, but a response landing later always wins the display.
func (m *AnalyzeModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	in := m.formInputs()
	if !in.Complete() {
		m.errText = "Please provide a player or team, a week, and a year."
		return nil
	}

	m.submitting = true
	m.errText = ""
	m.notice = ""
	m.mode = viewIdle

	return tea.Batch(m.analyzeCmd(in), m.scheduleSpinnerTick())
}

// analyzeCmd performs the network call off the event loop. There is no
// timeout and no cancellation of an earlier request.
func (m *AnalyzeModel) analyzeCmd(in model.FormInputs) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		records, err := client.Analyze(context.Background(), in)
		return analyzeResultMsg{records: records, err: err}
	}
}

// applyResult classifies a settled response and picks the rendering path.
// Length is the sole dispatch signal: zero is a notice, one is the detail
// card, more is the sorted comparison list.
func (m *AnalyzeModel) applyResult(msg analyzeResultMsg) {
	if msg.err != nil {
		m.errText = displayError(msg.err)
		m.mode = viewIdle
		return
	}

	switch analysis.ClassifyOutcome(msg.records) {
	case analysis.OutcomeEmpty:
		m.mode = viewNotice
		m.notice = "No data found for that player or team."
	case analysis.OutcomeSingle:
		m.mode = viewDetail
		m.detail = msg.records[0]
		m.list = nil
	case analysis.OutcomeMany:
		records := msg.records
		analysis.SortByScore(records)
		m.mode = viewList
		m.list = records
		m.detail = model.PlayerRecord{}
	}
}

// displayError reduces any failure to the text the error region shows.
func displayError(err error) string {
	var statusErr *apiclient.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Message
	}
	if errors.Is(err, apiclient.ErrUnexpectedFormat) {
		return "Received data in an unexpected format."
	}
	return fmt.Sprintf("Request failed: %v", err)
}
