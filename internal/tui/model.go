package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/gridironhq/startsit/internal/model"
)

// Analyzer is the narrow client contract the form controller needs.
type Analyzer interface {
	Analyze(ctx context.Context, in model.FormInputs) ([]model.PlayerRecord, error)
}

// Field indexes for form focus order.
const (
	fieldPlayer = iota
	fieldWeek
	fieldYear
	fieldCount
)

// viewMode selects what the results section shows. The response's
// cardinality is the only thing that picks between detail and list.
type viewMode int

const (
	viewIdle   viewMode = iota // nothing rendered yet, or results hidden
	viewNotice                 // informational message (empty result)
	viewDetail                 // single-player detail card
	viewList                   // sorted comparison list
)

// AnalyzeModel is the Bubble Tea model for the analysis form: it collects
// the three inputs, submits them, and renders whichever view the response
// shape calls for. One user-triggered task at a time; the network call is
// the only suspension point.
type AnalyzeModel struct {
	client Analyzer

	inputs   [fieldCount]textinput.Model
	focusIdx int

	submitting bool
	errText    string

	mode   viewMode
	notice string
	detail model.PlayerRecord
	list   []model.PlayerRecord

	width  int
	height int
}

// NewAnalyzeModel builds the form pre-filled with the default season and
// week so a bare enter on a player name just works.
func NewAnalyzeModel(client Analyzer, defaultYear, defaultWeek int) *AnalyzeModel {
	player := textinput.New()
	player.Placeholder = "Player name or team (e.g. Christian McCaffrey, Eagles)"
	player.CharLimit = 80
	player.Focus()

	week := textinput.New()
	week.Placeholder = "Week"
	week.CharLimit = 2
	week.SetValue(strconv.Itoa(defaultWeek))

	year := textinput.New()
	year.Placeholder = "Year"
	year.CharLimit = 4
	year.SetValue(strconv.Itoa(defaultYear))

	m := &AnalyzeModel{client: client}
	m.inputs[fieldPlayer] = player
	m.inputs[fieldWeek] = week
	m.inputs[fieldYear] = year
	return m
}

// formInputs snapshots the trimmed field values for one submission.
func (m *AnalyzeModel) formInputs() model.FormInputs {
	return model.FormInputs{
		PlayerOrTeam: strings.TrimSpace(m.inputs[fieldPlayer].Value()),
		Week:         strings.TrimSpace(m.inputs[fieldWeek].Value()),
		Year:         strings.TrimSpace(m.inputs[fieldYear].Value()),
	}
}

// setFocus moves keyboard focus to the given field.
func (m *AnalyzeModel) setFocus(idx int) {
	m.focusIdx = idx
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}
