package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gridironhq/startsit/internal/analysis"
	"github.com/gridironhq/startsit/internal/model"
)

// View renders the form, the shared error region, and whichever results
// view is active.
func (m *AnalyzeModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing..."
	}

	sections := []string{
		m.renderBranding(),
		m.renderForm(),
	}

	if m.errText != "" {
		sections = append(sections, errorStyle.Render("⚠ "+m.errText))
	}

	switch m.mode {
	case viewNotice:
		sections = append(sections, noticeStyle.Render(m.notice))
	case viewDetail:
		sections = append(sections, m.renderDetail())
	case viewList:
		sections = append(sections, m.renderList())
	}

	sections = append(sections, m.renderStatusLine())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderBranding renders "StartSit" with a green to blue gradient.
func (m *AnalyzeModel) renderBranding() string {
	colors := []string{
		"#49E209", "#3FDF2B", "#35DD4D", "#2BDA6F",
		"#21D791", "#17D4B3", "#0DD1D5", "#03CEF7",
	}
	chars := []string{"S", "t", "a", "r", "t", "S", "i", "t"}

	var result string
	for i, char := range chars {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])).Bold(true)
		result += style.Render(char)
	}
	return result + dimStyle.Render("  weekly start/sit analysis")
}

// renderForm renders the three labeled inputs and the submit row.
func (m *AnalyzeModel) renderForm() string {
	rows := []string{
		m.renderField("Player / Team", fieldPlayer),
		m.renderField("Week", fieldWeek),
		m.renderField("Year", fieldYear),
		"",
		m.renderSubmitRow(),
	}
	return sectionStyle.Width(m.formWidth()).Render(strings.Join(rows, "\n"))
}

func (m *AnalyzeModel) renderField(label string, idx int) string {
	style := labelStyle
	if m.focusIdx == idx {
		style = focusedLabelStyle
	}
	return fmt.Sprintf("%s %s", style.Width(14).Render(label), m.inputs[idx].View())
}

// renderSubmitRow shows the submit control: an idle prompt, or the spinner
// with its in-flight label while a request is out.
func (m *AnalyzeModel) renderSubmitRow() string {
	if m.submitting {
		busy := lipgloss.NewStyle().Foreground(ColorYellow).Italic(true)
		return busy.Render(spinnerFrame() + " Analyzing...")
	}
	return headerStyle.Render("[ Enter: Analyze ]")
}

// renderDetail renders the single-player card: identity, tier conclusion,
// score out of 100, echoed inputs, and the four stat fields.
func (m *AnalyzeModel) renderDetail() string {
	rec := m.detail
	tier := analysis.ClassifyScore(rec.RecoScore)

	identity := headerStyle.Render(rec.PlayerName) +
		dimStyle.Render(fmt.Sprintf("  %s · %s", rec.Team, rec.Position))
	conclusion := tierStyle(tier).Render(tier.Conclusion())
	score := fmt.Sprintf("Score: %s", headerStyle.Render(analysis.FormatScoreOutOf100(rec.RecoScore)))
	echo := dimStyle.Render(fmt.Sprintf("Year %d · Week %d", rec.InputYear, rec.InputWeek))
	stats := fmt.Sprintf("Volume %d   Yards %d   Receptions %d   TDs %d",
		rec.Volume, rec.Yards, rec.Receptions, rec.Touchdowns)

	card := strings.Join([]string{identity, conclusion, score, echo, stats}, "\n")
	return sectionStyle.
		BorderForeground(tierColor(tier)).
		Width(m.formWidth()).
		Render(card)
}

// renderList renders the team comparison: a header derived from the first
// record, then one card per record in descending score order.
func (m *AnalyzeModel) renderList() string {
	if len(m.list) == 0 {
		return ""
	}

	header := headerStyle.Render(fmt.Sprintf("%s — Week %s",
		m.list[0].Team, analysis.ListHeaderWeek(m.list)))

	lines := []string{header, ""}
	for _, rec := range m.list {
		lines = append(lines, m.renderListCard(rec))
	}
	return sectionStyle.Width(m.formWidth()).Render(strings.Join(lines, "\n"))
}

// renderListCard renders one summary line: name, position, team, score as
// a percentage, and the server-supplied conclusion.
func (m *AnalyzeModel) renderListCard(rec model.PlayerRecord) string {
	tier := analysis.ClassifyScore(rec.RecoScore)
	score := tierStyle(tier).Render(analysis.FormatScorePercent(rec.RecoScore))
	return fmt.Sprintf("%s %s  %s",
		headerStyle.Width(24).Render(rec.PlayerName),
		dimStyle.Render(fmt.Sprintf("%-3s %-4s", rec.Position, rec.Team)),
		score+"  "+rec.RecoConclusion,
	)
}

// renderStatusLine renders the key help at the bottom of the screen.
func (m *AnalyzeModel) renderStatusLine() string {
	help := "Enter: Analyze • Tab: Next field • Esc: Quit"
	if m.width < 50 {
		help = "Enter • Tab • Esc"
	}
	return dimStyle.Render(help)
}

// formWidth clamps the layout to something readable on wide terminals.
func (m *AnalyzeModel) formWidth() int {
	w := m.width - 2
	if w > 76 {
		w = 76
	}
	if w < 40 {
		w = 40
	}
	return w
}
