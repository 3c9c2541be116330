package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/challenge"
)

var (
	correctStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	wrongStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

	// TitleStyle renders challenge headings.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

	// SubtleStyle renders secondary detail (inputs, diffs).
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	// PanelStyle frames live-view sections.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// RenderVerdict colors a verdict string the way the grader prints it.
func RenderVerdict(v challenge.Verdict) string {
	switch v {
	case challenge.Correct:
		return correctStyle.Render(v.String())
	case challenge.WrongAnswer:
		return wrongStyle.Render(v.String())
	default:
		return errorStyle.Render(v.String())
	}
}
