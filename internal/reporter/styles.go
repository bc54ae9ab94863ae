package reporter

import "github.com/charmbracelet/lipgloss"

// Lipgloss degrades these to what the terminal supports.
var (
	styleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleError    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	styleWarning  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleSummary  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleClass    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// paint styles text when the reporter uses colors.
func (r *Reporter) paint(style lipgloss.Style, text string) string {
	if !r.useColors {
		return text
	}
	return style.Render(text)
}
