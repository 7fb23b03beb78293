package report

import "github.com/charmbracelet/lipgloss"

// Terminal styles for consistent output formatting.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// StyleCyan is used for section headers and statistics.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed is used for dropped-class sections and failures.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow is used for warnings.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen is used for kept classes and success messages.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray is used for hints.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderStyle applies a lipgloss style to text when colors are enabled.
func renderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
