package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const wordmark = "‹/› codecraft"

// renderHeader puts the wordmark on the left and title on the right.
func renderHeader(width int, title string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorNormal))

	logo := logoStyle.Render(wordmark)
	if title == "" {
		return logo
	}

	gap := width - lipgloss.Width(logo) - lipgloss.Width(title)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		logo,
		lipgloss.NewStyle().Width(gap).Render(""),
		titleStyle.Render(title),
	)
}
