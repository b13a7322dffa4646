package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true).
			PaddingLeft(2)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")).
			PaddingLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			PaddingLeft(2)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD93D")).
			PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8A8A8")).
			PaddingLeft(2)

	promptStyle = lipgloss.NewStyle().PaddingLeft(2)
)
