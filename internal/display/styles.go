package display

import "github.com/charmbracelet/lipgloss"

// Soft palette shared by every view.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// BannerStyle is the muted slate used for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f4f4f5"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4e7"))

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b")).
			Strikethrough(true)

	starStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	favStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fb7185"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#bae6fd"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Underline(true)

	sheetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(0, 1)

	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)
