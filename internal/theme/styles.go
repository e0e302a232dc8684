package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorClock)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)
)

// Button grid styles
var (
	ButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorClosed).
			Padding(0, 1).
			MarginRight(1)

	ButtonOpenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorOpen).
			Foreground(ColorHighlight).
			Bold(true).
			Padding(0, 1).
			MarginRight(1)

	HotkeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)
)

// Open moment list styles
var (
	OpenMarkerStyle = lipgloss.NewStyle().
			Foreground(ColorOpen)

	FixedMarkerStyle = lipgloss.NewStyle().
				Foreground(ColorFixed)
)
