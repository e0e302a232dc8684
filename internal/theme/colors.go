package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Tagging state colors
const (
	ColorOpen   Color = "2" // Green - category has an open moment
	ColorClosed Color = "8" // Gray - category idle
	ColorFixed  Color = "3" // Yellow - fixed-duration moment counting down
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorClock     Color = "226" // Yellow - session clock
)

// DefaultButtonColors is the palette used when a button definition
// carries no color of its own.
var DefaultButtonColors = []string{"141", "33", "214", "226", "46"}
