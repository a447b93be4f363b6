package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — the LearnHub purple gradient look. The brand colors
// are fixed; surface and text colors swap with the dark-mode flag.
var (
	Primary   = lipgloss.Color("#667EEA") // Indigo
	Secondary = lipgloss.Color("#764BA2") // Purple
	Accent    = lipgloss.Color("#F6AD55") // Amber
	Success   = lipgloss.Color("#48BB78") // Green
	Error     = lipgloss.Color("#F56565") // Red
	Text      = lipgloss.Color("#F7FAFC") // White
	TextDim   = lipgloss.Color("#A0AEC0") // Gray
	BgDark    = lipgloss.Color("#1A202C") // Charcoal
	BgCard    = lipgloss.Color("#2D3748") // Dark Slate
	Border    = lipgloss.Color("#4A5568") // Slate
)

var darkMode = true

// DarkMode reports the active palette mode.
func DarkMode() bool {
	return darkMode
}

// SetDarkMode switches between the dark and light palettes and rebuilds
// the package styles. Callers persist the preference separately.
func SetDarkMode(dark bool) {
	darkMode = dark
	if dark {
		Text = lipgloss.Color("#F7FAFC")
		TextDim = lipgloss.Color("#A0AEC0")
		BgDark = lipgloss.Color("#1A202C")
		BgCard = lipgloss.Color("#2D3748")
		Border = lipgloss.Color("#4A5568")
	} else {
		Text = lipgloss.Color("#1A202C")
		TextDim = lipgloss.Color("#718096")
		BgDark = lipgloss.Color("#F7FAFC")
		BgCard = lipgloss.Color("#EDF2F7")
		Border = lipgloss.Color("#CBD5E0")
	}
	rebuildStyles()
}

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

func rebuildStyles() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Text).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}

func init() {
	rebuildStyles()
}
