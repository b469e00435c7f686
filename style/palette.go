package style

import "github.com/charmbracelet/lipgloss"

// Twitch brand palette and the semantic roles derived from it.
var (
	Purple     = lipgloss.Color("#9146ff")
	DarkPurple = lipgloss.Color("#772ce8")
	Text       = lipgloss.Color("#efeff1")
	Muted      = lipgloss.Color("#adadb8")
	Live       = lipgloss.Color("#eb0400")

	AccentColor  = Purple
	SuccessColor = lipgloss.Color("#00f593")
	WarningColor = lipgloss.Color("#ffca5f")
	ErrorColor   = Live
	BorderColor  = DarkPurple
)
