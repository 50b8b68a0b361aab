package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, bright "kid" colours on a dark navy background
var (
	Primary   = lipgloss.Color("#907AD6") // Kid Purple
	Secondary = lipgloss.Color("#4D96FF") // Kid Blue
	Accent    = lipgloss.Color("#FDDB3A") // Kid Yellow
	Success   = lipgloss.Color("#52D681") // Kid Green
	Warning   = lipgloss.Color("#FDDB3A") // Kid Yellow
	Error     = lipgloss.Color("#FF7A8A") // Kid Pink
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FDDB3A")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Typography
var (
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

	// Glyph renders a Hebrew letter large and bold.
	Glyph = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(ArcadeYellow).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
