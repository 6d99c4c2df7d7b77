package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — muted club-room tones.
var (
	Primary = lipgloss.Color("#D97706") // Amber
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate

	LightSquare = lipgloss.Color("#B58863")
	DarkSquare  = lipgloss.Color("#769656")
	HintSquare  = lipgloss.Color("#F59E0B")
	WhitePiece  = lipgloss.Color("#FFFFFF")
	BlackPiece  = lipgloss.Color("#1E293B")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Primary).
		Italic(true)
)

// Card frames the board and side panel.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(1, 2)
