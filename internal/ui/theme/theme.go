package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, muted for long annotation sittings.
var (
	Primary   = lipgloss.Color("#7C3AED") // Violet
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Annotation states
var (
	// Missing marks a question that still needs annotating in the active mode.
	Missing = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	// Recorded marks an annotation already present.
	Recorded = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	// Chosen highlights the option picked as the human answer.
	Chosen = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	// Reference highlights the option the source document gives as answer.
	Reference = lipgloss.NewStyle().
			Foreground(Accent)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Status lines
var (
	Message = lipgloss.NewStyle().
		Foreground(Secondary)

	ErrorLine = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
