package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/annotiz/internal/router"
	"github.com/abhisek/annotiz/internal/screen"
	"github.com/abhisek/annotiz/internal/ui/layout"
	"github.com/abhisek/annotiz/internal/ui/theme"
)

// HelpScreen lists the key bindings of the running mode.
type HelpScreen struct {
	heading string
	hints   []layout.KeyHint
}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates a HelpScreen.
func New(heading string, hints []layout.KeyHint) *HelpScreen {
	return &HelpScreen{heading: heading, hints: hints}
}

func (s *HelpScreen) Init() tea.Cmd {
	return nil
}

func (s *HelpScreen) Title() string {
	return "Help"
}

func (s *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc/?", Description: "Back"},
	}
}

func (s *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "esc", "?", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *HelpScreen) View(width, height int) string {
	keyWidth := 0
	for _, h := range s.hints {
		keyWidth = max(keyWidth, lipgloss.Width(h.Key))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Title.Render(s.heading)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Width(keyWidth + 3)
	for _, h := range s.hints {
		line := keyStyle.Render(h.Key) + theme.Body.Render(h.Description)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Quitting always saves. Unsaved changes are never discarded.")))
	return b.String()
}
