package saves

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/annotiz/internal/router"
	"github.com/abhisek/annotiz/internal/screen"
	"github.com/abhisek/annotiz/internal/store"
	"github.com/abhisek/annotiz/internal/ui/layout"
	"github.com/abhisek/annotiz/internal/ui/theme"
)

// DefaultLimit caps how many saves the screen loads.
const DefaultLimit = 50

type savesLoadedMsg struct {
	Saves []store.SaveRecord
	Err   error
}

// SavesScreen lists journaled save attempts for one question file.
type SavesScreen struct {
	repo     store.JournalRepo
	path     string
	saves    []store.SaveRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*SavesScreen)(nil)
var _ screen.KeyHintProvider = (*SavesScreen)(nil)

// New creates a SavesScreen for the file at path.
func New(repo store.JournalRepo, path string) *SavesScreen {
	return &SavesScreen{
		repo:     repo,
		path:     store.JournalPath(path),
		expanded: make(map[int]bool),
	}
}

func (s *SavesScreen) Init() tea.Cmd {
	repo, path := s.repo, s.path
	return func() tea.Msg {
		saves, err := repo.RecentSaves(context.Background(), path, store.QueryOpts{Limit: DefaultLimit})
		return savesLoadedMsg{Saves: saves, Err: err}
	}
}

func (s *SavesScreen) Title() string {
	return "Save history"
}

func (s *SavesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SavesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.saves = msg.Saves
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "H", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.saves)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *SavesScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading save history...")
	}
	if len(s.saves) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No saves recorded for this file yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.saves {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if !rec.Succeeded() {
			style = style.Foreground(theme.Error)
		}
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+FormatLine(rec))))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    session %s  took %s", rec.SessionID, rec.Duration)
			if !rec.Succeeded() {
				detail += "  error: " + rec.Err
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// FormatLine renders one save attempt on a single line.
func FormatLine(rec store.SaveRecord) string {
	status := "ok"
	if !rec.Succeeded() {
		status = "FAILED"
	}
	done := rec.Answered
	if rec.Mode == "classify" {
		done = rec.Classified
	}
	return fmt.Sprintf("%s  %-8s %-6s %-8s %d/%d",
		rec.SavedAt.Local().Format("Jan 02 15:04:05"),
		rec.Mode, status, rec.Reason, done, rec.Total)
}
