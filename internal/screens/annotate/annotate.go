package annotate

import (
	"context"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/annotiz/internal/router"
	"github.com/abhisek/annotiz/internal/screen"
	"github.com/abhisek/annotiz/internal/session"
	"github.com/abhisek/annotiz/internal/ui/layout"
)

// Deps are the optional screens the annotate screen can open.
type Deps struct {
	// Help builds the key binding reference screen.
	Help func() screen.Screen

	// History builds the save history screen. Nil when the journal is off.
	History func() screen.Screen
}

// AnnotateScreen drives one annotation session. Each key press is applied
// synchronously, so at most one save is ever in flight.
type AnnotateScreen struct {
	state  *session.State
	keys   KeyMap
	deps   Deps
	errMsg string

	// quitErr is the final save error, kept for the launcher.
	quitErr error
}

var _ screen.Screen = (*AnnotateScreen)(nil)
var _ screen.KeyHintProvider = (*AnnotateScreen)(nil)

// New creates an AnnotateScreen over an active session.
func New(state *session.State, keys KeyMap, deps Deps) *AnnotateScreen {
	return &AnnotateScreen{
		state: state,
		keys:  keys,
		deps:  deps,
	}
}

func (s *AnnotateScreen) Init() tea.Cmd {
	return nil
}

func (s *AnnotateScreen) Title() string {
	return "Annotate"
}

// State returns the session being driven.
func (s *AnnotateScreen) State() *session.State {
	return s.state
}

// Err returns the error of the final save, if it failed.
func (s *AnnotateScreen) Err() error {
	return s.quitErr
}

func (s *AnnotateScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Navigate"},
	}
	switch s.state.Mode() {
	case session.ModeClassify:
		hints = append(hints, layout.KeyHint{Key: "y/n", Description: "Classify"})
	case session.ModeAnswer:
		hints = append(hints, layout.KeyHint{Key: "1-6", Description: "Answer"})
	}
	return append(hints,
		layout.KeyHint{Key: "s", Description: "Save"},
		layout.KeyHint{Key: "?", Description: "Help"},
		layout.KeyHint{Key: "q", Description: "Save & quit"},
	)
}

func (s *AnnotateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *AnnotateScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.state.Terminated() {
		return s, nil
	}

	switch {
	case s.deps.Help != nil && key.Matches(msg, s.keys.Help):
		return s, push(s.deps.Help())
	case s.deps.History != nil && key.Matches(msg, s.keys.History):
		return s, push(s.deps.History())
	}

	cmd, ok := s.keys.Command(msg)
	if !ok {
		return s, nil
	}

	change, err := session.Apply(context.Background(), s.state, cmd)
	if err != nil {
		s.errMsg = err.Error()
	} else if change.Kind != session.ChangeNone {
		s.errMsg = ""
	}

	if change.Kind == session.ChangeTerminated {
		s.quitErr = err
		return s, tea.Quit
	}
	return s, nil
}

func push(sc screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: sc} }
}
