package annotate

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/annotiz/internal/session"
	"github.com/abhisek/annotiz/internal/ui/layout"
)

// KeyMap holds the annotate screen bindings.
type KeyMap struct {
	Quit     key.Binding
	Save     key.Binding
	Previous key.Binding
	Next     key.Binding
	Yes      key.Binding
	No       key.Binding
	Option   key.Binding
	Help     key.Binding
	History  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save and quit")),
		Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Previous: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Yes:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "higher order")),
		No:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "lower order")),
		Option: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "a", "b", "c", "d", "e", "f"),
			key.WithHelp("1-6/a-f", "select option"),
		),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		History: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "save history")),
	}
}

// Command translates a key press into a session command. ok is false for keys
// the session does not handle.
func (k KeyMap) Command(msg tea.KeyPressMsg) (cmd session.Command, ok bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return session.Quit(), true
	case key.Matches(msg, k.Save):
		return session.Save(), true
	case key.Matches(msg, k.Previous):
		return session.Previous(), true
	case key.Matches(msg, k.Next):
		return session.Next(), true
	case key.Matches(msg, k.Yes):
		return session.ClassifyTrue(), true
	case key.Matches(msg, k.No):
		return session.ClassifyFalse(), true
	case key.Matches(msg, k.Option):
		return session.SelectOption(msg.String()), true
	}
	return session.Unknown(msg.String()), false
}

// modeBindings returns the bindings that act in mode, in display order.
func (k KeyMap) modeBindings(mode session.Mode) []key.Binding {
	bindings := []key.Binding{k.Previous, k.Next}
	switch mode {
	case session.ModeClassify:
		bindings = append(bindings, k.Yes, k.No)
	case session.ModeAnswer:
		bindings = append(bindings, k.Option)
	}
	return append(bindings, k.Save, k.Quit)
}

// HelpHints lists every binding that acts in mode, for the help screen.
func (k KeyMap) HelpHints(mode session.Mode) []layout.KeyHint {
	bindings := append(k.modeBindings(mode), k.Help, k.History)
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
