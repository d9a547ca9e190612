package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/annotiz/internal/router"
	"github.com/abhisek/annotiz/internal/screen"
	"github.com/abhisek/annotiz/internal/screens/annotate"
	"github.com/abhisek/annotiz/internal/screens/help"
	"github.com/abhisek/annotiz/internal/screens/saves"
	"github.com/abhisek/annotiz/internal/session"
	"github.com/abhisek/annotiz/internal/store"
	"github.com/abhisek/annotiz/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	// State is the session to drive. Required.
	State *session.State

	// Journal backs the save history screen. Nil hides it.
	Journal store.JournalRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	annotate *annotate.AnnotateScreen
	width    int
	height   int
}

// newAppModel creates a new AppModel with the annotate screen at the bottom
// of the stack.
func newAppModel(opts Options) AppModel {
	st := opts.State
	keys := annotate.DefaultKeyMap()

	deps := annotate.Deps{
		Help: func() screen.Screen {
			return help.New(fmt.Sprintf("Keys in %s mode", st.Mode()), keys.HelpHints(st.Mode()))
		},
	}
	if opts.Journal != nil {
		deps.History = func() screen.Screen {
			return saves.New(opts.Journal, st.Path())
		}
	}

	root := annotate.New(st, keys, deps)
	return AppModel{
		router:   router.New(root),
		annotate: root,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			// Quit from any screen, through the session so the set is saved.
			_, cmd := m.annotate.Update(msg)
			return m, cmd
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render composes the frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.annotate.Status(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Save & quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the session ends. It
// returns the final save error, if any, after the terminal is restored.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	if m, ok := final.(AppModel); ok {
		return m.annotate.Err()
	}
	return nil
}
