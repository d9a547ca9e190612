package session

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/abhisek/annotiz/internal/question"
)

// Saver writes the whole question set to path. It is the only way the
// session touches storage.
type Saver interface {
	Save(ctx context.Context, path string, set *question.Set) error
}

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseActive     Phase = iota // Accepting commands
	PhaseTerminated              // Quit processed, input discarded
)

// Options carries the collaborators a session needs.
type Options struct {
	// Path is the file the set was loaded from and is saved back to.
	Path string

	// Saver persists the set on Save and Quit.
	Saver Saver

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Logger receives save and lifecycle records. Defaults to a discarding logger.
	Logger *slog.Logger
}

// State is the mutable root of an annotation session. It is changed only
// through Apply.
type State struct {
	questions   *question.Set
	mode        Mode
	index       int
	progress    Progress
	lastMessage string
	phase       Phase

	path   string
	saver  Saver
	now    func() time.Time
	logger *slog.Logger
}

// NewState creates an active session positioned on the first question.
func NewState(set *question.Set, mode Mode, opts Options) *State {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &State{
		questions: set,
		mode:      mode,
		progress:  NewProgress(set, mode),
		phase:     PhaseActive,
		path:      opts.Path,
		saver:     opts.Saver,
		now:       opts.Now,
		logger:    opts.Logger,
	}
}

func (s *State) Mode() Mode                     { return s.mode }
func (s *State) CurrentIndex() int              { return s.index }
func (s *State) Progress() Progress             { return s.progress }
func (s *State) LastMessage() string            { return s.lastMessage }
func (s *State) Terminated() bool               { return s.phase == PhaseTerminated }
func (s *State) Path() string                   { return s.path }
func (s *State) Questions() []question.Question { return s.questions.All() }

// View is a read-only snapshot of the state for rendering.
type View struct {
	Mode       Mode
	Index      int
	Total      int
	Annotated  int
	Question   question.Question
	Message    string
	Terminated bool
}

// View returns a snapshot that shares no memory with the state.
func (s *State) View() View {
	q, _ := s.questions.At(s.index)
	return View{
		Mode:       s.mode,
		Index:      s.index,
		Total:      s.questions.Len(),
		Annotated:  s.progress.Annotated,
		Question:   q,
		Message:    s.lastMessage,
		Terminated: s.Terminated(),
	}
}
