package session

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrSaveFailed wraps any failure of the Saver during Save or Quit.
	ErrSaveFailed = errors.New("save failed")

	// ErrNoSaver is returned when a save is requested without a Saver.
	ErrNoSaver = errors.New("no saver configured")
)

// ChangeKind describes what a command did.
type ChangeKind int

const (
	ChangeNone       ChangeKind = iota // State unchanged
	ChangeNavigated                    // Current index moved
	ChangeAnnotated                    // Current question annotated
	ChangeSaved                        // Set written, message updated
	ChangeTerminated                   // Session ended
)

// Change tells the renderer what Apply did.
type Change struct {
	Kind ChangeKind

	// Index is the current index after the command.
	Index int

	// Counted is true when an annotation increased the progress count.
	Counted bool

	// SavedAt is the completion time of a successful save.
	SavedAt time.Time
}

// Apply feeds one command to the session. Bad or inapplicable input is a
// no-op. The returned error is non-nil only when a save fails; on Quit the
// session terminates regardless.
func Apply(ctx context.Context, st *State, cmd Command) (Change, error) {
	if st.Terminated() || !Applies(st.mode, cmd.Kind) {
		return st.unchanged(), nil
	}

	switch cmd.Kind {
	case CmdQuit:
		return quit(ctx, st)
	case CmdSave:
		return save(ctx, st)
	case CmdPrevious:
		return navigate(st, DirPrevious), nil
	case CmdNext:
		return navigate(st, DirNext), nil
	case CmdClassifyTrue:
		return classify(st, true)
	case CmdClassifyFalse:
		return classify(st, false)
	case CmdSelectOption:
		return selectOption(st, cmd.Symbol)
	}
	return st.unchanged(), nil
}

func (s *State) unchanged() Change {
	return Change{Kind: ChangeNone, Index: s.index}
}

func navigate(st *State, dir Direction) Change {
	st.index = Move(st.index, dir, st.questions.Len())
	return Change{Kind: ChangeNavigated, Index: st.index}
}

func classify(st *State, higherOrder bool) (Change, error) {
	q, err := st.questions.At(st.index)
	if err != nil {
		return st.unchanged(), err
	}
	// Count against the pre-mutation value.
	counted := st.progress.RecordIfNew(q, st.mode)
	if err := st.questions.SetClassification(st.index, higherOrder); err != nil {
		if counted {
			st.progress.Annotated--
		}
		return st.unchanged(), err
	}
	return Change{Kind: ChangeAnnotated, Index: st.index, Counted: counted}, nil
}

func selectOption(st *State, symbol string) (Change, error) {
	q, err := st.questions.At(st.index)
	if err != nil {
		return st.unchanged(), err
	}
	text, ok := ResolveOption(symbol, q)
	if !ok {
		return st.unchanged(), nil
	}
	counted := st.progress.RecordIfNew(q, st.mode)
	if err := st.questions.SetHumanAnswer(st.index, text); err != nil {
		if counted {
			st.progress.Annotated--
		}
		return st.unchanged(), err
	}
	return Change{Kind: ChangeAnnotated, Index: st.index, Counted: counted}, nil
}

func save(ctx context.Context, st *State) (Change, error) {
	savedAt, err := persist(WithSaveReason(ctx, ReasonExplicit), st)
	if err != nil {
		return st.unchanged(), err
	}
	st.lastMessage = fmt.Sprintf("Progress saved at %s", savedAt.UTC().Format(time.RFC3339))
	return Change{Kind: ChangeSaved, Index: st.index, SavedAt: savedAt}, nil
}

func quit(ctx context.Context, st *State) (Change, error) {
	savedAt, err := persist(WithSaveReason(ctx, ReasonQuit), st)
	st.phase = PhaseTerminated
	st.logger.Info("session terminated",
		"path", st.path,
		"annotated", st.progress.Annotated,
		"total", st.progress.Total,
		"saved", err == nil,
	)
	return Change{Kind: ChangeTerminated, Index: st.index, SavedAt: savedAt}, err
}

// persist writes the set through the Saver and returns the completion time.
func persist(ctx context.Context, st *State) (time.Time, error) {
	if st.saver == nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrSaveFailed, ErrNoSaver)
	}
	start := st.now()
	if err := st.saver.Save(ctx, st.path, st.questions); err != nil {
		st.logger.Error("save failed",
			"path", st.path,
			"reason", SaveReasonFrom(ctx),
			"error", err,
		)
		return time.Time{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	done := st.now()
	st.logger.Info("saved",
		"path", st.path,
		"reason", SaveReasonFrom(ctx),
		"annotated", st.progress.Annotated,
		"total", st.progress.Total,
		"duration", done.Sub(start),
	)
	return done, nil
}
