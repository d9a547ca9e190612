package store

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/annotiz/internal/question"
	"github.com/abhisek/annotiz/internal/session"
)

// JournalingSaver is a decorator that records every save attempt in the
// journal. Journal failures are logged and never fail the save.
type JournalingSaver struct {
	inner     session.Saver
	repo      JournalRepo
	sessionID string
	now       func() time.Time
	logger    *slog.Logger
}

// WithJournal wraps inner so each save is journaled under a new session id.
func WithJournal(inner session.Saver, repo JournalRepo, logger *slog.Logger) *JournalingSaver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &JournalingSaver{
		inner:     inner,
		repo:      repo,
		sessionID: uuid.New().String(),
		now:       time.Now,
		logger:    logger,
	}
}

// SessionID returns the id saves are journaled under.
func (j *JournalingSaver) SessionID() string {
	return j.sessionID
}

// Begin records the start of the session.
func (j *JournalingSaver) Begin(ctx context.Context, path string, mode session.Mode, count int) {
	err := j.repo.StartSession(ctx, SessionRecord{
		ID:            j.sessionID,
		FilePath:      JournalPath(path),
		Mode:          mode.String(),
		QuestionCount: count,
		StartedAt:     j.now(),
	})
	if err != nil {
		j.logger.Warn("journal session start failed", "error", err)
	}
}

// End stamps the end of the session.
func (j *JournalingSaver) End(ctx context.Context) {
	if err := j.repo.EndSession(ctx, j.sessionID, j.now()); err != nil {
		j.logger.Warn("journal session end failed", "error", err)
	}
}

func (j *JournalingSaver) Save(ctx context.Context, path string, set *question.Set) error {
	start := j.now()
	err := j.inner.Save(ctx, path, set)
	end := j.now()

	data := SaveEventData{
		SessionID:  j.sessionID,
		FilePath:   JournalPath(path),
		Reason:     session.SaveReasonFrom(ctx),
		SavedAt:    end,
		Classified: set.Count(question.Question.Classified),
		Answered:   set.Count(question.Question.Answered),
		Total:      set.Len(),
		Duration:   end.Sub(start),
	}
	if err != nil {
		data.Err = err.Error()
	}

	// Record the attempt even if the caller's context is already done.
	if logErr := j.repo.AppendSave(context.WithoutCancel(ctx), data); logErr != nil {
		j.logger.Warn("journal save event failed", "error", logErr)
	}

	return err
}

// JournalPath normalises path so saves of the same file share one key.
func JournalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
