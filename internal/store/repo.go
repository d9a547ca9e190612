package store

import (
	"context"
	"time"
)

// QueryOpts configures journal queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// SessionRecord describes one annotation session.
type SessionRecord struct {
	ID            string
	FilePath      string
	Mode          string
	QuestionCount int
	StartedAt     time.Time
	EndedAt       time.Time // zero while the session is open
}

// SaveEventData captures one save attempt.
type SaveEventData struct {
	SessionID  string
	FilePath   string
	Reason     string
	SavedAt    time.Time
	Classified int
	Answered   int
	Total      int
	Duration   time.Duration
	Err        string // empty on success
}

// SaveRecord is a journaled save attempt read back from the database.
type SaveRecord struct {
	ID int64
	SaveEventData
	Mode string
}

// Succeeded reports whether the save attempt wrote the file.
func (r SaveRecord) Succeeded() bool {
	return r.Err == ""
}

// JournalRepo records annotation sessions and their save attempts.
type JournalRepo interface {
	// StartSession records the beginning of a session.
	StartSession(ctx context.Context, rec SessionRecord) error

	// EndSession stamps the end time of a session.
	EndSession(ctx context.Context, sessionID string, endedAt time.Time) error

	// AppendSave records one save attempt.
	AppendSave(ctx context.Context, data SaveEventData) error

	// RecentSaves returns save attempts for filePath, newest first.
	RecentSaves(ctx context.Context, filePath string, opts QueryOpts) ([]SaveRecord, error)
}
