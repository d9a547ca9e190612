package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// journalRepo implements JournalRepo with raw SQL.
type journalRepo struct {
	db *sql.DB
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func (r *journalRepo) StartSession(ctx context.Context, rec SessionRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("start session: id is empty")
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, file_path, mode, question_count, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, NULL)`,
		rec.ID, rec.FilePath, rec.Mode, rec.QuestionCount, formatTime(rec.StartedAt),
	)
	if err != nil {
		return fmt.Errorf("start session: insert: %w", err)
	}
	return nil
}

func (r *journalRepo) EndSession(ctx context.Context, sessionID string, endedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET ended_at = ? WHERE id = ?`,
		formatTime(endedAt), sessionID,
	)
	if err != nil {
		return fmt.Errorf("end session: update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("end session: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("end session: unknown session %q", sessionID)
	}
	return nil
}

func (r *journalRepo) AppendSave(ctx context.Context, data SaveEventData) error {
	var errValue any
	if data.Err != "" {
		errValue = data.Err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO saves (session_id, file_path, reason, saved_at, classified, answered, total, duration_ms, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.FilePath, data.Reason, formatTime(data.SavedAt),
		data.Classified, data.Answered, data.Total, data.Duration.Milliseconds(), errValue,
	)
	if err != nil {
		return fmt.Errorf("append save: insert: %w", err)
	}
	return nil
}

func (r *journalRepo) RecentSaves(ctx context.Context, filePath string, opts QueryOpts) ([]SaveRecord, error) {
	query := `SELECT s.id, s.session_id, s.file_path, s.reason, s.saved_at, s.classified,
	                 s.answered, s.total, s.duration_ms, s.error, COALESCE(se.mode, '')
	          FROM saves s LEFT JOIN sessions se ON se.id = s.session_id
	          WHERE s.file_path = ?
	          ORDER BY s.id DESC`
	args := []any{filePath}
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recent saves: query: %w", err)
	}
	defer rows.Close()

	var out []SaveRecord
	for rows.Next() {
		var (
			rec        SaveRecord
			savedAt    string
			durationMs int64
			errText    sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.FilePath, &rec.Reason, &savedAt,
			&rec.Classified, &rec.Answered, &rec.Total, &durationMs, &errText, &rec.Mode); err != nil {
			return nil, fmt.Errorf("recent saves: scan: %w", err)
		}
		rec.SavedAt, err = parseTime(savedAt)
		if err != nil {
			return nil, fmt.Errorf("recent saves: parse saved_at: %w", err)
		}
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		rec.Err = errText.String
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent saves: rows: %w", err)
	}
	return out, nil
}
