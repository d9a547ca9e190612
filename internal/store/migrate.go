package store

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the latest journal schema version.
const SchemaVersion = 1

// migrate ensures the journal schema exists and is at SchemaVersion.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY)`)
	if err != nil {
		return fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	var current int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current)
	if err != nil {
		return fmt.Errorf("migrate: read current version: %w", err)
	}
	if current >= SchemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migrate: begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			file_path TEXT NOT NULL,
			mode TEXT NOT NULL,
			question_count INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("migrate: create sessions table: %w", err)
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS saves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			file_path TEXT NOT NULL,
			reason TEXT NOT NULL,
			saved_at TEXT NOT NULL,
			classified INTEGER NOT NULL,
			answered INTEGER NOT NULL,
			total INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			error TEXT NULL,
			FOREIGN KEY(session_id) REFERENCES sessions(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("migrate: create saves table: %w", err)
	}

	_, err = tx.Exec(`CREATE INDEX IF NOT EXISTS idx_saves_file_path ON saves(file_path, id)`)
	if err != nil {
		return fmt.Errorf("migrate: create saves index: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, SchemaVersion)
	if err != nil {
		return fmt.Errorf("migrate: record version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrate: commit: %w", err)
	}
	return nil
}
