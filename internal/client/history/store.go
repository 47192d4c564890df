// Package history keeps a local cache of the recording history so the
// history screen has something to show while offline. The backend is
// always the source of truth; the cache is refreshed after every
// successful fetch and read only as a fallback.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/chatterbox-app/chatterbox/internal/models"
)

// Store is a single-table SQLite cache of recordings.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS recordings (
	id                 TEXT PRIMARY KEY,
	cue_id             TEXT NOT NULL,
	language_code      TEXT NOT NULL,
	stage              TEXT NOT NULL,
	report_status      TEXT NOT NULL,
	transcript_excerpt TEXT NOT NULL,
	file_name          TEXT NOT NULL,
	duration_seconds   REAL NOT NULL,
	file_size_bytes    INTEGER NOT NULL,
	created_at         INTEGER NOT NULL,
	updated_at         INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_recordings_created_at ON recordings (created_at DESC);
`

// Open opens the cache at path, creating the schema when missing.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history cache: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history cache: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history cache schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the cache.
func (s *Store) Close() error {
	return s.db.Close()
}

// Replace upserts the fetched recordings in one transaction. Rows
// absent from the slice are kept; Prune bounds the table separately.
func (s *Store) Replace(ctx context.Context, recordings []models.Recording) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history upsert: %w", err)
	}
	// Rollback after a successful commit is a no-op.
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO recordings
			(id, cue_id, language_code, stage, report_status, transcript_excerpt,
			 file_name, duration_seconds, file_size_bytes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			stage              = excluded.stage,
			report_status      = excluded.report_status,
			transcript_excerpt = excluded.transcript_excerpt,
			updated_at         = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("prepare history upsert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range recordings {
		_, err := stmt.ExecContext(ctx,
			rec.ID, rec.CueID, rec.LanguageCode, rec.Stage, rec.ReportStatus,
			rec.TranscriptExcerpt, rec.FileName, rec.DurationSeconds,
			rec.FileSizeBytes, rec.CreatedAt.Unix(), rec.UpdatedAt.Unix())
		if err != nil {
			return fmt.Errorf("upsert recording %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history upsert: %w", err)
	}

	return nil
}

// List returns up to limit cached recordings, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]models.Recording, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, cue_id, language_code, stage, report_status, transcript_excerpt,
		       file_name, duration_seconds, file_size_bytes, created_at, updated_at
		FROM recordings
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history cache: %w", err)
	}
	defer rows.Close()

	var recordings []models.Recording
	for rows.Next() {
		var rec models.Recording
		var createdAt, updatedAt int64
		if err := rows.Scan(&rec.ID, &rec.CueID, &rec.LanguageCode, &rec.Stage,
			&rec.ReportStatus, &rec.TranscriptExcerpt, &rec.FileName,
			&rec.DurationSeconds, &rec.FileSizeBytes, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan recording: %w", err)
		}
		rec.CreatedAt = time.Unix(createdAt, 0).UTC()
		rec.UpdatedAt = time.Unix(updatedAt, 0).UTC()
		recordings = append(recordings, rec)
	}

	return recordings, rows.Err()
}

// Prune deletes everything but the keep newest rows.
func (s *Store) Prune(ctx context.Context, keep int) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM recordings
		WHERE id NOT IN (
			SELECT id FROM recordings ORDER BY created_at DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("prune history cache: %w", err)
	}

	return nil
}
