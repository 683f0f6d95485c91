package uploadlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using SQLite. Intended for
// single-node deployments and local development where Postgres is overkill.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite upload log store.
// It creates the database file and schema if they don't exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		dbPath: dbPath,
	}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS upload_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL,
		data_source TEXT DEFAULT '',
		total_variants INTEGER NOT NULL DEFAULT 0,
		variants_saved INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		detail TEXT DEFAULT '',
		started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		finished_at DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_upload_log_user ON upload_log(user_id);
	CREATE INDEX IF NOT EXISTS idx_upload_log_started ON upload_log(started_at);
	`

	_, err := db.Exec(schema)
	return err
}

// Start records a new upload session with StatusStarted.
func (s *SQLiteStore) Start(ctx context.Context, record *Record) error {
	now := time.Now()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO upload_log (
			session_id, user_id, data_source, total_variants,
			variants_saved, status, detail, started_at
		) VALUES (?, ?, ?, ?, 0, ?, '', ?)
	`,
		record.SessionID,
		record.UserID,
		record.DataSource,
		record.TotalVariants,
		string(StatusStarted),
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to record upload start: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get insert ID: %w", err)
	}

	record.ID = id
	record.Status = StatusStarted
	record.StartedAt = now
	return nil
}

// Finish marks a session with its terminal status and saved count.
func (s *SQLiteStore) Finish(ctx context.Context, sessionID string, status Status, variantsSaved int64, detail string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE upload_log SET
			status = ?,
			variants_saved = ?,
			detail = ?,
			finished_at = ?
		WHERE session_id = ?
	`, string(status), variantsSaved, detail, time.Now(), sessionID)
	if err != nil {
		return fmt.Errorf("failed to finish upload session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("unknown upload session %q", sessionID)
	}

	return nil
}

// GetBySession retrieves a session record, or nil if unknown.
func (s *SQLiteStore) GetBySession(ctx context.Context, sessionID string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, session_id, user_id, data_source,
			total_variants, variants_saved, status, detail, started_at, finished_at
		FROM upload_log
		WHERE session_id = ?
		LIMIT 1
	`, sessionID)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get upload session: %w", err)
	}
	return rec, nil
}

// ListByUser returns a user's sessions, most recent first.
func (s *SQLiteStore) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, user_id, data_source,
			total_variants, variants_saved, status, detail, started_at, finished_at
		FROM upload_log
		WHERE user_id = ?
		ORDER BY started_at DESC
		LIMIT ? OFFSET ?
	`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list upload sessions: %w", err)
	}
	defer rows.Close()

	var result []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

// Count returns the total number of recorded sessions.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM upload_log").Scan(&count)
	return count, err
}

// ExportJSON writes all sessions to a JSON writer.
func (s *SQLiteStore) ExportJSON(ctx context.Context, writer io.Writer) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, user_id, data_source,
			total_variants, variants_saved, status, detail, started_at, finished_at
		FROM upload_log
		ORDER BY started_at DESC
		LIMIT ?
	`, maxExportLimit)
	if err != nil {
		return fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var all []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return fmt.Errorf("failed to scan session row: %w", err)
		}
		all = append(all, rec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate sessions: %w", err)
	}

	export := &Export{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Count:      len(all),
		Sessions:   all,
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}

// Close closes the store and releases resources.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
