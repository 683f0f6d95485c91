package uploadlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	_ "github.com/lib/pq"
)

// PostgresStore implements the Store interface using PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL upload log store.
// It expects the schema to already exist (created via migrations).
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreFromURL creates a new PostgreSQL upload log store from a
// connection URL.
func NewPostgresStoreFromURL(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	store, err := NewPostgresStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// Start records a new upload session with StatusStarted.
func (s *PostgresStore) Start(ctx context.Context, record *Record) error {
	now := time.Now()

	query := `
		INSERT INTO upload_log (
			session_id, user_id, data_source, total_variants,
			variants_saved, status, detail, started_at
		) VALUES ($1, $2, $3, $4, 0, $5, '', $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		record.SessionID,
		record.UserID,
		record.DataSource,
		record.TotalVariants,
		string(StatusStarted),
		now,
	).Scan(&record.ID)

	if err != nil {
		return fmt.Errorf("failed to record upload start: %w", err)
	}

	record.Status = StatusStarted
	record.StartedAt = now
	return nil
}

// Finish marks a session with its terminal status and saved count.
func (s *PostgresStore) Finish(ctx context.Context, sessionID string, status Status, variantsSaved int64, detail string) error {
	query := `
		UPDATE upload_log SET
			status = $2,
			variants_saved = $3,
			detail = $4,
			finished_at = $5
		WHERE session_id = $1
	`

	result, err := s.db.ExecContext(ctx, query, sessionID, string(status), variantsSaved, detail, time.Now())
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

// scanner is an interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(s scanner) (*Record, error) {
	rec := &Record{}
	var status string
	var finishedAt sql.NullTime

	err := s.Scan(
		&rec.ID, &rec.SessionID, &rec.UserID, &rec.DataSource,
		&rec.TotalVariants, &rec.VariantsSaved, &status, &rec.Detail,
		&rec.StartedAt, &finishedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.Status = Status(status)
	if finishedAt.Valid {
		rec.FinishedAt = &finishedAt.Time
	}
	return rec, nil
}

const selectColumns = `id, session_id, user_id, data_source,
	total_variants, variants_saved, status, detail, started_at, finished_at`

// GetBySession retrieves a session record, or nil if unknown.
func (s *PostgresStore) GetBySession(ctx context.Context, sessionID string) (*Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM upload_log WHERE session_id = $1 LIMIT 1`, selectColumns)

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, sessionID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get upload session: %w", err)
	}
	return rec, nil
}

// ListByUser returns a user's sessions, most recent first.
func (s *PostgresStore) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Record, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM upload_log
		WHERE user_id = $1
		ORDER BY started_at DESC
		LIMIT $2 OFFSET $3
	`, selectColumns)

	rows, err := s.db.QueryContext(ctx, query, userID, limit, offset)
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
func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM upload_log").Scan(&count)
	return count, err
}

// maxExportLimit is the maximum number of entries to export at once.
const maxExportLimit = 1000000

// ExportJSON writes all sessions to a JSON writer.
func (s *PostgresStore) ExportJSON(ctx context.Context, writer io.Writer) error {
	query := fmt.Sprintf(`SELECT %s FROM upload_log ORDER BY started_at DESC LIMIT %d`, selectColumns, maxExportLimit)

	rows, err := s.db.QueryContext(ctx, query)
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
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

var _ Store = (*PostgresStore)(nil)
