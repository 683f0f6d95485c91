// Package uploadlog provides an audit trail for genome upload sessions.
// Every upload attempt is recorded with its outcome so partial failures can
// be investigated after the fact.
package uploadlog

import (
	"context"
	"io"
	"time"
)

// Status represents the outcome of an upload session.
type Status string

const (
	StatusStarted   Status = "started"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusPartial   Status = "partial"
)

// Record represents one upload session in the audit log.
type Record struct {
	ID            int64      `json:"id,omitempty"`
	SessionID     string     `json:"session_id"`
	UserID        string     `json:"user_id"`
	DataSource    string     `json:"data_source,omitempty"`
	TotalVariants int        `json:"total_variants"`
	VariantsSaved int64      `json:"variants_saved"`
	Status        Status     `json:"status"`
	Detail        string     `json:"detail,omitempty"` // failure detail, empty on success
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}

// Store defines the interface for upload audit storage.
type Store interface {
	// Start records a new upload session with StatusStarted.
	Start(ctx context.Context, record *Record) error

	// Finish marks a session with its terminal status and saved count.
	Finish(ctx context.Context, sessionID string, status Status, variantsSaved int64, detail string) error

	// GetBySession retrieves a session record, or nil if unknown.
	GetBySession(ctx context.Context, sessionID string) (*Record, error)

	// ListByUser returns a user's sessions, most recent first.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Record, error)

	// Count returns the total number of recorded sessions.
	Count(ctx context.Context) (int64, error)

	// ExportJSON writes all sessions to a JSON writer.
	ExportJSON(ctx context.Context, writer io.Writer) error

	// Close closes the store and releases resources.
	Close() error
}

// Export represents the JSON export format.
type Export struct {
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	Count      int       `json:"count"`
	Sessions   []*Record `json:"sessions"`
}
