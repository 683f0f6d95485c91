package domain

import (
	"context"
)

// Annotator is a read-only rsid lookup. Implementations must be immutable
// after construction and therefore safe for concurrent use.
type Annotator interface {
	Lookup(rsid string) (ClinicalAnnotation, bool)
	Size() int
}

// BatchSubmitter submits one batch of raw variants to the ingestion endpoint
// over an opaque authenticated channel for the current user.
type BatchSubmitter interface {
	SubmitBatch(ctx context.Context, req *BatchRequest) (*BatchResponse, error)

	// Cleanup deletes every variant written so far for the current user.
	// Invoked only when a first-chunk batch irrecoverably fails.
	Cleanup(ctx context.Context) error
}

// VariantStore persists raw variants for a user.
type VariantStore interface {
	DeleteByUser(ctx context.Context, userID string) (int64, error)
	BulkInsert(ctx context.Context, userID, dataSource string, variants []RawVariant) (int64, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

// ProgressSink receives real chunk completion milestones for an upload
// session.
type ProgressSink interface {
	RecordMilestone(ctx context.Context, m ChunkMilestone) error
	LatestMilestone(ctx context.Context, sessionID string) (ChunkMilestone, error)
}
