package progress

import (
	"context"
	"fmt"
	"sync"

	"github.com/genome-ingest-server/internal/domain"
)

// MemoryTracker is an in-process ProgressSink. Used in tests and in
// single-node deployments without Redis.
type MemoryTracker struct {
	mu         sync.RWMutex
	milestones map[string]domain.ChunkMilestone
}

// NewMemoryTracker creates an empty in-memory tracker.
func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{
		milestones: make(map[string]domain.ChunkMilestone),
	}
}

// RecordMilestone stores the milestone as the latest for its session.
func (t *MemoryTracker) RecordMilestone(_ context.Context, m domain.ChunkMilestone) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.milestones[m.SessionID] = m
	return nil
}

// LatestMilestone returns the most recent milestone for a session.
func (t *MemoryTracker) LatestMilestone(_ context.Context, sessionID string) (domain.ChunkMilestone, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	m, ok := t.milestones[sessionID]
	if !ok {
		return domain.ChunkMilestone{}, fmt.Errorf("no progress for session %q: %w", sessionID, domain.ErrNotFound)
	}
	return m, nil
}

var _ domain.ProgressSink = (*MemoryTracker)(nil)
