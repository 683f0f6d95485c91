// Package progress tracks chunk completion milestones for upload sessions.
// Milestones are emitted by the upload coordinator after each chunk actually
// lands server-side, so progress readers never see inferred positions.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/genome-ingest-server/internal/domain"
)

const keyPrefix = "upload:progress:"

// RedisTracker stores the latest milestone per session in Redis with a TTL,
// so abandoned sessions expire on their own.
type RedisTracker struct {
	redis      *redis.Client
	defaultTTL time.Duration
	log        *logrus.Logger
}

// NewRedisTracker creates a tracker from a Redis URL.
func NewRedisTracker(config domain.ProgressConfig, logger *logrus.Logger) (*RedisTracker, error) {
	opts, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	if config.PoolSize > 0 {
		opts.PoolSize = config.PoolSize
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := config.DefaultTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	logger.WithFields(logrus.Fields{
		"addr": opts.Addr,
		"ttl":  ttl.String(),
	}).Info("Progress tracker connected to Redis")

	return &RedisTracker{
		redis:      client,
		defaultTTL: ttl,
		log:        logger,
	}, nil
}

// RecordMilestone stores the milestone as the latest for its session.
func (t *RedisTracker) RecordMilestone(ctx context.Context, m domain.ChunkMilestone) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode milestone: %w", err)
	}

	if err := t.redis.Set(ctx, keyPrefix+m.SessionID, data, t.defaultTTL).Err(); err != nil {
		return fmt.Errorf("failed to store milestone: %w", err)
	}

	t.log.WithFields(logrus.Fields{
		"session_id":   m.SessionID,
		"chunk":        m.ChunkIndex,
		"total_chunks": m.TotalChunks,
	}).Debug("Milestone recorded")

	return nil
}

// LatestMilestone returns the most recent milestone for a session.
func (t *RedisTracker) LatestMilestone(ctx context.Context, sessionID string) (domain.ChunkMilestone, error) {
	data, err := t.redis.Get(ctx, keyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return domain.ChunkMilestone{}, fmt.Errorf("no progress for session %q: %w", sessionID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.ChunkMilestone{}, fmt.Errorf("failed to read milestone: %w", err)
	}

	var m domain.ChunkMilestone
	if err := json.Unmarshal(data, &m); err != nil {
		return domain.ChunkMilestone{}, fmt.Errorf("failed to decode milestone: %w", err)
	}
	return m, nil
}

// Health checks the Redis connection.
func (t *RedisTracker) Health(ctx context.Context) error {
	return t.redis.Ping(ctx).Err()
}

// Close closes the underlying Redis connection.
func (t *RedisTracker) Close() error {
	return t.redis.Close()
}

var _ domain.ProgressSink = (*RedisTracker)(nil)
