package uploader

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/genome-ingest-server/internal/domain"
)

// Default partitioning: chunks of 78000 variants, submitted in batches of
// 10000. Both levels are processed strictly in order.
const (
	DefaultChunkSize = 78000
	DefaultBatchSize = 10000
)

// ChunkCallback is invoked after every fully uploaded chunk. Indices are
// 1-based.
type ChunkCallback func(chunkIndex, totalChunks int)

// Coordinator splits a variant set into chunks and batches and drives them
// through a BatchSubmitter sequentially, retrying transient failures per
// batch and cleaning up server-side state when the very first chunk fails.
type Coordinator struct {
	submitter domain.BatchSubmitter
	policy    RetryPolicy
	chunkSize int
	batchSize int
	onChunk   ChunkCallback
	log       *logrus.Logger

	// sleep is swappable in tests so backoff delays can be observed
	// without waiting them out.
	sleep func(ctx context.Context, d time.Duration) error
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithChunkSize overrides the number of variants per chunk.
func WithChunkSize(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// WithBatchSize overrides the number of variants per request.
func WithBatchSize(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// WithRetryPolicy overrides the per-batch retry policy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Coordinator) { c.policy = p }
}

// WithChunkCallback registers a callback fired after each completed chunk.
func WithChunkCallback(cb ChunkCallback) Option {
	return func(c *Coordinator) { c.onChunk = cb }
}

// NewCoordinator creates a coordinator with default partitioning and retry
// behavior.
func NewCoordinator(submitter domain.BatchSubmitter, logger *logrus.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		submitter: submitter,
		policy:    DefaultRetryPolicy(),
		chunkSize: DefaultChunkSize,
		batchSize: DefaultBatchSize,
		log:       logger,
		sleep:     sleepCtx,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Upload submits all variants for the given data source. It returns a
// *domain.UploadError when the first chunk fails (after attempting cleanup)
// and a *domain.PartialUploadError when a later chunk fails, in which case
// earlier chunks remain persisted server-side.
func (c *Coordinator) Upload(ctx context.Context, variants []domain.RawVariant, dataSource string) (*domain.UploadResult, error) {
	if len(variants) == 0 {
		return nil, domain.NewValidationError("variants", "no variants to upload", "")
	}

	total := len(variants)
	totalChunks := (total + c.chunkSize - 1) / c.chunkSize
	saved := int64(0)

	c.log.WithFields(logrus.Fields{
		"total_variants": total,
		"total_chunks":   totalChunks,
		"chunk_size":     c.chunkSize,
		"batch_size":     c.batchSize,
		"data_source":    dataSource,
	}).Info("Starting chunked upload")

	for chunkIdx := 1; chunkIdx <= totalChunks; chunkIdx++ {
		start := (chunkIdx - 1) * c.chunkSize
		end := start + c.chunkSize
		if end > total {
			end = total
		}
		chunk := variants[start:end]
		totalBatches := (len(chunk) + c.batchSize - 1) / c.batchSize

		for batchIdx := 1; batchIdx <= totalBatches; batchIdx++ {
			bStart := (batchIdx - 1) * c.batchSize
			bEnd := bStart + c.batchSize
			if bEnd > len(chunk) {
				bEnd = len(chunk)
			}

			req := &domain.BatchRequest{
				Variants: chunk[bStart:bEnd],
				Metadata: domain.BatchMetadata{
					DataSource:    dataSource,
					TotalVariants: total,
					ChunkIndex:    chunkIdx,
					TotalChunks:   totalChunks,
					IsLastChunk:   chunkIdx == totalChunks,
					BatchIndex:    batchIdx,
					TotalBatches:  totalBatches,
				},
			}

			resp, err := c.submitWithRetry(ctx, req)
			if err != nil {
				return nil, c.failUpload(ctx, chunkIdx, totalChunks, batchIdx, totalBatches, saved, err)
			}
			saved += resp.VariantsSaved
		}

		c.log.WithFields(logrus.Fields{
			"chunk":        chunkIdx,
			"total_chunks": totalChunks,
		}).Info("Chunk uploaded")

		if c.onChunk != nil {
			c.onChunk(chunkIdx, totalChunks)
		}
	}

	return &domain.UploadResult{
		TotalVariants:   total,
		VariantsSaved:   saved,
		ReportGenerated: true,
	}, nil
}

// submitWithRetry drives a single batch through the retry policy. All
// attempts target the same batch; a non-retryable error or an exhausted
// budget surfaces the last error.
func (c *Coordinator) submitWithRetry(ctx context.Context, req *domain.BatchRequest) (*domain.BatchResponse, error) {
	var lastErr error

	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		resp, err := c.submitter.SubmitBatch(ctx, req)
		if err == nil && resp != nil && resp.Error != "" {
			err = errors.New(resp.Error)
		}
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !c.policy.IsRetryable(err) || attempt == c.policy.MaxAttempts {
			break
		}

		delay := c.policy.Backoff(attempt)
		c.log.WithFields(logrus.Fields{
			"chunk":   req.Metadata.ChunkIndex,
			"batch":   req.Metadata.BatchIndex,
			"attempt": attempt,
			"delay":   delay.String(),
			"error":   err.Error(),
		}).Warn("Batch upload failed, retrying")

		if serr := c.sleep(ctx, delay); serr != nil {
			return nil, serr
		}
	}

	return nil, lastErr
}

// failUpload converts a batch failure into the error the caller should see.
// A first-chunk failure triggers server-side cleanup so nothing stale is
// left behind; a later failure reports how much already landed.
func (c *Coordinator) failUpload(ctx context.Context, chunkIdx, totalChunks, batchIdx, totalBatches int, saved int64, cause error) error {
	uploadErr := &domain.UploadError{
		ChunkIndex:   chunkIdx,
		TotalChunks:  totalChunks,
		BatchIndex:   batchIdx,
		TotalBatches: totalBatches,
		Err:          cause,
	}

	if chunkIdx == 1 {
		if cerr := c.submitter.Cleanup(ctx); cerr != nil {
			c.log.WithError(cerr).Error("Cleanup after failed upload did not complete")
		} else {
			uploadErr.CleanedUp = true
		}
		c.log.WithFields(logrus.Fields{
			"chunk":      chunkIdx,
			"batch":      batchIdx,
			"cleaned_up": uploadErr.CleanedUp,
		}).Error("Upload failed on first chunk")
		return uploadErr
	}

	c.log.WithFields(logrus.Fields{
		"chunk":          chunkIdx,
		"batch":          batchIdx,
		"variants_saved": saved,
	}).Error("Upload failed after partial persistence")

	return &domain.PartialUploadError{
		UploadError:   uploadErr,
		VariantsSaved: saved,
	}
}
