package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/genome-ingest-server/internal/domain"
	"github.com/genome-ingest-server/internal/uploader"
	"github.com/genome-ingest-server/internal/uploadlog"
)

// handleParse accepts a multipart genotype export and returns the parse
// result. mode=raw skips annotation and returns the upload payload shape.
func (s *Server) handleParse(c *gin.Context) {
	filename, content, ok := s.readUploadedFile(c)
	if !ok {
		return
	}
	dataSource := c.PostForm("source")

	if c.Query("mode") == "raw" {
		variants, err := s.parser.ParseRaw(filename, content)
		if err != nil {
			s.renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"variants": variants,
			"count":    len(variants),
		})
		return
	}

	result, err := s.parser.ParseAnnotated(filename, content, dataSource)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleRisk parses an export and returns its risk assessment.
func (s *Server) handleRisk(c *gin.Context) {
	filename, content, ok := s.readUploadedFile(c)
	if !ok {
		return
	}

	result, err := s.parser.ParseAnnotated(filename, content, c.PostForm("source"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"metadata":   result.Metadata,
		"assessment": s.risk.Assess(result.Variants),
	})
}

// handleUpload runs the full pipeline for a genotype export: validate, parse
// raw, and store in chunked batches. Progress milestones and the audit trail
// are keyed by the returned session ID.
func (s *Server) handleUpload(c *gin.Context) {
	userID := c.GetString("user_id")

	filename, content, ok := s.readUploadedFile(c)
	if !ok {
		return
	}
	dataSource := c.PostForm("source")

	variants, err := s.parser.ParseRaw(filename, content)
	if err != nil {
		s.renderError(c, err)
		return
	}

	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	ctx := c.Request.Context()

	if s.audit != nil {
		err := s.audit.Start(ctx, &uploadlog.Record{
			SessionID:     sessionID,
			UserID:        userID,
			DataSource:    dataSource,
			TotalVariants: len(variants),
		})
		if err != nil {
			s.log.WithError(err).Error("Failed to record upload session")
		}
	}

	coord := uploader.NewCoordinator(
		&storeSubmitter{store: s.store, userID: userID},
		s.log,
		uploader.WithChunkSize(s.cfg.Upload.ChunkSize),
		uploader.WithBatchSize(s.cfg.Upload.BatchSize),
		uploader.WithRetryPolicy(uploader.NewLinearRetryPolicy(s.cfg.Upload.MaxRetries, s.cfg.Upload.BackoffStep)),
		uploader.WithChunkCallback(func(chunkIndex, totalChunks int) {
			if s.progress == nil {
				return
			}
			err := s.progress.RecordMilestone(ctx, domain.ChunkMilestone{
				SessionID:   sessionID,
				ChunkIndex:  chunkIndex,
				TotalChunks: totalChunks,
				Timestamp:   time.Now(),
			})
			if err != nil {
				s.log.WithError(err).Warn("Failed to record progress milestone")
			}
		}),
	)

	result, err := coord.Upload(ctx, variants, dataSource)
	if err != nil {
		s.finishAudit(c, sessionID, err)
		s.renderError(c, err)
		return
	}

	if s.audit != nil {
		if aerr := s.audit.Finish(ctx, sessionID, uploadlog.StatusCompleted, result.VariantsSaved, ""); aerr != nil {
			s.log.WithError(aerr).Error("Failed to close upload session")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":       sessionID,
		"total_variants":   result.TotalVariants,
		"variants_saved":   result.VariantsSaved,
		"report_generated": result.ReportGenerated,
	})
}

func (s *Server) finishAudit(c *gin.Context, sessionID string, cause error) {
	if s.audit == nil {
		return
	}

	status := uploadlog.StatusFailed
	saved := int64(0)

	var partialErr *domain.PartialUploadError
	if errors.As(cause, &partialErr) {
		status = uploadlog.StatusPartial
		saved = partialErr.VariantsSaved
	}

	if err := s.audit.Finish(c.Request.Context(), sessionID, status, saved, cause.Error()); err != nil {
		s.log.WithError(err).Error("Failed to close upload session")
	}
}

// handleIngest receives one batch of an upload. The first batch of the first
// chunk replaces the user's previously stored variants before inserting.
func (s *Server) handleIngest(c *gin.Context) {
	userID := c.GetString("user_id")

	var req domain.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.BatchResponse{
			Error: "invalid batch payload: " + err.Error(),
		})
		return
	}

	meta := req.Metadata
	if meta.ChunkIndex < 1 || meta.BatchIndex < 1 || len(req.Variants) == 0 {
		c.JSON(http.StatusBadRequest, domain.BatchResponse{
			Error: "batch metadata is incomplete",
		})
		return
	}

	ctx := c.Request.Context()

	if meta.ChunkIndex == 1 && meta.BatchIndex == 1 {
		deleted, err := s.store.DeleteByUser(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, domain.BatchResponse{Error: err.Error()})
			return
		}
		s.log.WithFields(logrus.Fields{
			"user_id":      userID,
			"rows_deleted": deleted,
		}).Info("Replacing stored genome")
	}

	saved, err := s.store.BulkInsert(ctx, userID, meta.DataSource, req.Variants)
	if err != nil {
		c.JSON(http.StatusInternalServerError, domain.BatchResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, domain.BatchResponse{VariantsSaved: saved})
}

// handleCleanup removes everything stored for the user. Invoked by upload
// clients when their first chunk fails.
func (s *Server) handleCleanup(c *gin.Context) {
	userID := c.GetString("user_id")

	deleted, err := s.store.DeleteByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows_deleted": deleted})
}

// handleCount returns the number of stored variants for the user.
func (s *Server) handleCount(c *gin.Context) {
	userID := c.GetString("user_id")

	count, err := s.store.CountByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// handleProgress returns the latest chunk milestone for a session.
func (s *Server) handleProgress(c *gin.Context) {
	sessionID := c.Param("session")

	m, err := s.progress.LatestMilestone(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no progress recorded for session"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, m)
}

// handleListUploads returns the user's upload history, most recent first.
func (s *Server) handleListUploads(c *gin.Context) {
	if s.audit == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "upload history is not enabled"})
		return
	}

	userID := c.GetString("user_id")

	records, err := s.audit.ListByUser(c.Request.Context(), userID, 50, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if records == nil {
		records = []*uploadlog.Record{}
	}

	c.JSON(http.StatusOK, gin.H{"uploads": records})
}

// readUploadedFile pulls the multipart "file" field, bounded by the
// configured size ceiling.
func (s *Server) readUploadedFile(c *gin.Context) (string, []byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return "", nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read uploaded file"})
		return "", nil, false
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, s.cfg.Parser.MaxFileSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read uploaded file"})
		return "", nil, false
	}

	return fileHeader.Filename, content, true
}

// renderError maps domain errors onto HTTP statuses.
func (s *Server) renderError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var fileErr *domain.FileError
	var partialErr *domain.PartialUploadError
	var uploadErr *domain.UploadError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &fileErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fileErr.Error()})
	case errors.As(err, &partialErr):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":          partialErr.Error(),
			"variants_saved": partialErr.VariantsSaved,
			"chunk":          partialErr.ChunkIndex,
			"total_chunks":   partialErr.TotalChunks,
		})
	case errors.As(err, &uploadErr):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      uploadErr.Error(),
			"chunk":      uploadErr.ChunkIndex,
			"cleaned_up": uploadErr.CleanedUp,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// storeSubmitter adapts the variant store to the batch submitter interface so
// uploads received by this server skip the HTTP loopback.
type storeSubmitter struct {
	store  domain.VariantStore
	userID string
}

func (ss *storeSubmitter) SubmitBatch(ctx context.Context, req *domain.BatchRequest) (*domain.BatchResponse, error) {
	meta := req.Metadata
	if meta.ChunkIndex == 1 && meta.BatchIndex == 1 {
		if _, err := ss.store.DeleteByUser(ctx, ss.userID); err != nil {
			return nil, err
		}
	}

	saved, err := ss.store.BulkInsert(ctx, ss.userID, meta.DataSource, req.Variants)
	if err != nil {
		return nil, err
	}
	return &domain.BatchResponse{VariantsSaved: saved}, nil
}

func (ss *storeSubmitter) Cleanup(ctx context.Context) error {
	_, err := ss.store.DeleteByUser(ctx, ss.userID)
	return err
}
