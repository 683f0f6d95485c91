package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genome-ingest-server/internal/domain"
	"github.com/genome-ingest-server/internal/knowledge"
	"github.com/genome-ingest-server/internal/progress"
	"github.com/genome-ingest-server/internal/service"
	"github.com/genome-ingest-server/internal/uploadlog"
)

const sampleExport = `# This data file generated by a direct-to-consumer service
# rsid	chromosome	position	genotype
rs1801133	1	11856378	TT
rs429358	19	45411941	CT
rs4988235	2	136608646	AA
rs6025	1	169519049	CC
`

// fakeStore is an in-memory domain.VariantStore tracking call order.
type fakeStore struct {
	mu       sync.Mutex
	variants []domain.RawVariant
	deletes  int
	inserts  int
}

func (f *fakeStore) DeleteByUser(_ context.Context, _ string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	deleted := int64(len(f.variants))
	f.variants = nil
	f.deletes++
	return deleted, nil
}

func (f *fakeStore) BulkInsert(_ context.Context, _, _ string, variants []domain.RawVariant) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.variants = append(f.variants, variants...)
	f.inserts++
	return int64(len(variants)), nil
}

func (f *fakeStore) CountByUser(_ context.Context, _ string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.variants)), nil
}

func testConfig() *domain.Config {
	return &domain.Config{
		Parser: domain.ParserConfig{
			MaxFileSize:  1 << 20,
			MinDataLines: 1,
		},
		Upload: domain.UploadConfig{
			ChunkSize:   2,
			BatchSize:   2,
			MaxRetries:  3,
			BackoffStep: time.Millisecond,
		},
		Logging: domain.LoggingConfig{Level: "info", Format: "json"},
	}
}

type testEnv struct {
	server   *Server
	store    *fakeStore
	progress *progress.MemoryTracker
	audit    uploadlog.Store
}

func newTestServer(t *testing.T) *testEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	parser, err := service.NewParserService(knowledge.NewBase(), domain.ParserConfig{MinDataLines: 1}, logger)
	require.NoError(t, err)

	store := &fakeStore{}
	tracker := progress.NewMemoryTracker()

	audit, err := uploadlog.NewSQLiteStore(filepath.Join(t.TempDir(), "uploads.db"))
	require.NoError(t, err)
	t.Cleanup(func() { audit.Close() })

	srv := NewServer(testConfig(), Deps{
		Parser:   parser,
		Risk:     service.NewRiskEngine(logger),
		Store:    store,
		Progress: tracker,
		Audit:    audit,
		Checks: map[string]HealthChecker{
			"database": func(context.Context) error { return nil },
		},
	}, logger)

	return &testEnv{server: srv, store: store, progress: tracker, audit: audit}
}

func multipartBody(t *testing.T, filename, content, source string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)

	if source != "" {
		require.NoError(t, w.WriteField("source", source))
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func doRequest(env *testEnv, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.server.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleParse_Annotated(t *testing.T) {
	env := newTestServer(t)

	body, contentType := multipartBody(t, "genome.txt", sampleExport, "23andme")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/genome/parse", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-User-ID", "user-42")

	rec := doRequest(env, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result domain.ParseResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 4, result.Metadata.TotalVariants)
	assert.Equal(t, "23andme", result.Metadata.DataSource)
	assert.Len(t, result.Variants, 4)
}

func TestHandleParse_RawMode(t *testing.T) {
	env := newTestServer(t)

	body, contentType := multipartBody(t, "genome.txt", sampleExport, "")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/genome/parse?mode=raw", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-User-ID", "user-42")

	rec := doRequest(env, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Variants []domain.RawVariant `json:"variants"`
		Count    int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Count)
	assert.Equal(t, "rs1801133", resp.Variants[0].RSID)
}

func TestHandleParse_RejectsInvalidFile(t *testing.T) {
	env := newTestServer(t)

	body, contentType := multipartBody(t, "genome.pdf", sampleExport, "")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/genome/parse", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-User-ID", "user-42")

	rec := doRequest(env, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleParse_RequiresUserID(t *testing.T) {
	env := newTestServer(t)

	body, contentType := multipartBody(t, "genome.txt", sampleExport, "")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/genome/parse", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(env, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleRisk(t *testing.T) {
	env := newTestServer(t)

	body, contentType := multipartBody(t, "genome.txt", sampleExport, "23andme")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/genome/risk", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-User-ID", "user-42")

	rec := doRequest(env, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Assessment domain.RiskAssessment `json:"assessment"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Assessment.Recommendations)
}

func TestHandleUpload_FullPipeline(t *testing.T) {
	env := newTestServer(t)

	body, contentType := multipartBody(t, "genome.txt", sampleExport, "23andme")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/genome/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-User-ID", "user-42")
	req.Header.Set("X-Session-ID", "sess-1")

	rec := doRequest(env, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		SessionID       string `json:"session_id"`
		TotalVariants   int    `json:"total_variants"`
		VariantsSaved   int64  `json:"variants_saved"`
		ReportGenerated bool   `json:"report_generated"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Equal(t, 4, resp.TotalVariants)
	assert.Equal(t, int64(4), resp.VariantsSaved)
	assert.True(t, resp.ReportGenerated)

	// 4 variants with chunk size 2: two chunks, delete fired once.
	assert.Equal(t, 1, env.store.deletes)
	assert.Equal(t, 2, env.store.inserts)

	// Final milestone recorded for the session.
	m, err := env.progress.LatestMilestone(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 2, m.ChunkIndex)
	assert.Equal(t, 2, m.TotalChunks)

	// Audit trail closed as completed.
	recAudit, err := env.audit.GetBySession(context.Background(), "sess-1")
	require.NoError(t, err)
	require.NotNil(t, recAudit)
	assert.Equal(t, uploadlog.StatusCompleted, recAudit.Status)
	assert.Equal(t, int64(4), recAudit.VariantsSaved)
}

func TestHandleIngest_FirstBatchReplacesExisting(t *testing.T) {
	env := newTestServer(t)
	env.store.variants = []domain.RawVariant{{RSID: "rs999", Genotype: "AA"}}

	payload := domain.BatchRequest{
		Variants: []domain.RawVariant{
			{RSID: "rs1801133", Genotype: "TT"},
			{RSID: "rs429358", Genotype: "CT"},
		},
		Metadata: domain.BatchMetadata{
			DataSource:    "23andme",
			TotalVariants: 2,
			ChunkIndex:    1,
			TotalChunks:   1,
			IsLastChunk:   true,
			BatchIndex:    1,
			TotalBatches:  1,
		},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/genome/ingest", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-42")

	rec := doRequest(env, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp domain.BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.VariantsSaved)
	assert.Empty(t, resp.Error)

	assert.Equal(t, 1, env.store.deletes, "first batch of first chunk clears old data")
	assert.Len(t, env.store.variants, 2, "pre-existing variant replaced")
}

func TestHandleIngest_LaterBatchDoesNotDelete(t *testing.T) {
	env := newTestServer(t)

	payload := domain.BatchRequest{
		Variants: []domain.RawVariant{{RSID: "rs6025", Genotype: "CC"}},
		Metadata: domain.BatchMetadata{
			ChunkIndex:   2,
			TotalChunks:  3,
			BatchIndex:   1,
			TotalBatches: 1,
		},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/genome/ingest", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-42")

	rec := doRequest(env, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, env.store.deletes)
}

func TestHandleIngest_RejectsEmptyBatch(t *testing.T) {
	env := newTestServer(t)

	body := []byte(`{"variants":[],"metadata":{"chunk_index":1,"batch_index":1}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/genome/ingest", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-42")

	rec := doRequest(env, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCleanupAndCount(t *testing.T) {
	env := newTestServer(t)
	env.store.variants = []domain.RawVariant{
		{RSID: "rs1", Genotype: "AA"},
		{RSID: "rs2", Genotype: "CC"},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/genome/variants/count", nil)
	req.Header.Set("X-User-ID", "user-42")
	rec := doRequest(env, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":2}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/genome/ingest", nil)
	req.Header.Set("X-User-ID", "user-42")
	rec = doRequest(env, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"rows_deleted":2}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/v1/genome/variants/count", nil)
	req.Header.Set("X-User-ID", "user-42")
	rec = doRequest(env, req)
	assert.JSONEq(t, `{"count":0}`, rec.Body.String())
}

func TestHandleProgress(t *testing.T) {
	env := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/uploads/sess-1/progress", nil)
	req.Header.Set("X-User-ID", "user-42")
	rec := doRequest(env, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	require.NoError(t, env.progress.RecordMilestone(context.Background(), domain.ChunkMilestone{
		SessionID:   "sess-1",
		ChunkIndex:  3,
		TotalChunks: 8,
		Timestamp:   time.Now(),
	}))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/uploads/sess-1/progress", nil)
	req.Header.Set("X-User-ID", "user-42")
	rec = doRequest(env, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var m domain.ChunkMilestone
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	assert.Equal(t, 3, m.ChunkIndex)
	assert.Equal(t, 8, m.TotalChunks)
}

func TestHandleListUploads(t *testing.T) {
	env := newTestServer(t)

	require.NoError(t, env.audit.Start(context.Background(), &uploadlog.Record{
		SessionID: "sess-1",
		UserID:    "user-42",
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/uploads", nil)
	req.Header.Set("X-User-ID", "user-42")
	rec := doRequest(env, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Uploads []*uploadlog.Record `json:"uploads"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Uploads, 1)
	assert.Equal(t, "sess-1", resp.Uploads[0].SessionID)
}

func TestHandleHealth(t *testing.T) {
	env := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := doRequest(env, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"healthy"`)
}

func TestHandleHealth_Degraded(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	parser, err := service.NewParserService(knowledge.NewBase(), domain.ParserConfig{MinDataLines: 1}, logger)
	require.NoError(t, err)

	srv := NewServer(testConfig(), Deps{
		Parser:   parser,
		Risk:     service.NewRiskEngine(logger),
		Store:    &fakeStore{},
		Progress: progress.NewMemoryTracker(),
		Checks: map[string]HealthChecker{
			"database": func(context.Context) error { return context.DeadlineExceeded },
		},
	}, logger)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"degraded"`)
}
