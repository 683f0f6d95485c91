package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/genome-ingest-server/internal/domain"
)

// HTTPSubmitter pushes variant batches to a remote ingestion endpoint over
// JSON/HTTP. Requests are rate limited and wrapped in a circuit breaker so a
// struggling endpoint is not hammered.
type HTTPSubmitter struct {
	endpointURL string
	httpClient  *http.Client
	breaker     *gobreaker.CircuitBreaker
	limiter     *rate.Limiter
	headers     map[string]string
	log         *logrus.Logger
}

// SubmitterOption configures an HTTPSubmitter.
type SubmitterOption func(*HTTPSubmitter)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) SubmitterOption {
	return func(s *HTTPSubmitter) { s.httpClient = client }
}

// WithHeader attaches a header to every request, e.g. auth material for the
// remote endpoint.
func WithHeader(key, value string) SubmitterOption {
	return func(s *HTTPSubmitter) { s.headers[key] = value }
}

// NewHTTPSubmitter creates a submitter for the given upload configuration.
func NewHTTPSubmitter(cfg domain.UploadConfig, logger *logrus.Logger, opts ...SubmitterOption) *HTTPSubmitter {
	rps := cfg.RequestsPerSec
	if rps <= 0 {
		rps = 10
	}

	s := &HTTPSubmitter{
		endpointURL: cfg.EndpointURL,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		limiter:     rate.NewLimiter(rate.Limit(rps), 1),
		headers:     make(map[string]string),
		log:         logger,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "GenomeIngest",
			MaxRequests: 5,
			Interval:    30 * time.Second,
			Timeout:     60 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 3 && failureRatio >= 0.6
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.WithFields(logrus.Fields{
					"breaker": name,
					"from":    from.String(),
					"to":      to.String(),
				}).Warn("Circuit breaker state changed")
			},
		}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitBatch posts one batch to the ingestion endpoint. A response carrying
// a non-empty error field is surfaced as an error so the retry policy can
// classify it.
func (s *HTTPSubmitter) SubmitBatch(ctx context.Context, req *domain.BatchRequest) (*domain.BatchResponse, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.postBatch(ctx, req)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState {
			return nil, fmt.Errorf("ingestion endpoint unavailable (circuit breaker open)")
		}
		return nil, err
	}

	return result.(*domain.BatchResponse), nil
}

func (s *HTTPSubmitter) postBatch(ctx context.Context, req *domain.BatchRequest) (*domain.BatchResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode batch: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpointURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range s.headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("batch request failed: %w", err)
	}
	defer httpResp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp domain.BatchResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("unexpected response (status %d): %w", httpResp.StatusCode, err)
	}

	if resp.Error != "" {
		return nil, fmt.Errorf("%s", resp.Error)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("batch rejected with status %d", httpResp.StatusCode)
	}

	return &resp, nil
}

// Cleanup asks the endpoint to discard anything persisted for the current
// upload. Used when the first chunk fails so no stale variants survive.
func (s *HTTPSubmitter) Cleanup(ctx context.Context) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.endpointURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build cleanup request: %w", err)
	}
	for k, v := range s.headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("cleanup request failed: %w", err)
	}
	defer httpResp.Body.Close()
	io.Copy(io.Discard, httpResp.Body)

	if httpResp.StatusCode != http.StatusOK && httpResp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("cleanup rejected with status %d", httpResp.StatusCode)
	}

	s.log.Info("Server-side cleanup completed")
	return nil
}

var _ domain.BatchSubmitter = (*HTTPSubmitter)(nil)
