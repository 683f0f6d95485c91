package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genome-ingest-server/internal/domain"
)

func TestNewManager_Defaults(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	cfg := m.GetConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "genome_ingest", cfg.Database.Database)

	assert.Equal(t, int64(50*1024*1024), cfg.Parser.MaxFileSize)
	assert.Equal(t, 10, cfg.Parser.MinDataLines)
	assert.Equal(t, []string{".txt", ".tsv", ".csv"}, cfg.Parser.AllowedExts)

	assert.Equal(t, 78000, cfg.Upload.ChunkSize)
	assert.Equal(t, 10000, cfg.Upload.BatchSize)
	assert.Equal(t, 3, cfg.Upload.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Upload.BackoffStep)

	assert.Equal(t, "redis://localhost:6379", cfg.Progress.RedisURL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestManager_ValidateDefaults(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	assert.NoError(t, m.Validate())
}

func TestManager_ValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *domain.Config)
		wantErr string
	}{
		{
			name:    "invalid port",
			mutate:  func(cfg *domain.Config) { cfg.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "missing database host",
			mutate:  func(cfg *domain.Config) { cfg.Database.Host = "" },
			wantErr: "database host is required",
		},
		{
			name:    "batch larger than chunk",
			mutate:  func(cfg *domain.Config) { cfg.Upload.BatchSize = cfg.Upload.ChunkSize + 1 },
			wantErr: "exceeds chunk size",
		},
		{
			name:    "zero retries",
			mutate:  func(cfg *domain.Config) { cfg.Upload.MaxRetries = 0 },
			wantErr: "max retries",
		},
		{
			name:    "bad log level",
			mutate:  func(cfg *domain.Config) { cfg.Logging.Level = "verbose" },
			wantErr: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewManager()
			require.NoError(t, err)

			tt.mutate(m.GetConfig())

			err = m.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestManager_Accessors(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	assert.Same(t, &m.GetConfig().Database, m.GetDatabaseConfig())
	assert.Same(t, &m.GetConfig().Server, m.GetServerConfig())
	assert.Same(t, &m.GetConfig().Upload, m.GetUploadConfig())
}
