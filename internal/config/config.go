package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/genome-ingest-server/internal/domain"
)

// Manager loads and validates server configuration using Viper
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/genome-ingest-server/")

	viper.SetEnvPrefix("GENOME_INGEST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and env vars suffice
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.database", "genome_ingest")
	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.max_conns", 25)
	viper.SetDefault("database.min_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", "5m")
	viper.SetDefault("database.migrations_path", "migrations")

	// Parser defaults
	viper.SetDefault("parser.max_file_size", 50*1024*1024)
	viper.SetDefault("parser.min_data_lines", 10)
	viper.SetDefault("parser.allowed_extensions", []string{".txt", ".tsv", ".csv"})
	viper.SetDefault("parser.result_cache_size", 64)

	// Upload defaults
	viper.SetDefault("upload.chunk_size", 78000)
	viper.SetDefault("upload.batch_size", 10000)
	viper.SetDefault("upload.max_retries", 3)
	viper.SetDefault("upload.backoff_step", "2s")
	viper.SetDefault("upload.endpoint_url", "http://localhost:8080/api/v1/genome/ingest")
	viper.SetDefault("upload.requests_per_sec", 10)

	// Progress tracker defaults
	viper.SetDefault("progress.redis_url", "redis://localhost:6379")
	viper.SetDefault("progress.default_ttl", "24h")
	viper.SetDefault("progress.pool_size", 10)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetDatabaseConfig returns database configuration
func (m *Manager) GetDatabaseConfig() *domain.DatabaseConfig {
	return &m.config.Database
}

// GetServerConfig returns server configuration
func (m *Manager) GetServerConfig() *domain.ServerConfig {
	return &m.config.Server
}

// GetUploadConfig returns chunked upload tuning
func (m *Manager) GetUploadConfig() *domain.UploadConfig {
	return &m.config.Upload
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if config.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if config.Database.Username == "" {
		return fmt.Errorf("database username is required")
	}

	if config.Parser.MaxFileSize <= 0 {
		return fmt.Errorf("parser max file size must be positive")
	}
	if config.Parser.MinDataLines < 1 {
		return fmt.Errorf("parser min data lines must be at least 1")
	}

	if config.Upload.ChunkSize <= 0 {
		return fmt.Errorf("upload chunk size must be positive")
	}
	if config.Upload.BatchSize <= 0 {
		return fmt.Errorf("upload batch size must be positive")
	}
	if config.Upload.BatchSize > config.Upload.ChunkSize {
		return fmt.Errorf("upload batch size %d exceeds chunk size %d",
			config.Upload.BatchSize, config.Upload.ChunkSize)
	}
	if config.Upload.MaxRetries < 1 {
		return fmt.Errorf("upload max retries must be at least 1")
	}

	if config.Progress.RedisURL == "" {
		return fmt.Errorf("Redis URL is required")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}

// IsProduction returns true if running in production mode
func (m *Manager) IsProduction() bool {
	return strings.ToLower(viper.GetString("environment")) == "production"
}

// IsDevelopment returns true if running in development mode
func (m *Manager) IsDevelopment() bool {
	env := strings.ToLower(viper.GetString("environment"))
	return env == "development" || env == "dev" || env == ""
}
