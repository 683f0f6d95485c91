package domain

import (
	"time"
)

// Core Enums and Types

// ClinicalSignificance represents the qualitative classification of a variant's
// believed contribution to disease.
type ClinicalSignificance string

const (
	PATHOGENIC        ClinicalSignificance = "pathogenic"
	LIKELY_PATHOGENIC ClinicalSignificance = "likely_pathogenic"
	UNCERTAIN         ClinicalSignificance = "uncertain"
	LIKELY_BENIGN     ClinicalSignificance = "likely_benign"
	BENIGN            ClinicalSignificance = "benign"
)

// IsClinicallyRelevant reports whether the significance is pathogenic or
// likely pathogenic.
func (s ClinicalSignificance) IsClinicallyRelevant() bool {
	return s == PATHOGENIC || s == LIKELY_PATHOGENIC
}

// UploadState represents the lifecycle state of an upload session
type UploadState string

const (
	UploadRunning  UploadState = "RUNNING"
	UploadComplete UploadState = "COMPLETE"
	UploadFailed   UploadState = "FAILED"
	UploadPartial  UploadState = "PARTIAL"
)

// Core Data Models

// RawGenotypeRecord represents one validated line of a raw genotype export.
// Records are immutable once created.
type RawGenotypeRecord struct {
	RSID       string `json:"rsid"`
	Chromosome string `json:"chromosome"`
	Position   int64  `json:"position"`
	Genotype   string `json:"genotype"`
}

// RawVariant is the minimal shape persisted to storage. Chromosome and
// position are only needed during parsing and display, never stored.
type RawVariant struct {
	RSID     string `json:"rsid"`
	Genotype string `json:"genotype"`
}

// ClinicalAnnotation represents curated reference data for a single rsid.
type ClinicalAnnotation struct {
	GeneName       string               `json:"gene_name,omitempty"`
	Significance   ClinicalSignificance `json:"clinical_significance,omitempty"`
	Phenotype      string               `json:"phenotype,omitempty"`
	DrugResponse   string               `json:"drug_response,omitempty"`
	Frequency      float64              `json:"frequency,omitempty"`
	Consequence    string               `json:"consequence,omitempty"`
	RiskAllele     string               `json:"risk_allele,omitempty"`
	Interpretation string               `json:"interpretation,omitempty"`
}

// AnnotatedVariant is a raw genotype record joined against the knowledge base.
// Annotation is nil when the rsid has no knowledge base entry.
type AnnotatedVariant struct {
	RawGenotypeRecord
	Annotation *ClinicalAnnotation `json:"annotation,omitempty"`
}

// ParseMetadata summarizes one parse of a raw genome file.
type ParseMetadata struct {
	TotalVariants              int      `json:"total_variants"`
	AnnotatedVariants          int      `json:"annotated_variants"`
	ClinicallyRelevantVariants int      `json:"clinically_relevant_variants"`
	DataSource                 string   `json:"data_source"`
	Chromosomes                []string `json:"chromosomes"`
}

// ParseResult is the full annotated output of a file parse. It is recomputed
// on every parse and never partially updated.
type ParseResult struct {
	Variants []AnnotatedVariant `json:"variants"`
	Metadata ParseMetadata      `json:"metadata"`
}

// Risk Assessment Models

// RiskAssessment categorizes annotated variants into clinically actionable
// groups. It is a pure function of the variant list.
type RiskAssessment struct {
	HighRiskVariants     []AnnotatedVariant `json:"high_risk_variants"`
	DrugResponseVariants []AnnotatedVariant `json:"drug_response_variants"`
	CarrierStatus        []AnnotatedVariant `json:"carrier_status"`
	Recommendations      []string           `json:"recommendations"`
}

// Upload Models

// BatchMetadata accompanies every batch submission so the ingestion endpoint
// can position the batch within the overall upload. Indices are 1-based.
type BatchMetadata struct {
	DataSource    string `json:"data_source"`
	TotalVariants int    `json:"total_variants"`
	ChunkIndex    int    `json:"chunk_index"`
	TotalChunks   int    `json:"total_chunks"`
	IsLastChunk   bool   `json:"is_last_chunk"`
	BatchIndex    int    `json:"batch_index"`
	TotalBatches  int    `json:"total_batches"`
}

// BatchRequest is the wire format consumed by the ingestion endpoint.
type BatchRequest struct {
	Variants []RawVariant  `json:"variants"`
	Metadata BatchMetadata `json:"metadata"`
}

// BatchResponse is the ingestion endpoint's reply for one batch. An Error
// containing the substring "timeout" signals a retryable condition.
type BatchResponse struct {
	VariantsSaved int64  `json:"variants_saved"`
	Error         string `json:"error,omitempty"`
}

// UploadResult is the aggregate outcome of a chunked upload.
type UploadResult struct {
	TotalVariants   int   `json:"total_variants"`
	VariantsSaved   int64 `json:"variants_saved"`
	ReportGenerated bool  `json:"report_generated"`
}

// ChunkMilestone is emitted after each chunk is fully acknowledged. Progress
// UIs must be driven by these real milestones, never by eased estimates.
type ChunkMilestone struct {
	SessionID   string    `json:"session_id"`
	ChunkIndex  int       `json:"chunk_index"`
	TotalChunks int       `json:"total_chunks"`
	Timestamp   time.Time `json:"timestamp"`
}

// Configuration Models

// Config represents the main application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Parser   ParserConfig   `mapstructure:"parser"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Progress ProgressConfig `mapstructure:"progress"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Database        string        `mapstructure:"database"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrationsPath  string        `mapstructure:"migrations_path"`
}

// ParserConfig represents file parsing limits
type ParserConfig struct {
	MaxFileSize     int64    `mapstructure:"max_file_size"`
	MinDataLines    int      `mapstructure:"min_data_lines"`
	AllowedExts     []string `mapstructure:"allowed_extensions"`
	ResultCacheSize int      `mapstructure:"result_cache_size"`
}

// UploadConfig represents chunked upload tuning
type UploadConfig struct {
	ChunkSize      int           `mapstructure:"chunk_size"`
	BatchSize      int           `mapstructure:"batch_size"`
	MaxRetries     int           `mapstructure:"max_retries"`
	BackoffStep    time.Duration `mapstructure:"backoff_step"`
	EndpointURL    string        `mapstructure:"endpoint_url"`
	RequestsPerSec float64       `mapstructure:"requests_per_sec"`
}

// ProgressConfig represents the upload progress tracker configuration
type ProgressConfig struct {
	RedisURL   string        `mapstructure:"redis_url"`
	DefaultTTL time.Duration `mapstructure:"default_ttl"`
	PoolSize   int           `mapstructure:"pool_size"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
