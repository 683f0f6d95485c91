package rawdna

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/genome-ingest-server/internal/domain"
)

// Default gate limits. All of them are overridable via GateConfig.
const (
	DefaultMaxFileSize  = 50 << 20 // 50 MiB
	DefaultMinDataLines = 10
)

// DefaultAllowedExts lists the accepted raw export file extensions.
var DefaultAllowedExts = []string{".txt", ".tsv", ".csv"}

// GateConfig bounds the fast pre-parse checks.
type GateConfig struct {
	MaxFileSize  int64
	MinDataLines int
	AllowedExts  []string
}

// DefaultGateConfig returns the gate limits used when none are configured.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		MaxFileSize:  DefaultMaxFileSize,
		MinDataLines: DefaultMinDataLines,
		AllowedExts:  DefaultAllowedExts,
	}
}

// Gate performs cheap structural checks on a whole file before any real
// parsing work is spent on it.
type Gate struct {
	cfg GateConfig
}

// NewGate creates a file-level validation gate
func NewGate(cfg GateConfig) *Gate {
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.MinDataLines <= 0 {
		cfg.MinDataLines = DefaultMinDataLines
	}
	if len(cfg.AllowedExts) == 0 {
		cfg.AllowedExts = DefaultAllowedExts
	}
	return &Gate{cfg: cfg}
}

// Check validates filename and content against the structural preconditions.
// Every failure returns a *domain.FileError naming the specific reason.
func (g *Gate) Check(filename string, content []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !g.extAllowed(ext) {
		return domain.NewFileError(fmt.Sprintf("unsupported file extension %q, expected one of %s",
			ext, strings.Join(g.cfg.AllowedExts, ", ")))
	}

	if int64(len(content)) > g.cfg.MaxFileSize {
		return domain.NewFileError(fmt.Sprintf("file size %d exceeds limit of %d bytes",
			len(content), g.cfg.MaxFileSize))
	}

	if len(content) == 0 {
		return domain.NewFileError("file is empty")
	}

	dataLines := 0
	firstDataLine := ""
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if firstDataLine == "" {
			firstDataLine = line
		}
		dataLines++
	}

	if dataLines < g.cfg.MinDataLines {
		return domain.NewFileError(fmt.Sprintf("found %d data lines, need at least %d",
			dataLines, g.cfg.MinDataLines))
	}

	fields := strings.Split(firstDataLine, "\t")
	if len(fields) < fieldsPerRecord {
		return domain.NewFileError(fmt.Sprintf("first data line has %d tab-separated fields, need at least %d",
			len(fields), fieldsPerRecord))
	}
	if !strings.HasPrefix(strings.TrimSpace(fields[0]), "rs") {
		return domain.NewFileError("first data line does not start with an rs identifier")
	}

	return nil
}

func (g *Gate) extAllowed(ext string) bool {
	for _, allowed := range g.cfg.AllowedExts {
		if ext == allowed {
			return true
		}
	}
	return false
}
