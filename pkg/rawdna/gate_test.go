package rawdna

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genome-ingest-server/internal/domain"
)

func validExport(lines int) []byte {
	var b strings.Builder
	b.WriteString("# generated test export\n")
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&b, "rs%d\t1\t%d\tAA\n", 1000+i, 100+i)
	}
	return []byte(b.String())
}

func TestGate_Check(t *testing.T) {
	g := NewGate(DefaultGateConfig())

	tests := []struct {
		name       string
		filename   string
		content    []byte
		wantReason string // substring of the rejection reason, empty = accepted
	}{
		{"valid txt", "genome.txt", validExport(12), ""},
		{"valid tsv", "genome.tsv", validExport(12), ""},
		{"extension rejected", "genome.zip", validExport(12), "extension"},
		{"no extension rejected", "genome", validExport(12), "extension"},
		{"empty file", "genome.txt", []byte{}, "empty"},
		{"too few data lines", "genome.txt", validExport(3), "data lines"},
		{
			"first data line too few fields",
			"genome.txt",
			[]byte("# header\n" + strings.Repeat("rs1 1 100 AA\n", 12)),
			"tab-separated",
		},
		{
			"first data line not an rsid",
			"genome.txt",
			[]byte(strings.Repeat("abc\t1\t100\tAA\n", 12)),
			"rs identifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Check(tt.filename, tt.content)

			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var fErr *domain.FileError
			require.ErrorAs(t, err, &fErr)
			assert.Contains(t, fErr.Reason, tt.wantReason)
		})
	}
}

func TestGate_SizeCeiling(t *testing.T) {
	g := NewGate(GateConfig{MaxFileSize: 64, MinDataLines: 1})

	err := g.Check("genome.txt", validExport(12))
	require.Error(t, err)

	var fErr *domain.FileError
	require.ErrorAs(t, err, &fErr)
	assert.Contains(t, fErr.Reason, "exceeds limit")
}

func TestGate_ConfigDefaults(t *testing.T) {
	g := NewGate(GateConfig{})
	assert.Equal(t, int64(DefaultMaxFileSize), g.cfg.MaxFileSize)
	assert.Equal(t, DefaultMinDataLines, g.cfg.MinDataLines)
	assert.Equal(t, DefaultAllowedExts, g.cfg.AllowedExts)
}
