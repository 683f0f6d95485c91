package rawdna

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/genome-ingest-server/internal/domain"
)

// fieldsPerRecord is the minimum number of tab-separated fields a data line
// must carry: rsid, chromosome, position, genotype.
const fieldsPerRecord = 4

// Parser streams a raw genotype export line by line. Comment lines, blank
// lines, and lines that fail record validation are skipped without aborting
// the file; real-world exports routinely contain a few dirty rows.
type Parser struct {
	validator *Validator
	log       *logrus.Logger
}

// NewParser creates a new raw file parser
func NewParser(logger *logrus.Logger) *Parser {
	return &Parser{
		validator: NewValidator(),
		log:       logger,
	}
}

// ParseRecords reads every valid genotype record from r, preserving input
// order. It fails only when no valid record survives.
func (p *Parser) ParseRecords(r io.Reader) ([]domain.RawGenotypeRecord, error) {
	var records []domain.RawGenotypeRecord
	skipped := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < fieldsPerRecord {
			skipped++
			continue
		}

		record, err := p.validator.ValidateRecord(
			strings.TrimSpace(fields[0]),
			strings.TrimSpace(fields[1]),
			strings.TrimSpace(fields[2]),
			strings.TrimSpace(fields[3]),
		)
		if err != nil {
			skipped++
			p.log.WithFields(logrus.Fields{
				"line":  lineNo,
				"error": err,
			}).Debug("Skipping malformed genotype line")
			continue
		}

		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading raw genome file: %w", err)
	}

	if len(records) == 0 {
		return nil, domain.NewFileError("no valid genotype records found")
	}

	if skipped > 0 {
		p.log.WithFields(logrus.Fields{
			"parsed":  len(records),
			"skipped": skipped,
		}).Info("Parsed raw genome file with skipped lines")
	}

	return records, nil
}

// ParseRawVariants reads the file with the same line engine but emits only the
// minimal {rsid, genotype} shape used for storage.
func (p *Parser) ParseRawVariants(r io.Reader) ([]domain.RawVariant, error) {
	records, err := p.ParseRecords(r)
	if err != nil {
		return nil, err
	}

	variants := make([]domain.RawVariant, 0, len(records))
	for _, rec := range records {
		variants = append(variants, domain.RawVariant{
			RSID:     rec.RSID,
			Genotype: rec.Genotype,
		})
	}
	return variants, nil
}
