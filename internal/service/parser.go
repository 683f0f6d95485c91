package service

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/genome-ingest-server/internal/domain"
	"github.com/genome-ingest-server/pkg/rawdna"
)

// defaultResultCacheSize bounds the in-process parse result cache.
const defaultResultCacheSize = 16

// ParserService turns an uploaded raw genome file into an annotated parse
// result or a minimal raw variant list. The knowledge base is injected so
// tests can substitute a small fixture base.
type ParserService struct {
	gate   *rawdna.Gate
	parser *rawdna.Parser
	kb     domain.Annotator
	cache  *lru.Cache[string, *domain.ParseResult]
	log    *logrus.Logger
}

// NewParserService creates a new parser service
func NewParserService(kb domain.Annotator, cfg domain.ParserConfig, logger *logrus.Logger) (*ParserService, error) {
	cacheSize := cfg.ResultCacheSize
	if cacheSize <= 0 {
		cacheSize = defaultResultCacheSize
	}

	cache, err := lru.New[string, *domain.ParseResult](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating parse result cache: %w", err)
	}

	return &ParserService{
		gate: rawdna.NewGate(rawdna.GateConfig{
			MaxFileSize:  cfg.MaxFileSize,
			MinDataLines: cfg.MinDataLines,
			AllowedExts:  cfg.AllowedExts,
		}),
		parser: rawdna.NewParser(logger),
		kb:     kb,
		cache:  cache,
		log:    logger,
	}, nil
}

// ParseAnnotated validates the file, parses every record, joins each rsid
// against the knowledge base, and computes the summary metadata. Results are
// cached by content hash so re-parsing the same upload is free.
func (s *ParserService) ParseAnnotated(filename string, content []byte, dataSource string) (*domain.ParseResult, error) {
	if err := s.gate.Check(filename, content); err != nil {
		return nil, err
	}

	key := cacheKey(content, dataSource)
	if cached, ok := s.cache.Get(key); ok {
		s.log.WithFields(logrus.Fields{
			"data_source": dataSource,
			"variants":    cached.Metadata.TotalVariants,
		}).Debug("Parse result served from cache")
		return cached, nil
	}

	records, err := s.parser.ParseRecords(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	result := s.annotate(records, dataSource)
	s.cache.Add(key, result)

	s.log.WithFields(logrus.Fields{
		"data_source":         dataSource,
		"total_variants":      result.Metadata.TotalVariants,
		"annotated_variants":  result.Metadata.AnnotatedVariants,
		"clinically_relevant": result.Metadata.ClinicallyRelevantVariants,
	}).Info("Parsed raw genome file")

	return result, nil
}

// ParseRaw validates the file and returns only the minimal variant shape used
// for storage, with no annotation lookups.
func (s *ParserService) ParseRaw(filename string, content []byte) ([]domain.RawVariant, error) {
	if err := s.gate.Check(filename, content); err != nil {
		return nil, err
	}
	return s.parser.ParseRawVariants(bytes.NewReader(content))
}

// annotate joins records against the knowledge base and derives the metadata
// counters and the discovered chromosome list (first-seen order).
func (s *ParserService) annotate(records []domain.RawGenotypeRecord, dataSource string) *domain.ParseResult {
	variants := make([]domain.AnnotatedVariant, 0, len(records))
	annotated := 0
	clinicallyRelevant := 0

	seenChromosomes := make(map[string]struct{})
	var chromosomes []string

	for _, rec := range records {
		if _, seen := seenChromosomes[rec.Chromosome]; !seen {
			seenChromosomes[rec.Chromosome] = struct{}{}
			chromosomes = append(chromosomes, rec.Chromosome)
		}

		variant := domain.AnnotatedVariant{RawGenotypeRecord: rec}
		if ann, ok := s.kb.Lookup(rec.RSID); ok {
			annCopy := ann
			variant.Annotation = &annCopy
			annotated++
			if ann.Significance.IsClinicallyRelevant() {
				clinicallyRelevant++
			}
		}
		variants = append(variants, variant)
	}

	return &domain.ParseResult{
		Variants: variants,
		Metadata: domain.ParseMetadata{
			TotalVariants:              len(variants),
			AnnotatedVariants:          annotated,
			ClinicallyRelevantVariants: clinicallyRelevant,
			DataSource:                 dataSource,
			Chromosomes:                chromosomes,
		},
	}
}

func cacheKey(content []byte, dataSource string) string {
	sum := sha256.Sum256(content)
	return fmt.Sprintf("%x:%s", sum, dataSource)
}
