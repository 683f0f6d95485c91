package service

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genome-ingest-server/internal/domain"
	"github.com/genome-ingest-server/internal/knowledge"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func fixtureBase() *knowledge.Base {
	return knowledge.NewBaseFrom(map[string]domain.ClinicalAnnotation{
		"rs1801133": {
			GeneName:     "MTHFR",
			Significance: domain.UNCERTAIN,
			Phenotype:    "Homocystinuria due to MTHFR deficiency",
		},
		"rs334": {
			GeneName:     "HBB",
			Significance: domain.PATHOGENIC,
			Phenotype:    "Sickle cell anemia",
		},
		"rs4244285": {
			GeneName:     "CYP2C19",
			Significance: domain.UNCERTAIN,
			DrugResponse: "clopidogrel",
		},
	})
}

func newTestParserService(t *testing.T) *ParserService {
	t.Helper()
	svc, err := NewParserService(fixtureBase(), domain.ParserConfig{MinDataLines: 1}, testLogger())
	require.NoError(t, err)
	return svc
}

const testFile = "rs1801133\t1\t11796321\tTT\n" +
	"rs334\t11\t5227002\tAT\n" +
	"rs4244285\t10\t94781859\tAG\n" +
	"rs9999999\t2\t1000\tCC\n"

func TestParserService_ParseAnnotated(t *testing.T) {
	svc := newTestParserService(t)

	result, err := svc.ParseAnnotated("genome.txt", []byte(testFile), "23andme")
	require.NoError(t, err)
	require.Len(t, result.Variants, 4)

	// Known rsid picks up its knowledge base entry.
	mthfr := result.Variants[0]
	require.NotNil(t, mthfr.Annotation)
	assert.Equal(t, "MTHFR", mthfr.Annotation.GeneName)
	assert.Equal(t, "TT", mthfr.Genotype)

	// Unknown rsid stays unannotated.
	assert.Nil(t, result.Variants[3].Annotation)

	meta := result.Metadata
	assert.Equal(t, 4, meta.TotalVariants)
	assert.Equal(t, 3, meta.AnnotatedVariants)
	assert.Equal(t, 1, meta.ClinicallyRelevantVariants) // rs334 only
	assert.Equal(t, "23andme", meta.DataSource)
	assert.Equal(t, []string{"1", "11", "10", "2"}, meta.Chromosomes)
}

func TestParserService_MetadataInvariants(t *testing.T) {
	svc := newTestParserService(t)

	result, err := svc.ParseAnnotated("genome.txt", []byte(testFile), "23andme")
	require.NoError(t, err)

	meta := result.Metadata
	unannotated := 0
	for _, v := range result.Variants {
		if v.Annotation == nil {
			unannotated++
		}
	}

	assert.Equal(t, meta.TotalVariants, meta.AnnotatedVariants+unannotated)
	assert.LessOrEqual(t, meta.ClinicallyRelevantVariants, meta.AnnotatedVariants)
	assert.LessOrEqual(t, meta.AnnotatedVariants, meta.TotalVariants)
}

func TestParserService_Idempotent(t *testing.T) {
	svc := newTestParserService(t)

	first, err := svc.ParseAnnotated("genome.txt", []byte(testFile), "23andme")
	require.NoError(t, err)
	second, err := svc.ParseAnnotated("genome.txt", []byte(testFile), "23andme")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParserService_GateRejection(t *testing.T) {
	svc := newTestParserService(t)

	_, err := svc.ParseAnnotated("genome.pdf", []byte(testFile), "23andme")
	require.Error(t, err)

	var fErr *domain.FileError
	assert.ErrorAs(t, err, &fErr)
}

func TestParserService_ParseRaw(t *testing.T) {
	svc := newTestParserService(t)

	variants, err := svc.ParseRaw("genome.txt", []byte(testFile))
	require.NoError(t, err)
	require.Len(t, variants, 4)

	assert.Equal(t, domain.RawVariant{RSID: "rs1801133", Genotype: "TT"}, variants[0])
	assert.Equal(t, domain.RawVariant{RSID: "rs9999999", Genotype: "CC"}, variants[3])
}

func TestParserService_SkipsInvalidChromosome(t *testing.T) {
	svc := newTestParserService(t)

	content := "rs100\t23\t100\tAA\nrs1801133\t1\t11796321\tTT\n"
	result, err := svc.ParseAnnotated("genome.txt", []byte(content), "23andme")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Metadata.TotalVariants)
	assert.Equal(t, "rs1801133", result.Variants[0].RSID)
}
