// Package rawdna parses and validates 23andMe-style raw genotype exports.
package rawdna

import (
	"strconv"

	"regexp"

	"github.com/genome-ingest-server/internal/domain"
)

// Raw genotype record patterns for validation
var (
	// dbSNP reference SNP identifier: rs429358
	rsidPattern = regexp.MustCompile(`^rs[0-9]+$`)

	// One or two calls drawn from the four bases, dash meaning no-call
	genotypePattern = regexp.MustCompile(`^[ATCG-]{1,2}$`)
)

// validChromosomes is the closed set of human chromosome names accepted in
// raw exports. Matching is case-sensitive and exact.
var validChromosomes = buildChromosomeSet()

func buildChromosomeSet() map[string]struct{} {
	set := make(map[string]struct{}, 25)
	for i := 1; i <= 22; i++ {
		set[strconv.Itoa(i)] = struct{}{}
	}
	set["X"] = struct{}{}
	set["Y"] = struct{}{}
	set["MT"] = struct{}{}
	return set
}

// Validator validates raw genotype record fields.
type Validator struct{}

// NewValidator creates a new record validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRecord validates a candidate (rsid, chromosome, position, genotype)
// tuple and returns the validated record. The returned error is a
// *domain.ValidationError identifying the offending field.
func (v *Validator) ValidateRecord(rsid, chromosome, position, genotype string) (domain.RawGenotypeRecord, error) {
	if !rsidPattern.MatchString(rsid) {
		return domain.RawGenotypeRecord{}, domain.NewValidationError("rsid", "must match rs followed by digits", rsid)
	}

	if _, ok := validChromosomes[chromosome]; !ok {
		return domain.RawGenotypeRecord{}, domain.NewValidationError("chromosome", "must be one of 1-22, X, Y, MT", chromosome)
	}

	pos, err := strconv.ParseInt(position, 10, 64)
	if err != nil {
		return domain.RawGenotypeRecord{}, domain.NewValidationError("position", "must be a base-10 integer", position)
	}
	if pos < 1 {
		return domain.RawGenotypeRecord{}, domain.NewValidationError("position", "must be positive", position)
	}

	if !genotypePattern.MatchString(genotype) {
		return domain.RawGenotypeRecord{}, domain.NewValidationError("genotype", "must be 1-2 characters from ATCG-", genotype)
	}

	return domain.RawGenotypeRecord{
		RSID:       rsid,
		Chromosome: chromosome,
		Position:   pos,
		Genotype:   genotype,
	}, nil
}

// IsValidChromosome reports whether name is in the accepted chromosome set.
func IsValidChromosome(name string) bool {
	_, ok := validChromosomes[name]
	return ok
}
