package service

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/genome-ingest-server/internal/domain"
)

// carrierKeywords drive the carrier-status categorization: a variant is
// flagged when its phenotype text contains one of these substrings
// (case-sensitive). Deliberately narrow; a proper clinical category field
// should replace this if the knowledge base schema is ever extended.
var carrierKeywords = []string{"anemia", "deficiency"}

// genotypeRule appends an advisory when a specific rsid carries a specific
// allele substring in the observed genotype.
type genotypeRule struct {
	RSID    string
	Allele  string
	Message string
}

// genotypeRules are evaluated in order so recommendation output is
// deterministic for identical input.
var genotypeRules = []genotypeRule{
	{
		RSID:    "rs6025",
		Allele:  "T",
		Message: "Factor V Leiden variant detected (rs6025). This is associated with an increased risk of blood clots; discuss thrombophilia screening with your healthcare provider, especially before surgery, pregnancy, or hormonal therapy.",
	},
	{
		RSID:    "rs1799963",
		Allele:  "A",
		Message: "Prothrombin G20210A variant detected (rs1799963). This is associated with elevated clotting risk; mention it to your provider when clotting risk factors arise.",
	},
	{
		RSID:    "rs1800562",
		Allele:  "A",
		Message: "HFE C282Y variant detected (rs1800562). Consider discussing iron studies with your provider to screen for hereditary hemochromatosis.",
	},
	{
		RSID:    "rs1801133",
		Allele:  "T",
		Message: "MTHFR C677T variant detected (rs1801133). Adequate dietary folate intake is advisable; clinical significance of this variant alone is limited.",
	},
	{
		RSID:    "rs9923231",
		Allele:  "T",
		Message: "VKORC1 variant detected (rs9923231). If warfarin is ever prescribed, inform your provider; a lower starting dose may be appropriate.",
	},
	{
		RSID:    "rs4149056",
		Allele:  "C",
		Message: "SLCO1B1 variant detected (rs4149056). Associated with increased risk of muscle side effects on simvastatin; alternative statins or doses may be preferred.",
	},
	{
		RSID:    "rs2395029",
		Allele:  "G",
		Message: "HLA-B*57:01 marker detected (rs2395029). Abacavir must not be used without confirmatory HLA typing due to hypersensitivity risk.",
	},
}

// Catch-all recommendations appended after the rsid-specific rules.
const (
	counselorRecommendation = "One or more variants classified as pathogenic or likely pathogenic were found. Consult a genetic counselor or physician for professional interpretation before acting on these results."
	providerRecommendation  = "Variants affecting medication response were found. Share this report with your healthcare provider before starting or changing any medication."
)

// RiskEngine derives categorized findings and rule-based recommendations from
// an annotated variant list. Assess is pure and deterministic: identical
// input always yields identical output.
type RiskEngine struct {
	log *logrus.Logger
}

// NewRiskEngine creates a new risk assessment engine
func NewRiskEngine(logger *logrus.Logger) *RiskEngine {
	return &RiskEngine{log: logger}
}

// Assess categorizes the variants and builds the recommendation list.
func (e *RiskEngine) Assess(variants []domain.AnnotatedVariant) *domain.RiskAssessment {
	assessment := &domain.RiskAssessment{
		HighRiskVariants:     []domain.AnnotatedVariant{},
		DrugResponseVariants: []domain.AnnotatedVariant{},
		CarrierStatus:        []domain.AnnotatedVariant{},
		Recommendations:      []string{},
	}

	genotypes := make(map[string]string, len(variants))

	for _, v := range variants {
		genotypes[v.RSID] = v.Genotype

		if v.Annotation == nil {
			continue
		}

		if v.Annotation.Significance.IsClinicallyRelevant() {
			assessment.HighRiskVariants = append(assessment.HighRiskVariants, v)
		}

		if v.Annotation.DrugResponse != "" {
			assessment.DrugResponseVariants = append(assessment.DrugResponseVariants, v)
		}

		if isCarrierPhenotype(v.Annotation.Phenotype) {
			assessment.CarrierStatus = append(assessment.CarrierStatus, v)
		}
	}

	for _, rule := range genotypeRules {
		if genotype, ok := genotypes[rule.RSID]; ok && strings.Contains(genotype, rule.Allele) {
			assessment.Recommendations = append(assessment.Recommendations, rule.Message)
		}
	}

	if len(assessment.HighRiskVariants) > 0 {
		assessment.Recommendations = append(assessment.Recommendations, counselorRecommendation)
	}
	if len(assessment.DrugResponseVariants) > 0 {
		assessment.Recommendations = append(assessment.Recommendations, providerRecommendation)
	}

	e.log.WithFields(logrus.Fields{
		"variants":      len(variants),
		"high_risk":     len(assessment.HighRiskVariants),
		"drug_response": len(assessment.DrugResponseVariants),
		"carrier":       len(assessment.CarrierStatus),
	}).Debug("Completed risk assessment")

	return assessment
}

func isCarrierPhenotype(phenotype string) bool {
	for _, keyword := range carrierKeywords {
		if strings.Contains(phenotype, keyword) {
			return true
		}
	}
	return false
}
