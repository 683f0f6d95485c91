package knowledge

import (
	"github.com/genome-ingest-server/internal/domain"
)

// builtinAnnotations is the curated reference dataset compiled into the
// binary. Entries are keyed by dbSNP rsid; frequencies are approximate
// global minor allele frequencies.
var builtinAnnotations = map[string]domain.ClinicalAnnotation{
	// Methylation / homocysteine
	"rs1801133": {
		GeneName:       "MTHFR",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Homocystinuria due to MTHFR deficiency; mild hyperhomocysteinemia",
		Frequency:      0.33,
		Consequence:    "missense_variant",
		RiskAllele:     "T",
		Interpretation: "The C677T variant reduces MTHFR enzyme activity; TT carriers may have elevated homocysteine levels and altered folate metabolism.",
	},
	"rs1801131": {
		GeneName:       "MTHFR",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Reduced MTHFR enzyme activity",
		Frequency:      0.25,
		Consequence:    "missense_variant",
		RiskAllele:     "G",
		Interpretation: "The A1298C variant mildly reduces enzyme activity; significant mainly in combination with C677T.",
	},

	// Thrombophilia
	"rs6025": {
		GeneName:       "F5",
		Significance:   domain.PATHOGENIC,
		Phenotype:      "Factor V Leiden thrombophilia",
		Frequency:      0.02,
		Consequence:    "missense_variant",
		RiskAllele:     "T",
		Interpretation: "Factor V Leiden (R506Q) confers resistance to activated protein C and a 3-8 fold increased risk of venous thromboembolism in heterozygotes.",
	},
	"rs1799963": {
		GeneName:       "F2",
		Significance:   domain.PATHOGENIC,
		Phenotype:      "Prothrombin-related thrombophilia",
		Frequency:      0.01,
		Consequence:    "3_prime_UTR_variant",
		RiskAllele:     "A",
		Interpretation: "The prothrombin G20210A variant elevates plasma prothrombin levels and increases venous thrombosis risk.",
	},

	// Hemochromatosis
	"rs1800562": {
		GeneName:       "HFE",
		Significance:   domain.PATHOGENIC,
		Phenotype:      "Hereditary hemochromatosis type 1",
		Frequency:      0.04,
		Consequence:    "missense_variant",
		RiskAllele:     "A",
		Interpretation: "The C282Y variant is the major cause of hereditary hemochromatosis; homozygotes are at risk of progressive iron overload.",
	},
	"rs1799945": {
		GeneName:       "HFE",
		Significance:   domain.LIKELY_PATHOGENIC,
		Phenotype:      "Hereditary hemochromatosis, mild iron overload",
		Frequency:      0.14,
		Consequence:    "missense_variant",
		RiskAllele:     "G",
		Interpretation: "The H63D variant contributes to iron overload mainly as a compound heterozygote with C282Y.",
	},

	// Hemoglobinopathies and other recessive carrier conditions
	"rs334": {
		GeneName:       "HBB",
		Significance:   domain.PATHOGENIC,
		Phenotype:      "Sickle cell anemia",
		Frequency:      0.01,
		Consequence:    "missense_variant",
		RiskAllele:     "T",
		Interpretation: "The Glu6Val substitution in beta-globin causes sickle cell disease in homozygotes; heterozygotes have sickle cell trait.",
	},
	"rs33930165": {
		GeneName:       "HBB",
		Significance:   domain.PATHOGENIC,
		Phenotype:      "Hemoglobin C disease; mild hemolytic anemia",
		Frequency:      0.003,
		Consequence:    "missense_variant",
		RiskAllele:     "T",
		Interpretation: "The Glu6Lys substitution causes hemoglobin C disease in homozygotes and compound states with HbS.",
	},
	"rs1050828": {
		GeneName:       "G6PD",
		Significance:   domain.PATHOGENIC,
		Phenotype:      "Glucose-6-phosphate dehydrogenase deficiency",
		Frequency:      0.02,
		Consequence:    "missense_variant",
		RiskAllele:     "T",
		Interpretation: "The G6PD A- variant causes episodic hemolysis triggered by oxidative stressors including fava beans and certain drugs.",
	},
	"rs28929474": {
		GeneName:       "SERPINA1",
		Significance:   domain.PATHOGENIC,
		Phenotype:      "Alpha-1 antitrypsin deficiency",
		Frequency:      0.02,
		Consequence:    "missense_variant",
		RiskAllele:     "T",
		Interpretation: "The PiZ allele causes severe alpha-1 antitrypsin deficiency in homozygotes, with risk of early-onset emphysema and liver disease.",
	},
	"rs17580": {
		GeneName:       "SERPINA1",
		Significance:   domain.LIKELY_PATHOGENIC,
		Phenotype:      "Mild alpha-1 antitrypsin deficiency",
		Frequency:      0.03,
		Consequence:    "missense_variant",
		RiskAllele:     "A",
		Interpretation: "The PiS allele moderately lowers alpha-1 antitrypsin levels; clinically significant mainly with a PiZ allele in trans.",
	},
	"rs113993960": {
		GeneName:       "CFTR",
		Significance:   domain.PATHOGENIC,
		Phenotype:      "Cystic fibrosis",
		Frequency:      0.01,
		Consequence:    "inframe_deletion",
		RiskAllele:     "-",
		Interpretation: "The F508del deletion is the most common cystic fibrosis allele worldwide.",
	},
	"rs1800546": {
		GeneName:       "ALDOB",
		Significance:   domain.PATHOGENIC,
		Phenotype:      "Hereditary fructose intolerance; aldolase B deficiency",
		Frequency:      0.003,
		Consequence:    "missense_variant",
		RiskAllele:     "C",
		Interpretation: "The A149P variant abolishes aldolase B activity; homozygotes must avoid dietary fructose.",
	},
	"rs77931234": {
		GeneName:       "ACADM",
		Significance:   domain.PATHOGENIC,
		Phenotype:      "Medium-chain acyl-CoA dehydrogenase deficiency",
		Frequency:      0.005,
		Consequence:    "missense_variant",
		RiskAllele:     "G",
		Interpretation: "The K304E variant is the most common MCAD deficiency allele; affected individuals risk hypoglycemic crises during fasting.",
	},
	"rs80338939": {
		GeneName:       "GJB2",
		Significance:   domain.PATHOGENIC,
		Phenotype:      "Autosomal recessive nonsyndromic hearing loss",
		Frequency:      0.008,
		Consequence:    "frameshift_variant",
		RiskAllele:     "-",
		Interpretation: "The 35delG frameshift is the most common cause of congenital recessive hearing loss in European populations.",
	},

	// Pharmacogenomics
	"rs4244285": {
		GeneName:       "CYP2C19",
		Significance:   domain.UNCERTAIN,
		DrugResponse:   "clopidogrel (reduced activation), proton pump inhibitors",
		Frequency:      0.15,
		Consequence:    "splice_donor_variant",
		RiskAllele:     "A",
		Interpretation: "The CYP2C19*2 loss-of-function allele impairs clopidogrel activation; carriers may need alternative antiplatelet therapy.",
	},
	"rs4986893": {
		GeneName:       "CYP2C19",
		Significance:   domain.UNCERTAIN,
		DrugResponse:   "clopidogrel (reduced activation)",
		Frequency:      0.05,
		Consequence:    "stop_gained",
		RiskAllele:     "A",
		Interpretation: "The CYP2C19*3 null allele abolishes enzyme activity, most prevalent in East Asian populations.",
	},
	"rs12248560": {
		GeneName:       "CYP2C19",
		Significance:   domain.UNCERTAIN,
		DrugResponse:   "clopidogrel (enhanced activation), escitalopram",
		Frequency:      0.21,
		Consequence:    "upstream_gene_variant",
		RiskAllele:     "T",
		Interpretation: "The CYP2C19*17 promoter variant increases expression; ultrarapid metabolizers may have altered dosing needs.",
	},
	"rs1799853": {
		GeneName:       "CYP2C9",
		Significance:   domain.UNCERTAIN,
		DrugResponse:   "warfarin (reduced clearance), phenytoin, NSAIDs",
		Frequency:      0.11,
		Consequence:    "missense_variant",
		RiskAllele:     "T",
		Interpretation: "The CYP2C9*2 allele reduces metabolism of warfarin and other substrates; lower starting doses are often appropriate.",
	},
	"rs1057910": {
		GeneName:       "CYP2C9",
		Significance:   domain.UNCERTAIN,
		DrugResponse:   "warfarin (strongly reduced clearance), phenytoin",
		Frequency:      0.06,
		Consequence:    "missense_variant",
		RiskAllele:     "C",
		Interpretation: "The CYP2C9*3 allele markedly reduces enzyme activity and warfarin dose requirements.",
	},
	"rs9923231": {
		GeneName:       "VKORC1",
		Significance:   domain.UNCERTAIN,
		DrugResponse:   "warfarin (increased sensitivity)",
		Frequency:      0.39,
		Consequence:    "upstream_gene_variant",
		RiskAllele:     "T",
		Interpretation: "The -1639G>A promoter variant lowers VKORC1 expression; T carriers typically require lower warfarin doses.",
	},
	"rs4149056": {
		GeneName:       "SLCO1B1",
		Significance:   domain.UNCERTAIN,
		DrugResponse:   "simvastatin (myopathy risk)",
		Frequency:      0.15,
		Consequence:    "missense_variant",
		RiskAllele:     "C",
		Interpretation: "The SLCO1B1*5 variant impairs hepatic statin uptake and raises the risk of simvastatin-induced myopathy.",
	},
	"rs1800462": {
		GeneName:       "TPMT",
		Significance:   domain.UNCERTAIN,
		DrugResponse:   "thiopurines (azathioprine, mercaptopurine)",
		Frequency:      0.005,
		Consequence:    "missense_variant",
		RiskAllele:     "C",
		Interpretation: "The TPMT*2 allele abolishes thiopurine methylation; carriers risk severe myelosuppression at standard doses.",
	},
	"rs1800460": {
		GeneName:       "TPMT",
		Significance:   domain.UNCERTAIN,
		DrugResponse:   "thiopurines (azathioprine, mercaptopurine)",
		Frequency:      0.04,
		Consequence:    "missense_variant",
		RiskAllele:     "T",
		Interpretation: "Part of the TPMT*3A haplotype, the most common reduced-activity allele in European populations.",
	},
	"rs1142345": {
		GeneName:       "TPMT",
		Significance:   domain.UNCERTAIN,
		DrugResponse:   "thiopurines (azathioprine, mercaptopurine)",
		Frequency:      0.05,
		Consequence:    "missense_variant",
		RiskAllele:     "C",
		Interpretation: "Part of the TPMT*3A/*3C haplotypes associated with reduced thiopurine methyltransferase activity.",
	},
	"rs3918290": {
		GeneName:       "DPYD",
		Significance:   domain.PATHOGENIC,
		Phenotype:      "Dihydropyrimidine dehydrogenase deficiency",
		DrugResponse:   "fluoropyrimidines (5-FU, capecitabine) - severe toxicity",
		Frequency:      0.005,
		Consequence:    "splice_donor_variant",
		RiskAllele:     "A",
		Interpretation: "The DPYD*2A splice variant abolishes DPD activity; carriers risk life-threatening fluoropyrimidine toxicity.",
	},
	"rs67376798": {
		GeneName:       "DPYD",
		Significance:   domain.LIKELY_PATHOGENIC,
		DrugResponse:   "fluoropyrimidines (dose reduction recommended)",
		Frequency:      0.003,
		Consequence:    "missense_variant",
		RiskAllele:     "A",
		Interpretation: "The D949V variant partially reduces DPD activity; guideline-recommended fluoropyrimidine dose reduction.",
	},
	"rs2395029": {
		GeneName:       "HCP5",
		Significance:   domain.UNCERTAIN,
		DrugResponse:   "abacavir (hypersensitivity reaction)",
		Frequency:      0.03,
		Consequence:    "missense_variant",
		RiskAllele:     "G",
		Interpretation: "Tags the HLA-B*57:01 allele; carriers must not receive abacavir due to hypersensitivity risk.",
	},
	"rs887829": {
		GeneName:       "UGT1A1",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Gilbert syndrome",
		DrugResponse:   "irinotecan (increased toxicity risk)",
		Frequency:      0.31,
		Consequence:    "upstream_gene_variant",
		RiskAllele:     "T",
		Interpretation: "Tags the UGT1A1*28 promoter repeat; TT individuals have reduced bilirubin conjugation and higher irinotecan toxicity risk.",
	},
	"rs776746": {
		GeneName:       "CYP3A5",
		Significance:   domain.UNCERTAIN,
		DrugResponse:   "tacrolimus (dose requirement)",
		Frequency:      0.30,
		Consequence:    "splice_acceptor_variant",
		RiskAllele:     "T",
		Interpretation: "The CYP3A5*1/*3 status determines tacrolimus clearance; expressers need higher doses to reach target levels.",
	},
	"rs2231142": {
		GeneName:       "ABCG2",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Hyperuricemia and gout susceptibility",
		DrugResponse:   "allopurinol (response), rosuvastatin (exposure)",
		Frequency:      0.12,
		Consequence:    "missense_variant",
		RiskAllele:     "T",
		Interpretation: "The Q141K variant reduces urate transport and increases rosuvastatin exposure.",
	},
	"rs762551": {
		GeneName:       "CYP1A2",
		Significance:   domain.UNCERTAIN,
		DrugResponse:   "caffeine (metabolism rate)",
		Frequency:      0.31,
		Consequence:    "intron_variant",
		RiskAllele:     "C",
		Interpretation: "The CYP1A2*1F allele distinguishes fast and slow caffeine metabolizers.",
	},
	"rs1801280": {
		GeneName:       "NAT2",
		Significance:   domain.UNCERTAIN,
		DrugResponse:   "isoniazid, hydralazine (slow acetylation)",
		Frequency:      0.45,
		Consequence:    "missense_variant",
		RiskAllele:     "C",
		Interpretation: "Defines the NAT2*5 slow-acetylator haplotype; slow acetylators have higher isoniazid toxicity risk.",
	},
	"rs12979860": {
		GeneName:       "IFNL4",
		Significance:   domain.UNCERTAIN,
		DrugResponse:   "interferon-based hepatitis C therapy (response)",
		Frequency:      0.35,
		Consequence:    "intron_variant",
		RiskAllele:     "T",
		Interpretation: "The CC genotype predicts favorable response to interferon-based HCV treatment.",
	},
	"rs1805087": {
		GeneName:       "MTR",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Altered methionine synthase activity",
		Frequency:      0.19,
		Consequence:    "missense_variant",
		RiskAllele:     "G",
		Interpretation: "The A2756G variant mildly alters homocysteine remethylation.",
	},

	// Cardiovascular and metabolic risk
	"rs429358": {
		GeneName:       "APOE",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Late-onset Alzheimer disease risk; hyperlipoproteinemia",
		Frequency:      0.15,
		Consequence:    "missense_variant",
		RiskAllele:     "C",
		Interpretation: "Together with rs7412 defines the APOE e4 allele, the strongest common genetic risk factor for late-onset Alzheimer disease.",
	},
	"rs7412": {
		GeneName:       "APOE",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Type III hyperlipoproteinemia (e2/e2)",
		Frequency:      0.08,
		Consequence:    "missense_variant",
		RiskAllele:     "T",
		Interpretation: "Together with rs429358 defines APOE e2; e2/e2 individuals can develop remnant hyperlipidemia.",
	},
	"rs7903146": {
		GeneName:       "TCF7L2",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Type 2 diabetes susceptibility",
		Frequency:      0.30,
		Consequence:    "intron_variant",
		RiskAllele:     "T",
		Interpretation: "The strongest common type 2 diabetes risk variant; each T allele raises odds roughly 1.4-fold.",
	},
	"rs1333049": {
		GeneName:       "CDKN2B-AS1",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Coronary artery disease susceptibility",
		Frequency:      0.47,
		Consequence:    "non_coding_transcript_variant",
		RiskAllele:     "C",
		Interpretation: "9p21.3 locus variant associated with modestly increased coronary artery disease risk.",
	},
	"rs9939609": {
		GeneName:       "FTO",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Obesity susceptibility",
		Frequency:      0.42,
		Consequence:    "intron_variant",
		RiskAllele:     "A",
		Interpretation: "Each A allele is associated with roughly 1.5 kg higher body weight in population studies.",
	},
	"rs662799": {
		GeneName:       "APOA5",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Hypertriglyceridemia susceptibility",
		Frequency:      0.12,
		Consequence:    "upstream_gene_variant",
		RiskAllele:     "G",
		Interpretation: "Promoter variant associated with elevated fasting triglycerides.",
	},
	"rs1051730": {
		GeneName:       "CHRNA3",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Nicotine dependence; smoking quantity",
		Frequency:      0.33,
		Consequence:    "synonymous_variant",
		RiskAllele:     "A",
		Interpretation: "Associated with heavier smoking and higher lung cancer risk among smokers.",
	},

	// Traits and benign markers
	"rs4988235": {
		GeneName:       "MCM6",
		Significance:   domain.BENIGN,
		Phenotype:      "Lactase persistence",
		Frequency:      0.35,
		Consequence:    "regulatory_region_variant",
		RiskAllele:     "G",
		Interpretation: "Regulates LCT expression; GG individuals are likely lactose intolerant as adults.",
	},
	"rs1815739": {
		GeneName:       "ACTN3",
		Significance:   domain.BENIGN,
		Phenotype:      "Muscle fiber composition (sprint performance)",
		Frequency:      0.43,
		Consequence:    "stop_gained",
		RiskAllele:     "T",
		Interpretation: "The R577X null allele is common and benign; weakly associated with endurance versus power athletic phenotypes.",
	},
	"rs17822931": {
		GeneName:       "ABCC11",
		Significance:   domain.BENIGN,
		Phenotype:      "Earwax type and axillary odor",
		Frequency:      0.30,
		Consequence:    "missense_variant",
		RiskAllele:     "T",
		Interpretation: "TT individuals have dry earwax; a benign trait marker.",
	},
	"rs12913832": {
		GeneName:       "HERC2",
		Significance:   domain.BENIGN,
		Phenotype:      "Eye color (blue/brown)",
		Frequency:      0.26,
		Consequence:    "intron_variant",
		RiskAllele:     "G",
		Interpretation: "Regulates OCA2 expression; GG strongly predicts blue eye color in European populations.",
	},
	"rs1805007": {
		GeneName:       "MC1R",
		Significance:   domain.LIKELY_BENIGN,
		Phenotype:      "Red hair, fair skin, UV sensitivity",
		Frequency:      0.07,
		Consequence:    "missense_variant",
		RiskAllele:     "T",
		Interpretation: "The R151C variant contributes to the red hair phenotype and modestly elevated melanoma risk.",
	},
	"rs4680": {
		GeneName:       "COMT",
		Significance:   domain.BENIGN,
		Phenotype:      "Catechol-O-methyltransferase activity (Val158Met)",
		Frequency:      0.48,
		Consequence:    "missense_variant",
		RiskAllele:     "A",
		Interpretation: "The Met allele lowers COMT activity; widely studied in pain sensitivity and cognition with small effect sizes.",
	},
	"rs601338": {
		GeneName:       "FUT2",
		Significance:   domain.BENIGN,
		Phenotype:      "Secretor status; norovirus resistance",
		Frequency:      0.45,
		Consequence:    "stop_gained",
		RiskAllele:     "A",
		Interpretation: "AA non-secretors are resistant to common norovirus strains.",
	},
	"rs2187668": {
		GeneName:       "HLA-DQA1",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Celiac disease susceptibility (HLA-DQ2.5)",
		Frequency:      0.11,
		Consequence:    "intron_variant",
		RiskAllele:     "T",
		Interpretation: "Tags HLA-DQ2.5; carriage is nearly necessary but not sufficient for celiac disease.",
	},
	"rs1800497": {
		GeneName:       "ANKK1",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Dopamine D2 receptor density (Taq1A)",
		Frequency:      0.32,
		Consequence:    "missense_variant",
		RiskAllele:     "T",
		Interpretation: "Historically studied in addiction phenotypes; effects are small and inconsistent.",
	},
	"rs72921001": {
		GeneName:       "OR6A2",
		Significance:   domain.BENIGN,
		Phenotype:      "Cilantro taste perception",
		Frequency:      0.14,
		Consequence:    "upstream_gene_variant",
		RiskAllele:     "C",
		Interpretation: "Associated with perceiving cilantro as soapy; a benign trait marker.",
	},
	"rs671": {
		GeneName:       "ALDH2",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Alcohol flush reaction; esophageal cancer risk with alcohol use",
		DrugResponse:   "nitroglycerin (reduced efficacy)",
		Frequency:      0.08,
		Consequence:    "missense_variant",
		RiskAllele:     "A",
		Interpretation: "The ALDH2*2 allele abolishes acetaldehyde clearance; carriers flush with alcohol and have elevated cancer risk if they drink.",
	},
	"rs1229984": {
		GeneName:       "ADH1B",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Alcohol metabolism rate",
		Frequency:      0.05,
		Consequence:    "missense_variant",
		RiskAllele:     "T",
		Interpretation: "The His48 allele accelerates ethanol oxidation and is protective against alcohol dependence.",
	},
	"rs53576": {
		GeneName:       "OXTR",
		Significance:   domain.BENIGN,
		Phenotype:      "Oxytocin receptor variation",
		Frequency:      0.40,
		Consequence:    "intron_variant",
		RiskAllele:     "A",
		Interpretation: "Widely studied in social behavior research; no established clinical significance.",
	},
	"rs6983267": {
		GeneName:       "CCAT2",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Colorectal and prostate cancer susceptibility",
		Frequency:      0.49,
		Consequence:    "non_coding_transcript_variant",
		RiskAllele:     "G",
		Interpretation: "8q24 locus variant with modest effects on colorectal and prostate cancer risk.",
	},
	"rs1042522": {
		GeneName:       "TP53",
		Significance:   domain.BENIGN,
		Phenotype:      "TP53 Pro72Arg polymorphism",
		Frequency:      0.36,
		Consequence:    "missense_variant",
		RiskAllele:     "C",
		Interpretation: "A common benign polymorphism; despite extensive study, no consistent cancer risk association.",
	},
	"rs1799966": {
		GeneName:       "BRCA1",
		Significance:   domain.BENIGN,
		Phenotype:      "BRCA1 S1613G polymorphism",
		Frequency:      0.33,
		Consequence:    "missense_variant",
		RiskAllele:     "G",
		Interpretation: "A common benign BRCA1 missense variant frequently misread as significant by consumers.",
	},
	"rs16891982": {
		GeneName:       "SLC45A2",
		Significance:   domain.BENIGN,
		Phenotype:      "Skin and hair pigmentation",
		Frequency:      0.26,
		Consequence:    "missense_variant",
		RiskAllele:     "C",
		Interpretation: "Major pigmentation locus differentiating European and non-European populations.",
	},
	"rs2472297": {
		GeneName:       "CYP1A1-CYP1A2",
		Significance:   domain.BENIGN,
		Phenotype:      "Habitual caffeine consumption",
		Frequency:      0.27,
		Consequence:    "intergenic_variant",
		RiskAllele:     "T",
		Interpretation: "Associated with higher habitual coffee intake; benign.",
	},
	"rs1800955": {
		GeneName:       "DRD4",
		Significance:   domain.BENIGN,
		Phenotype:      "Novelty seeking (weak association)",
		Frequency:      0.41,
		Consequence:    "upstream_gene_variant",
		RiskAllele:     "C",
		Interpretation: "Promoter variant with weak, inconsistently replicated behavioral associations.",
	},
	"rs3750344": {
		GeneName:       "NMUR2",
		Significance:   domain.UNCERTAIN,
		Phenotype:      "Body weight regulation (candidate locus)",
		Frequency:      0.09,
		Consequence:    "missense_variant",
		RiskAllele:     "A",
		Interpretation: "Candidate neuromedin U receptor variant; clinical relevance not established.",
	},
}
