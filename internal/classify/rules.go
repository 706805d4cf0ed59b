package classify

// Specific category names, in canonical output order.
const (
	CategoryClinicalSignificance    = "clinical_significance"
	CategoryCancer                  = "cancer"
	CategoryPopulationFrequency     = "population_frequency"
	CategoryVariantEffectPrediction = "variant_effect_prediction"
	CategoryPharmacogenomics        = "pharmacogenomics"
	CategoryMendelianDisease        = "mendelian_disease"
	CategorySplicing                = "splicing"
	CategoryRegulatory              = "regulatory"
	CategoryConservation            = "conservation"
	CategoryPathways                = "pathways"
	CategoryProteinFunction         = "protein_function"
)

// DefaultRules returns the built-in category rule table.
//
// The rules intentionally overlap: omim modules land in both
// clinical_significance and mendelian_disease, cosmic in both cancer and
// (via tags) elsewhere. Keep the overlaps; categories are browsing aids,
// not a partition.
//
// clinical_significance is the one two-stage rule: a clinical tag alone is
// too broad (nearly every disease annotator carries one), so membership
// additionally requires a recognized clinical database marker in the name.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category:         CategoryClinicalSignificance,
			TagKeywords:      []string{"clinical_relevance", "mendelian_disease", "variants"},
			NameKeywords:     []string{"clinvar", "omim", "acmg"},
			RequireNameMatch: true,
		},
		{
			Category:     CategoryCancer,
			TagKeywords:  []string{"cancer"},
			NameKeywords: []string{"cosmic", "oncokb"},
		},
		{
			Category:     CategoryPopulationFrequency,
			TagKeywords:  []string{"allele_frequency"},
			NameKeywords: []string{"gnomad", "exac", "esp", "1000g", "thousandgenomes"},
		},
		{
			Category:     CategoryVariantEffectPrediction,
			TagKeywords:  []string{"variant_effect_prediction"},
			NameKeywords: []string{"sift", "polyphen", "cadd", "revel", "vest", "chasm", "alpha"},
		},
		{
			Category:     CategoryPharmacogenomics,
			TagKeywords:  []string{"drugs"},
			NameKeywords: []string{"pharmgkb", "dgi"},
		},
		{
			Category:     CategoryMendelianDisease,
			TagKeywords:  []string{"mendelian_disease"},
			NameKeywords: []string{"omim", "hpo"},
		},
		{
			Category:     CategorySplicing,
			NameKeywords: []string{"splice", "dbscsnv"},
		},
		{
			Category:     CategoryRegulatory,
			TagKeywords:  []string{"regulation", "regulatory"},
			NameKeywords: []string{"encode", "regulome", "enhancer"},
		},
		{
			Category:     CategoryConservation,
			NameKeywords: []string{"gerp", "phylop", "phastcons", "siphy"},
		},
		{
			Category:     CategoryPathways,
			TagKeywords:  []string{"pathways"},
			NameKeywords: []string{"kegg", "reactome", "biogrid", "intact"},
		},
		{
			Category:     CategoryProteinFunction,
			NameKeywords: []string{"uniprot", "pfam", "interpro", "swissprot"},
		},
	}
}
