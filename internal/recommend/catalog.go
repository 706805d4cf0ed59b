package recommend

// DefaultCatalog returns the built-in recommendation catalog.
//
// Lists may reference annotators that are not installed; that is fine, the
// catalog is maintained against the public OpenCRAVAT store, not the local
// modules directory.
func DefaultCatalog() Catalog {
	return Catalog{
		Phenotypes: Group{
			Labels: []string{
				"cancer",
				"cardiovascular",
				"hereditary_cancer",
				"rare_disease",
				"pharmacogenomics",
				"autism",
				"developmental_delay",
			},
			Entries: map[string]Entry{
				"cancer": {
					Description: "Cancer-related analysis",
					RecommendedAnnotators: []string{
						"clinvar",
						"cosmic",
						"cancer_genome_interpreter",
						"cancer_hotspots",
						"civic",
						"oncokb",
						"chasmplus",
						"gnomad",
						"alphamissense",
						"revel",
					},
				},
				"cardiovascular": {
					Description: "Cardiovascular disease analysis",
					RecommendedAnnotators: []string{
						"clinvar",
						"cardioboost",
						"cvdkp",
						"gnomad",
						"alphamissense",
						"sift",
						"polyphen2",
					},
				},
				"hereditary_cancer": {
					Description: "Hereditary cancer predisposition",
					RecommendedAnnotators: []string{
						"clinvar",
						"brca1_func_assay",
						"cgc",
						"cosmic",
						"gnomad",
						"alphamissense",
						"revel",
					},
				},
				"rare_disease": {
					Description: "Rare Mendelian disease",
					RecommendedAnnotators: []string{
						"clinvar",
						"clinvar_acmg",
						"omim",
						"hpo",
						"gnomad",
						"alphamissense",
						"cadd",
						"sift",
						"polyphen2",
						"spliceai",
					},
				},
				"pharmacogenomics": {
					Description: "Drug response prediction",
					RecommendedAnnotators: []string{
						"pharmgkb",
						"dgi",
						"clinvar",
						"gnomad",
					},
				},
				"autism": {
					Description: "Autism spectrum disorder",
					RecommendedAnnotators: []string{
						"clinvar",
						"omim",
						"hpo",
						"gnomad",
						"denovo",
						"alphamissense",
						"cadd",
					},
				},
				"developmental_delay": {
					Description: "Developmental delay and intellectual disability",
					RecommendedAnnotators: []string{
						"clinvar",
						"omim",
						"hpo",
						"gnomad",
						"denovo",
						"alphamissense",
						"spliceai",
					},
				},
			},
		},
		AnalysisTypes: Group{
			Labels: []string{
				"rare_coding",
				"splicing",
				"regulatory",
				"de_novo",
			},
			Entries: map[string]Entry{
				"rare_coding": {
					Description: "Rare coding variant analysis",
					RecommendedAnnotators: []string{
						"clinvar",
						"gnomad",
						"alphamissense",
						"revel",
						"cadd",
						"sift",
						"polyphen2",
						"vest",
					},
				},
				"splicing": {
					Description: "Splicing variant analysis",
					RecommendedAnnotators: []string{
						"clinvar",
						"spliceai",
						"dbscsnv",
						"gnomad",
					},
				},
				"regulatory": {
					Description: "Regulatory variant analysis",
					RecommendedAnnotators: []string{
						"encode_tfbs",
						"ensembl_regulatory_build",
						"regulomedb",
						"vista_enhancer",
						"gnomad",
					},
				},
				"de_novo": {
					Description: "De novo variant analysis",
					RecommendedAnnotators: []string{
						"clinvar",
						"denovo",
						"gnomad",
						"alphamissense",
						"cadd",
					},
				},
			},
		},
	}
}
