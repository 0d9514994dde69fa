package model

// NewRecordCounts tallies records added by an enrichment merge. The zero
// value means no new records in any category.
type NewRecordCounts struct {
	Observations int
	Events       int
	ImpactLinks  int
}

// EnrichmentSummary is the wire form of NewRecordCounts.
type EnrichmentSummary struct {
	NewObservations int `json:"new_observations"`
	NewEvents       int `json:"new_events"`
	NewImpactLinks  int `json:"new_impact_links"`
}

// EnrichmentReport is the persisted enrichment report. The two trailing
// lists are reserved for future population and always serialize as [].
type EnrichmentReport struct {
	GeneratedDate     string            `json:"generated_date"`
	DatasetAnalysis   AnalysisResult    `json:"dataset_analysis"`
	EnrichmentSummary EnrichmentSummary `json:"enrichment_summary"`
	DataQualityIssues []string          `json:"data_quality_issues"`
	Recommendations   []string          `json:"recommendations"`
}
