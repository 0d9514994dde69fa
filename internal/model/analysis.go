package model

// DateRange bounds the parseable observation dates in a dataset, formatted
// as YYYY-MM-DD.
type DateRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// AnalysisResult is the profile of one unified dataset. The JSON field
// names are part of the report wire format consumed by the dashboard.
type AnalysisResult struct {
	RecordCounts          map[string]int `json:"record_counts"`
	ObsDateRange          *DateRange     `json:"obs_date_range,omitempty"`
	UniqueIndicatorsCount int            `json:"unique_indicators_count"`
	SampleIndicators      []string       `json:"sample_indicators"`
	MissingValues         map[string]int `json:"missing_values"`
}
