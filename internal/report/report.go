// Package report builds and persists the enrichment report.
package report

import (
	"time"

	"github.com/addis-insights/inclusion-cli/internal/model"
)

// Build assembles a report from a dataset analysis and the counts of
// newly merged records. The timestamp comes from the package clock;
// everything else is determined by the inputs. A zero-value counts means
// every summary field is zero.
func Build(analysis model.AnalysisResult, counts model.NewRecordCounts) model.EnrichmentReport {
	return model.EnrichmentReport{
		GeneratedDate:   clock.Now().Format(time.RFC3339),
		DatasetAnalysis: analysis,
		EnrichmentSummary: model.EnrichmentSummary{
			NewObservations: counts.Observations,
			NewEvents:       counts.Events,
			NewImpactLinks:  counts.ImpactLinks,
		},
		DataQualityIssues: []string{},
		Recommendations:   []string{},
	}
}
