// Package enrich validates and merges enrichment batches into the
// unified dataset.
package enrich

import (
	"github.com/addis-insights/inclusion-cli/internal/dataset"
	"github.com/addis-insights/inclusion-cli/internal/model"
)

// FieldSpec lists the required and optional columns for one record
// category.
type FieldSpec struct {
	Required []string `json:"required"`
	Optional []string `json:"optional"`
}

// Template returns the enrichment field template: which columns each
// record category must and may carry. The map and its slices are freshly
// allocated on every call so callers cannot corrupt the template.
func Template() map[model.RecordType]FieldSpec {
	return map[model.RecordType]FieldSpec{
		model.RecordTypeObservation: {
			Required: []string{
				dataset.ColPillar,
				dataset.ColIndicator,
				dataset.ColIndicatorCode,
				dataset.ColValueNumeric,
				dataset.ColObservationDate,
				dataset.ColSourceName,
				dataset.ColSourceURL,
			},
			Optional: []string{
				dataset.ColSourceType,
				dataset.ColConfidence,
				dataset.ColNotes,
				dataset.ColCollectedBy,
				dataset.ColCollectionDate,
			},
		},
		model.RecordTypeEvent: {
			Required: []string{
				dataset.ColEventName,
				dataset.ColEventCategory,
				dataset.ColEventDate,
				dataset.ColDescription,
			},
			Optional: []string{
				dataset.ColSourceName,
				dataset.ColSourceURL,
				dataset.ColConfidence,
				dataset.ColNotes,
			},
		},
		model.RecordTypeImpactLink: {
			Required: []string{
				dataset.ColParentID,
				dataset.ColPillar,
				dataset.ColRelatedIndicator,
				dataset.ColImpactDirection,
			},
			Optional: []string{
				dataset.ColImpactMagnitude,
				dataset.ColLagMonths,
				dataset.ColEvidenceBasis,
				dataset.ColNotes,
			},
		},
	}
}
