package dataset

// Column names of the unified dataset.
const (
	ColRecordID         = "record_id"
	ColRecordType       = "record_type"
	ColPillar           = "pillar"
	ColIndicator        = "indicator"
	ColIndicatorCode    = "indicator_code"
	ColValueNumeric     = "value_numeric"
	ColObservationDate  = "observation_date"
	ColSourceName       = "source_name"
	ColSourceURL        = "source_url"
	ColSourceType       = "source_type"
	ColConfidence       = "confidence"
	ColNotes            = "notes"
	ColCollectedBy      = "collected_by"
	ColCollectionDate   = "collection_date"
	ColEventName        = "event_name"
	ColEventCategory    = "event_category"
	ColEventDate        = "event_date"
	ColDescription      = "description"
	ColParentID         = "parent_id"
	ColRelatedIndicator = "related_indicator"
	ColImpactDirection  = "impact_direction"
	ColImpactMagnitude  = "impact_magnitude"
	ColLagMonths        = "lag_months"
	ColEvidenceBasis    = "evidence_basis"
)

// UnifiedColumns is the canonical column order for the unified schema.
// Merge uses it so newly added columns land in a stable order.
var UnifiedColumns = []string{
	ColRecordID,
	ColRecordType,
	ColPillar,
	ColIndicator,
	ColIndicatorCode,
	ColValueNumeric,
	ColObservationDate,
	ColSourceName,
	ColSourceURL,
	ColSourceType,
	ColConfidence,
	ColNotes,
	ColCollectedBy,
	ColCollectionDate,
	ColEventName,
	ColEventCategory,
	ColEventDate,
	ColDescription,
	ColParentID,
	ColRelatedIndicator,
	ColImpactDirection,
	ColImpactMagnitude,
	ColLagMonths,
	ColEvidenceBasis,
}
