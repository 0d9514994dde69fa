package dataset

import (
	"github.com/addis-insights/inclusion-cli/internal/model"
)

// DecodeRecords maps table rows into tagged records. Rows with an
// unknown record_type yield a record with only Type set.
func DecodeRecords(tbl *Table) []model.UnifiedRecord {
	records := make([]model.UnifiedRecord, 0, tbl.Len())
	for i := 0; i < tbl.Len(); i++ {
		get := func(col string) string {
			v, _ := tbl.Value(i, col)
			return v
		}

		rt := model.RecordType(get(ColRecordType))
		rec := model.UnifiedRecord{Type: rt}
		switch rt {
		case model.RecordTypeObservation:
			rec.Observation = &model.Observation{
				RecordID:        get(ColRecordID),
				Pillar:          get(ColPillar),
				Indicator:       get(ColIndicator),
				IndicatorCode:   get(ColIndicatorCode),
				ValueNumeric:    ParseFloat(get(ColValueNumeric)),
				ObservationDate: ParseDate(get(ColObservationDate)),
				SourceName:      get(ColSourceName),
				SourceURL:       get(ColSourceURL),
				SourceType:      get(ColSourceType),
				Confidence:      get(ColConfidence),
				Notes:           get(ColNotes),
				CollectedBy:     get(ColCollectedBy),
				CollectionDate:  ParseDate(get(ColCollectionDate)),
			}
		case model.RecordTypeEvent:
			rec.Event = &model.Event{
				RecordID:    get(ColRecordID),
				Name:        get(ColEventName),
				Category:    get(ColEventCategory),
				Date:        ParseDate(get(ColEventDate)),
				Description: get(ColDescription),
				SourceName:  get(ColSourceName),
				SourceURL:   get(ColSourceURL),
				Confidence:  get(ColConfidence),
				Notes:       get(ColNotes),
			}
		case model.RecordTypeImpactLink:
			rec.ImpactLink = &model.ImpactLink{
				RecordID:         get(ColRecordID),
				ParentID:         get(ColParentID),
				Pillar:           get(ColPillar),
				RelatedIndicator: get(ColRelatedIndicator),
				Direction:        model.ImpactDirection(get(ColImpactDirection)),
				Magnitude:        ParseFloat(get(ColImpactMagnitude)),
				LagMonths:        ParseInt(get(ColLagMonths)),
				EvidenceBasis:    get(ColEvidenceBasis),
				Notes:            get(ColNotes),
			}
		}
		records = append(records, rec)
	}
	return records
}

// Observations returns the decoded observation rows only, in row order.
func Observations(tbl *Table) []model.Observation {
	var obs []model.Observation
	for _, rec := range DecodeRecords(tbl) {
		if rec.Observation != nil {
			obs = append(obs, *rec.Observation)
		}
	}
	return obs
}
