// Package analysis profiles the unified dataset. Every function is pure:
// results are computed from the table passed in, with no stored state
// and no input mutation.
package analysis

import (
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/addis-insights/inclusion-cli/internal/dataset"
	"github.com/addis-insights/inclusion-cli/internal/model"
)

const dateLayout = "2006-01-02"

// sampleSize is how many distinct indicator codes the profile carries as
// a preview.
const sampleSize = 5

// Analyze profiles tbl: record-type counts, the observation date range,
// indicator cardinality with a sample, and per-column missing-value
// counts. The record_type column must exist; everything else is
// tolerated.
func Analyze(tbl *dataset.Table) (model.AnalysisResult, error) {
	if !tbl.HasColumn(dataset.ColRecordType) {
		return model.AnalysisResult{}, eris.Errorf("analysis: missing required column %q", dataset.ColRecordType)
	}

	res := model.AnalysisResult{
		RecordCounts:     make(map[string]int),
		SampleIndicators: []string{},
		MissingValues:    make(map[string]int),
	}

	// Every row counts under its literal record_type value, including
	// the empty string, so the counts always sum to the row count.
	for i := 0; i < tbl.Len(); i++ {
		v, _ := tbl.Value(i, dataset.ColRecordType)
		res.RecordCounts[v]++
	}

	var minDate, maxDate *time.Time
	malformed := 0
	seen := make(map[string]bool)
	hasDateCol := tbl.HasColumn(dataset.ColObservationDate)

	for i := 0; i < tbl.Len(); i++ {
		rt, _ := tbl.Value(i, dataset.ColRecordType)
		if model.RecordType(rt) != model.RecordTypeObservation {
			continue
		}

		if hasDateCol {
			raw, _ := tbl.Value(i, dataset.ColObservationDate)
			if raw != "" {
				if d := dataset.ParseDate(raw); d != nil {
					if minDate == nil || d.Before(*minDate) {
						minDate = d
					}
					if maxDate == nil || d.After(*maxDate) {
						maxDate = d
					}
				} else {
					malformed++
				}
			}
		}

		// Sample keeps the first distinct codes in row order.
		if code, ok := tbl.Value(i, dataset.ColIndicatorCode); ok && code != "" && !seen[code] {
			seen[code] = true
			if len(res.SampleIndicators) < sampleSize {
				res.SampleIndicators = append(res.SampleIndicators, code)
			}
		}
	}

	if malformed > 0 {
		zap.L().Warn("analysis: skipped malformed observation dates",
			zap.Int("count", malformed))
	}
	if minDate != nil {
		res.ObsDateRange = &model.DateRange{
			Min: minDate.Format(dateLayout),
			Max: maxDate.Format(dateLayout),
		}
	}
	res.UniqueIndicatorsCount = len(seen)

	// A cell is missing when it is empty after trimming or the row is
	// too short to reach it. Only columns with missing cells appear.
	for _, col := range tbl.Columns {
		n := 0
		for i := 0; i < tbl.Len(); i++ {
			if v, ok := tbl.Value(i, col); !ok || v == "" {
				n++
			}
		}
		if n > 0 {
			res.MissingValues[col] = n
		}
	}

	return res, nil
}
