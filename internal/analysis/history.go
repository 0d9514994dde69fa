package analysis

import (
	"sort"

	"github.com/addis-insights/inclusion-cli/internal/dataset"
	"github.com/addis-insights/inclusion-cli/internal/model"
)

// History returns dated observations filtered by indicator code and year
// range, sorted by date then code. An empty codes slice matches every
// code; a zero year bound is open. Observations without a parseable date
// are excluded.
func History(tbl *dataset.Table, codes []string, fromYear, toYear int) []model.Observation {
	want := make(map[string]bool, len(codes))
	for _, c := range codes {
		if c != "" {
			want[c] = true
		}
	}

	var out []model.Observation
	for _, obs := range dataset.Observations(tbl) {
		if obs.ObservationDate == nil {
			continue
		}
		if len(want) > 0 && !want[obs.IndicatorCode] {
			continue
		}
		year := obs.ObservationDate.Year()
		if fromYear > 0 && year < fromYear {
			continue
		}
		if toYear > 0 && year > toYear {
			continue
		}
		out = append(out, obs)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ObservationDate.Equal(*out[j].ObservationDate) {
			return out[i].ObservationDate.Before(*out[j].ObservationDate)
		}
		return out[i].IndicatorCode < out[j].IndicatorCode
	})
	return out
}
