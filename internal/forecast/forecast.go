// Package forecast loads the per-indicator forecast tables produced by
// the upstream forecasting pipeline and derives growth metrics and
// scenario projections from them.
package forecast

import (
	"github.com/rotisserie/eris"

	"github.com/addis-insights/inclusion-cli/internal/dataset"
)

// Column names of a forecast table CSV. Year and the base forecast are
// required; the rest are carried through when present.
const (
	ColYear        = "Year"
	ColBase        = "Base Forecast (%)"
	ColLower80     = "80% CI Lower (%)"
	ColUpper80     = "80% CI Upper (%)"
	ColOptimistic  = "Optimistic Scenario (%)"
	ColPessimistic = "Pessimistic Scenario (%)"
)

// Point is one forecast year. Nil pointer fields mean the source table
// did not carry that column or the cell was empty.
type Point struct {
	Year        int
	Base        float64
	Lower80     *float64
	Upper80     *float64
	Optimistic  *float64
	Pessimistic *float64
}

// Table is the forecast for one indicator, in file order.
type Table struct {
	Indicator string
	Points    []Point
}

// Load reads the forecast table for indicator from path. A missing or
// empty file is an explicit "no forecast data" error; there is no
// substitute dataset. Year and the base forecast must parse in every
// row, the optional scenario and interval columns are lenient.
func Load(path, indicator string) (*Table, error) {
	tbl, err := dataset.Load(path, dataset.Options{})
	if err != nil {
		return nil, eris.Wrapf(err, "forecast: no forecast data for %s", indicator)
	}
	for _, col := range []string{ColYear, ColBase} {
		if !tbl.HasColumn(col) {
			return nil, eris.Errorf("forecast: %s missing required column %q", path, col)
		}
	}
	if tbl.Len() == 0 {
		return nil, eris.Errorf("forecast: no forecast data for %s in %s", indicator, path)
	}

	out := &Table{Indicator: indicator, Points: make([]Point, 0, tbl.Len())}
	for i := 0; i < tbl.Len(); i++ {
		rawYear, _ := tbl.Value(i, ColYear)
		year := dataset.ParseInt(rawYear)
		if year == nil {
			return nil, eris.Errorf("forecast: %s row %d: bad year %q", path, i+1, rawYear)
		}
		rawBase, _ := tbl.Value(i, ColBase)
		base := dataset.ParseFloat(rawBase)
		if base == nil {
			return nil, eris.Errorf("forecast: %s row %d: bad base forecast %q", path, i+1, rawBase)
		}

		opt := func(col string) *float64 {
			v, _ := tbl.Value(i, col)
			return dataset.ParseFloat(v)
		}
		out.Points = append(out.Points, Point{
			Year:        *year,
			Base:        *base,
			Lower80:     opt(ColLower80),
			Upper80:     opt(ColUpper80),
			Optimistic:  opt(ColOptimistic),
			Pessimistic: opt(ColPessimistic),
		})
	}
	return out, nil
}
