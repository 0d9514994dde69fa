package forecast

import (
	"fmt"
	"math"

	"github.com/rotisserie/eris"
)

// GrowthMetrics summarizes how an indicator moves from its current value
// across the forecast horizon. Growth is in percentage points; CAGR and
// the rule-of-72 doubling time treat the values as a level series.
type GrowthMetrics struct {
	TotalGrowthPP     float64  `json:"total_growth_pp"`
	AnnualGrowthPP    float64  `json:"annual_growth_pp"`
	CAGRPercent       float64  `json:"cagr_percent"`
	DoublingTimeYears *float64 `json:"doubling_time,omitempty"` // nil when CAGR <= 0
}

// Growth computes metrics for moving from current to the last base
// forecast over len(points) years. Inputs that would produce NaN or an
// infinity are errors: at least one point is required and both current
// and the final forecast must be positive.
func Growth(current float64, points []Point) (GrowthMetrics, error) {
	if len(points) == 0 {
		return GrowthMetrics{}, eris.New("forecast: no forecast points")
	}
	if current <= 0 {
		return GrowthMetrics{}, eris.Errorf("forecast: current value must be positive, got %g", current)
	}
	last := points[len(points)-1].Base
	if last <= 0 {
		return GrowthMetrics{}, eris.Errorf("forecast: final forecast must be positive, got %g", last)
	}

	years := float64(len(points))
	total := last - current
	cagr := (math.Pow(last/current, 1/years) - 1) * 100

	m := GrowthMetrics{
		TotalGrowthPP:  total,
		AnnualGrowthPP: total / years,
		CAGRPercent:    cagr,
	}
	if cagr > 0 {
		d := 72 / cagr
		m.DoublingTimeYears = &d
	}
	return m, nil
}

// FormatPercent renders v as a percentage string with the given number
// of decimals, e.g. FormatPercent(46.52, 1) == "46.5%".
func FormatPercent(v float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, v)
}
