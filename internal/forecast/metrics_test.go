package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points(bases ...float64) []Point {
	pts := make([]Point, len(bases))
	for i, b := range bases {
		pts[i] = Point{Year: 2025 + i, Base: b}
	}
	return pts
}

func TestGrowth(t *testing.T) {
	m, err := Growth(30, points(35, 40, 48))
	require.NoError(t, err)

	assert.InDelta(t, 18.0, m.TotalGrowthPP, 0.001)
	assert.InDelta(t, 6.0, m.AnnualGrowthPP, 0.001)
	assert.InDelta(t, 16.96, m.CAGRPercent, 0.01)
	require.NotNil(t, m.DoublingTimeYears)
	assert.InDelta(t, 4.245, *m.DoublingTimeYears, 0.01)
}

func TestGrowth_SinglePoint(t *testing.T) {
	m, err := Growth(40, points(50))
	require.NoError(t, err)

	assert.InDelta(t, 10.0, m.TotalGrowthPP, 0.001)
	assert.InDelta(t, 10.0, m.AnnualGrowthPP, 0.001)
	assert.InDelta(t, 25.0, m.CAGRPercent, 0.001)
}

func TestGrowth_DecliningForecast(t *testing.T) {
	// Negative CAGR: growth is negative and the doubling time is absent
	// rather than a negative number of years.
	m, err := Growth(50, points(48, 45, 40))
	require.NoError(t, err)

	assert.InDelta(t, -10.0, m.TotalGrowthPP, 0.001)
	assert.Less(t, m.CAGRPercent, 0.0)
	assert.Nil(t, m.DoublingTimeYears)
}

func TestGrowth_FlatForecast(t *testing.T) {
	m, err := Growth(50, points(50, 50))
	require.NoError(t, err)

	assert.Zero(t, m.TotalGrowthPP)
	assert.InDelta(t, 0.0, m.CAGRPercent, 0.0001)
	assert.Nil(t, m.DoublingTimeYears)
}

func TestGrowth_NoPoints(t *testing.T) {
	_, err := Growth(30, nil)
	assert.Error(t, err)
}

func TestGrowth_NonPositiveCurrent(t *testing.T) {
	_, err := Growth(0, points(35, 40))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "current value")

	_, err = Growth(-5, points(35, 40))
	assert.Error(t, err)
}

func TestGrowth_NonPositiveFinalForecast(t *testing.T) {
	_, err := Growth(30, points(20, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "final forecast")
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "46.5%", FormatPercent(46.52, 1))
	assert.Equal(t, "47%", FormatPercent(46.52, 0))
	assert.Equal(t, "46.52%", FormatPercent(46.52, 2))
	assert.Equal(t, "-3.1%", FormatPercent(-3.14, 1))
}
