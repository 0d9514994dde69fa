package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_ScalesBaseOnly(t *testing.T) {
	lower := 50.1
	base := &Table{
		Indicator: "ACC_OWNERSHIP",
		Points: []Point{
			{Year: 2025, Base: 52.5, Lower80: &lower},
			{Year: 2026, Base: 55.8},
		},
	}

	opt := Scenario(base, 1.2)

	assert.Equal(t, "ACC_OWNERSHIP", opt.Indicator)
	require.Len(t, opt.Points, 2)
	assert.InDelta(t, 63.0, opt.Points[0].Base, 0.001)
	assert.InDelta(t, 66.96, opt.Points[1].Base, 0.001)

	// Years and the interval columns carry over unscaled.
	assert.Equal(t, 2025, opt.Points[0].Year)
	require.NotNil(t, opt.Points[0].Lower80)
	assert.InDelta(t, 50.1, *opt.Points[0].Lower80, 0.001)
}

func TestScenario_DoesNotMutateInput(t *testing.T) {
	base := &Table{Indicator: "USG_DIGITAL_PAYMENT", Points: []Point{{Year: 2025, Base: 40.2}}}

	_ = Scenario(base, 0.8)

	assert.InDelta(t, 40.2, base.Points[0].Base, 0.001)
}

func TestScenario_EmptyTable(t *testing.T) {
	out := Scenario(&Table{Indicator: "ACC_OWNERSHIP"}, 1.2)
	assert.Empty(t, out.Points)
}
