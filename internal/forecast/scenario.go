package forecast

// Scenario returns a copy of t with every base forecast scaled by
// multiplier. Only Base changes; the interval and scenario columns carry
// over untouched and t itself is never mutated.
func Scenario(t *Table, multiplier float64) *Table {
	out := &Table{
		Indicator: t.Indicator,
		Points:    make([]Point, len(t.Points)),
	}
	copy(out.Points, t.Points)
	for i := range out.Points {
		out.Points[i].Base *= multiplier
	}
	return out
}
