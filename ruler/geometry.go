package ruler

import "math"

// tickEpsilon guards floor/ratio math against binary rounding when the
// domain span is an exact multiple of the increment
const tickEpsilon = 1e-9

// TickCount returns the number of selectable ticks across the domain
func (c Config) TickCount() int {
	return int(math.Floor((c.MaxValue-c.MinValue)/c.MinorIncrement+tickEpsilon)) + 1
}

// MinorTicksPerMajor returns how many minor ticks span one major interval
func (c Config) MinorTicksPerMajor() int {
	n := int(math.Floor(c.MajorIncrement/c.MinorIncrement + tickEpsilon))
	if n < 1 {
		n = 1
	}
	return n
}

// ContentWidth returns the pixel width of the full content track
func (c Config) ContentWidth() float64 {
	return float64(c.TickCount()) * c.TickSpacing
}

// TickValue returns the value at a tick index; index is not range-checked
func (c Config) TickValue(index int) float64 {
	return c.MinValue + float64(index)*c.MinorIncrement
}

// IsMajorTick reports whether the tick at index carries a label
func (c Config) IsMajorTick(index int) bool {
	return index%c.MinorTicksPerMajor() == 0
}

// ClampAndRound is the single normalization point every value passing
// through the system goes through: clamp into [MinValue, MaxValue], then
// round to the nearest multiple of MinorIncrement measured from MinValue.
// Exact half-increment values round away from zero (math.Round). The
// result never exceeds the last tick even when the domain span is not a
// whole multiple of the increment.
func (c Config) ClampAndRound(v float64) float64 {
	if v <= c.MinValue {
		return c.MinValue
	}
	if v > c.MaxValue {
		v = c.MaxValue
	}
	steps := math.Round((v - c.MinValue) / c.MinorIncrement)
	if last := float64(c.TickCount() - 1); steps > last {
		steps = last
	}
	return c.MinValue + steps*c.MinorIncrement
}

// ContentX maps a value onto its pixel offset along the content track.
// Pure and monotonic; the input is not normalized.
func (c Config) ContentX(v float64) float64 {
	return (v - c.MinValue) / c.MinorIncrement * c.TickSpacing
}

// ValueAtContentX inverts ContentX, composed with ClampAndRound so any
// x, including out-of-range ones, yields a legal tick value
func (c Config) ValueAtContentX(x float64) float64 {
	return c.ClampAndRound(c.MinValue + x/c.TickSpacing*c.MinorIncrement)
}
