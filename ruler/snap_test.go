package ruler

import (
	"math"
	"testing"
)

func TestSnapLandsOnTicks(t *testing.T) {
	c := MustConfig(0, 100, 1, 10)
	const viewport = 300.0

	tests := []struct {
		name   string
		target float64
		want   float64 // resulting value at viewport center
	}{
		{"Mid-tick rounds down", c.ContentX(53.2) - viewport/2, 53},
		{"Mid-tick rounds up", c.ContentX(53.7) - viewport/2, 54},
		{"Already aligned", c.ContentX(70) - viewport/2, 70},
		{"Overshoot left", -1e6, 0},
		{"Overshoot right", 1e6, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapped := c.SnapContentOffset(tt.target, viewport)
			got := c.ValueAtContentX(snapped + viewport/2)
			if got != tt.want {
				t.Errorf("Expected settled value %v, got %v", tt.want, got)
			}

			// Settled center must sit exactly on a tick pixel
			center := snapped + viewport/2
			if rem := math.Mod(center, c.TickSpacing); math.Abs(rem) > 1e-9 && math.Abs(rem-c.TickSpacing) > 1e-9 {
				t.Errorf("Expected tick-aligned center, got remainder %v", rem)
			}
		})
	}
}

func TestSnapIdempotent(t *testing.T) {
	c := MustConfig(30, 200, 0.5, 5)
	const viewport = 120.0

	for _, target := range []float64{-500, -3.2, 0, 17.9, 300.4, 2041.0, 1e5} {
		once := c.SnapContentOffset(target, viewport)
		twice := c.SnapContentOffset(once, viewport)
		if once != twice {
			t.Errorf("Expected snap to be idempotent at %v: %v != %v", target, once, twice)
		}
	}
}
