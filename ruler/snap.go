package ruler

import "math"

// SnapContentOffset resolves a raw scroll target (e.g. the projected end
// of a fling) to the nearest tick-aligned offset for a viewport of the
// given width. The settled position always lands exactly on a tick
// boundary regardless of fling velocity, and already-snapped offsets are
// fixed points.
func (c Config) SnapContentOffset(target, viewportWidth float64) float64 {
	center := target + viewportWidth/2
	idx := math.Round(center / c.TickSpacing)
	if idx < 0 {
		idx = 0
	}
	if last := float64(c.TickCount() - 1); idx > last {
		idx = last
	}
	return idx*c.TickSpacing - viewportWidth/2
}
