package input

import (
	"time"

	"github.com/fennwick/vernier/parameter"
)

const maxVelocitySamples = 8

type velocitySample struct {
	x int
	t time.Time
}

// VelocityTracker estimates pointer velocity from recent drag samples.
// Only samples inside parameter.VelocityWindow of the newest one count,
// so a drag that pauses before release flings with zero velocity.
type VelocityTracker struct {
	samples [maxVelocitySamples]velocitySample
	head    int
	count   int
}

// Reset drops all samples; called at drag begin
func (v *VelocityTracker) Reset() {
	v.head = 0
	v.count = 0
}

// Add records one pointer position
func (v *VelocityTracker) Add(x int, t time.Time) {
	v.samples[v.head] = velocitySample{x: x, t: t}
	v.head = (v.head + 1) % maxVelocitySamples
	if v.count < maxVelocitySamples {
		v.count++
	}
}

// Estimate returns the pointer velocity in px/s over the recent window,
// zero when fewer than two usable samples exist
func (v *VelocityTracker) Estimate() float64 {
	if v.count < 2 {
		return 0
	}

	newest := v.samples[(v.head+maxVelocitySamples-1)%maxVelocitySamples]
	cutoff := newest.t.Add(-parameter.VelocityWindow)

	// Oldest sample still inside the window
	oldest := newest
	for i := 1; i < v.count; i++ {
		s := v.samples[(v.head+maxVelocitySamples-1-i)%maxVelocitySamples]
		if s.t.Before(cutoff) {
			break
		}
		oldest = s
	}

	dt := newest.t.Sub(oldest.t).Seconds()
	if dt <= 0 {
		return 0
	}
	return float64(newest.x-oldest.x) / dt
}
