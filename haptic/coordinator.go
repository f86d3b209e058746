// Package haptic turns the ruler's value-changed stream into discrete
// feedback pulses, debounced so a pulse fires at most once per genuine
// tick crossing.
package haptic

import (
	"math"

	"github.com/fennwick/vernier/parameter"
	"github.com/fennwick/vernier/ruler"
)

// Pulser is the feedback device collaborator. Fire-and-forget:
// implementations must never block the caller.
type Pulser interface {
	Pulse()
}

// NoopPulser discards pulses
type NoopPulser struct{}

func (NoopPulser) Pulse() {}

// Coordinator decides when a pulse fires. The hysteresis band of
// 0.9 * MinorIncrement prevents double-firing from floating-point jitter
// around a tick boundary while still firing once per crossing.
type Coordinator struct {
	pulser    Pulser
	threshold float64
	enabled   bool

	// lastFired is the value at the most recent pulse; the first observed
	// value primes it without firing
	lastFired float64
	primed    bool
}

// New creates a coordinator for the config's haptic style.
// A nil pulser or a None style disables firing entirely.
func New(cfg ruler.Config, p Pulser) *Coordinator {
	return &Coordinator{
		pulser:    p,
		threshold: parameter.HapticHysteresis * cfg.MinorIncrement,
		enabled:   p != nil && cfg.Haptic.Kind != ruler.HapticNone,
	}
}

// ValueChanged consumes one normalized value-changed event
func (c *Coordinator) ValueChanged(v float64) {
	if !c.enabled {
		return
	}
	if !c.primed {
		c.lastFired = v
		c.primed = true
		return
	}
	if math.Abs(v-c.lastFired) >= c.threshold {
		c.pulser.Pulse()
		c.lastFired = v
	}
}
