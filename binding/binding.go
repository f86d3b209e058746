// Package binding reconciles an external value store with a ruler
// engine without feedback loops: an explicit push/notify pair plus an
// "is the user driving" guard, instead of implicit property observation.
package binding

import (
	"math"

	"github.com/fennwick/vernier/engine"
)

// Binding keeps one external value and one engine in sync.
//
// Reconciliation rules:
//   - external pushes are suppressed while the engine reports an active
//     interaction (the gesture owns the position)
//   - pushes within one MinorIncrement of the engine value are dropped,
//     so notification echoes and micro-jitter cannot fight
//   - engine value changes flow outward unconditionally
type Binding struct {
	eng      *engine.Engine
	onChange func(float64)

	// forwarding guards against a listener pushing back into the engine
	// from inside its own notification
	forwarding bool
}

// New attaches a binding to the engine's value-changed stream
func New(eng *engine.Engine) *Binding {
	b := &Binding{eng: eng}
	eng.OnValueChanged(b.valueChanged)
	return b
}

// OnExternalChange registers the outward notification to the external
// store; called with every normalized engine value change
func (b *Binding) OnExternalChange(fn func(float64)) {
	b.onChange = fn
}

// Push offers an external value to the engine. Returns true when the
// value was forwarded, false when a reconciliation rule suppressed it.
func (b *Binding) Push(v float64) bool {
	if b.forwarding {
		return false
	}
	if b.eng.Interacting() {
		return false
	}
	if math.Abs(v-b.eng.Value()) <= b.eng.Config().MinorIncrement {
		return false
	}
	b.eng.SetValue(v, true)
	return true
}

func (b *Binding) valueChanged(v float64) {
	if b.onChange == nil {
		return
	}
	b.forwarding = true
	b.onChange(v)
	b.forwarding = false
}
