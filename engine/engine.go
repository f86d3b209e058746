// Package engine owns the interaction state of one visible ruler: the
// live scroll position, the selected value derived from it, and the
// mediation between external set-value commands and user-driven scroll.
//
// All operations run single-threaded on the UI event loop. Value-changed
// notifications are delivered strictly in the order the underlying scroll
// positions were observed.
package engine

import (
	"github.com/fennwick/vernier/ruler"
)

// State is the engine interaction phase
type State int

const (
	// StateUninitialized means the viewport width is not yet known;
	// set-value commands are queued until layout resolves
	StateUninitialized State = iota

	// StateIdle means settled with no gesture in progress
	StateIdle

	// StateInteracting means a drag or its deceleration is in progress;
	// external set-value commands are dropped so they cannot fight the
	// live gesture
	StateInteracting
)

// ScrollHost is the platform scroll mechanism the engine drives.
// ScrollTo requests a move of the visual track; an animated request is
// expected to feed intermediate offsets back through HandleScroll.
// CancelScroll aborts any in-flight animated move.
type ScrollHost interface {
	ScrollTo(offset float64, animated bool)
	CancelScroll()
}

// ValueFunc receives normalized selected values as the ruler moves
type ValueFunc func(value float64)

// Engine is the interaction core of one ruler instance
type Engine struct {
	cfg  ruler.Config
	host ScrollHost

	state State

	// scrollOffset is the content-space x of the viewport's left edge;
	// the selected value sits at scrollOffset + viewportWidth/2
	scrollOffset  float64
	viewportWidth float64

	// Set-value received before layout; replayed without animation once
	// the viewport resolves
	pendingValue float64
	hasPending   bool

	listeners    []ValueFunc
	lastNotified float64
	notified     bool
}

// New creates an engine for the given config
func New(cfg ruler.Config) *Engine {
	return &Engine{cfg: cfg, state: StateUninitialized}
}

// Config returns the immutable ruler config
func (e *Engine) Config() ruler.Config {
	return e.cfg
}

// SetHost attaches the platform scroll mechanism
func (e *Engine) SetHost(h ScrollHost) {
	e.host = h
}

// OnValueChanged registers a listener for normalized value changes.
// Listeners are invoked in registration order, never coalesced.
func (e *Engine) OnValueChanged(fn ValueFunc) {
	e.listeners = append(e.listeners, fn)
}

// State returns the current interaction phase
func (e *Engine) State() State {
	return e.state
}

// Interacting reports whether a gesture or its deceleration is live.
// Value-binding consumers must suppress pushes while this is true.
func (e *Engine) Interacting() bool {
	return e.state == StateInteracting
}

// ScrollOffset returns the current content-space offset of the viewport
func (e *Engine) ScrollOffset() float64 {
	return e.scrollOffset
}

// ViewportWidth returns the resolved viewport width, zero before layout
func (e *Engine) ViewportWidth() float64 {
	return e.viewportWidth
}

// Value returns the currently selected value; MinValue before layout
func (e *Engine) Value() float64 {
	if e.state == StateUninitialized {
		return e.cfg.MinValue
	}
	return e.cfg.ValueAtContentX(e.scrollOffset + e.viewportWidth/2)
}

// SetViewportWidth resolves (or updates) the layout width. The first
// resolution replays any pending set-value without animation; later
// resolutions re-center the current selection.
func (e *Engine) SetViewportWidth(w float64) {
	if w <= 0 {
		return
	}

	if e.state == StateUninitialized {
		e.viewportWidth = w
		e.state = StateIdle
		v := e.cfg.MinValue
		if e.hasPending {
			v = e.pendingValue
			e.hasPending = false
		}
		e.apply(v, false)
		return
	}

	v := e.Value()
	e.viewportWidth = w
	e.apply(v, false)
}

// HandleScroll consumes one live scroll position update. Called once per
// rendered frame during a drag or animation; O(1).
func (e *Engine) HandleScroll(offset float64) {
	if e.state == StateUninitialized {
		return
	}
	e.scrollOffset = offset
	e.notify(e.Value())
}

// WillSettle resolves a gesture's raw target offset to the snapped offset
// the platform scroll mechanism should animate to. Velocity is accepted
// for the gesture-end contract but the destination depends only on the
// projected target.
func (e *Engine) WillSettle(targetOffset, velocity float64) float64 {
	_ = velocity
	if e.state == StateUninitialized {
		return targetOffset
	}
	return e.cfg.SnapContentOffset(targetOffset, e.viewportWidth)
}

// SetValue is the external command path. Before layout the value is
// queued; during interaction it is dropped; otherwise the value is
// normalized, centered, and either applied immediately or handed to the
// host for animation.
func (e *Engine) SetValue(v float64, animated bool) {
	switch e.state {
	case StateUninitialized:
		e.pendingValue = v
		e.hasPending = true
	case StateInteracting:
		// Dropped: a live gesture owns the scroll position
	case StateIdle:
		e.apply(v, animated)
	}
}

// BeginInteraction marks gesture start. Any in-flight animated external
// set is implicitly cancelled.
func (e *Engine) BeginInteraction() {
	if e.state == StateUninitialized {
		return
	}
	e.state = StateInteracting
	if e.host != nil {
		e.host.CancelScroll()
	}
}

// EndInteraction returns to idle after the gesture (and its deceleration)
// has settled
func (e *Engine) EndInteraction() {
	if e.state == StateInteracting {
		e.state = StateIdle
	}
}

// Increment selects the next tick. Routed like an external set followed
// by a value-changed emission, since accessibility paths do not pass
// through the scroll-position callback.
func (e *Engine) Increment() {
	e.step(e.cfg.MinorIncrement)
}

// Decrement selects the previous tick
func (e *Engine) Decrement() {
	e.step(-e.cfg.MinorIncrement)
}

func (e *Engine) step(delta float64) {
	v := e.cfg.ClampAndRound(e.Value() + delta)
	e.SetValue(v, false)
	if e.state == StateIdle {
		// The apply path already emitted; notify dedupes, so this only
		// covers hosts that defer the scroll callback
		e.notify(v)
	}
}

// apply centers a normalized value in the viewport. Non-animated applies
// take effect immediately; animated ones delegate movement to the host,
// which feeds intermediate offsets back through HandleScroll.
func (e *Engine) apply(v float64, animated bool) {
	v = e.cfg.ClampAndRound(v)
	target := e.cfg.ContentX(v) - e.viewportWidth/2

	if animated && e.host != nil {
		e.host.ScrollTo(target, true)
		return
	}

	e.scrollOffset = target
	e.notify(v)
	if e.host != nil {
		e.host.ScrollTo(target, false)
	}
}

// notify emits a value-changed event unless the value is unchanged since
// the last emission
func (e *Engine) notify(v float64) {
	if e.notified && v == e.lastNotified {
		return
	}
	e.lastNotified = v
	e.notified = true
	for _, fn := range e.listeners {
		fn(v)
	}
}
