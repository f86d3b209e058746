// Package input parses tcell events into semantic ruler gestures:
// drag begin/move/end with fling velocity, wheel steps, and the
// keyboard increment/decrement route.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/fennwick/vernier/parameter"
)

// IntentType classifies a parsed gesture
type IntentType int

const (
	IntentNone IntentType = iota

	// IntentDragBegin starts a pointer drag; X is the press column
	IntentDragBegin

	// IntentDragMove continues a drag; X is the current column
	IntentDragMove

	// IntentDragEnd releases the drag; Velocity is the fling estimate
	// in px/s at release
	IntentDragEnd

	// IntentStep requests discrete tick steps; Steps is signed
	IntentStep

	IntentQuit
	IntentResize
)

// Intent is one parsed gesture
type Intent struct {
	Type     IntentType
	X        int
	Steps    int
	Velocity float64
}

// Machine tracks pointer drag state across tcell events
type Machine struct {
	dragging bool
	tracker  VelocityTracker
}

// NewMachine creates an input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Dragging reports whether a pointer drag is in progress
func (m *Machine) Dragging() bool {
	return m.dragging
}

// Process parses one terminal event; returns nil when the event carries
// no ruler gesture
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyLeft:
		return &Intent{Type: IntentStep, Steps: -1}
	case tcell.KeyRight:
		return &Intent{Type: IntentStep, Steps: 1}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			return &Intent{Type: IntentStep, Steps: -1}
		case 'l':
			return &Intent{Type: IntentStep, Steps: 1}
		case 'q':
			return &Intent{Type: IntentQuit}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, _ := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		return &Intent{Type: IntentStep, Steps: 1}
	case buttons&tcell.WheelDown != 0:
		return &Intent{Type: IntentStep, Steps: -1}
	case buttons&tcell.Button1 != 0:
		if !m.dragging {
			m.dragging = true
			m.tracker.Reset()
			m.tracker.Add(x, ev.When())
			return &Intent{Type: IntentDragBegin, X: x}
		}
		m.tracker.Add(x, ev.When())
		return &Intent{Type: IntentDragMove, X: x}
	default:
		if m.dragging {
			m.dragging = false
			return &Intent{Type: IntentDragEnd, X: x, Velocity: m.tracker.Estimate()}
		}
	}
	return nil
}

// FlingTarget projects a release velocity into the raw scroll offset a
// fling would coast to. Dragging the pointer right moves the content
// with it, so positive pointer velocity carries the offset down.
func FlingTarget(offset, velocity float64) float64 {
	return offset - velocity*parameter.FlingProjectionSeconds
}
