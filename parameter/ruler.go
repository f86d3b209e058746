package parameter

import "time"

// Ruler Geometry
const (
	// DefaultTickSpacing is the pixel distance between adjacent minor ticks
	DefaultTickSpacing = 6.0

	// DefaultLabelFormat renders major tick labels when no formatter is set
	DefaultLabelFormat = "%.0f"
)

// Haptic Feedback
const (
	// HapticHysteresis scales MinorIncrement into the firing threshold,
	// below 1.0 so floating jitter around a tick boundary cannot double-fire
	HapticHysteresis = 0.9

	// DefaultSelectionIntensity is the pulse gain for the selection style
	DefaultSelectionIntensity = 0.5

	// PulseDuration is the length of a single feedback click
	PulseDuration = 30 * time.Millisecond

	// PulseFrequency is the click carrier frequency in Hz
	PulseFrequency = 1760.0

	// PulseDecayRate controls the exponential envelope of the click
	PulseDecayRate = 90.0

	// PulseBaseGain is the amplitude ceiling before intensity scaling
	PulseBaseGain = 0.4
)

// Gesture Tracking
const (
	// VelocityWindow is how far back pointer samples count toward the
	// fling velocity estimate
	VelocityWindow = 100 * time.Millisecond

	// FlingProjectionSeconds converts release velocity (px/s) into the
	// raw overshoot distance a fling travels before settling
	FlingProjectionSeconds = 0.18
)

// Scroll Animation
const (
	// AnimationStep is the fraction of remaining distance covered per frame
	AnimationStep = 0.25

	// AnimationSnapDistance is the remaining distance (px) below which an
	// animated scroll completes on the exact target
	AnimationSnapDistance = 0.5

	// FrameInterval drives the demo render/animation tick
	FrameInterval = 16 * time.Millisecond
)
