package ruler

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/fennwick/vernier/parameter"
)

// HapticKind selects the feedback pulse family
type HapticKind int

const (
	HapticNone HapticKind = iota
	HapticSelection
	HapticImpact
)

// HapticStyle is a tagged variant describing tick-crossing feedback.
// The pulse kind and intensity are resolved once at construction of the
// pulser, never re-examined per firing.
type HapticStyle struct {
	Kind      HapticKind
	Intensity float64 // used by HapticImpact only, (0,1]
}

// HapticStyleNone disables feedback pulses
func HapticStyleNone() HapticStyle {
	return HapticStyle{Kind: HapticNone}
}

// HapticStyleSelection is the default light tick pulse
func HapticStyleSelection() HapticStyle {
	return HapticStyle{Kind: HapticSelection, Intensity: parameter.DefaultSelectionIntensity}
}

// HapticStyleImpact is a heavier pulse with explicit intensity
func HapticStyleImpact(intensity float64) HapticStyle {
	if intensity <= 0 {
		intensity = parameter.DefaultSelectionIntensity
	}
	if intensity > 1 {
		intensity = 1
	}
	return HapticStyle{Kind: HapticImpact, Intensity: intensity}
}

// Config is the validated, immutable parameter set of one ruler.
// Zero-value Config is not usable; build via NewConfig or MustConfig.
type Config struct {
	MinValue float64
	MaxValue float64

	// MinorIncrement is the distance between adjacent selectable ticks,
	// MajorIncrement the distance between labeled ticks
	MinorIncrement float64
	MajorIncrement float64

	// TickSpacing is the pixel distance between adjacent minor ticks
	TickSpacing float64

	// LabelFormatter renders major tick labels and the accessibility
	// readout; nil falls back to parameter.DefaultLabelFormat
	LabelFormatter func(float64) string

	// Presentation parameters, opaque to the geometry
	IndicatorColor tcell.Color
	Haptic         HapticStyle
}

// NewConfig builds a config with defaults applied and validates it.
// An error here is a programmer error, not a runtime condition.
func NewConfig(min, max, minor, major float64) (Config, error) {
	c := Config{
		MinValue:       min,
		MaxValue:       max,
		MinorIncrement: minor,
		MajorIncrement: major,
		TickSpacing:    parameter.DefaultTickSpacing,
		IndicatorColor: tcell.ColorOrange,
		Haptic:         HapticStyleSelection(),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// MustConfig is NewConfig for static configs; panics on invalid parameters
func MustConfig(min, max, minor, major float64) Config {
	c, err := NewConfig(min, max, minor, major)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks semantic constraints, collecting every violation
func (c Config) Validate() error {
	var errs []string

	if !(c.MinValue < c.MaxValue) {
		errs = append(errs, fmt.Sprintf("min value %v must be below max value %v", c.MinValue, c.MaxValue))
	}
	if c.MinorIncrement <= 0 {
		errs = append(errs, "minor increment must be > 0")
	}
	if c.MajorIncrement <= 0 {
		errs = append(errs, "major increment must be > 0")
	}
	if c.MinorIncrement > 0 && c.MajorIncrement > 0 && c.MajorIncrement < c.MinorIncrement {
		errs = append(errs, "major increment must be >= minor increment")
	}
	if c.TickSpacing <= 0 {
		errs = append(errs, "tick spacing must be > 0")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid ruler config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Label formats a value for major tick labels and accessibility readouts
func (c Config) Label(v float64) string {
	if c.LabelFormatter != nil {
		return c.LabelFormatter(v)
	}
	return fmt.Sprintf(parameter.DefaultLabelFormat, v)
}
