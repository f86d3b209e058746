// Package preset loads ruler configurations from YAML files, so demos
// and embedding apps can ship pickers (weight, temperature, volume...)
// as data instead of code.
package preset

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fennwick/vernier/parameter"
	"github.com/fennwick/vernier/ruler"
)

// Preset is one declarative ruler description
type Preset struct {
	Name           string  `yaml:"name"`
	Min            float64 `yaml:"min"`
	Max            float64 `yaml:"max"`
	MinorIncrement float64 `yaml:"minor_increment"`
	MajorIncrement float64 `yaml:"major_increment"`

	// Optional; zero values fall back to package defaults
	TickSpacing float64 `yaml:"tick_spacing"`
	LabelFormat string  `yaml:"label_format"`

	// Haptic is one of: none, selection, impact
	Haptic          string  `yaml:"haptic"`
	HapticIntensity float64 `yaml:"haptic_intensity"`

	// Initial selected value; nil means the domain minimum
	Initial *float64 `yaml:"initial"`
}

type file struct {
	Presets []Preset `yaml:"presets"`
}

// Load reads and validates every preset in a YAML file
func Load(path string) ([]Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	if len(f.Presets) == 0 {
		return nil, fmt.Errorf("presets file %s declares no presets", path)
	}

	for i, p := range f.Presets {
		if err := Validate(p); err != nil {
			return nil, fmt.Errorf("preset %d (%s): %w", i, p.Name, err)
		}
	}
	return f.Presets, nil
}

// Find returns the named preset, or the first one for an empty name
func Find(presets []Preset, name string) (Preset, error) {
	if name == "" {
		return presets[0], nil
	}
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("no preset named %q", name)
}

// Validate checks semantic constraints of a preset, collecting every
// violation
func Validate(p Preset) error {
	var errs []string

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, "name is required")
	}
	if !(p.Min < p.Max) {
		errs = append(errs, "min must be below max")
	}
	if p.MinorIncrement <= 0 {
		errs = append(errs, "minor_increment must be > 0")
	}
	if p.MajorIncrement <= 0 {
		errs = append(errs, "major_increment must be > 0")
	} else if p.MinorIncrement > 0 && p.MajorIncrement < p.MinorIncrement {
		errs = append(errs, "major_increment must be >= minor_increment")
	}
	if p.TickSpacing < 0 {
		errs = append(errs, "tick_spacing must be >= 0")
	}

	switch p.Haptic {
	case "", "none", "selection", "impact":
	default:
		errs = append(errs, "haptic must be one of: none, selection, impact")
	}
	if p.Haptic == "impact" && (p.HapticIntensity <= 0 || p.HapticIntensity > 1) {
		errs = append(errs, "haptic_intensity must be in (0,1] for haptic=impact")
	}
	if p.Initial != nil && (*p.Initial < p.Min || *p.Initial > p.Max) {
		errs = append(errs, "initial must be within [min,max]")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Config builds the validated ruler config described by the preset
func (p Preset) Config() (ruler.Config, error) {
	cfg, err := ruler.NewConfig(p.Min, p.Max, p.MinorIncrement, p.MajorIncrement)
	if err != nil {
		return ruler.Config{}, err
	}

	if p.TickSpacing > 0 {
		cfg.TickSpacing = p.TickSpacing
	}
	if format := strings.TrimSpace(p.LabelFormat); format != "" {
		cfg.LabelFormatter = func(v float64) string {
			return fmt.Sprintf(format, v)
		}
	}

	switch p.Haptic {
	case "none":
		cfg.Haptic = ruler.HapticStyleNone()
	case "impact":
		cfg.Haptic = ruler.HapticStyleImpact(p.HapticIntensity)
	case "", "selection":
		cfg.Haptic = ruler.HapticStyleSelection()
	}

	if err := cfg.Validate(); err != nil {
		return ruler.Config{}, err
	}
	return cfg, nil
}

// InitialValue returns the preset's starting selection, normalized
func (p Preset) InitialValue(cfg ruler.Config) float64 {
	if p.Initial == nil {
		return cfg.MinValue
	}
	return cfg.ClampAndRound(*p.Initial)
}

// Default returns the built-in preset used when no file is given
func Default() Preset {
	initial := 70.0
	return Preset{
		Name:           "weight-kg",
		Min:            30,
		Max:            200,
		MinorIncrement: 0.5,
		MajorIncrement: 5,
		TickSpacing:    parameter.DefaultTickSpacing,
		LabelFormat:    "%.0f",
		Haptic:         "selection",
		Initial:        &initial,
	}
}
