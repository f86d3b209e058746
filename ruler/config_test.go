package ruler

import (
	"testing"
)

func TestNewConfigValidation(t *testing.T) {
	tests := []struct {
		name                   string
		min, max, minor, major float64
		wantErr                bool
	}{
		{"Valid range", 0, 100, 1, 10, false},
		{"Valid fractional", 30, 200, 0.5, 5, false},
		{"Equal major and minor", 0, 10, 1, 1, false},
		{"Inverted range", 100, 0, 1, 10, true},
		{"Empty range", 50, 50, 1, 10, true},
		{"Zero minor increment", 0, 100, 0, 10, true},
		{"Negative minor increment", 0, 100, -1, 10, true},
		{"Zero major increment", 0, 100, 1, 0, true},
		{"Major below minor", 0, 100, 5, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.min, tt.max, tt.minor, tt.major)
			if tt.wantErr && err == nil {
				t.Errorf("Expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestNewConfigDefaults(t *testing.T) {
	c, err := NewConfig(0, 100, 1, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.TickSpacing != 6 {
		t.Errorf("Expected default tick spacing 6, got %v", c.TickSpacing)
	}
	if c.Haptic.Kind != HapticSelection {
		t.Errorf("Expected default haptic style selection, got %v", c.Haptic.Kind)
	}
	if got := c.Label(42.4); got != "42" {
		t.Errorf("Expected default label \"42\", got %q", got)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	c := Config{MinValue: 10, MaxValue: 0, MinorIncrement: -1, MajorIncrement: 0}
	err := c.Validate()
	if err == nil {
		t.Fatal("Expected error for fully invalid config")
	}
}

func TestMustConfigPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for invalid config")
		}
	}()
	MustConfig(100, 0, 1, 10)
}

func TestHapticStyleImpactClamping(t *testing.T) {
	tests := []struct {
		name      string
		intensity float64
		want      float64
	}{
		{"In range", 0.8, 0.8},
		{"Above one", 1.5, 1.0},
		{"Zero falls back", 0, 0.5},
		{"Negative falls back", -2, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := HapticStyleImpact(tt.intensity)
			if s.Kind != HapticImpact {
				t.Errorf("Expected impact kind, got %v", s.Kind)
			}
			if s.Intensity != tt.want {
				t.Errorf("Expected intensity %v, got %v", tt.want, s.Intensity)
			}
		})
	}
}

func TestCustomLabelFormatter(t *testing.T) {
	c := MustConfig(0, 5, 0.5, 1)
	c.LabelFormatter = func(v float64) string { return "x" }
	if got := c.Label(3); got != "x" {
		t.Errorf("Expected custom formatter output \"x\", got %q", got)
	}
}
