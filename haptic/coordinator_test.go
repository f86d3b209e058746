package haptic

import (
	"testing"
	"time"

	"github.com/fennwick/vernier/ruler"
)

type countingPulser struct {
	fired int
}

func (p *countingPulser) Pulse() {
	p.fired++
}

func TestHysteresisFiresOncePerCrossing(t *testing.T) {
	cfg := ruler.MustConfig(30, 200, 0.5, 5)
	p := &countingPulser{}
	c := New(cfg, p)

	// 0.9 * 0.5 = 0.45 threshold from the primed 70.0; only 70.6 crosses
	for _, v := range []float64{70.0, 70.1, 70.4, 70.6} {
		c.ValueChanged(v)
	}

	if p.fired != 1 {
		t.Errorf("Expected exactly 1 pulse, got %d", p.fired)
	}
}

func TestFiresPerTickCrossing(t *testing.T) {
	cfg := ruler.MustConfig(0, 100, 1, 10)
	p := &countingPulser{}
	c := New(cfg, p)

	for _, v := range []float64{50, 51, 52, 53} {
		c.ValueChanged(v)
	}

	if p.fired != 3 {
		t.Errorf("Expected 3 pulses for 3 crossings, got %d", p.fired)
	}
}

func TestJitterAroundBoundaryDoesNotDoubleFire(t *testing.T) {
	cfg := ruler.MustConfig(0, 100, 1, 10)
	p := &countingPulser{}
	c := New(cfg, p)

	// Oscillating within the hysteresis band after one real crossing
	for _, v := range []float64{50, 51, 51.2, 50.9, 51.1} {
		c.ValueChanged(v)
	}

	if p.fired != 1 {
		t.Errorf("Expected 1 pulse despite boundary jitter, got %d", p.fired)
	}
}

func TestReverseDirectionFires(t *testing.T) {
	cfg := ruler.MustConfig(0, 100, 1, 10)
	p := &countingPulser{}
	c := New(cfg, p)

	c.ValueChanged(50)
	c.ValueChanged(49)

	if p.fired != 1 {
		t.Errorf("Expected pulse on reverse crossing, got %d", p.fired)
	}
}

func TestNoneStyleNeverFires(t *testing.T) {
	cfg := ruler.MustConfig(0, 100, 1, 10)
	cfg.Haptic = ruler.HapticStyleNone()
	p := &countingPulser{}
	c := New(cfg, p)

	for v := 0.0; v <= 100; v++ {
		c.ValueChanged(v)
	}

	if p.fired != 0 {
		t.Errorf("Expected no pulses for none style, got %d", p.fired)
	}
}

func TestNilPulserIsSafe(t *testing.T) {
	cfg := ruler.MustConfig(0, 100, 1, 10)
	c := New(cfg, nil)
	c.ValueChanged(10)
	c.ValueChanged(20)
}

func TestAudioPulserIntensityResolution(t *testing.T) {
	tests := []struct {
		name  string
		style ruler.HapticStyle
		want  float64
	}{
		{"Selection", ruler.HapticStyleSelection(), 0.5},
		{"Impact", ruler.HapticStyleImpact(0.8), 0.8},
		{"None", ruler.HapticStyleNone(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewAudioPulser(tt.style)
			if p.intensity != tt.want {
				t.Errorf("Expected intensity %v, got %v", tt.want, p.intensity)
			}
		})
	}
}

func TestClickGeneratorDecays(t *testing.T) {
	g := newClickGenerator(sampleRate, 1.0)
	buf := make([][2]float64, sampleRate.N(30*time.Millisecond))
	n, ok := g.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Expected full stream, got n=%d ok=%v", n, ok)
	}

	peak := 0.0
	for _, s := range buf[:64] {
		if a := s[0]; a > peak {
			peak = a
		}
	}
	tail := 0.0
	for _, s := range buf[len(buf)-64:] {
		if a := s[0]; a > tail {
			tail = a
		}
	}
	if peak <= tail {
		t.Errorf("Expected envelope decay, peak %v tail %v", peak, tail)
	}
	if peak > 0.5 {
		t.Errorf("Expected amplitude bounded by base gain, got %v", peak)
	}
}

func TestPulseBeforeInitIsSafe(t *testing.T) {
	p := NewAudioPulser(ruler.HapticStyleSelection())
	p.Pulse() // must not panic or touch the speaker
}
