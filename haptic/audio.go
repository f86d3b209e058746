package haptic

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/fennwick/vernier/parameter"
	"github.com/fennwick/vernier/ruler"
)

const sampleRate = beep.SampleRate(48000)

// AudioPulser renders feedback pulses as short audible clicks through
// the system speaker. Terminal stand-in for a haptic device: same
// contract, best-effort, never blocks the interaction path.
type AudioPulser struct {
	mu        sync.Mutex
	mixer     *beep.Mixer
	intensity float64
	ready     bool
}

// NewAudioPulser resolves the pulse intensity once from the style tag
func NewAudioPulser(style ruler.HapticStyle) *AudioPulser {
	var intensity float64
	switch style.Kind {
	case ruler.HapticSelection:
		intensity = parameter.DefaultSelectionIntensity
	case ruler.HapticImpact:
		intensity = style.Intensity
	case ruler.HapticNone:
		intensity = 0
	}
	return &AudioPulser{
		mixer:     &beep.Mixer{},
		intensity: intensity,
	}
}

// Init warms up the speaker. Failure leaves the pulser silent rather
// than propagating: feedback is best-effort.
func (p *AudioPulser) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Close silences the pulser; the speaker itself stays open
func (p *AudioPulser) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.mixer.Clear()
	p.ready = false
}

// Pulse plays one click. No-op when silent or uninitialized.
func (p *AudioPulser) Pulse() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.intensity <= 0 {
		return
	}
	click := beep.Take(sampleRate.N(parameter.PulseDuration), newClickGenerator(sampleRate, p.intensity))
	p.mixer.Add(click)
}

// clickGenerator produces a single damped sine burst
type clickGenerator struct {
	sr        beep.SampleRate
	intensity float64
	pos       int
}

func newClickGenerator(sr beep.SampleRate, intensity float64) *clickGenerator {
	return &clickGenerator{sr: sr, intensity: intensity}
}

func (g *clickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * parameter.PulseDecayRate)
		sample := g.intensity * parameter.PulseBaseGain * envelope *
			math.Sin(2*math.Pi*parameter.PulseFrequency*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *clickGenerator) Err() error {
	return nil
}
