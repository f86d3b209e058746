// Command vernier is an interactive demo of the ruler picker: drag or
// fling the ruler with the mouse, step with arrow keys or the wheel, and
// watch the bound value follow the center indicator.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/fennwick/vernier/binding"
	"github.com/fennwick/vernier/engine"
	"github.com/fennwick/vernier/haptic"
	"github.com/fennwick/vernier/input"
	"github.com/fennwick/vernier/parameter"
	"github.com/fennwick/vernier/preset"
	"github.com/fennwick/vernier/render"
	"github.com/fennwick/vernier/ruler"
)

// animator is the demo's ScrollHost: it eases the engine toward a target
// offset one frame at a time, feeding positions back through HandleScroll
type animator struct {
	eng      *engine.Engine
	target   float64
	active   bool
	onSettle func()
}

func (a *animator) ScrollTo(offset float64, animated bool) {
	if !animated {
		// Engine already applied the offset; just drop any animation
		a.active = false
		a.onSettle = nil
		return
	}
	a.target = offset
	a.active = true
}

func (a *animator) CancelScroll() {
	a.active = false
	a.onSettle = nil
}

func (a *animator) start(target float64, onSettle func()) {
	a.target = target
	a.active = true
	a.onSettle = onSettle
}

func (a *animator) tick() {
	if !a.active {
		return
	}
	cur := a.eng.ScrollOffset()
	d := a.target - cur
	if math.Abs(d) <= parameter.AnimationSnapDistance {
		a.eng.HandleScroll(a.target)
		a.active = false
		if fn := a.onSettle; fn != nil {
			a.onSettle = nil
			fn()
		}
		return
	}
	a.eng.HandleScroll(cur + d*parameter.AnimationStep)
}

func main() {
	presetFile := flag.String("presets", "", "YAML presets file (built-in weight ruler when empty)")
	presetName := flag.String("preset", "", "preset name to use (first preset when empty)")
	mute := flag.Bool("mute", false, "disable feedback clicks")
	flag.Parse()

	p := preset.Default()
	if *presetFile != "" {
		presets, err := preset.Load(*presetFile)
		if err != nil {
			log.Fatalf("load presets: %v", err)
		}
		p, err = preset.Find(presets, *presetName)
		if err != nil {
			log.Fatalf("select preset: %v", err)
		}
	}

	cfg, err := p.Config()
	if err != nil {
		log.Fatalf("build config: %v", err)
	}

	if err := run(cfg, p, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "vernier: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg ruler.Config, p preset.Preset, mute bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	eng := engine.New(cfg)
	anim := &animator{eng: eng}
	eng.SetHost(anim)

	// Feedback: audible tick clicks unless muted or the style says none
	var pulser haptic.Pulser = haptic.NoopPulser{}
	if !mute && cfg.Haptic.Kind != ruler.HapticNone {
		audio := haptic.NewAudioPulser(cfg.Haptic)
		if err := audio.Init(); err == nil {
			defer audio.Close()
			pulser = audio
		}
		// Speaker failure degrades to silence; the picker still works
	}
	coord := haptic.New(cfg, pulser)
	eng.OnValueChanged(coord.ValueChanged)

	// External value store bound to the ruler
	bound := p.InitialValue(cfg)
	b := binding.New(eng)
	b.OnExternalChange(func(v float64) { bound = v })

	machine := input.NewMachine()

	w, h := screen.Size()
	rulerX, rulerW := rulerRect(w)
	eng.SetViewportWidth(float64(rulerW))
	eng.SetValue(p.InitialValue(cfg), false)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	frames := time.NewTicker(parameter.FrameInterval)
	defer frames.Stop()

	var dragStartX int
	var dragStartOffset float64

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}

			// Demo-only binding trigger, outside the gesture machine
			if key, isKey := ev.(*tcell.EventKey); isKey && key.Key() == tcell.KeyRune && key.Rune() == 'm' {
				b.Push((cfg.MinValue + cfg.MaxValue) / 2)
				continue
			}

			in := machine.Process(ev)
			if in == nil {
				continue
			}

			switch in.Type {
			case input.IntentQuit:
				return nil
			case input.IntentResize:
				screen.Sync()
				w, h = screen.Size()
				rulerX, rulerW = rulerRect(w)
				eng.SetViewportWidth(float64(rulerW))
			case input.IntentStep:
				for i := 0; i < in.Steps; i++ {
					eng.Increment()
				}
				for i := 0; i > in.Steps; i-- {
					eng.Decrement()
				}
			case input.IntentDragBegin:
				eng.BeginInteraction()
				dragStartX = in.X
				dragStartOffset = eng.ScrollOffset()
			case input.IntentDragMove:
				eng.HandleScroll(dragStartOffset - float64(in.X-dragStartX))
			case input.IntentDragEnd:
				raw := input.FlingTarget(eng.ScrollOffset(), in.Velocity)
				anim.start(eng.WillSettle(raw, in.Velocity), eng.EndInteraction)
			}

		case <-frames.C:
			anim.tick()
			draw(screen, w, h, rulerX, rulerW, cfg, p, eng, bound)
		}
	}
}

// rulerRect computes the ruler strip bounds for a screen width
func rulerRect(w int) (x, rw int) {
	x = 2
	rw = w - 4
	if rw < 1 {
		x = 0
		rw = w
	}
	return x, rw
}

func draw(screen tcell.Screen, w, h, rulerX, rulerW int, cfg ruler.Config, p preset.Preset, eng *engine.Engine, bound float64) {
	screen.Clear()

	title := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	drawText(screen, 2, 0, title, fmt.Sprintf("vernier — %s", p.Name))
	drawText(screen, 2, 1, dim, fmt.Sprintf("range %s..%s step %v",
		cfg.Label(cfg.MinValue), cfg.Label(cfg.MaxValue), cfg.MinorIncrement))

	rulerY := h/2 - 2
	if rulerY < 3 {
		rulerY = 3
	}
	render.Draw(screen, rulerX, rulerY, rulerW, 4, cfg, eng.ScrollOffset(), render.DefaultStyle())

	drawText(screen, 2, h-3, dim, fmt.Sprintf("bound value: %s", cfg.Label(bound)))
	drawText(screen, 2, h-2, dim, "drag/fling: mouse   step: ←/→ h/l wheel   m: bind midpoint   q: quit")

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
