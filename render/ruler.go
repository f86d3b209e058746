// Package render draws a ruler strip onto a cell canvas: minor and major
// tick marks at their content-track positions, labels under major ticks,
// a fixed center indicator, and the selected-value readout. Pure consumer
// of the geometry; it never mutates engine state.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/fennwick/vernier/ruler"
)

// Ruler glyphs
const (
	indicatorMark = '▼'
	majorTick     = '┃'
	minorTick     = '╷'
	trackLine     = '─'
)

// Canvas is the drawing surface; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Style bundles the ruler's presentation colors
type Style struct {
	Tick  tcell.Style
	Major tcell.Style
	Label tcell.Style
	Value tcell.Style
}

// DefaultStyle returns the standard ruler palette
func DefaultStyle() Style {
	return Style{
		Tick:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		Major: tcell.StyleDefault.Foreground(tcell.ColorWhite),
		Label: tcell.StyleDefault.Foreground(tcell.ColorSilver),
		Value: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	}
}

// Draw renders the ruler into the rectangle at (x, y) sized w by h for
// the given scroll offset. Row layout from the top: center indicator,
// tick strip, major labels, selected-value readout; rows beyond h are
// skipped. Out-of-rect cells are clipped, not drawn.
func Draw(c Canvas, x, y, w, h int, cfg ruler.Config, scrollOffset float64, style Style) {
	if w <= 0 || h <= 0 {
		return
	}

	center := w / 2

	// Indicator row
	if h >= 1 {
		indicator := tcell.StyleDefault.Foreground(cfg.IndicatorColor).Bold(true)
		c.SetContent(x+center, y, indicatorMark, nil, indicator)
	}

	// Tick strip
	if h >= 2 {
		tickY := y + 1
		for col := 0; col < w; col++ {
			c.SetContent(x+col, tickY, trackLine, nil, style.Tick)
		}
		forVisibleTicks(cfg, scrollOffset, w, func(idx, col int) {
			if cfg.IsMajorTick(idx) {
				c.SetContent(x+col, tickY, majorTick, nil, style.Major)
			} else {
				c.SetContent(x+col, tickY, minorTick, nil, style.Tick)
			}
		})
	}

	// Labels under major ticks
	if h >= 3 {
		labelY := y + 2
		forVisibleTicks(cfg, scrollOffset, w, func(idx, col int) {
			if !cfg.IsMajorTick(idx) {
				return
			}
			label := cfg.Label(cfg.TickValue(idx))
			start := col - len(label)/2
			for i, ch := range label {
				if cx := start + i; cx >= 0 && cx < w {
					c.SetContent(x+cx, labelY, ch, nil, style.Label)
				}
			}
		})
	}

	// Selected-value readout
	if h >= 4 {
		valueY := y + 3
		value := cfg.ValueAtContentX(scrollOffset + float64(w)/2)
		text := cfg.Label(value)
		start := center - len(text)/2
		for i, ch := range text {
			if cx := start + i; cx >= 0 && cx < w {
				c.SetContent(x+cx, valueY, ch, nil, style.Value)
			}
		}
	}
}

// forVisibleTicks invokes fn for each tick whose column lands inside the
// viewport, with its tick index and column
func forVisibleTicks(cfg ruler.Config, scrollOffset float64, w int, fn func(idx, col int)) {
	spacing := cfg.TickSpacing
	first := int((scrollOffset - 1) / spacing)
	if first < 0 {
		first = 0
	}
	last := int((scrollOffset + float64(w) + 1) / spacing)
	if max := cfg.TickCount() - 1; last > max {
		last = max
	}

	for idx := first; idx <= last; idx++ {
		col := int(float64(idx)*spacing - scrollOffset + 0.5)
		if col >= 0 && col < w {
			fn(idx, col)
		}
	}
}
