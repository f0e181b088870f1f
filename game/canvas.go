package game

import (
	"image/color"
	"math"
)

// BlendMode selects how draw calls combine with what is already on a canvas
type BlendMode int

const (
	// BlendNormal is source-over compositing
	BlendNormal BlendMode = iota
	// BlendLighter adds source colour to the destination
	BlendLighter
)

// ColorStop is one stop of a gradient. Offset runs from 0 (centre or tail) to 1.
type ColorStop struct {
	Offset float64
	Color  color.NRGBA
}

// Canvas is the drawing surface a Field renders into.
// All coordinates are logical pixels; implementations apply the pixel ratio.
// Implementations must not retain the stops slice.
type Canvas interface {
	Clear()
	SetBlend(mode BlendMode)
	FillRadial(cx, cy, radius float64, stops []ColorStop)
	StrokeGradient(x0, y0, x1, y1, width float64, from, to color.NRGBA)
}

// withAlpha returns c with its alpha replaced, clamped to [0, 1]
func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(clamp(alpha, 0, 1) * 0xff))
	return c
}

// CountingCanvas discards drawing and counts the calls it receives.
// It backs headless runs and tests.
type CountingCanvas struct {
	Clears  int
	Fills   int
	Strokes int
	Blend   BlendMode

	// LighterDraws counts fills and strokes issued under BlendLighter
	LighterDraws int
}

func (c *CountingCanvas) Clear() {
	c.Clears++
}

func (c *CountingCanvas) SetBlend(mode BlendMode) {
	c.Blend = mode
}

func (c *CountingCanvas) FillRadial(cx, cy, radius float64, stops []ColorStop) {
	c.Fills++
	if c.Blend == BlendLighter {
		c.LighterDraws++
	}
}

func (c *CountingCanvas) StrokeGradient(x0, y0, x1, y1, width float64, from, to color.NRGBA) {
	c.Strokes++
	if c.Blend == BlendLighter {
		c.LighterDraws++
	}
}
