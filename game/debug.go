package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugState holds the overlay toggles
type DebugState struct {
	ShowOverlay bool // Surface outlines and population counters (F1)
}

var colorDebug = color.NRGBA{R: 120, G: 210, B: 255, A: 200}

// drawDebug outlines every surface and prints its populations
func (g *Game) drawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f  DPR: %.2f", g.fps, g.dpr), 8, 8)

	for i, f := range g.fields {
		if f.Inert() {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: no surface", f.Name()), 8, 24+16*i)
			continue
		}

		x, y, w, h := g.deviceRect(i)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colorDebug, false)

		geom := f.Geometry()
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("%s: %.0fx%.0f dots=%d comets=%d/%d frames=%d",
				f.Name(), geom.W, geom.H, f.DotCount(), f.CometCount(), maxComets, f.Frames()),
			8, 24+16*i)
	}
}
