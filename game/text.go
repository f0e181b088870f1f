package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"portalfx/page"
)

// Text sizes in logical pixels
const (
	kickerSize   = 18.0
	titleSize    = 72.0
	identitySize = 16.0
	identityGap  = 6.0
)

// Vertical anchors as fractions of the window height
const (
	topKickerY    = 0.24
	titleY        = 0.30
	bottomKickerY = 0.70
	identityY     = 0.78
)

// TextLayer draws the page text over the animated surfaces
type TextLayer struct {
	source *text.GoTextFaceSource
}

// NewTextLayer loads the Go Regular face
func NewTextLayer() (*TextLayer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &TextLayer{source: source}, nil
}

// Draw renders kickers, title and the identity block, centred horizontally.
// width and height are the window size in logical pixels.
func (t *TextLayer) Draw(screen *ebiten.Image, p *page.Page, width, height, dpr float64) {
	if t == nil || p == nil {
		return
	}

	cx := width / 2
	t.drawLine(screen, p.TopKicker, kickerSize, cx, height*topKickerY, dpr)
	t.drawLine(screen, p.Title, titleSize, cx, height*titleY, dpr)
	t.drawLine(screen, p.BottomKicker, kickerSize, cx, height*bottomKickerY, dpr)

	if !p.HasIdentity() {
		return
	}
	y := height * identityY
	for _, line := range p.Identity {
		t.drawLine(screen, line, identitySize, cx, y, dpr)
		y += identitySize + identityGap
	}
}

func (t *TextLayer) drawLine(screen *ebiten.Image, s string, size, x, y, dpr float64) {
	if s == "" {
		return
	}
	face := &text.GoTextFace{Source: t.source, Size: size * dpr}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x*dpr, y*dpr)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, s, face, op)
}
