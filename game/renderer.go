package game

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// whiteSource returns a one-pixel white source for coloured triangles
func whiteSource() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Surface is the ebiten backing buffer of one render target.
// It implements Canvas: callers draw in logical pixels and Surface scales
// every vertex by the pixel ratio.
type Surface struct {
	name     string
	geom     Geometry
	image    *ebiten.Image
	blend    ebiten.Blend
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewSurface creates a surface with no buffer; Resize allocates it
func NewSurface(name string) *Surface {
	return &Surface{
		name:  name,
		blend: ebiten.BlendSourceOver,
	}
}

// Resize reallocates the backing buffer to floor(w*dpr) x floor(h*dpr)
func (s *Surface) Resize(geom Geometry) {
	s.geom = geom
	bw, bh := geom.BufferSize()
	if s.image != nil {
		if b := s.image.Bounds(); b.Dx() == bw && b.Dy() == bh {
			return
		}
		s.image.Deallocate()
	}
	s.image = ebiten.NewImage(bw, bh)
}

// DrawTo composites the buffer onto screen at a device-pixel offset
func (s *Surface) DrawTo(screen *ebiten.Image, x, y float64) {
	if s.image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(s.image, op)
}

// Clear erases the buffer to transparent
func (s *Surface) Clear() {
	if s.image != nil {
		s.image.Clear()
	}
}

// SetBlend switches the compositing mode for later draw calls
func (s *Surface) SetBlend(mode BlendMode) {
	switch mode {
	case BlendLighter:
		s.blend = ebiten.BlendLighter
	default:
		s.blend = ebiten.BlendSourceOver
	}
}

// FillRadial fills a disc with a radial gradient.
// Each stop becomes a ring of vertices; the GPU interpolates colour between rings.
func (s *Surface) FillRadial(cx, cy, radius float64, stops []ColorStop) {
	if s.image == nil || len(stops) < 2 || radius <= 0 {
		return
	}

	dx, dy := s.geom.ToDevice(cx, cy)
	dr := radius * s.geom.DPR
	segments := radialSegments(dr)

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	s.appendVertex(dx, dy, stops[0].Color)

	prev := -1 // first vertex of the previous ring, -1 for the centre
	for _, stop := range stops {
		if stop.Offset <= 0 {
			continue
		}
		ring := len(s.vertices)
		for i := 0; i < segments; i++ {
			angle := tau * float64(i) / float64(segments)
			s.appendVertex(dx+math.Cos(angle)*dr*stop.Offset, dy+math.Sin(angle)*dr*stop.Offset, stop.Color)
		}
		for i := 0; i < segments; i++ {
			j := (i + 1) % segments
			if prev < 0 {
				s.indices = append(s.indices, 0, uint16(ring+i), uint16(ring+j))
				continue
			}
			s.indices = append(s.indices,
				uint16(prev+i), uint16(ring+i), uint16(ring+j),
				uint16(prev+i), uint16(ring+j), uint16(prev+j))
		}
		prev = ring
	}

	s.flush(false)
}

// StrokeGradient draws a straight stroke whose colour runs from `from` at
// (x0, y0) to `to` at (x1, y1)
func (s *Surface) StrokeGradient(x0, y0, x1, y1, width float64, from, to color.NRGBA) {
	if s.image == nil || width <= 0 {
		return
	}

	ax, ay := s.geom.ToDevice(x0, y0)
	bx, by := s.geom.ToDevice(x1, y1)
	length := math.Hypot(bx-ax, by-ay)
	if length < 1e-6 {
		return
	}

	// Perpendicular half-width offset
	half := width * s.geom.DPR / 2
	nx := -(by - ay) / length * half
	ny := (bx - ax) / length * half

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	s.appendVertex(ax+nx, ay+ny, from)
	s.appendVertex(ax-nx, ay-ny, from)
	s.appendVertex(bx+nx, by+ny, to)
	s.appendVertex(bx-nx, by-ny, to)
	s.indices = append(s.indices, 0, 1, 2, 1, 3, 2)

	s.flush(true)
}

func (s *Surface) appendVertex(x, y float64, c color.NRGBA) {
	s.vertices = append(s.vertices, ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 0xff,
		ColorG: float32(c.G) / 0xff,
		ColorB: float32(c.B) / 0xff,
		ColorA: float32(c.A) / 0xff,
	})
}

func (s *Surface) flush(antialias bool) {
	op := &ebiten.DrawTrianglesOptions{
		Blend:          s.blend,
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		AntiAlias:      antialias,
	}
	s.image.DrawTriangles(s.vertices, s.indices, whiteSource(), op)
}

// radialSegments picks a ring resolution for a device-pixel radius
func radialSegments(deviceRadius float64) int {
	return int(clamp(math.Ceil(deviceRadius/2)+10, 12, 72))
}
