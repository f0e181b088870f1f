package game

import (
	"math/rand"

	"portalfx/page"
)

// Field is one animated background: a dot population and a comet swarm on
// a single surface. Fields share nothing, so several can run side by side.
type Field struct {
	name     string
	geom     Geometry
	sized    bool
	count    int
	rng      *rand.Rand
	dots     *DotField
	comets   *CometSwarm
	frames   uint64
	inert    bool
	hazeStop [2]ColorStop
}

// NewField creates a field with count dots. It stays blank until the first Resize.
func NewField(name string, count int, rng *rand.Rand) *Field {
	return &Field{
		name:   name,
		count:  count,
		rng:    rng,
		dots:   NewDotField(rng),
		comets: NewCometSwarm(rng),
		hazeStop: [2]ColorStop{
			{Offset: 0, Color: withAlpha(colorHaze, hazeAlpha)},
			{Offset: 1, Color: withAlpha(colorHaze, 0)},
		},
	}
}

// Attach creates a field for the named surface of p.
// When the page has no such surface the returned field is inert: every
// method is a no-op and nothing is ever drawn.
func Attach(p *page.Page, name string, count int, seed int64) *Field {
	if p == nil {
		return &Field{name: name, inert: true}
	}
	if _, ok := p.Surface(name); !ok {
		return &Field{name: name, inert: true}
	}
	return NewField(name, count, rand.New(rand.NewSource(seed)))
}

// Name returns the surface name the field is attached to
func (f *Field) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

// Inert reports whether the field has no surface to draw on
func (f *Field) Inert() bool {
	return f == nil || f.inert
}

// Resize applies a new measurement. A changed geometry reseeds every dot and
// drops every comet; an unchanged one does nothing. It reports whether the
// field was reset.
func (f *Field) Resize(w, h, dpr float64) bool {
	if f.Inert() {
		return false
	}

	geom := NewGeometry(w, h, dpr)
	if f.sized && geom == f.geom {
		return false
	}

	f.geom = geom
	f.sized = true
	f.dots.Reseed(f.count, geom.W, geom.H)
	f.comets.Clear()
	return true
}

// Geometry returns the current measurement
func (f *Field) Geometry() Geometry {
	if f.Inert() {
		return Geometry{}
	}
	return f.geom
}

// Frame advances the simulation by one tick and draws it onto c
func (f *Field) Frame(c Canvas) {
	if f.Inert() || !f.sized {
		return
	}

	c.Clear()

	fx, fy := f.geom.Focal()
	c.FillRadial(fx, fy, f.geom.HazeRadius(), f.hazeStop[:])

	c.SetBlend(BlendLighter)

	f.dots.Advance(f.geom.W, f.geom.H)
	f.dots.Draw(c)

	f.comets.TrySpawn(fx, fy)
	f.comets.Advance()
	f.comets.Draw(c)

	c.SetBlend(BlendNormal)
	f.frames++
}

// DotCount returns the size of the ambient population
func (f *Field) DotCount() int {
	if f.Inert() {
		return 0
	}
	return f.dots.Len()
}

// CometCount returns the number of live comets
func (f *Field) CometCount() int {
	if f.Inert() {
		return 0
	}
	return f.comets.Len()
}

// Frames returns the number of frames drawn so far
func (f *Field) Frames() uint64 {
	if f.Inert() {
		return 0
	}
	return f.frames
}
