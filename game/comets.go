package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Comet is a short-lived streak that arcs away from the focal point
type Comet struct {
	pos     vec2 // head
	prev    vec2 // head position one tick ago, the streak's tail
	vel     vec2
	curve   float64 // velocity rotation per tick, radians
	width   float64
	alpha   float64
	hue     float64
	color   color.NRGBA
	life    int // ticks left, 0 < life <= maxLife while in the swarm
	maxLife int
}

// fade returns the remaining life fraction, 1 at spawn falling toward 0
func (c *Comet) fade() float64 {
	return float64(c.life) / float64(c.maxLife)
}

// CometSwarm is a capacity-bounded population of comets.
// It grows by chance in TrySpawn and shrinks as comets expire in Advance.
type CometSwarm struct {
	comets   []Comet
	rng      *rand.Rand
	capacity int
	chance   float64
	stops    [2]ColorStop
}

// NewCometSwarm creates an empty swarm drawing randomness from rng
func NewCometSwarm(rng *rand.Rand) *CometSwarm {
	return &CometSwarm{
		comets:   make([]Comet, 0, maxComets),
		rng:      rng,
		capacity: maxComets,
		chance:   cometChance,
	}
}

// TrySpawn launches at most one comet from a ring around (cx, cy).
// It reports whether a comet was added.
func (s *CometSwarm) TrySpawn(cx, cy float64) bool {
	if len(s.comets) >= s.capacity || s.rng.Float64() >= s.chance {
		return false
	}
	s.spawn(cx, cy)
	return true
}

// spawn unconditionally adds one comet
func (s *CometSwarm) spawn(cx, cy float64) {
	angle := s.rng.Float64() * tau
	speed := s.between(cometSpeedMin, cometSpeedMax)
	offset := s.rng.Float64() * cometOffsetMax
	dir := vec2{math.Cos(angle), math.Sin(angle)}
	pos := vec2{cx + dir.x*offset, cy + dir.y*offset}
	hue := s.between(cometHueMin, cometHueMax)
	life := cometLifeMin + s.rng.Intn(cometLifeMax-cometLifeMin+1)

	s.comets = append(s.comets, Comet{
		pos:     pos,
		prev:    pos,
		vel:     vec2{dir.x * speed, dir.y * speed},
		curve:   s.between(-cometCurveMax, cometCurveMax),
		width:   s.between(cometWidthMin, cometWidthMax),
		alpha:   s.between(cometAlphaMin, cometAlphaMax),
		hue:     hue,
		color:   cometColor(hue),
		life:    life,
		maxLife: life,
	})
}

func (s *CometSwarm) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// cometColor converts a hue in degrees to the streak colour
func cometColor(hue float64) color.NRGBA {
	r, g, b := colorful.Hsl(hue, cometSaturation, cometLightness).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Advance moves every comet one tick and drops the ones whose life ran out
func (s *CometSwarm) Advance() {
	for i := len(s.comets) - 1; i >= 0; i-- {
		c := &s.comets[i]
		c.prev = c.pos
		c.vel = rotatePoint(c.vel, c.curve)
		c.pos.x += c.vel.x
		c.pos.y += c.vel.y
		c.vel.x *= cometDamping
		c.vel.y *= cometDamping

		c.life--
		if c.life <= 0 {
			s.comets = append(s.comets[:i], s.comets[i+1:]...)
		}
	}
}

// Draw renders each comet as a tapered streak with a glowing head
func (s *CometSwarm) Draw(cv Canvas) {
	for i := range s.comets {
		c := &s.comets[i]
		a := c.alpha * c.fade()

		cv.StrokeGradient(c.prev.x, c.prev.y, c.pos.x, c.pos.y, c.width,
			withAlpha(c.color, 0), withAlpha(c.color, a))

		s.stops[0] = ColorStop{Offset: 0, Color: withAlpha(c.color, a)}
		s.stops[1] = ColorStop{Offset: 1, Color: withAlpha(c.color, 0)}
		cv.FillRadial(c.pos.x, c.pos.y, cometHeadRadius, s.stops[:])
	}
}

// Clear drops every comet
func (s *CometSwarm) Clear() {
	s.comets = s.comets[:0]
}

// Len returns the number of live comets
func (s *CometSwarm) Len() int {
	return len(s.comets)
}
