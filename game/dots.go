package game

import (
	"math"
	"math/rand"
)

// Dot is one ambient particle drifting behind the page
type Dot struct {
	pos        vec2    // logical pixels
	vel        vec2    // logical pixels per frame
	r          float64 // base radius
	phase      float64 // twinkle oscillator
	phaseSpeed float64
	alpha      float64 // base opacity
}

// twinkle returns the brightness and size boost for the current phase
func (d *Dot) twinkle() float64 {
	return (math.Sin(d.phase)*0.5 + 0.5) * dotTwinkle
}

// DotField is a fixed-size population of ambient dots.
// Its size only changes when it is reseeded.
type DotField struct {
	dots  []Dot
	rng   *rand.Rand
	stops [3]ColorStop
}

// NewDotField creates an empty field drawing randomness from rng
func NewDotField(rng *rand.Rand) *DotField {
	return &DotField{rng: rng}
}

// Reseed replaces every dot with count fresh dots spread over a w x h surface
func (df *DotField) Reseed(count int, w, h float64) {
	count = max(count, 0)
	df.dots = make([]Dot, count)
	for i := range df.dots {
		df.dots[i] = Dot{
			pos:        vec2{df.rng.Float64() * w, df.rng.Float64() * h},
			vel:        vec2{df.between(-dotSpeed, dotSpeed), df.between(-dotSpeed, dotSpeed)},
			r:          df.between(dotRadiusMin, dotRadiusMax),
			phase:      df.rng.Float64() * tau,
			phaseSpeed: df.between(dotPhaseSpeedMin, dotPhaseSpeedMax),
			alpha:      df.between(dotAlphaMin, dotAlphaMax),
		}
	}
}

func (df *DotField) between(lo, hi float64) float64 {
	return lo + df.rng.Float64()*(hi-lo)
}

// Advance moves every dot by one frame on a w x h surface
func (df *DotField) Advance(w, h float64) {
	for i := range df.dots {
		d := &df.dots[i]
		d.phase += d.phaseSpeed

		// Wander: small random nudge, then keep the drift slow
		d.vel.x += df.between(-dotWanderNoise, dotWanderNoise) * dotWander
		d.vel.y += df.between(-dotWanderNoise, dotWanderNoise) * dotWander
		d.vel.x = clamp(d.vel.x, -dotMaxVelocity, dotMaxVelocity)
		d.vel.y = clamp(d.vel.y, -dotMaxVelocity, dotMaxVelocity)

		d.pos.x += d.vel.x
		d.pos.y += d.vel.y

		// Wrap outside the visible edge so a dot never pops in or out
		if d.pos.x < -dotWrapMargin {
			d.pos.x = w + dotWrapMargin
		} else if d.pos.x > w+dotWrapMargin {
			d.pos.x = -dotWrapMargin
		}
		if d.pos.y < -dotWrapMargin {
			d.pos.y = h + dotWrapMargin
		} else if d.pos.y > h+dotWrapMargin {
			d.pos.y = -dotWrapMargin
		}
	}
}

// Draw renders every dot as a soft gold disc whose size and brightness follow its twinkle
func (df *DotField) Draw(c Canvas) {
	for i := range df.dots {
		d := &df.dots[i]
		tw := d.twinkle()
		a := d.alpha + tw

		df.stops[0] = ColorStop{Offset: 0, Color: withAlpha(colorDot, a*dotInnerAlpha)}
		df.stops[1] = ColorStop{Offset: dotMidStop, Color: withAlpha(colorDot, a*dotMidAlpha)}
		df.stops[2] = ColorStop{Offset: 1, Color: withAlpha(colorDot, 0)}
		c.FillRadial(d.pos.x, d.pos.y, d.r*(1+tw*dotGrowth), df.stops[:])
	}
}

// Len returns the population size
func (df *DotField) Len() int {
	return len(df.dots)
}
