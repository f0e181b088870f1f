package game

import (
	"image/color"
	"math"
)

// Ambient dot constants
const (
	dotRadiusMin     = 0.7
	dotRadiusMax     = 2.2
	dotSpeed         = 0.18 // initial velocity range per axis
	dotPhaseSpeedMin = 0.008
	dotPhaseSpeedMax = 0.02
	dotAlphaMin      = 0.25
	dotAlphaMax      = 0.9
	dotTwinkle       = 0.8
	dotWanderNoise   = 0.01
	dotWander        = 0.45
	dotMaxVelocity   = 0.45
	dotWrapMargin    = 20.0 // logical pixels beyond each edge
	dotInnerAlpha    = 0.9
	dotMidAlpha      = 0.35
	dotMidStop       = 0.25
	dotGrowth        = 0.9 // radius grows by tw*dotGrowth
)

// Comet constants
const (
	cometChance     = 0.06
	maxComets       = 18
	cometSpeedMin   = 2.2
	cometSpeedMax   = 4.4
	cometOffsetMax  = 20.0
	cometCurveMax   = 0.03 // radians per tick
	cometWidthMin   = 0.8
	cometWidthMax   = 1.6
	cometAlphaMin   = 0.35
	cometAlphaMax   = 0.75
	cometHueMin     = 42.0
	cometHueMax     = 52.0
	cometLifeMin    = 34
	cometLifeMax    = 54
	cometDamping    = 0.985
	cometHeadRadius = 18.0
	cometSaturation = 1.0
	cometLightness  = 0.7
)

// Compositor constants
const (
	focalX      = 0.5
	focalY      = 0.38 // above centre on purpose
	hazeRadius  = 0.55 // fraction of min(w, h)
	hazeAlpha   = 0.22
	tau         = 2 * math.Pi
	defaultDots = 160
)

// Color constants
var (
	colorPage = color.NRGBA{R: 5, G: 6, B: 12, A: 255}
	colorDot  = color.NRGBA{R: 255, G: 214, B: 140, A: 255}
	colorHaze = color.NRGBA{R: 255, G: 196, B: 110, A: 255}
	colorText = color.NRGBA{R: 244, G: 230, B: 200, A: 255}
)
