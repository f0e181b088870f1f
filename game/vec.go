package game

import "math"

// vec2 represents a 2D vector
type vec2 struct {
	x float64
	y float64
}

// length returns the magnitude of the vector
func (v vec2) length() float64 {
	return math.Hypot(v.x, v.y)
}

// rotatePoint rotates a point around the origin by the given angle (in radians)
func rotatePoint(p vec2, angle float64) vec2 {
	sinA := math.Sin(angle)
	cosA := math.Cos(angle)
	return vec2{
		x: p.x*cosA - p.y*sinA,
		y: p.x*sinA + p.y*cosA,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
