package game

import "math"

// Geometry is the measured size of one render surface.
// W and H are logical pixels; DPR maps them to device pixels.
type Geometry struct {
	W   float64
	H   float64
	DPR float64
}

// NewGeometry clamps a measurement to something drawable.
// Sizes below one logical pixel become one, and DPR is never below one.
func NewGeometry(w, h, dpr float64) Geometry {
	return Geometry{
		W:   atLeastOne(w),
		H:   atLeastOne(h),
		DPR: atLeastOne(dpr),
	}
}

// atLeastOne also catches NaN, which fails every comparison
func atLeastOne(v float64) float64 {
	if !(v >= 1) {
		return 1
	}
	return v
}

// BufferSize returns the backing pixel buffer size, floor(w*dpr) x floor(h*dpr)
func (g Geometry) BufferSize() (int, int) {
	bw := int(math.Floor(g.W * g.DPR))
	bh := int(math.Floor(g.H * g.DPR))
	return max(bw, 1), max(bh, 1)
}

// ToDevice converts logical coordinates to device pixels
func (g Geometry) ToDevice(x, y float64) (float64, float64) {
	return x * g.DPR, y * g.DPR
}

// Focal returns the haze and comet origin, above the true centre
func (g Geometry) Focal() (float64, float64) {
	return g.W * focalX, g.H * focalY
}

// HazeRadius returns the falloff radius of the background glow
func (g Geometry) HazeRadius() float64 {
	return hazeRadius * math.Min(g.W, g.H)
}
