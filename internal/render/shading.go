package render

import (
	"image/color"
	"math"
)

// Shading darkens surfaces linearly with distance down to a floor.
type Shading struct {
	FalloffDistance float64
	MinBrightness   float64
}

// Brightness returns the light factor for a perpendicular distance. A
// non-positive falloff disables distance shading.
func (s Shading) Brightness(dist float64) float64 {
	if s.FalloffDistance <= 0 {
		return 1
	}
	b := 1.0 - dist/s.FalloffDistance
	if b < s.MinBrightness {
		b = s.MinBrightness
	}
	return b
}

// Flashlight adds a brightening band centered on the view direction.
type Flashlight struct {
	Enabled   bool
	Strength  float64
	HalfWidth float64 // radians
}

// Boost returns the extra light for a ray offset (radians) from the view
// direction. It peaks at the center and is zero at or beyond HalfWidth.
func (f Flashlight) Boost(offset float64) float64 {
	if !f.Enabled || f.HalfWidth <= 0 {
		return 0
	}
	a := math.Abs(offset)
	if a >= f.HalfWidth {
		return 0
	}
	return f.Strength * (1 - a/f.HalfWidth)
}

// shade scales the color channels by k, saturating at 255. Alpha is kept.
func shade(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: scaleChannel(c.R, k),
		G: scaleChannel(c.G, k),
		B: scaleChannel(c.B, k),
		A: c.A,
	}
}

func scaleChannel(v uint8, k float64) uint8 {
	f := float64(v) * k
	switch {
	case f >= 255:
		return 255
	case f <= 0:
		return 0
	}
	return uint8(f)
}
