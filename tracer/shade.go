package tracer

import "math"

// LightDir is the direction light travels at animation time t. It orbits in
// the XZ plane with period 2π.
func LightDir(t float32) Vec3 {
	return Vec3{
		X: float32(math.Cos(float64(t))),
		Y: 0,
		Z: float32(math.Sin(float64(t))),
	}.Normalize()
}

// Lighting is -LightDir(t)·normal for the surface point hit on a sphere
// centered at center.
func Lighting(hit, center Vec3, t float32) float32 {
	n := hit.Sub(center).Normalize()
	return -LightDir(t).Dot(n)
}

// Shade maps the lighting term to a red channel with a squared falloff. The
// unlit side is exactly black; there is no ambient term. A NaN term (from a
// degenerate normal) also shades black.
func Shade(hit, center Vec3, t float32) uint32 {
	l := Lighting(hit, center, t)
	if !(l > 0) {
		return Background
	}
	return Pack(redLevel(l), 0, 0, 255)
}

func redLevel(l float32) uint8 {
	v := math.Round(float64(255 * l * l))
	if v > 255 {
		return 255
	}
	return uint8(v)
}
