// Package tracer is a minimal per-pixel ray caster for a single lit sphere.
//
// Pipeline (fixed):
//
//	pixel (x, y) → view plane → camera ray → sphere intersection → shading → packed pixel.
//
// All math is float32. Every value type (Vec3, Ray, Camera, Sphere, Scene) is
// immutable; a frame is a pure function of the scene and the animation time,
// so rows can be rendered concurrently without synchronization.
//
// Packed pixels are ARGB8888: blue in the low byte, then green, red, alpha.
package tracer
