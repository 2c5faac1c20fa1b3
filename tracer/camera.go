package tracer

import (
	"errors"
	"math"
)

var ErrInvalidFOV = errors.New("tracer: fov must be in (0, pi/2)")

// Camera looks down +Z from (0, 0, -Near) through a view plane at z = 0.
type Camera struct {
	Near float32
	Far  float32 // reserved; no clipping uses it
	FOV  float32 // radians
}

// NewCamera derives the eye distance from the field of view: Near = 1/tan(fov).
func NewCamera(far, fov float32) Camera {
	return Camera{
		Near: float32(1 / math.Tan(float64(fov))),
		Far:  far,
		FOV:  fov,
	}
}

// Validate reports whether fov keeps tan finite and positive.
func (c Camera) Validate() error {
	if !(c.FOV > 0 && float64(c.FOV) < math.Pi/2) {
		return ErrInvalidFOV
	}
	return nil
}

// Eye is the ray origin shared by every pixel.
func (c Camera) Eye() Vec3 { return Vec3{0, 0, -c.Near} }

// Ray builds the (unnormalized) ray through view-plane point p.
func (c Camera) Ray(p Vec3) Ray {
	return Ray{
		Origin:    c.Eye(),
		Direction: Vec3{p.X, p.Y, c.Near},
	}
}

// Ray is an origin plus a direction. The direction need not be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns Origin + Direction*t.
func (r Ray) At(t float32) Vec3 {
	return r.Direction.Scale(t).Add(r.Origin)
}
