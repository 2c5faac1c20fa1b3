package tracer

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize divides each component by the length.
//
// The zero vector is not special-cased: the result is NaN.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}
