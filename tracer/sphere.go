package tracer

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidRadius = errors.New("tracer: sphere radius must be positive")

// Sphere is a center and a radius.
type Sphere struct {
	Center Vec3
	Radius float32
}

// DefaultSphere is the scene's only object.
var DefaultSphere = Sphere{Center: Vec3{0, -2, 4}, Radius: 0.75}

func (s Sphere) Validate() error {
	if !(s.Radius > 0) {
		return ErrInvalidRadius
	}
	return nil
}

// RootMode selects how the near intersection distance is computed.
type RootMode uint8

const (
	// RootLegacy computes t0 = (b² - √disc) / 2a. It is not the textbook near
	// root, but it is what the reference image was rendered with.
	RootLegacy RootMode = iota
	// RootStandard computes t0 = (-b - √disc) / 2a.
	RootStandard
)

func (m RootMode) String() string {
	switch m {
	case RootLegacy:
		return "legacy"
	case RootStandard:
		return "standard"
	default:
		return fmt.Sprintf("RootMode(%d)", uint8(m))
	}
}

// ParseRootMode accepts the names produced by String.
func ParseRootMode(s string) (RootMode, error) {
	switch s {
	case "legacy", "":
		return RootLegacy, nil
	case "standard":
		return RootStandard, nil
	default:
		return 0, fmt.Errorf("tracer: unknown root mode %q", s)
	}
}

// Discriminant returns the quadratic coefficients a and b of |O + tD - P|² = R²
// together with b² - 4ac.
func (s Sphere) Discriminant(r Ray) (a, b, disc float32) {
	o, d, p := r.Origin, r.Direction, s.Center
	a = d.Dot(d)
	b = 2 * o.Sub(p).Dot(d)
	c := p.Dot(p) + o.Dot(o) - 2*o.Dot(p) - s.Radius*s.Radius
	disc = b*b - 4*a*c
	return a, b, disc
}

// Intersect returns the hit point selected by mode. A tangent ray
// (disc == 0) is a miss.
func (s Sphere) Intersect(r Ray, mode RootMode) (Vec3, bool) {
	a, b, disc := s.Discriminant(r)
	if disc <= 0 {
		return Vec3{}, false
	}
	sq := float32(math.Sqrt(float64(disc)))

	var t0 float32
	switch mode {
	case RootStandard:
		t0 = (-b - sq) / (2 * a)
	default:
		t0 = (b*b - sq) / (2 * a)
	}
	return r.At(t0), true
}
