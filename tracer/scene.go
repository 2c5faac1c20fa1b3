package tracer

import "math"

// TimeStep is how far the animation clock advances per frame.
const TimeStep float32 = 0.05

// Scene is everything a frame depends on besides the animation time.
type Scene struct {
	Camera Camera
	Sphere Sphere
	Root   RootMode
}

// DefaultScene is a π/4 camera looking at DefaultSphere.
func DefaultScene() Scene {
	return Scene{
		Camera: NewCamera(10, math.Pi/4),
		Sphere: DefaultSphere,
		Root:   RootLegacy,
	}
}

func (s Scene) Validate() error {
	if err := s.Camera.Validate(); err != nil {
		return err
	}
	return s.Sphere.Validate()
}

// CastRay returns the packed color seen along r at time t.
func (s Scene) CastRay(r Ray, t float32) uint32 {
	hit, ok := s.Sphere.Intersect(r, s.Root)
	if !ok {
		return Background
	}
	return Shade(hit, s.Sphere.Center, t)
}

// Pixel returns the packed color of pixel (x, y) in a w×h frame at time t.
func (s Scene) Pixel(x, y, w, h int, t float32) uint32 {
	return s.CastRay(s.Camera.Ray(NormalizeCoords(x, y, w, h)), t)
}

// Clock is the animation state carried between frames.
type Clock struct {
	Time   float32
	Frames uint64
}

// Advance moves to the next frame.
func (c *Clock) Advance() {
	c.Time += TimeStep
	c.Frames++
}
