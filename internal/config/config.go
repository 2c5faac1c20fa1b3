package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"raysphere/tracer"
)

var ErrInvalid = errors.New("config: invalid")

// MaxDimension bounds width and height. The HUD text path addresses pixels
// with int16 coordinates.
const MaxDimension = 8192

// Config holds the render and window settings.
type Config struct {
	// Frame
	Width  int `json:"width"`
	Height int `json:"height"`

	// Scene
	FOV    float32      `json:"fov"` // radians
	Far    float32      `json:"far"`
	Sphere SphereConfig `json:"sphere"`
	Root   string       `json:"root"` // "legacy" or "standard"

	// Runtime
	Workers  int    `json:"workers"`
	TPS      int    `json:"tps"`
	Scale    int    `json:"scale"`
	HUD      bool   `json:"hud"`
	LogEvery uint64 `json:"log_every"`
}

type SphereConfig struct {
	Center [3]float32 `json:"center"`
	Radius float32    `json:"radius"`
}

// Default is the 640×640 reference scene at ~60 updates per second.
func Default() Config {
	s := tracer.DefaultSphere
	return Config{
		Width:  640,
		Height: 640,
		FOV:    math.Pi / 4,
		Far:    10,
		Sphere: SphereConfig{
			Center: [3]float32{s.Center.X, s.Center.Y, s.Center.Z},
			Radius: s.Radius,
		},
		Root:  tracer.RootLegacy.String(),
		TPS:   60,
		Scale: 1,
	}
}

// Load reads a JSON config file on top of Default.
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags are command-line overrides. Zero values mean "not set".
type Flags struct {
	Width    int
	Height   int
	FOV      float64
	Root     string
	Workers  int
	TPS      int
	Scale    int
	HUD      bool
	LogEvery uint64
}

// Resolve applies non-zero flags over the config.
func (c *Config) Resolve(f Flags) {
	if f.Width > 0 {
		c.Width = f.Width
	}
	if f.Height > 0 {
		c.Height = f.Height
	}
	if f.FOV > 0 {
		c.FOV = float32(f.FOV)
	}
	if f.Root != "" {
		c.Root = f.Root
	}
	if f.Workers > 0 {
		c.Workers = f.Workers
	}
	if f.TPS > 0 {
		c.TPS = f.TPS
	}
	if f.Scale > 0 {
		c.Scale = f.Scale
	}
	if f.HUD {
		c.HUD = true
	}
	if f.LogEvery > 0 {
		c.LogEvery = f.LogEvery
	}
}

// Validate checks the values Scene and the runners depend on.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Width > MaxDimension || c.Height > MaxDimension {
		return fmt.Errorf("%w: size %dx%d exceeds %d", ErrInvalid, c.Width, c.Height, MaxDimension)
	}
	if c.TPS < 0 || c.Scale < 0 || c.Workers < 0 {
		return fmt.Errorf("%w: tps=%d scale=%d workers=%d", ErrInvalid, c.TPS, c.Scale, c.Workers)
	}
	s, err := c.scene()
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Scene builds the validated tracer scene.
func (c Config) Scene() (tracer.Scene, error) {
	if err := c.Validate(); err != nil {
		return tracer.Scene{}, err
	}
	return c.scene()
}

func (c Config) scene() (tracer.Scene, error) {
	root, err := tracer.ParseRootMode(c.Root)
	if err != nil {
		return tracer.Scene{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	ctr := c.Sphere.Center
	return tracer.Scene{
		Camera: tracer.NewCamera(c.Far, c.FOV),
		Sphere: tracer.Sphere{Center: tracer.V3(ctr[0], ctr[1], ctr[2]), Radius: c.Sphere.Radius},
		Root:   root,
	}, nil
}
