package tracer

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrRowPanic is returned by Render when shading a row panicked.
var ErrRowPanic = errors.New("tracer: panic while rendering")

// Renderer fills whole frames. Rows are independent, so they are spread over
// Workers goroutines and joined before Render returns.
type Renderer struct {
	Scene   Scene
	Width   int
	Height  int
	Workers int // <= 0 means runtime.NumCPU()

	// pixel overrides Scene.Pixel in tests.
	pixel func(x, y, w, h int, t float32) uint32
}

// NewFrame allocates a buffer sized for r.
func (r *Renderer) NewFrame() []uint32 {
	return make([]uint32, r.Width*r.Height)
}

// Concurrency is the number of goroutines Render uses.
func (r *Renderer) Concurrency() int {
	if r.Workers <= 0 {
		return runtime.NumCPU()
	}
	return r.Workers
}

// Render overwrites every pixel of buf for time t. buf is row-major with
// index y*Width + x. A panic while shading a row is returned as ErrRowPanic,
// on whichever goroutine the row ran.
func (r *Renderer) Render(buf []uint32, t float32) error {
	w, h := r.Width, r.Height
	if w <= 0 || h <= 0 {
		return fmt.Errorf("tracer: invalid frame size %dx%d", w, h)
	}
	if len(buf) != w*h {
		return fmt.Errorf("tracer: buffer has %d pixels, want %d", len(buf), w*h)
	}

	workers := r.Concurrency()
	if workers == 1 {
		for y := 0; y < h; y++ {
			if err := r.renderRow(buf, y, t); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for y := 0; y < h; y++ {
		y := y
		g.Go(func() error {
			return r.renderRow(buf, y, t)
		})
	}
	return g.Wait()
}

func (r *Renderer) renderRow(buf []uint32, y int, t float32) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%w: row %d: %v", ErrRowPanic, y, v)
		}
	}()

	pixel := r.pixel
	if pixel == nil {
		pixel = r.Scene.Pixel
	}
	w, h := r.Width, r.Height
	row := buf[y*w : (y+1)*w]
	for x := range row {
		row[x] = pixel(x, y, w, h, t)
	}
	return nil
}
