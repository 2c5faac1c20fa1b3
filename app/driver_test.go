package app

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"
	"testing"
	"time"

	"raysphere/hal"
	"raysphere/tracer"
)

func testConfig() Config {
	return Config{Name: "test", Scene: tracer.DefaultScene(), Workers: 2}
}

func TestDriverRendersAndAdvances(t *testing.T) {
	h := newFakeHAL(16, 16)
	d, err := NewDriver(h, testConfig())
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	if got := h.disp.lastTitle(); got != "test - ESC to exit" {
		t.Fatalf("initial title %q", got)
	}

	const n = 5
	for i := 0; i < n; i++ {
		if err := d.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	if h.disp.presents != n {
		t.Fatalf("presents = %d, want %d", h.disp.presents, n)
	}
	c := d.Clock()
	if c.Frames != n || math.Abs(float64(c.Time-n*tracer.TimeStep)) > 1e-5 {
		t.Fatalf("clock = %+v", c)
	}

	// The last presented frame was rendered before the final advance.
	r := &tracer.Renderer{Scene: tracer.DefaultScene(), Width: 16, Height: 16, Workers: 1}
	want := r.NewFrame()
	var tm tracer.Clock
	for i := 0; i < n-1; i++ {
		tm.Advance()
	}
	if err := r.Render(want, tm.Time); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i := range want {
		if h.disp.last[i] != want[i] {
			t.Fatalf("pixel %d = %#08x, want %#08x", i, h.disp.last[i], want[i])
		}
	}
}

func TestDriverTerminatesWhenClosed(t *testing.T) {
	h := newFakeHAL(8, 8)
	d, err := NewDriver(h, testConfig())
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	if err := d.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	h.disp.open = false
	before := append([]uint32(nil), d.buf...)
	for i := 0; i < 3; i++ {
		err := d.Step()
		if !errors.Is(err, ErrTerminated) || !errors.Is(err, hal.ErrStop) {
			t.Fatalf("expected ErrTerminated, got %v", err)
		}
	}
	if h.disp.presents != 1 {
		t.Fatalf("presents after close = %d, want 1", h.disp.presents)
	}
	if d.State() != Terminated {
		t.Fatalf("state = %v", d.State())
	}
	for i := range before {
		if d.buf[i] != before[i] {
			t.Fatalf("pixel %d written after termination", i)
		}
	}

	// Reopening does not resume.
	h.disp.open = true
	if err := d.Step(); !errors.Is(err, ErrTerminated) {
		t.Fatalf("expected ErrTerminated after reopen, got %v", err)
	}
	if h.disp.presents != 1 {
		t.Fatal("presented after termination")
	}
}

func TestDriverTerminatesOnEscape(t *testing.T) {
	h := newFakeHAL(8, 8)
	d, err := NewDriver(h, testConfig())
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	h.kbd.down[hal.KeyEscape] = true
	if err := d.Step(); !errors.Is(err, ErrTerminated) {
		t.Fatalf("expected ErrTerminated, got %v", err)
	}
	if h.disp.presents != 0 {
		t.Fatalf("presents = %d", h.disp.presents)
	}
	if last := h.log.lines[len(h.log.lines)-1]; !strings.Contains(last, "exit key") {
		t.Fatalf("log = %q", last)
	}
}

func TestDriverPresentFailureIsReturned(t *testing.T) {
	h := newFakeHAL(8, 8)
	d, err := NewDriver(h, testConfig())
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	h.disp.err = hal.ErrSizeMismatch
	err = d.Step()
	if !errors.Is(err, hal.ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
	if d.Clock().Frames != 0 {
		t.Fatal("clock advanced after failed present")
	}
}

func TestDriverTitleFPS(t *testing.T) {
	h := newFakeHAL(4, 4)
	d, err := NewDriver(h, testConfig())
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	for i := 0; i < 10; i++ {
		h.tm.now = h.tm.now.Add(100 * time.Millisecond)
		if err := d.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	// 10 frames in 1s.
	if got := h.disp.lastTitle(); got != "test 10" {
		t.Fatalf("title %q", got)
	}

	h.tm.fail = true
	if err := d.Step(); err != nil {
		t.Fatalf("Step with broken clock: %v", err)
	}
	if got := h.disp.lastTitle(); got != "test error" {
		t.Fatalf("title %q", got)
	}
	if h.disp.presents != 11 {
		t.Fatalf("rendering stopped on clock error: presents=%d", h.disp.presents)
	}
}

func TestDriverRejectsInvalidScene(t *testing.T) {
	cfg := testConfig()
	cfg.Scene.Sphere.Radius = 0
	if _, err := NewDriver(newFakeHAL(4, 4), cfg); !errors.Is(err, tracer.ErrInvalidRadius) {
		t.Fatalf("expected ErrInvalidRadius, got %v", err)
	}

	step := NewWithConfig(newFakeHAL(4, 4), cfg)
	if err := step(); !errors.Is(err, tracer.ErrInvalidRadius) {
		t.Fatalf("step: expected ErrInvalidRadius, got %v", err)
	}
}

func TestDriverHUDToggle(t *testing.T) {
	h := newFakeHAL(64, 32)
	cfg := testConfig()
	cfg.Scene.Sphere.Center = tracer.V3(100, 0, -1) // no pixel ray comes near it
	d, err := NewDriver(h, cfg)
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}

	if err := d.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if n := countNonBackground(h.disp.last); n != 0 {
		t.Fatalf("HUD off: %d non-background pixels", n)
	}

	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyF1, Press: true}
	if err := d.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if n := countNonBackground(h.disp.last); n == 0 {
		t.Fatal("HUD on: no text pixels")
	}
}

func TestDriverLogsEvery(t *testing.T) {
	h := newFakeHAL(4, 4)
	cfg := testConfig()
	cfg.LogEvery = 2
	d, err := NewDriver(h, cfg)
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	start := len(h.log.lines)
	for i := 0; i < 4; i++ {
		if err := d.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if got := len(h.log.lines) - start; got != 2 {
		t.Fatalf("stats lines = %d, want 2", got)
	}
}

func countNonBackground(px []uint32) int {
	n := 0
	for _, p := range px {
		if p != tracer.Background {
			n++
		}
	}
	return n
}

func TestDriverLogsResolvedWorkers(t *testing.T) {
	h := newFakeHAL(4, 4)
	cfg := testConfig()
	cfg.Workers = 0
	if _, err := NewDriver(h, cfg); err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	want := fmt.Sprintf("workers=%d ", runtime.NumCPU())
	for _, l := range h.log.lines {
		if strings.Contains(l, want) {
			return
		}
	}
	t.Fatalf("no %q in start-up log %q", want, h.log.lines)
}

func TestHUDSizeClampsToInt16(t *testing.T) {
	d := &fbDisplay{w: 40000, h: 12}
	x, y := d.Size()
	if x != math.MaxInt16 || y != 12 {
		t.Fatalf("Size = %d, %d", x, y)
	}
}
