//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Width   int
	Height  int
	Hz      int
	Ticks   uint64 // close the display after N ticks (0 = run until ctx is done)

	// OnExit receives the last presented frame when the run ends cleanly or
	// ctx is canceled. It is not called if nothing was presented.
	OnExit func(px []uint32, width, height int) error

	// Log receives log lines; nil means stdout.
	Log io.Writer
}

// RunHeadless runs the renderer without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	logw := cfg.Log
	if logw == nil {
		logw = os.Stdout
	}

	h := newHostHAL(cfg.Width, cfg.Height, newNullKeyboard(), logw)
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	finish := func() error {
		if cfg.OnExit == nil {
			return nil
		}
		px, w, hh := h.disp.frame()
		if px == nil {
			return nil
		}
		return cfg.OnExit(px, w, hh)
	}

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			// Cancellation is the normal end of an unbounded run; the last
			// frame is still handed to OnExit.
			return errors.Join(finish(), ctx.Err())
		case <-t.C:
			var err error
			if step != nil {
				err = step()
			}
			if errors.Is(err, ErrStop) {
				return finish()
			}
			if err != nil {
				return err
			}
			if !h.disp.Open() {
				return finish()
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				h.disp.close()
			}
		}
	}
}

type nullKeyboard struct {
	ch chan KeyEvent
}

func newNullKeyboard() *nullKeyboard { return &nullKeyboard{ch: make(chan KeyEvent)} }

func (k *nullKeyboard) Events() <-chan KeyEvent { return k.ch }
func (k *nullKeyboard) KeyDown(KeyCode) bool    { return false }
func (k *nullKeyboard) poll()                   {}
