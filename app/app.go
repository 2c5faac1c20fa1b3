package app

import (
	"raysphere/hal"
)

// NewWithConfig builds the frame driver on h and returns its step function,
// to be called once per display tick. Construction errors are returned by the
// first call.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	d, err := NewDriver(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return guard(h, d.Step)
}
