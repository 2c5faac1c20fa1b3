//go:build !tinygo && !cgo

package hal

import "errors"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Title  string
}

func RunWindow(_ WindowConfig, _ func(h HAL) func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
