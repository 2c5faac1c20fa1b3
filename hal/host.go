//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	disp   *hostDisplay
	kbd    hostKeys
	t      *hostTime
}

// hostKeys is a Keyboard that is refreshed once per tick.
type hostKeys interface {
	Keyboard
	poll()
}

// New returns a host HAL with a width×height display and the window keyboard.
func New(width, height int) HAL {
	return newHostHAL(width, height, newHostKeyboard(), os.Stdout)
}

func newHostHAL(width, height int, kbd hostKeys, logw io.Writer) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: logw},
		disp:   newHostDisplay(width, height),
		kbd:    kbd,
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostInput struct {
	kbd Keyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
