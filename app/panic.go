package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"raysphere/hal"
	"raysphere/tracer"
)

// guard wraps step so a panic on the calling goroutine is logged, painted onto
// the display as text, and returned as an error instead of killing the window
// loop without a trace. Render rows running on worker goroutines recover their
// own panics and come back as tracer.ErrRowPanic.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			reportPanic(h, v, stack)
			err = fmt.Errorf("app: panic: %v", v)
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, v any, stack []byte) {
	lines := []string{"raysphere panic:", fmt.Sprintf("panic: %v", v)}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	w, hh := disp.Size()
	if w <= 0 || hh <= 0 {
		return
	}
	buf := make([]uint32, w*hh)
	for i := range buf {
		buf[i] = tracer.Pack(0, 0, 96, 255)
	}

	p := newHUD(buf, w, hh)
	cols := w / 6
	if cols <= 0 {
		cols = 1
	}
	var wrapped []string
	for _, line := range lines {
		for len(line) > 0 {
			chunk, rest := takeRunes(line, cols)
			wrapped = append(wrapped, chunk)
			line = strings.TrimLeft(rest, " ")
		}
	}
	p.draw(wrapped)
	_ = disp.Present(buf, w, hh)
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
