package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	// ErrStop ends RunWindow and RunHeadless cleanly when returned (or
	// wrapped) by the step function.
	ErrStop = errors.New("stop")

	// ErrSizeMismatch is returned by Present when the buffer does not match the
	// declared or the surface dimensions.
	ErrSizeMismatch = errors.New("framebuffer size mismatch")

	// ErrClockBackwards is returned by Time.Elapsed when the wall clock reads
	// earlier than the start instant.
	ErrClockBackwards = errors.New("clock went backwards")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatARGB8888 is 32bpp packed into a uint32: 0xAARRGGBB.
	PixelFormatARGB8888 PixelFormat = iota + 1
)

// Display is the presentation surface.
//
// Present copies px; the caller keeps ownership and may overwrite it as soon
// as Present returns.
type Display interface {
	Size() (w, h int)
	Format() PixelFormat
	Open() bool
	Present(px []uint32, width, height int) error
	SetTitle(title string)
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyF1
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard reports level state (KeyDown) and press/release edges (Events).
type Keyboard interface {
	KeyDown(code KeyCode) bool
	Events() <-chan KeyEvent
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides the wall clock used for frame-rate reporting.
type Time interface {
	Now() time.Time
	Elapsed(since time.Time) (time.Duration, error)
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
