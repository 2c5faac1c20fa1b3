//go:build !tinygo

package hal

import (
	"fmt"
	"sync"
)

type hostDisplay struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []uint32
	shown  bool
	closed bool

	title      string
	titleDirty bool
}

func newHostDisplay(width, height int) *hostDisplay {
	return &hostDisplay{
		width:  width,
		height: height,
		buf:    make([]uint32, width*height),
	}
}

func (d *hostDisplay) Size() (w, h int)    { return d.width, d.height }
func (d *hostDisplay) Format() PixelFormat { return PixelFormatARGB8888 }

func (d *hostDisplay) Open() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.closed
}

func (d *hostDisplay) close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}

func (d *hostDisplay) Present(px []uint32, width, height int) error {
	if width != d.width || height != d.height || len(px) != width*height {
		return fmt.Errorf("present %dx%d (%d px) on %dx%d surface: %w",
			width, height, len(px), d.width, d.height, ErrSizeMismatch)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(d.buf, px)
	d.shown = true
	return nil
}

func (d *hostDisplay) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if title == d.title {
		return
	}
	d.title = title
	d.titleDirty = true
}

// takeTitle returns the title if it changed since the last call.
func (d *hostDisplay) takeTitle() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.titleDirty {
		return "", false
	}
	d.titleDirty = false
	return d.title, true
}

// snapshotRGBA converts the last presented frame into dst (4 bytes per pixel).
func (d *hostDisplay) snapshotRGBA(dst []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rgbaFromARGB(dst, d.buf)
}

// frame returns a copy of the last presented frame, or nil if nothing was
// presented yet.
func (d *hostDisplay) frame() ([]uint32, int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.shown {
		return nil, d.width, d.height
	}
	out := make([]uint32, len(d.buf))
	copy(out, d.buf)
	return out, d.width, d.height
}
