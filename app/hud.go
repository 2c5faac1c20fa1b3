package app

import (
	"image/color"
	"math"

	"raysphere/tracer"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var hudFG = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// fbDisplay lets tinyfont draw into a packed ARGB framebuffer.
type fbDisplay struct {
	buf []uint32
	w   int
	h   int
}

var _ drivers.Displayer = (*fbDisplay)(nil)

// Size clamps to the int16 range tinyfont works in; pixels past it are never
// addressed.
func (d *fbDisplay) Size() (x, y int16) { return clampInt16(d.w), clampInt16(d.h) }

func clampInt16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < 0 {
		return 0
	}
	return int16(v)
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.w || iy < 0 || iy >= d.h {
		return
	}
	off := iy*d.w + ix
	if off >= len(d.buf) {
		return
	}
	d.buf[off] = tracer.Pack(c.R, c.G, c.B, 255)
}

func (d *fbDisplay) Display() error { return nil }

// hud writes short status lines in the top-left corner.
type hud struct {
	d    *fbDisplay
	font *tinyfont.Font
}

func newHUD(buf []uint32, w, h int) *hud {
	return &hud{d: &fbDisplay{buf: buf, w: w, h: h}, font: &proggy.TinySZ8pt7b}
}

func (h *hud) lineHeight() int16 {
	if h.font.YAdvance == 0 {
		return 10
	}
	return int16(h.font.YAdvance)
}

func (h *hud) draw(lines []string) {
	lh := h.lineHeight()
	y := lh
	for _, line := range lines {
		if int(y) > h.d.h {
			return
		}
		tinyfont.WriteLine(h.d, h.font, 2, y, line, hudFG)
		y += lh
	}
}
