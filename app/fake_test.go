package app

import (
	"fmt"
	"time"

	"raysphere/hal"
)

type fakeDisplay struct {
	w, h     int
	open     bool
	presents int
	last     []uint32
	titles   []string
	err      error
}

func (d *fakeDisplay) Size() (int, int)        { return d.w, d.h }
func (d *fakeDisplay) Format() hal.PixelFormat { return hal.PixelFormatARGB8888 }
func (d *fakeDisplay) Open() bool              { return d.open }
func (d *fakeDisplay) SetTitle(title string)   { d.titles = append(d.titles, title) }
func (d *fakeDisplay) lastTitle() string       { return d.titles[len(d.titles)-1] }

func (d *fakeDisplay) Present(px []uint32, w, h int) error {
	if d.err != nil {
		return d.err
	}
	if w != d.w || h != d.h || len(px) != w*h {
		return fmt.Errorf("fake: %w", hal.ErrSizeMismatch)
	}
	d.presents++
	d.last = append(d.last[:0], px...)
	return nil
}

type fakeKeyboard struct {
	down map[hal.KeyCode]bool
	ch   chan hal.KeyEvent
}

func newFakeKeyboard() *fakeKeyboard {
	return &fakeKeyboard{down: map[hal.KeyCode]bool{}, ch: make(chan hal.KeyEvent, 8)}
}

func (k *fakeKeyboard) KeyDown(code hal.KeyCode) bool { return k.down[code] }
func (k *fakeKeyboard) Events() <-chan hal.KeyEvent   { return k.ch }

type fakeInput struct{ kbd *fakeKeyboard }

func (in fakeInput) Keyboard() hal.Keyboard { return in.kbd }

type fakeTime struct {
	now  time.Time
	fail bool
}

func (t *fakeTime) Now() time.Time { return t.now }
func (t *fakeTime) Elapsed(since time.Time) (time.Duration, error) {
	if t.fail {
		return 0, hal.ErrClockBackwards
	}
	return t.now.Sub(since), nil
}

type fakeLogger struct{ lines []string }

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type fakeHAL struct {
	disp *fakeDisplay
	kbd  *fakeKeyboard
	tm   *fakeTime
	log  *fakeLogger
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		disp: &fakeDisplay{w: w, h: h, open: true},
		kbd:  newFakeKeyboard(),
		tm:   &fakeTime{now: time.Unix(1000, 0)},
		log:  &fakeLogger{},
	}
}

func (f *fakeHAL) Logger() hal.Logger   { return f.log }
func (f *fakeHAL) Display() hal.Display { return f.disp }
func (f *fakeHAL) Input() hal.Input     { return fakeInput{kbd: f.kbd} }
func (f *fakeHAL) Time() hal.Time       { return f.tm }
