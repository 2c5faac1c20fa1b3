package app

import (
	"errors"
	"fmt"
	"time"

	"raysphere/hal"
	"raysphere/internal/buildinfo"
	"raysphere/tracer"
)

// ErrTerminated is returned by Step once the display closed or the exit key
// was pressed. It wraps hal.ErrStop so the runners end cleanly.
var ErrTerminated = fmt.Errorf("app: terminated: %w", hal.ErrStop)

// Config is the frame driver configuration.
type Config struct {
	Name     string // title and log prefix; defaults to buildinfo.Name
	Scene    tracer.Scene
	Workers  int
	HUD      bool   // start with the overlay visible (F1 toggles)
	LogEvery uint64 // log a stats line every N frames (0 = never)
}

// State is the driver state machine.
type State uint8

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Driver renders one full frame per Step and presents it.
type Driver struct {
	cfg  Config
	disp hal.Display
	kbd  hal.Keyboard
	tm   hal.Time
	log  hal.Logger

	r   *tracer.Renderer
	buf []uint32
	hud *hud

	clock   tracer.Clock
	state   State
	start   time.Time
	showHUD bool
}

// NewDriver validates the scene and allocates the framebuffer at the
// display's size.
func NewDriver(h hal.HAL, cfg Config) (*Driver, error) {
	if h == nil || h.Display() == nil {
		return nil, errors.New("app: no display")
	}
	if err := cfg.Scene.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	if cfg.Name == "" {
		cfg.Name = buildinfo.Name
	}

	disp := h.Display()
	if f := disp.Format(); f != hal.PixelFormatARGB8888 {
		return nil, fmt.Errorf("app: unsupported pixel format %d", f)
	}
	w, hh := disp.Size()
	if w <= 0 || hh <= 0 {
		return nil, fmt.Errorf("app: invalid display size %dx%d", w, hh)
	}

	d := &Driver{
		cfg:  cfg,
		disp: disp,
		tm:   h.Time(),
		log:  h.Logger(),
		r: &tracer.Renderer{
			Scene:   cfg.Scene,
			Width:   w,
			Height:  hh,
			Workers: cfg.Workers,
		},
		showHUD: cfg.HUD,
	}
	if in := h.Input(); in != nil {
		d.kbd = in.Keyboard()
	}
	d.buf = d.r.NewFrame()
	d.hud = newHUD(d.buf, w, hh)
	if d.tm != nil {
		d.start = d.tm.Now()
	}

	disp.SetTitle(cfg.Name + " - ESC to exit")
	d.logf("%s", buildinfo.Long())
	d.logf("%s: size=%dx%d aspect=%g workers=%d root=%s fov=%g",
		cfg.Name, w, hh, float32(w)/float32(hh), d.r.Concurrency(), cfg.Scene.Root, cfg.Scene.Camera.FOV)
	return d, nil
}

func (d *Driver) State() State        { return d.state }
func (d *Driver) Clock() tracer.Clock { return d.clock }

// Step runs one tick: check for exit, render, present, advance the clock.
func (d *Driver) Step() error {
	if d.state == Terminated {
		return ErrTerminated
	}

	d.drainKeys()
	if !d.disp.Open() {
		d.terminate("display closed")
		return ErrTerminated
	}
	if d.kbd != nil && d.kbd.KeyDown(hal.KeyEscape) {
		d.terminate("exit key")
		return ErrTerminated
	}

	if err := d.r.Render(d.buf, d.clock.Time); err != nil {
		return fmt.Errorf("app: render frame %d: %w", d.clock.Frames, err)
	}
	if d.showHUD {
		d.hud.draw(d.hudLines())
	}
	if err := d.disp.Present(d.buf, d.r.Width, d.r.Height); err != nil {
		return fmt.Errorf("app: present frame %d: %w", d.clock.Frames, err)
	}

	d.clock.Advance()
	d.disp.SetTitle(d.title())

	if n := d.cfg.LogEvery; n > 0 && d.clock.Frames%n == 0 {
		d.logf("%s: frame=%d time=%.2f fps=%s", d.cfg.Name, d.clock.Frames, d.clock.Time, d.fpsText())
	}
	return nil
}

func (d *Driver) terminate(reason string) {
	d.state = Terminated
	d.logf("%s: %s after %d frames (time=%.2f)", d.cfg.Name, reason, d.clock.Frames, d.clock.Time)
}

func (d *Driver) drainKeys() {
	if d.kbd == nil {
		return
	}
	ch := d.kbd.Events()
	if ch == nil {
		return
	}
	for {
		select {
		case ev := <-ch:
			if ev.Press && ev.Code == hal.KeyF1 {
				d.showHUD = !d.showHUD
			}
		default:
			return
		}
	}
}

func (d *Driver) title() string {
	return d.cfg.Name + " " + d.fpsText()
}

// fpsText is frames presented per second since start, or "error" when the
// clock cannot be read.
func (d *Driver) fpsText() string {
	if d.tm == nil {
		return "error"
	}
	el, err := d.tm.Elapsed(d.start)
	if err != nil {
		return "error"
	}
	return fmt.Sprintf("%d", fps(d.clock.Frames, el))
}

func fps(frames uint64, el time.Duration) uint64 {
	if el <= 0 {
		return 0
	}
	return uint64(float64(frames) / el.Seconds())
}

func (d *Driver) hudLines() []string {
	return []string{
		"fps " + d.fpsText(),
		fmt.Sprintf("t %.2f", d.clock.Time),
		"root " + d.cfg.Scene.Root.String(),
	}
}

func (d *Driver) logf(format string, args ...any) {
	if d.log == nil {
		return
	}
	d.log.WriteLineString(fmt.Sprintf(format, args...))
}
