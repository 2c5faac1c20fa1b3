//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int
	Height int
	Scale  int    // window pixels per framebuffer pixel
	TPS    int    // update rate cap
	Title  string // initial title
}

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes or the step function returns ErrStop.
func RunWindow(cfg WindowConfig, newApp func(HAL) func() error) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	h := New(cfg.Width, cfg.Height).(*hostHAL)
	h.disp.SetTitle(cfg.Title)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.h.disp.close()
	}
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrStop) {
				return ebiten.Termination
			}
			return err
		}
	} else if !g.h.disp.Open() {
		return ebiten.Termination
	}
	if title, ok := g.h.disp.takeTitle(); ok {
		ebiten.SetWindowTitle(title)
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	d := g.h.disp
	if g.img == nil || g.img.Bounds().Dx() != d.width || g.img.Bounds().Dy() != d.height {
		g.img = image.NewRGBA(image.Rect(0, 0, d.width, d.height))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(d.width, d.height)
	}

	d.snapshotRGBA(g.img.Pix)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.disp.width, g.h.disp.height
}
