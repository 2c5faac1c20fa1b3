//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) KeyDown(code KeyCode) bool {
	key, ok := ebitenKey(code)
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(key)
}

func (k *hostKeyboard) poll() {
	emit := func(code KeyCode, press bool) {
		select {
		case k.ch <- KeyEvent{Code: code, Press: press}:
		default:
		}
	}

	for _, code := range []KeyCode{KeyEscape, KeyF1} {
		key, _ := ebitenKey(code)
		if inpututil.IsKeyJustPressed(key) {
			emit(code, true)
		}
		if inpututil.IsKeyJustReleased(key) {
			emit(code, false)
		}
	}
}

func ebitenKey(code KeyCode) (ebiten.Key, bool) {
	switch code {
	case KeyEscape:
		return ebiten.KeyEscape, true
	case KeyF1:
		return ebiten.KeyF1, true
	default:
		return 0, false
	}
}
