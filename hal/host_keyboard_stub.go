//go:build !tinygo && !cgo

package hal

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) KeyDown(KeyCode) bool { return false }

func (k *hostKeyboard) poll() {
	// No keyboard support without the window backend.
}
