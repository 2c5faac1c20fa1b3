package app

import (
	"strings"
	"testing"
)

func TestGuardRecoversPanic(t *testing.T) {
	h := newFakeHAL(120, 80)
	step := guard(h, func() error { panic("kaboom") })

	err := step()
	if err == nil || !strings.Contains(err.Error(), "kaboom") {
		t.Fatalf("expected panic error, got %v", err)
	}
	if h.disp.presents != 1 {
		t.Fatalf("panic screen presents = %d", h.disp.presents)
	}
	found := false
	for _, l := range h.log.lines {
		if strings.Contains(l, "panic: kaboom") {
			found = true
		}
	}
	if !found {
		t.Fatalf("panic not logged: %q", h.log.lines)
	}
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo", 2)
	if p != "hé" || r != "llo" {
		t.Fatalf("takeRunes = %q, %q", p, r)
	}
	p, r = takeRunes("ab", 5)
	if p != "ab" || r != "" {
		t.Fatalf("takeRunes = %q, %q", p, r)
	}
}
