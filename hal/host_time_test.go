//go:build !tinygo

package hal

import (
	"errors"
	"testing"
	"time"
)

func TestHostTimeElapsed(t *testing.T) {
	now := time.Unix(100, 0)
	ht := &hostTime{now: func() time.Time { return now }}

	start := ht.Now()
	now = now.Add(1500 * time.Millisecond)
	d, err := ht.Elapsed(start)
	if err != nil {
		t.Fatalf("Elapsed: %v", err)
	}
	if d != 1500*time.Millisecond {
		t.Fatalf("elapsed = %v", d)
	}

	now = now.Add(-time.Hour) // wall clock stepped back
	if _, err := ht.Elapsed(start); !errors.Is(err, ErrClockBackwards) {
		t.Fatalf("expected ErrClockBackwards, got %v", err)
	}
}
