//go:build !tinygo

package hal

import "time"

type hostTime struct {
	now func() time.Time
}

func newHostTime() *hostTime {
	// Round(0) drops the monotonic reading so wall-clock steps are visible.
	return &hostTime{now: func() time.Time { return time.Now().Round(0) }}
}

func (t *hostTime) Now() time.Time { return t.now() }

func (t *hostTime) Elapsed(since time.Time) (time.Duration, error) {
	d := t.now().Sub(since)
	if d < 0 {
		return 0, ErrClockBackwards
	}
	return d, nil
}
