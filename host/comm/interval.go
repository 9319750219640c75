package comm

import "time"

// IntervalCheck rate-limits a hardware access inside a fast poll loop:
// ShouldRun reports true at most once per interval, so a bus read can
// sit in a tight loop without hammering the controller.
type IntervalCheck struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewIntervalCheck creates a check with the minimum delay between
// ShouldRun returning true.
func NewIntervalCheck(interval time.Duration) *IntervalCheck {
	return &IntervalCheck{interval: interval, now: time.Now}
}

// ShouldRun reports whether the interval has elapsed since the last
// time it reported true. The first call always reports true.
func (ic *IntervalCheck) ShouldRun() bool {
	now := ic.now()
	if ic.last.IsZero() || now.Sub(ic.last) > ic.interval {
		ic.last = now
		return true
	}
	return false
}

// Sleep blocks until the interval has elapsed since the last mark. The
// first call only sets the mark and returns immediately, so a loop of
// work-then-Sleep runs its first iteration without delay.
func (ic *IntervalCheck) Sleep() {
	now := ic.now()
	if ic.last.IsZero() {
		ic.last = now
		return
	}
	elapsed := now.Sub(ic.last)
	if elapsed > ic.interval {
		return
	}
	remaining := ic.interval - elapsed
	time.Sleep(remaining)
	ic.last = now.Add(remaining)
}
