package invaders

import "time"

// Timer counts down a duration as simulation time is fed into it.
// It does not read the clock; the update loop passes elapsed time explicitly.
type Timer struct {
	duration  time.Duration
	remaining time.Duration
}

// NewTimer returns a timer that becomes ready after d of updates.
func NewTimer(d time.Duration) Timer {
	return Timer{duration: d, remaining: d}
}

// Update consumes delta from the remaining time.
func (t *Timer) Update(delta time.Duration) {
	t.remaining -= delta
	if t.remaining < 0 {
		t.remaining = 0
	}
}

// Ready reports whether the full duration has elapsed.
func (t *Timer) Ready() bool {
	return t.remaining <= 0
}

// Reset restarts the countdown with the current duration.
func (t *Timer) Reset() {
	t.remaining = t.duration
}

// ResetTo changes the duration and restarts the countdown.
func (t *Timer) ResetTo(d time.Duration) {
	t.duration = d
	t.remaining = d
}

// Duration returns the configured duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Left returns the fraction of the duration still to run, in [0, 1].
func (t *Timer) Left() float64 {
	if t.duration <= 0 {
		return 0
	}
	return float64(t.remaining) / float64(t.duration)
}
