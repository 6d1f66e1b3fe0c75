package engine

import "time"

// IntervalTimer fires every Interval of accumulated tick time
// It only advances when told to, so it stands still while the game is paused
type IntervalTimer struct {
	interval time.Duration
	acc      time.Duration
}

// NewIntervalTimer creates a timer with nothing accumulated
func NewIntervalTimer(interval time.Duration) IntervalTimer {
	return IntervalTimer{interval: interval}
}

// Advance adds dt and returns how many times the timer fired
func (t *IntervalTimer) Advance(dt time.Duration) int {
	if t.interval <= 0 {
		return 0
	}
	t.acc += dt
	fired := 0
	for t.acc >= t.interval {
		t.acc -= t.interval
		fired++
	}
	return fired
}

// Reset drops accumulated time; the next fire is a full interval away
func (t *IntervalTimer) Reset() {
	t.acc = 0
}

// SetInterval changes the cadence and restarts the timer
func (t *IntervalTimer) SetInterval(d time.Duration) {
	t.interval = d
	t.acc = 0
}

// Interval returns the current cadence
func (t *IntervalTimer) Interval() time.Duration {
	return t.interval
}

// Pending returns time accumulated toward the next fire
func (t *IntervalTimer) Pending() time.Duration {
	return t.acc
}
