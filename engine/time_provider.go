package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies the current time to time-based game rules
type TimeProvider interface {
	Now() time.Time
}

// GameClock is a tick-driven TimeProvider
// It only moves when Advance is called, so a run is reproducible for a given tick sequence
type GameClock struct {
	mu    sync.RWMutex
	epoch time.Time
	now   time.Time
	ticks int64
}

// NewGameClock creates a clock reading epoch
func NewGameClock(epoch time.Time) *GameClock {
	return &GameClock{epoch: epoch, now: epoch}
}

// Now returns the current game time
func (c *GameClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by one tick of duration d
func (c *GameClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	c.ticks++
}

// Since returns time elapsed since the epoch
func (c *GameClock) Since() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now.Sub(c.epoch)
}

// Ticks returns how many times Advance was called
func (c *GameClock) Ticks() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ticks
}

// WallClock reads the system clock
type WallClock struct{}

func (WallClock) Now() time.Time { return time.Now() }
