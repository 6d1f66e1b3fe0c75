package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Ticker is one step of a fixed-rate simulation
type Ticker interface {
	// Tick advances one step and reports whether the simulation should keep running
	Tick() bool
}

// Loop drives a Ticker at a fixed interval on its own goroutine
// Ticks never overlap; a slow tick delays the next one instead of queueing more
type Loop struct {
	target   Ticker
	interval time.Duration

	// OnTick runs after every tick on the loop goroutine, nil to skip
	OnTick func(tick uint64)

	tickCount atomic.Uint64
	running   atomic.Bool
	stopChan  chan struct{}
	stopOnce  sync.Once
	done      chan struct{}
}

// NewLoop creates a stopped loop
func NewLoop(target Ticker, interval time.Duration) *Loop {
	return &Loop{
		target:   target,
		interval: interval,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run ticks until ctx is cancelled, Stop is called, or the target finishes
// Returns ctx.Err() on cancellation and nil otherwise
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return nil
	}
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stopChan:
			return nil
		case <-ticker.C:
			n := l.tickCount.Add(1)
			keepGoing := l.target.Tick()
			if l.OnTick != nil {
				l.OnTick(n)
			}
			if !keepGoing {
				return nil
			}
		}
	}
}

// Stop ends Run and waits for it to return; safe to call more than once
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
		if l.running.Load() {
			<-l.done
		}
	})
}

// TickCount returns ticks executed so far
func (l *Loop) TickCount() uint64 {
	return l.tickCount.Load()
}
