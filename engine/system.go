package engine

import "github.com/lixenwraith/vi-arena/event"

// System is one per-tick rule set
type System interface {
	// Init resets runtime state; called by the constructor and on a new session
	Init()

	Name() string

	// Priority orders systems; lower runs first
	Priority() int

	// Update runs one tick; caller holds the world update lock
	Update()
}

// EventHandler is implemented by systems that react to queued events
type EventHandler = event.Handler[*World]
