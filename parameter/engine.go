package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the simulation step duration (~60 ticks/sec, one tick per rendered frame)
	TickInterval = 16 * time.Millisecond

	// ElapsedUnit is the running time per elapsed-time tick (the HUD clock)
	ElapsedUnit = 1000 * time.Millisecond

	// EventQueueCapacity is the initial capacity of the per-tick event buffer
	EventQueueCapacity = 256

	// RandomSeed is used when the host does not supply one; zero means seed from wall time
	RandomSeed = 0
)
