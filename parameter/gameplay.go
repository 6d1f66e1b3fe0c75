package parameter

// Arena
const (
	ArenaWidth  = 1200.0
	ArenaHeight = 800.0
)

// Scoring
const (
	// ScoreHit is awarded when a hit leaves the adversary alive
	ScoreHit = 1

	// ScoreKill is awarded instead of ScoreHit when the hit is lethal
	ScoreKill = 10
)

// Difficulty Ramp
const (
	// DifficultyStepElapsed is elapsed-time ticks between escalation points
	DifficultyStepElapsed = 30

	// DifficultyIntervalFloorMs is the lowest spawn interval reachable
	DifficultyIntervalFloorMs = 200

	// DifficultyIntervalStepMs is the interval reduction per escalation point
	DifficultyIntervalStepMs = 50
)
