package parameter

// System Execution Priorities (lower runs first)
// Movement precedes collision, collision precedes combat, combat precedes power-up expiry
const (
	PriorityMovement   = 10
	PriorityCollision  = 20
	PriorityCombat     = 30
	PriorityPowerUp    = 40
	PriorityWeapon     = 50 // After expiry so a volley uses post-expiry stats
	PriorityDifficulty = 60 // Elapsed-time counter, before spawn so a new cadence applies immediately
	PrioritySpawn      = 70
	PriorityTelemetry  = 1000
)
