package parameter

// Actor
const (
	PlayerRadius = 20.0
	PlayerSpeed  = 5.0

	// PlayerShootInterval is ticks between volleys
	PlayerShootInterval = 30.0

	PlayerMaxHealth = 100.0

	// PlayerInvincibilityTicks is the damage immunity window after a hit
	PlayerInvincibilityTicks = 30

	// PlayerContactDamage is health lost per adversary contact outside the immunity window
	PlayerContactDamage = 10.0
)
