package parameter

// Projectiles
const (
	ProjectileRadius = 4.0
	ProjectileSpeed  = 8.0

	// ProjectileDamage is hit points removed per projectile hit, independent of variant
	ProjectileDamage = 1

	// PiercingSizeFactor and PiercingSpeedFactor scale the actor's projectile stats for piercing shots
	PiercingSizeFactor  = 1.2
	PiercingSpeedFactor = 1.5
)

// SpreadAnglesDeg are the volley offsets for spread shots
var SpreadAnglesDeg = [...]float64{-15, 0, 15}
