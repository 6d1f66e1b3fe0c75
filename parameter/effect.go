package parameter

import "time"

// Power-up selection
const (
	// PowerUpKillMilestone triggers a choice each time the kill count reaches a multiple of it
	PowerUpKillMilestone = 20

	// PowerUpDuration is how long a multiplicative effect stays applied
	PowerUpDuration = 10 * time.Second

	// PowerUpOfferCount is the number of distinct choices offered per milestone
	PowerUpOfferCount = 3

	// PowerUpStatMultiplier is the catalog multiplier for stat effects
	PowerUpStatMultiplier = 1.2

	// PowerUpOverlapPolicy decides what activation does while another effect is live
	PowerUpOverlapPolicy = "revert"
)
