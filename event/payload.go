package event

import (
	"time"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/vmath"
)

// AdversaryPayload identifies an adversary at the moment of the event
type AdversaryPayload struct {
	Entity core.Entity
	Type   component.AdversaryType
	Pos    vmath.Vec2
	Health int
}

// VolleyPayload describes the projectiles one variant contributed to a shot
type VolleyPayload struct {
	Type  component.ProjectileType
	Count int
}

// MilestonePayload carries the kill count and the offered choices
type MilestonePayload struct {
	Kills   int
	Offered []component.PowerUpDefinition
}

// PowerUpPayload identifies a power-up transition
type PowerUpPayload struct {
	Definition component.PowerUpDefinition
	ExpiresAt  time.Time
}

// ActorDamagedPayload reports contact damage and the remaining health
type ActorDamagedPayload struct {
	Damage float64
	Health float64
	Source core.Entity
}

// SpawnIntervalPayload reports a cadence change
type SpawnIntervalPayload struct {
	Previous time.Duration
	Current  time.Duration
	Elapsed  int
}
