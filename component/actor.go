package component

import (
	"slices"

	"github.com/lixenwraith/vi-arena/vmath"
)

// Actor is the single player-controlled entity
type Actor struct {
	Pos       vmath.Vec2
	Radius    float64
	Speed     float64
	Health    float64
	MaxHealth float64

	// Invincibility is remaining immunity ticks, never negative
	Invincibility int

	// ShootCooldown is ticks until the next volley
	ShootCooldown float64
	ShootInterval float64

	ProjectileSize  float64
	ProjectileSpeed float64

	// Unlocked is ordered and unique, starts as [normal]
	Unlocked      []ProjectileType
	ActiveVariant int
}

// Body returns the collision circle
func (a *Actor) Body() vmath.Circle {
	return vmath.Circle{Center: a.Pos, Radius: a.Radius}
}

// Unlock adds t to the unlocked set, returns false if already present
func (a *Actor) Unlock(t ProjectileType) bool {
	if slices.Contains(a.Unlocked, t) {
		return false
	}
	a.Unlocked = append(a.Unlocked, t)
	return true
}

// CycleVariant advances the active variant index over the unlocked set
func (a *Actor) CycleVariant() {
	if len(a.Unlocked) == 0 {
		return
	}
	a.ActiveVariant = (a.ActiveVariant + 1) % len(a.Unlocked)
}

// ActiveType returns the variant under the cycling index
func (a *Actor) ActiveType() ProjectileType {
	if a.ActiveVariant < 0 || a.ActiveVariant >= len(a.Unlocked) {
		return ProjectileNormal
	}
	return a.Unlocked[a.ActiveVariant]
}

// Dead reports whether health is exhausted
func (a *Actor) Dead() bool {
	return a.Health <= 0
}

// Clone returns a copy that shares no slices with a
func (a *Actor) Clone() Actor {
	c := *a
	c.Unlocked = slices.Clone(a.Unlocked)
	return c
}
