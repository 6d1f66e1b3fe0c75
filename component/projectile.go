package component

import (
	"github.com/lixenwraith/vi-arena/vmath"
)

// ProjectileType is the volley variant that produced a projectile
type ProjectileType uint8

const (
	ProjectileNormal ProjectileType = iota
	ProjectileSpread
	ProjectilePiercing
	ProjectileExplosive

	ProjectileTypeCount
)

var projectileTypeNames = [ProjectileTypeCount]string{"normal", "spread", "piercing", "explosive"}

func (t ProjectileType) String() string {
	if t < ProjectileTypeCount {
		return projectileTypeNames[t]
	}
	return "unknown"
}

// Projectile is fired by the actor; homing or fixed-aim depending on Aim
type Projectile struct {
	Pos    vmath.Vec2
	Radius float64
	Speed  float64
	Type   ProjectileType
	Aim    Aim
}

// Body returns the collision circle
func (p *Projectile) Body() vmath.Circle {
	return vmath.Circle{Center: p.Pos, Radius: p.Radius}
}

// Piercing projectiles are never consumed by a hit
func (p *Projectile) Piercing() bool {
	return p.Type == ProjectilePiercing
}
