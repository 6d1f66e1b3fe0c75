package component

import (
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/vmath"
)

// TargetType defines how an aim resolves its position
type TargetType uint8

const (
	// TargetPosition aims at fixed arena coordinates
	TargetPosition TargetType = iota
	// TargetEntity tracks a live adversary, falling back to TargetPosition once it is gone
	TargetEntity
)

// Aim is a projectile's steering target
// For TargetEntity, Point caches the last resolved entity position
type Aim struct {
	Type   TargetType
	Entity core.Entity
	Point  vmath.Vec2
}

// AimAtEntity homes on e, seeded with its current position
func AimAtEntity(e core.Entity, pos vmath.Vec2) Aim {
	return Aim{Type: TargetEntity, Entity: e, Point: pos}
}

// AimAtPoint flies toward a fixed point
func AimAtPoint(p vmath.Vec2) Aim {
	return Aim{Type: TargetPosition, Point: p}
}

// Resolve returns the current aim point
// lookup reports the position of a live entity; a miss converts the aim in place to a
// fixed point at the last resolved position, so a removed entity is never read again
func (a *Aim) Resolve(lookup func(core.Entity) (vmath.Vec2, bool)) vmath.Vec2 {
	if a.Type == TargetEntity {
		if pos, ok := lookup(a.Entity); ok {
			a.Point = pos
			return pos
		}
		a.Type = TargetPosition
		a.Entity = 0
	}
	return a.Point
}

// IsHoming reports whether the aim still tracks an entity
func (a Aim) IsHoming() bool {
	return a.Type == TargetEntity
}
