// Package physics holds the per-tick motion rules for actor, adversaries and projectiles
package physics

import (
	"github.com/lixenwraith/vi-arena/vmath"
)

// Seek returns pos moved speed units along the heading toward target
// The step is not capped at the target, matching fixed-speed chase motion
func Seek(pos, target vmath.Vec2, speed float64) vmath.Vec2 {
	return vmath.V2Add(pos, vmath.FromAngle(vmath.AngleTo(pos, target), speed))
}

// SeekOffset is Seek with the heading rotated by offset radians
func SeekOffset(pos, target vmath.Vec2, speed, offset float64) vmath.Vec2 {
	return vmath.V2Add(pos, vmath.FromAngle(vmath.AngleTo(pos, target)+offset, speed))
}

// StepActor moves pos by intent*speed and keeps a circle of radius inside the w x h arena
// Intent components are expected in {-1, 0, 1}; diagonals are not normalized
func StepActor(pos, intent vmath.Vec2, speed, radius, w, h float64) vmath.Vec2 {
	next := vmath.V2Add(pos, vmath.V2Scale(intent, speed))
	return vmath.ClampToRect(next, radius, w, h)
}
