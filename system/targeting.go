package system

import (
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/vmath"
)

// SelectNearest returns the index of the candidate closest to origin
// Linear scan with strict comparison, so the first of equally distant candidates wins
// ok is false when candidates is empty
func SelectNearest(candidates []vmath.Vec2, origin vmath.Vec2) (index int, ok bool) {
	best := -1
	bestDistSq := 0.0
	for i, c := range candidates {
		d := vmath.V2MagSq(vmath.V2Sub(c, origin))
		if best < 0 || d < bestDistSq {
			best, bestDistSq = i, d
		}
	}
	return best, best >= 0
}

// SpreadDirections rotates the origin-to-primary offset by each angle (degrees)
// and returns the resulting absolute aim points
func SpreadDirections(primary, origin vmath.Vec2, anglesDeg []float64) []vmath.Vec2 {
	offset := vmath.V2Sub(primary, origin)
	out := make([]vmath.Vec2, len(anglesDeg))
	for i, deg := range anglesDeg {
		out[i] = vmath.V2Add(origin, vmath.Rotate(offset, vmath.Deg2Rad(deg)))
	}
	return out
}

// Target is a live adversary picked by TargetingService
type Target struct {
	Entity core.Entity
	Pos    vmath.Vec2
}

// TargetingService answers target queries against the world's adversary store
type TargetingService struct {
	world *engine.World
}

func NewTargetingService(world *engine.World) *TargetingService {
	return &TargetingService{world: world}
}

// Nearest returns the live adversary closest to origin, store order breaking ties
func (t *TargetingService) Nearest(origin vmath.Vec2) (Target, bool) {
	entities := t.world.Adversaries.Entities()
	positions := make([]vmath.Vec2, 0, len(entities))
	live := make([]core.Entity, 0, len(entities))
	for _, e := range entities {
		if pos, ok := t.world.AdversaryPosition(e); ok {
			positions = append(positions, pos)
			live = append(live, e)
		}
	}
	i, ok := SelectNearest(positions, origin)
	if !ok {
		return Target{}, false
	}
	return Target{Entity: live[i], Pos: positions[i]}, true
}

// First returns the oldest live adversary in store order
func (t *TargetingService) First() (Target, bool) {
	for _, e := range t.world.Adversaries.Entities() {
		if pos, ok := t.world.AdversaryPosition(e); ok {
			return Target{Entity: e, Pos: pos}, true
		}
	}
	return Target{}, false
}
