package physics

import (
	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/vmath"
)

// StepProjectile resolves the projectile's aim and moves it one tick toward the aim point
// Homing aims re-resolve every tick; a vanished target leaves the projectile flying to its last known position
func StepProjectile(p *component.Projectile, lookup func(core.Entity) (vmath.Vec2, bool)) {
	target := p.Aim.Resolve(lookup)
	p.Pos = Seek(p.Pos, target, p.Speed)
}
