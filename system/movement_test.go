package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/vmath"
)

func TestMovementUpdate(t *testing.T) {
	a := newArena(t, testConfig())
	a.movement.SetIntent(vmath.V2(3, -1))
	assert.Equal(t, vmath.V2(1, -1), a.movement.Intent())

	adv := a.addAdversary(component.AdversaryFast, vmath.V2(605, 100))
	p := a.addProjectile(component.Projectile{
		Pos: vmath.V2(600, 700), Speed: 8, Aim: component.AimAtEntity(adv, vmath.V2(605, 100)),
	})
	a.world.Actor.Invincibility = 2

	a.movement.Update()

	actor := a.world.Actor
	assert.Equal(t, vmath.V2(605, 395), actor.Pos)
	assert.Equal(t, 1, actor.Invincibility)

	// Adversary chases the actor's new position
	got, _ := a.world.Adversaries.Get(adv)
	assert.InDelta(t, 605.0, got.Pos.X, 1e-9)
	assert.InDelta(t, 103.0, got.Pos.Y, 1e-9)
	assert.Equal(t, 1, got.MovementCounter)

	// Projectile homes on the adversary's moved position
	proj, _ := a.world.Projectiles.Get(p)
	assert.Equal(t, vmath.V2(605, 103), proj.Aim.Point)
	assert.Less(t, proj.Pos.Y, 700.0)
}

func TestInvincibilityNeverNegative(t *testing.T) {
	a := newArena(t, testConfig())
	for range 3 {
		a.movement.AdvanceActor(a.world.Actor, vmath.Vec2{})
	}
	assert.Zero(t, a.world.Actor.Invincibility)
}
