package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/vmath"
)

func projectilesByType(a *arena) map[component.ProjectileType][]component.Projectile {
	out := map[component.ProjectileType][]component.Projectile{}
	for _, p := range a.world.Projectiles.Values() {
		out[p.Type] = append(out[p.Type], p)
	}
	return out
}

func TestWeaponNoOpWithoutAdversaries(t *testing.T) {
	a := newArena(t, testConfig())
	a.world.Actor.ShootCooldown = 5

	a.weapon.Update()
	assert.Equal(t, 5.0, a.world.Actor.ShootCooldown)
	assert.Zero(t, a.world.Projectiles.Count())
}

func TestWeaponCooldown(t *testing.T) {
	a := newArena(t, testConfig())
	a.addAdversary(component.AdversaryTank, vmath.V2(100, 100))

	a.weapon.Update()
	assert.Equal(t, 1, a.world.Projectiles.Count())
	assert.Equal(t, 30.0, a.world.Actor.ShootCooldown)

	for range 30 {
		a.weapon.Update()
	}
	assert.Equal(t, 1, a.world.Projectiles.Count())
	assert.Zero(t, a.world.Actor.ShootCooldown)

	a.weapon.Update()
	assert.Equal(t, 2, a.world.Projectiles.Count())
}

func TestNormalVolleyHomesOnNearest(t *testing.T) {
	a := newArena(t, testConfig())
	a.addAdversary(component.AdversaryBasic, vmath.V2(100, 100))
	near := a.addAdversary(component.AdversaryBasic, vmath.V2(650, 400))

	a.weapon.Update()
	ps := a.world.Projectiles.Values()
	require.Len(t, ps, 1)
	assert.True(t, ps[0].Aim.IsHoming())
	assert.Equal(t, near, ps[0].Aim.Entity)
	assert.Equal(t, a.world.Actor.Pos, ps[0].Pos)
	assert.Equal(t, 4.0, ps[0].Radius)
	assert.Equal(t, 8.0, ps[0].Speed)
}

func TestVolleyPerUnlockedVariant(t *testing.T) {
	a := newArena(t, testConfig())
	actor := a.world.Actor
	actor.Unlock(component.ProjectileSpread)
	actor.Unlock(component.ProjectilePiercing)
	actor.Unlock(component.ProjectileExplosive)

	first := a.addAdversary(component.AdversaryBasic, vmath.V2(700, 400))
	a.addAdversary(component.AdversaryBasic, vmath.V2(610, 400))

	a.weapon.Update()
	byType := projectilesByType(a)
	assert.Len(t, byType[component.ProjectileNormal], 1)
	assert.Len(t, byType[component.ProjectileExplosive], 1)
	require.Len(t, byType[component.ProjectileSpread], 3)
	require.Len(t, byType[component.ProjectilePiercing], 1)
	assert.Equal(t, 6, a.world.Projectiles.Count())

	// Spread aims at fixed points around the oldest adversary
	firstPos, _ := a.world.AdversaryPosition(first)
	mid := byType[component.ProjectileSpread][1]
	assert.False(t, mid.Aim.IsHoming())
	assert.InDelta(t, firstPos.X, mid.Aim.Point.X, 1e-9)
	assert.InDelta(t, firstPos.Y, mid.Aim.Point.Y, 1e-9)

	piercing := byType[component.ProjectilePiercing][0]
	assert.InDelta(t, 4.8, piercing.Radius, 1e-9)
	assert.InDelta(t, 12.0, piercing.Speed, 1e-9)

	explosive := byType[component.ProjectileExplosive][0]
	assert.Equal(t, 4.0, explosive.Radius)
}

func TestCycleVariant(t *testing.T) {
	a := newArena(t, testConfig())
	a.world.Actor.Unlock(component.ProjectilePiercing)

	a.weapon.CycleVariant()
	assert.Equal(t, component.ProjectilePiercing, a.world.Actor.ActiveType())
	a.weapon.CycleVariant()
	assert.Equal(t, component.ProjectileNormal, a.world.Actor.ActiveType())
}
