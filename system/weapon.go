package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/parameter"
)

// WeaponSystem fires the actor's volleys on its shoot cooldown
// Each shot fires one volley per unlocked variant, in unlock order
type WeaponSystem struct {
	world     *engine.World
	targeting *TargetingService

	statFired *atomic.Int64

	enabled bool
}

func NewWeaponSystem(world *engine.World, targeting *TargetingService) *WeaponSystem {
	s := &WeaponSystem{
		world:     world,
		targeting: targeting,
		statFired: world.Status.Ints.Get("weapon.fired"),
	}
	s.Init()
	return s
}

func (s *WeaponSystem) Init() {
	s.statFired.Store(0)
	s.enabled = true
}

func (s *WeaponSystem) Name() string {
	return "weapon"
}

func (s *WeaponSystem) Priority() int {
	return parameter.PriorityWeapon
}

// Update does nothing without live adversaries, leaving the cooldown untouched
func (s *WeaponSystem) Update() {
	if !s.enabled || s.world.Adversaries.Count() == 0 {
		return
	}

	actor := s.world.Actor
	if actor.ShootCooldown > 0 {
		actor.ShootCooldown--
		return
	}
	actor.ShootCooldown = actor.ShootInterval

	for _, variant := range actor.Unlocked {
		n := s.fireVolley(variant)
		if n == 0 {
			continue
		}
		s.statFired.Add(int64(n))
		s.world.PushEvent(event.EventProjectileFired, &event.VolleyPayload{Type: variant, Count: n})
	}
}

// CycleVariant advances the actor's displayed variant
func (s *WeaponSystem) CycleVariant() {
	s.world.Actor.CycleVariant()
}

// fireVolley spawns the projectiles of one variant and returns how many were spawned
func (s *WeaponSystem) fireVolley(variant component.ProjectileType) int {
	actor := s.world.Actor
	origin := actor.Pos

	switch variant {
	case component.ProjectileSpread:
		primary, ok := s.targeting.First()
		if !ok {
			return 0
		}
		points := SpreadDirections(primary.Pos, origin, s.world.Config.Weapon.SpreadAngles)
		for _, pt := range points {
			s.spawn(component.Projectile{
				Pos:    origin,
				Radius: actor.ProjectileSize,
				Speed:  actor.ProjectileSpeed,
				Type:   component.ProjectileSpread,
				Aim:    component.AimAtPoint(pt),
			})
		}
		return len(points)

	case component.ProjectilePiercing:
		target, ok := s.targeting.Nearest(origin)
		if !ok {
			return 0
		}
		wc := s.world.Config.Weapon
		s.spawn(component.Projectile{
			Pos:    origin,
			Radius: actor.ProjectileSize * wc.PiercingSizeFactor,
			Speed:  actor.ProjectileSpeed * wc.PiercingSpeedFactor,
			Type:   component.ProjectilePiercing,
			Aim:    component.AimAtEntity(target.Entity, target.Pos),
		})
		return 1

	default:
		// Normal and explosive share stats; explosive has no splash
		target, ok := s.targeting.Nearest(origin)
		if !ok {
			return 0
		}
		s.spawn(component.Projectile{
			Pos:    origin,
			Radius: actor.ProjectileSize,
			Speed:  actor.ProjectileSpeed,
			Type:   variant,
			Aim:    component.AimAtEntity(target.Entity, target.Pos),
		})
		return 1
	}
}

func (s *WeaponSystem) spawn(p component.Projectile) {
	s.world.Projectiles.Set(s.world.CreateEntity(), p)
}

