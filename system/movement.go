package system

import (
	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/vmath"
)

// MovementSystem advances the actor, then every adversary, then every projectile
type MovementSystem struct {
	world   *engine.World
	profile physics.Profile

	// intent is the latest input direction, components in {-1, 0, 1}
	intent vmath.Vec2

	enabled bool
}

func NewMovementSystem(world *engine.World) *MovementSystem {
	s := &MovementSystem{world: world}
	s.Init()
	return s
}

func (s *MovementSystem) Init() {
	m := s.world.Config.Movement
	s.profile = physics.Profile{
		TankMoveEvery:   m.TankMoveEvery,
		ZigZagAmplitude: m.ZigZagAmplitude,
		ZigZagFrequency: m.ZigZagFrequency,
	}
	s.intent = vmath.Vec2{}
	s.enabled = true
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// SetIntent records the direction applied on the next tick
func (s *MovementSystem) SetIntent(intent vmath.Vec2) {
	s.intent = vmath.V2(vmath.Clamp(intent.X, -1, 1), vmath.Clamp(intent.Y, -1, 1))
}

// Intent returns the recorded direction
func (s *MovementSystem) Intent() vmath.Vec2 {
	return s.intent
}

func (s *MovementSystem) Update() {
	if !s.enabled {
		return
	}

	s.AdvanceActor(s.world.Actor, s.intent)

	target := s.world.Actor.Pos
	for _, e := range s.world.Adversaries.Entities() {
		adv, ok := s.world.Adversaries.Get(e)
		if !ok {
			continue
		}
		s.AdvanceAdversary(&adv, target)
		s.world.Adversaries.Set(e, adv)
	}

	for _, e := range s.world.Projectiles.Entities() {
		p, ok := s.world.Projectiles.Get(e)
		if !ok {
			continue
		}
		s.AdvanceProjectile(&p)
		s.world.Projectiles.Set(e, p)
	}
}

// AdvanceActor moves the actor by intent and ticks down its immunity window
func (s *MovementSystem) AdvanceActor(actor *component.Actor, intent vmath.Vec2) {
	arena := s.world.Config.Arena
	actor.Pos = physics.StepActor(actor.Pos, intent, actor.Speed, actor.Radius, arena.Width, arena.Height)
	if actor.Invincibility > 0 {
		actor.Invincibility--
	}
}

// AdvanceAdversary applies the variant's movement strategy toward target
func (s *MovementSystem) AdvanceAdversary(adv *component.Adversary, target vmath.Vec2) {
	physics.StepAdversary(&s.profile, adv, target)
}

// AdvanceProjectile steps a projectile toward its resolved aim
func (s *MovementSystem) AdvanceProjectile(p *component.Projectile) {
	physics.StepProjectile(p, s.world.AdversaryPosition)
}
