package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/vmath"
)

// Hit is a projectile overlapping a live adversary
type Hit struct {
	Projectile core.Entity
	Adversary  core.Entity
}

// CollisionSystem finds overlaps for the tick and leaves resolution to CombatSystem
// Out-of-bounds projectiles and consumed non-piercing projectiles are removed here
type CollisionSystem struct {
	world *engine.World

	hits     []Hit
	contacts []core.Entity

	statOutOfBounds *atomic.Int64

	enabled bool
}

func NewCollisionSystem(world *engine.World) *CollisionSystem {
	s := &CollisionSystem{
		world:           world,
		statOutOfBounds: world.Status.Ints.Get("collision.out_of_bounds"),
	}
	s.Init()
	return s
}

func (s *CollisionSystem) Init() {
	s.hits = s.hits[:0]
	s.contacts = s.contacts[:0]
	s.statOutOfBounds.Store(0)
	s.enabled = true
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

// Update detects this tick's projectile hits and actor contacts
// An adversary whose pending hits already exhaust its health is skipped by later
// projectiles and cannot touch the actor, as if it were already removed
func (s *CollisionSystem) Update() {
	s.hits = s.hits[:0]
	s.contacts = s.contacts[:0]
	if !s.enabled {
		return
	}

	w := s.world
	damage := w.Config.Weapon.Damage

	advEntities := w.Adversaries.Entities()
	remaining := make(map[core.Entity]int, len(advEntities))
	bodies := make(map[core.Entity]vmath.Circle, len(advEntities))
	for _, e := range advEntities {
		if adv, ok := w.Adversaries.Get(e); ok {
			remaining[e] = adv.Health
			bodies[e] = adv.Body()
		}
	}

	var spent []core.Entity
	for _, pe := range w.Projectiles.Entities() {
		p, ok := w.Projectiles.Get(pe)
		if !ok {
			continue
		}
		if !w.InArena(p.Pos) {
			spent = append(spent, pe)
			s.statOutOfBounds.Add(1)
			continue
		}

		body := p.Body()
		for i := len(advEntities) - 1; i >= 0; i-- {
			ae := advEntities[i]
			if remaining[ae] <= 0 {
				continue
			}
			if !vmath.Overlaps(body, bodies[ae]) {
				continue
			}
			s.hits = append(s.hits, Hit{Projectile: pe, Adversary: ae})
			remaining[ae] -= damage
			if !p.Piercing() {
				spent = append(spent, pe)
				break
			}
		}
	}
	w.Projectiles.RemoveBatch(spent)

	actorBody := w.Actor.Body()
	for _, ae := range advEntities {
		if remaining[ae] <= 0 {
			continue
		}
		if vmath.Overlaps(bodies[ae], actorBody) {
			s.contacts = append(s.contacts, ae)
		}
	}
}

// Hits returns the projectile hits found by the last Update, in resolution order
func (s *CollisionSystem) Hits() []Hit {
	return s.hits
}

// Contacts returns adversaries touching the actor after the last Update, in store order
func (s *CollisionSystem) Contacts() []core.Entity {
	return s.contacts
}
