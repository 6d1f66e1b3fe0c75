package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/parameter"
)

// Offerer draws milestone choices
type Offerer interface {
	RandomPowerUps(n int) []component.PowerUpDefinition
}

// CombatSystem applies the hits and contacts found by CollisionSystem
// It owns score, kill count, actor damage, milestone pauses and defeat
type CombatSystem struct {
	world     *engine.World
	collision *CollisionSystem
	offerer   Offerer
	logger    logrus.FieldLogger

	statScore *atomic.Int64
	statKills *atomic.Int64

	enabled bool
}

func NewCombatSystem(world *engine.World, collision *CollisionSystem, offerer Offerer) *CombatSystem {
	s := &CombatSystem{
		world:     world,
		collision: collision,
		offerer:   offerer,
		logger:    world.Logger.WithField("system", "combat"),
		statScore: world.Status.Ints.Get("combat.score"),
		statKills: world.Status.Ints.Get("combat.kills"),
	}
	s.Init()
	return s
}

func (s *CombatSystem) Init() {
	s.statScore.Store(0)
	s.statKills.Store(0)
	s.enabled = true
}

func (s *CombatSystem) Name() string {
	return "combat"
}

func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

func (s *CombatSystem) Update() {
	if !s.enabled {
		return
	}

	for _, h := range s.collision.Hits() {
		s.ApplyHit(h.Adversary)
	}
	for _, e := range s.collision.Contacts() {
		if s.ApplyContact(e) {
			break
		}
	}

	s.statScore.Store(int64(s.world.State.Score))
	s.statKills.Store(int64(s.world.State.KillCount))
}

// ApplyHit removes one hit's damage from adversary e
// A lethal hit removes e and awards the kill bonus; any other hit awards the hit bonus
// Reports whether the hit killed
func (s *CombatSystem) ApplyHit(e core.Entity) bool {
	w := s.world
	adv, ok := w.Adversaries.Get(e)
	if !ok {
		return false
	}

	adv.Health -= w.Config.Weapon.Damage
	payload := &event.AdversaryPayload{Entity: e, Type: adv.Type, Pos: adv.Pos, Health: adv.Health}

	if adv.Health > 0 {
		w.Adversaries.Set(e, adv)
		w.State.Score += w.Config.Scoring.Hit
		w.PushEvent(event.EventAdversaryHit, payload)
		return false
	}

	w.Adversaries.Remove(e)
	w.State.Score += w.Config.Scoring.Kill
	w.State.KillCount++
	w.PushEvent(event.EventAdversaryKilled, payload)

	if w.State.KillCount%w.Config.PowerUp.KillMilestone == 0 {
		s.reachMilestone()
	}
	return true
}

// ApplyContact damages the actor unless it is inside its immunity window
// Reports whether the contact defeated the actor
func (s *CombatSystem) ApplyContact(source core.Entity) bool {
	w := s.world
	actor := w.Actor
	if actor.Invincibility > 0 {
		return false
	}

	dmg := w.Config.Actor.ContactDamage
	actor.Health = max(0, actor.Health-dmg)
	actor.Invincibility = w.Config.Actor.InvincibilityTicks

	payload := &event.ActorDamagedPayload{Damage: dmg, Health: actor.Health, Source: source}
	w.PushEvent(event.EventActorDamaged, payload)

	if !actor.Dead() {
		return false
	}
	w.State.Phase = engine.PhaseDefeated
	w.PushEvent(event.EventActorDefeated, payload)
	s.logger.WithFields(logrus.Fields{
		"score":   w.State.Score,
		"kills":   w.State.KillCount,
		"elapsed": w.State.ElapsedTime,
	}).Info("actor defeated")
	return true
}

// reachMilestone opens the choice overlay; the rest of the tick still runs
func (s *CombatSystem) reachMilestone() {
	w := s.world
	if w.State.Phase == engine.PhaseDefeated {
		return
	}
	offered := s.offerer.RandomPowerUps(w.Config.PowerUp.OfferCount)
	w.State.Phase = engine.PhaseChoosing
	w.State.Offered = offered
	w.PushEvent(event.EventMilestoneReached, &event.MilestonePayload{
		Kills:   w.State.KillCount,
		Offered: offered,
	})
	s.logger.WithField("kills", w.State.KillCount).Debug("milestone reached")
}
