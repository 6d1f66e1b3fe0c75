package system

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/config"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/status"
)

// PowerUpSystem owns the single active power-up slot
// Multiplicative effects are applied to actor stats on activation and reversed on expiry;
// unlocks are permanent
type PowerUpSystem struct {
	world  *engine.World
	clock  engine.TimeProvider
	logger logrus.FieldLogger

	statActive *status.AtomicString

	enabled bool
}

// NewPowerUpSystem creates the system; clock decides expiry
func NewPowerUpSystem(world *engine.World, clock engine.TimeProvider) *PowerUpSystem {
	s := &PowerUpSystem{
		world:      world,
		clock:      clock,
		logger:     world.Logger.WithField("system", "powerup"),
		statActive: world.Status.Strings.Get("powerup.active"),
	}
	s.Init()
	return s
}

func (s *PowerUpSystem) Init() {
	s.world.State.Active = nil
	s.statActive.Store("")
	s.enabled = true
}

func (s *PowerUpSystem) Name() string {
	return "powerup"
}

func (s *PowerUpSystem) Priority() int {
	return parameter.PriorityPowerUp
}

// Update expires the active effect once the clock is strictly past its end
func (s *PowerUpSystem) Update() {
	if !s.enabled {
		return
	}
	active := s.world.State.Active
	if active == nil || !active.Expired(s.clock.Now()) {
		return
	}
	s.deactivate(active)
	s.world.State.Active = nil
	s.statActive.Store("")
}

// Activate applies def and puts it in the slot
// An occupied slot is handled by the configured overlap policy
func (s *PowerUpSystem) Activate(def component.PowerUpDefinition) {
	w := s.world
	if prev := w.State.Active; prev != nil {
		switch w.Config.PowerUp.OverlapPolicy {
		case config.OverlapReplace:
			s.logger.WithFields(logrus.Fields{
				"kind":     def.Kind,
				"replaced": prev.Definition.Kind,
			}).Debug("power-up replaced without revert")
		default:
			s.deactivate(prev)
		}
	}

	s.apply(def)

	now := s.clock.Now()
	active := &component.ActivePowerUp{
		Definition:  def,
		ActivatedAt: now,
		ExpiresAt:   now.Add(w.Config.PowerUp.Duration.Std()),
	}
	w.State.Active = active
	s.statActive.Store(def.Name())

	w.PushEvent(event.EventPowerUpActivated, &event.PowerUpPayload{Definition: def, ExpiresAt: active.ExpiresAt})
	s.logger.WithField("kind", def.Kind).Debug("power-up activated")
}

// RandomPowerUps draws n distinct catalog entries in random order
// n is clamped to the catalog size
func (s *PowerUpSystem) RandomPowerUps(n int) []component.PowerUpDefinition {
	catalog := slices.Clone(s.world.Config.PowerUp.Catalog)
	s.world.Rand.Shuffle(len(catalog), func(i, j int) {
		catalog[i], catalog[j] = catalog[j], catalog[i]
	})
	n = max(0, min(n, len(catalog)))
	return catalog[:n]
}

func (s *PowerUpSystem) deactivate(active *component.ActivePowerUp) {
	def := active.Definition
	s.revert(def)
	s.world.PushEvent(event.EventPowerUpExpired, &event.PowerUpPayload{Definition: def, ExpiresAt: active.ExpiresAt})
	s.logger.WithField("kind", def.Kind).Debug("power-up expired")
}

// apply scales the stat behind def by its multiplier, or unlocks its projectile variant
// fireRate divides the shoot interval so a larger multiplier fires faster
func (s *PowerUpSystem) apply(def component.PowerUpDefinition) {
	actor := s.world.Actor
	m := def.Multiplier
	switch def.Kind {
	case component.PowerUpFireRate:
		actor.ShootInterval /= m
	case component.PowerUpBulletSize:
		actor.ProjectileSize *= m
	case component.PowerUpPlayerSpeed:
		actor.Speed *= m
	case component.PowerUpBulletSpeed:
		actor.ProjectileSpeed *= m
	default:
		if v, ok := def.Kind.Unlocks(); ok {
			actor.Unlock(v)
		}
	}
}

// revert is the exact inverse of apply for multiplicative kinds; unlocks stay
func (s *PowerUpSystem) revert(def component.PowerUpDefinition) {
	actor := s.world.Actor
	m := def.Multiplier
	switch def.Kind {
	case component.PowerUpFireRate:
		actor.ShootInterval *= m
	case component.PowerUpBulletSize:
		actor.ProjectileSize /= m
	case component.PowerUpPlayerSpeed:
		actor.Speed /= m
	case component.PowerUpBulletSpeed:
		actor.ProjectileSpeed /= m
	}
}
