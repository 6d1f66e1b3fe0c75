package config

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-arena/component"
)

// ErrInvalid is the cause of every validation failure
var ErrInvalid = errors.New("invalid config")

// Validate checks ranges the simulation relies on
func (c *Config) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return errors.Wrap(ErrInvalid, "arena dimensions must be positive")
	case c.Actor.Radius <= 0 || 2*c.Actor.Radius > min(c.Arena.Width, c.Arena.Height):
		return errors.Wrap(ErrInvalid, "actor radius must be positive and fit the arena")
	case c.Actor.MaxHealth <= 0:
		return errors.Wrap(ErrInvalid, "actor max_health must be positive")
	case c.Actor.ShootInterval < 0:
		return errors.Wrap(ErrInvalid, "actor shoot_interval must not be negative")
	case c.Actor.InvincibilityTicks < 0:
		return errors.Wrap(ErrInvalid, "actor invincibility_ticks must not be negative")
	case c.Actor.ProjectileRadius <= 0:
		return errors.Wrap(ErrInvalid, "actor projectile_radius must be positive")
	case c.Spawn.Interval <= 0:
		return errors.Wrap(ErrInvalid, "spawn interval must be positive")
	case c.Spawn.BatchSize < 0 || c.Spawn.MaxAdversaries < 0:
		return errors.Wrap(ErrInvalid, "spawn counts must not be negative")
	case c.Weapon.Damage <= 0:
		return errors.Wrap(ErrInvalid, "weapon damage must be positive")
	case c.Movement.TankMoveEvery <= 0:
		return errors.Wrap(ErrInvalid, "movement tank_move_every must be positive")
	case c.PowerUp.KillMilestone <= 0:
		return errors.Wrap(ErrInvalid, "powerup kill_milestone must be positive")
	case c.PowerUp.OfferCount < 1:
		return errors.Wrap(ErrInvalid, "powerup offer_count must be positive")
	case len(c.PowerUp.Catalog) < c.PowerUp.OfferCount:
		return errors.Wrapf(ErrInvalid, "powerup catalog has %d entries, offer_count is %d", len(c.PowerUp.Catalog), c.PowerUp.OfferCount)
	case !c.PowerUp.OverlapPolicy.Valid():
		return errors.Wrapf(ErrInvalid, "powerup overlap_policy %q", c.PowerUp.OverlapPolicy)
	case c.Difficulty.StepElapsed <= 0:
		return errors.Wrap(ErrInvalid, "difficulty step_elapsed must be positive")
	case c.Difficulty.Floor <= 0 || c.Difficulty.Step < 0:
		return errors.Wrap(ErrInvalid, "difficulty floor must be positive and step not negative")
	case c.Timing.Tick <= 0 || c.Timing.ElapsedUnit <= 0:
		return errors.Wrap(ErrInvalid, "timing durations must be positive")
	}

	for t := component.AdversaryType(0); t < component.AdversaryTypeCount; t++ {
		s := c.Adversaries.Stats(t)
		if s.Radius <= 0 || s.Speed < 0 || s.Health <= 0 {
			return errors.Wrapf(ErrInvalid, "adversary %s stats", t)
		}
	}

	seen := make(map[component.PowerUpKind]bool, len(c.PowerUp.Catalog))
	for _, def := range c.PowerUp.Catalog {
		if seen[def.Kind] {
			return errors.Wrapf(ErrInvalid, "duplicate power-up %s", def.Kind)
		}
		seen[def.Kind] = true
		if def.Kind.Multiplicative() && def.Multiplier <= 0 {
			return errors.Wrapf(ErrInvalid, "power-up %s needs a positive multiplier", def.Kind)
		}
	}
	return nil
}
