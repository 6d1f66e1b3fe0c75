package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/config"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/vmath"
)

// arena bundles a world with every system wired the way the simulation wires them
type arena struct {
	world      *engine.World
	clock      *engine.MockTimeProvider
	movement   *MovementSystem
	collision  *CollisionSystem
	combat     *CombatSystem
	powerup    *PowerUpSystem
	weapon     *WeaponSystem
	difficulty *DifficultySystem
	spawn      *SpawnSystem
}

var testEpoch = time.Unix(1_700_000_000, 0)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 42
	return cfg
}

func newArena(t *testing.T, cfg config.Config) *arena {
	t.Helper()
	w := engine.NewWorld(cfg)
	a := &arena{world: w, clock: engine.NewMockTimeProvider(testEpoch)}
	a.movement = NewMovementSystem(w)
	a.collision = NewCollisionSystem(w)
	a.powerup = NewPowerUpSystem(w, a.clock)
	a.combat = NewCombatSystem(w, a.collision, a.powerup)
	a.weapon = NewWeaponSystem(w, NewTargetingService(w))
	a.difficulty = NewDifficultySystem(w)
	a.spawn = NewSpawnSystem(w)
	return a
}

// addAdversary places an adversary without going through the spawn timer
func (a *arena) addAdversary(t component.AdversaryType, pos vmath.Vec2) core.Entity {
	return a.spawn.Spawn(t, pos)
}

func (a *arena) addProjectile(p component.Projectile) core.Entity {
	e := a.world.CreateEntity()
	a.world.Projectiles.Set(e, p)
	return e
}

// resolve runs collision then combat, the per-tick contact pipeline
func (a *arena) resolve() {
	a.collision.Update()
	a.combat.Update()
}

func (a *arena) health(e core.Entity) int {
	adv, ok := a.world.Adversaries.Get(e)
	if !ok {
		return 0
	}
	return adv.Health
}
