package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/vmath"
)

// SpawnSystem adds adversary batches on the spawn timer, up to the live cap
type SpawnSystem struct {
	world *engine.World

	statSpawned *atomic.Int64

	enabled bool
}

func NewSpawnSystem(world *engine.World) *SpawnSystem {
	s := &SpawnSystem{
		world:       world,
		statSpawned: world.Status.Ints.Get("spawn.total"),
	}
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.statSpawned.Store(0)
	s.enabled = true
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update() {
	st := s.world.State
	if !s.enabled || st.Phase != engine.PhaseRunning {
		return
	}
	for range st.SpawnTimer.Advance(s.world.Config.Timing.Tick.Std()) {
		s.SpawnBatch()
	}
}

// SpawnBatch attempts one batch; attempts at the cap are dropped
// Returns the number spawned
func (s *SpawnSystem) SpawnBatch() int {
	sc := s.world.Config.Spawn
	spawned := 0
	for range sc.BatchSize {
		if s.world.Adversaries.Count() >= sc.MaxAdversaries {
			break
		}
		t := component.AdversaryType(s.world.Rand.IntN(int(component.AdversaryTypeCount)))
		pos := vmath.V2(
			s.world.Rand.Float64()*s.world.Config.Arena.Width,
			s.world.Rand.Float64()*s.world.Config.Arena.Height,
		)
		s.Spawn(t, pos)
		spawned++
	}
	return spawned
}

// Spawn creates one adversary of type t at pos with stats from config
func (s *SpawnSystem) Spawn(t component.AdversaryType, pos vmath.Vec2) core.Entity {
	stats := s.world.Config.Adversaries.Stats(t)
	adv := component.Adversary{
		Type:   t,
		Pos:    pos,
		Radius: stats.Radius,
		Speed:  stats.Speed,
		Health: stats.Health,
		Color:  stats.Color,
	}
	e := s.world.CreateEntity()
	s.world.Adversaries.Set(e, adv)
	s.statSpawned.Add(1)
	s.world.PushEvent(event.EventAdversarySpawned, &event.AdversaryPayload{
		Entity: e,
		Type:   t,
		Pos:    pos,
		Health: adv.Health,
	})
	return e
}
