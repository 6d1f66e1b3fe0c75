package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/status"
)

// TelemetrySystem publishes store sizes and actor stats after every running tick
type TelemetrySystem struct {
	world *engine.World

	statAdversaries *atomic.Int64
	statProjectiles *atomic.Int64
	statHealth      *status.AtomicFloat
	statInterval    *status.AtomicFloat

	enabled bool
}

func NewTelemetrySystem(world *engine.World) *TelemetrySystem {
	reg := world.Status
	s := &TelemetrySystem{
		world:           world,
		statAdversaries: reg.Ints.Get("arena.adversaries"),
		statProjectiles: reg.Ints.Get("arena.projectiles"),
		statHealth:      reg.Floats.Get("actor.health"),
		statInterval:    reg.Floats.Get("actor.shoot_interval"),
	}
	s.Init()
	return s
}

func (s *TelemetrySystem) Init() {
	s.enabled = true
	s.Update()
}

func (s *TelemetrySystem) Name() string {
	return "telemetry"
}

func (s *TelemetrySystem) Priority() int {
	return parameter.PriorityTelemetry
}

func (s *TelemetrySystem) Update() {
	if !s.enabled {
		return
	}
	s.statAdversaries.Store(int64(s.world.Adversaries.Count()))
	s.statProjectiles.Store(int64(s.world.Projectiles.Count()))
	s.statHealth.Set(s.world.Actor.Health)
	s.statInterval.Set(s.world.Actor.ShootInterval)
}
