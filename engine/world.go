package engine

import (
	"io"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/config"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/status"
	"github.com/lixenwraith/vi-arena/vmath"
)

// World owns every entity and the shared resources systems run against
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Config config.Config

	Actor       *component.Actor
	Adversaries *Store[component.Adversary]
	Projectiles *Store[component.Projectile]

	State  *State
	Events *event.EventQueue
	Status *status.Registry
	Clock  *GameClock
	Rand   *rand.Rand
	Logger logrus.FieldLogger

	systems     []System
	updateMutex sync.Mutex
}

// Option customizes a World at construction
type Option func(*World)

// WithLogger routes engine logs to l
func WithLogger(l logrus.FieldLogger) Option {
	return func(w *World) { w.Logger = l }
}

// WithRand replaces the seeded generator
func WithRand(r *rand.Rand) Option {
	return func(w *World) { w.Rand = r }
}

// WithClock replaces the game clock
func WithClock(c *GameClock) Option {
	return func(w *World) { w.Clock = c }
}

// WithStatus shares a metrics registry with the host
func WithStatus(r *status.Registry) Option {
	return func(w *World) { w.Status = r }
}

// NewWorld creates a world for cfg; cfg is cloned and never read back from the caller
func NewWorld(cfg config.Config, opts ...Option) *World {
	cfg = cfg.Clone()
	w := &World{
		nextEntityID: 1,
		Config:       cfg,
		Adversaries:  NewStore[component.Adversary](),
		Projectiles:  NewStore[component.Projectile](),
		Events:       event.NewEventQueue(parameter.EventQueueCapacity),
		Status:       status.NewRegistry(),
		Clock:        NewGameClock(time.Unix(0, 0)),
		Rand:         NewRand(cfg.Seed),
		Logger:       discardLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.Reset()
	return w
}

// Reset starts a new session: fresh actor, empty stores, initial state
// Registered systems are re-initialized
func (w *World) Reset() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.mu.Unlock()

	w.Adversaries.Clear()
	w.Projectiles.Clear()
	w.Events.Consume()

	actor := NewActor(&w.Config)
	w.Actor = &actor

	w.State = &State{
		Phase:        PhaseRunning,
		ElapsedTimer: NewIntervalTimer(w.Config.Timing.ElapsedUnit.Std()),
	}
	w.State.SetSpawnInterval(w.Config.Spawn.Interval.Std())

	for _, s := range w.Systems() {
		s.Init()
	}
}

// NewActor builds the actor at the arena center from cfg
func NewActor(cfg *config.Config) component.Actor {
	return component.Actor{
		Pos:             vmath.V2(cfg.Arena.Width/2, cfg.Arena.Height/2),
		Radius:          cfg.Actor.Radius,
		Speed:           cfg.Actor.Speed,
		Health:          cfg.Actor.MaxHealth,
		MaxHealth:       cfg.Actor.MaxHealth,
		ShootInterval:   cfg.Actor.ShootInterval,
		ProjectileSize:  cfg.Actor.ProjectileRadius,
		ProjectileSpeed: cfg.Actor.ProjectileSpeed,
		Unlocked:        []component.ProjectileType{component.ProjectileNormal},
	}
}

// NewRand returns a PCG generator; seed 0 seeds from wall time
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// CreateEntity reserves a new entity handle; handles are never reused within a session
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// AdversaryPosition looks up a live adversary's position
func (w *World) AdversaryPosition(e core.Entity) (vmath.Vec2, bool) {
	adv, ok := w.Adversaries.Get(e)
	if !ok {
		return vmath.Vec2{}, false
	}
	return adv.Pos, true
}

// AddSystem registers a system, keeping systems sorted by priority
// Equal priorities run in registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.systems)
}

// RunSafe executes fn while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// UpdateLocked runs all systems in priority order, stopping after the one that defeats the actor
// Caller holds the update lock
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
		if w.State.Defeated() {
			return
		}
	}
}

// PushEvent queues an event stamped with the current tick
func (w *World) PushEvent(t event.EventType, payload any) {
	w.Events.Emit(t, payload, w.State.Ticks)
}

// InArena reports whether p lies inside the arena, edges included
func (w *World) InArena(p vmath.Vec2) bool {
	return vmath.InRect(p, w.Config.Arena.Width, w.Config.Arena.Height)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
