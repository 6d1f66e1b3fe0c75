// Package game runs the arena: per-tick orchestration, pause for power-up choices, termination
package game

import (
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-arena/config"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/render"
	"github.com/lixenwraith/vi-arena/status"
	"github.com/lixenwraith/vi-arena/system"
	"github.com/lixenwraith/vi-arena/vmath"
)

var (
	// ErrNoChoicePending is returned by Choose outside a milestone pause
	ErrNoChoicePending = errors.New("no power-up choice pending")
	// ErrChoiceOutOfRange is returned by Choose for an index outside the offered set
	ErrChoiceOutOfRange = errors.New("power-up choice out of range")
)

// Simulation owns a World and its systems and advances them one tick at a time
// All methods are safe to call from any goroutine; ticks and choices serialize on the world lock
type Simulation struct {
	world *engine.World
	clock *engine.GameClock

	movement   *system.MovementSystem
	collision  *system.CollisionSystem
	combat     *system.CombatSystem
	powerup    *system.PowerUpSystem
	weapon     *system.WeaponSystem
	difficulty *system.DifficultySystem
	spawn      *system.SpawnSystem
	telemetry  *system.TelemetrySystem

	router *event.Router[*engine.World]

	renderer render.Renderer
	hud      render.HUD
	input    render.InputSource
	logger   logrus.FieldLogger

	statTicks      *atomic.Int64
	statPaused     *atomic.Bool
	statClockTicks *atomic.Int64
	statClockMs    *atomic.Int64
}

type options struct {
	renderer render.Renderer
	hud      render.HUD
	input    render.InputSource
	logger   logrus.FieldLogger
	status   *status.Registry
	epoch    time.Time
}

// Option customizes a Simulation
type Option func(*options)

func WithRenderer(r render.Renderer) Option { return func(o *options) { o.renderer = r } }
func WithHUD(h render.HUD) Option           { return func(o *options) { o.hud = h } }

// WithInput polls src for the movement intent at the start of every running tick
func WithInput(src render.InputSource) Option { return func(o *options) { o.input = src } }

func WithLogger(l logrus.FieldLogger) Option { return func(o *options) { o.logger = l } }

// WithStatus shares a metrics registry with the host
func WithStatus(r *status.Registry) Option { return func(o *options) { o.status = r } }

// WithEpoch sets the game clock's starting reading
func WithEpoch(t time.Time) Option { return func(o *options) { o.epoch = t } }

// New validates cfg and builds a running simulation
func New(cfg config.Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "new simulation")
	}

	o := options{
		renderer: render.Discard{},
		hud:      render.Discard{},
		epoch:    time.Unix(0, 0),
	}
	for _, opt := range opts {
		opt(&o)
	}

	clock := engine.NewGameClock(o.epoch)
	worldOpts := []engine.Option{engine.WithClock(clock)}
	if o.logger != nil {
		worldOpts = append(worldOpts, engine.WithLogger(o.logger))
	}
	if o.status != nil {
		worldOpts = append(worldOpts, engine.WithStatus(o.status))
	}
	w := engine.NewWorld(cfg, worldOpts...)

	s := &Simulation{
		world:      w,
		clock:      clock,
		renderer:   o.renderer,
		hud:        o.hud,
		input:      o.input,
		logger:     w.Logger.WithField("component", "simulation"),
		router:     event.NewRouter[*engine.World](w.Events),
		statTicks:      w.Status.Ints.Get("engine.ticks"),
		statPaused:     w.Status.Bools.Get("game.paused"),
		statClockTicks: w.Status.Ints.Get("clock.ticks"),
		statClockMs:    w.Status.Ints.Get("clock.elapsed_ms"),
	}

	targeting := system.NewTargetingService(w)
	s.movement = system.NewMovementSystem(w)
	s.collision = system.NewCollisionSystem(w)
	s.powerup = system.NewPowerUpSystem(w, clock)
	s.combat = system.NewCombatSystem(w, s.collision, s.powerup)
	s.weapon = system.NewWeaponSystem(w, targeting)
	s.difficulty = system.NewDifficultySystem(w)
	s.spawn = system.NewSpawnSystem(w)
	s.telemetry = system.NewTelemetrySystem(w)

	for _, sys := range []engine.System{
		s.movement, s.collision, s.combat, s.powerup,
		s.weapon, s.difficulty, s.spawn, s.telemetry,
	} {
		w.AddSystem(sys)
	}

	s.router.Register(newLogHandler(w.Logger))
	return s, nil
}

// RegisterHandler adds an event handler; handlers run on the ticking goroutine after each tick
func (s *Simulation) RegisterHandler(h event.Handler[*engine.World]) {
	s.world.RunSafe(func() {
		s.router.Register(h)
	})
}

// Tick advances one step and reports whether the session is still live
// While a choice is pending only the game clock moves and the overlay is drawn
func (s *Simulation) Tick() bool {
	alive := true
	s.world.RunSafe(func() {
		st := s.world.State
		if st.Defeated() {
			alive = false
			return
		}

		s.clock.Advance(s.world.Config.Timing.Tick.Std())
		s.statClockTicks.Store(s.clock.Ticks())
		s.statClockMs.Store(s.clock.Since().Milliseconds())

		if st.AwaitingChoice() {
			s.statPaused.Store(true)
			s.drawOverlay()
			s.router.DispatchAll(s.world)
			return
		}
		s.statPaused.Store(false)

		if s.input != nil {
			s.movement.SetIntent(s.input.Intent())
		}

		st.Ticks++
		s.statTicks.Store(st.Ticks)
		s.world.UpdateLocked()

		s.drawFrame()
		s.hud.Update(st.Score, st.ElapsedTime, render.HealthDisplay(s.world.Actor.Health))
		s.router.DispatchAll(s.world)

		alive = !st.Defeated()
	})
	return alive
}

// Choose applies the i-th offered power-up and resumes the game
// Spawn and elapsed-time timers restart from zero
func (s *Simulation) Choose(i int) error {
	var err error
	s.world.RunSafe(func() {
		st := s.world.State
		if !st.AwaitingChoice() {
			err = ErrNoChoicePending
			return
		}
		if i < 0 || i >= len(st.Offered) {
			err = errors.Wrapf(ErrChoiceOutOfRange, "choice %d of %d", i, len(st.Offered))
			return
		}

		def := st.Offered[i]
		s.powerup.Activate(def)
		st.Offered = nil
		st.Phase = engine.PhaseRunning
		st.ResetTimers()
		s.statPaused.Store(false)

		s.world.PushEvent(event.EventChoiceResolved, &event.PowerUpPayload{
			Definition: def,
			ExpiresAt:  st.Active.ExpiresAt,
		})
		s.logger.WithField("kind", def.Kind).Info("power-up chosen")
	})
	return err
}

// Click resolves a pointer click in arena coordinates against the choice buttons
// Reports whether a choice was made; clicks outside every button are ignored
func (s *Simulation) Click(x, y float64) bool {
	var idx int
	var hit bool
	s.world.RunSafe(func() {
		if !s.world.State.AwaitingChoice() {
			return
		}
		idx, hit = s.layoutLocked().HitTest(x, y)
	})
	if !hit {
		return false
	}
	return s.Choose(idx) == nil
}

// SetIntent records the movement direction for the next running tick
// Ignored when an InputSource is attached
func (s *Simulation) SetIntent(v vmath.Vec2) {
	s.world.RunSafe(func() {
		s.movement.SetIntent(v)
	})
}

// CycleVariant advances the actor's displayed projectile variant
func (s *Simulation) CycleVariant() {
	s.world.RunSafe(s.weapon.CycleVariant)
}

// Reset starts a fresh session with the same configuration and handlers
func (s *Simulation) Reset() {
	s.world.RunSafe(func() {
		s.world.Reset()
		s.statTicks.Store(0)
		s.statPaused.Store(false)
		s.logger.Info("session reset")
	})
}

// Phase returns the current top-level state
func (s *Simulation) Phase() engine.Phase {
	var p engine.Phase
	s.world.RunSafe(func() { p = s.world.State.Phase })
	return p
}

// Layout returns the choice button layout for the current offer
func (s *Simulation) Layout() render.ChoiceLayout {
	var l render.ChoiceLayout
	s.world.RunSafe(func() { l = s.layoutLocked() })
	return l
}

// Status exposes the metrics registry
func (s *Simulation) Status() *status.Registry {
	return s.world.Status
}

// Config returns the simulation's configuration
func (s *Simulation) Config() config.Config {
	return s.world.Config.Clone()
}

func (s *Simulation) layoutLocked() render.ChoiceLayout {
	arena := s.world.Config.Arena
	return render.NewChoiceLayout(arena.Width, arena.Height, len(s.world.State.Offered))
}

func (s *Simulation) drawFrame() {
	w := s.world
	s.renderer.Clear()
	s.renderer.DrawActor(w.Actor, w.State.Active)
	for _, adv := range w.Adversaries.Values() {
		s.renderer.DrawAdversary(&adv)
	}
	for _, p := range w.Projectiles.Values() {
		s.renderer.DrawProjectile(&p)
	}
	if w.State.AwaitingChoice() {
		s.renderer.DrawChoiceOverlay(w.State.Offered, s.layoutLocked())
	}
	s.renderer.Show()
}

func (s *Simulation) drawOverlay() {
	s.renderer.Clear()
	s.renderer.DrawChoiceOverlay(s.world.State.Offered, s.layoutLocked())
	s.renderer.Show()
}
