package system

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-arena/config"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/parameter"
)

// DifficultySystem runs the elapsed-time counter and shortens the spawn interval on schedule
type DifficultySystem struct {
	world  *engine.World
	logger logrus.FieldLogger

	statElapsed  *atomic.Int64
	statInterval *atomic.Int64

	enabled bool
}

func NewDifficultySystem(world *engine.World) *DifficultySystem {
	s := &DifficultySystem{
		world:        world,
		logger:       world.Logger.WithField("system", "difficulty"),
		statElapsed:  world.Status.Ints.Get("game.elapsed"),
		statInterval: world.Status.Ints.Get("spawn.interval_ms"),
	}
	s.Init()
	return s
}

func (s *DifficultySystem) Init() {
	s.statElapsed.Store(0)
	s.statInterval.Store(s.world.State.SpawnInterval.Milliseconds())
	s.enabled = true
}

func (s *DifficultySystem) Name() string {
	return "difficulty"
}

func (s *DifficultySystem) Priority() int {
	return parameter.PriorityDifficulty
}

// Update advances the elapsed-time timer by one tick
// Skipped once a milestone has paused the game mid-tick
func (s *DifficultySystem) Update() {
	st := s.world.State
	if !s.enabled || st.Phase != engine.PhaseRunning {
		return
	}
	fired := st.ElapsedTimer.Advance(s.world.Config.Timing.Tick.Std())
	for range fired {
		st.ElapsedTime++
		s.Escalate()
	}
	s.statElapsed.Store(int64(st.ElapsedTime))
}

// Escalate applies one difficulty step if the elapsed count is on a step boundary
// The spawn timer restarts at the new cadence
func (s *DifficultySystem) Escalate() {
	st := s.world.State
	dc := s.world.Config.Difficulty
	if st.ElapsedTime%dc.StepElapsed != 0 {
		return
	}
	next := stepInterval(st.SpawnInterval, dc)
	if next == st.SpawnInterval {
		return
	}

	prev := st.SpawnInterval
	st.SetSpawnInterval(next)
	s.statInterval.Store(next.Milliseconds())
	s.world.PushEvent(event.EventSpawnIntervalChanged, &event.SpawnIntervalPayload{
		Previous: prev,
		Current:  next,
		Elapsed:  st.ElapsedTime,
	})
	s.logger.WithFields(logrus.Fields{
		"interval": next,
		"elapsed":  st.ElapsedTime,
		"upcoming": EscalatedInterval(next, dc.StepElapsed, dc),
	}).Debug("spawn interval escalated")
}

// EscalatedInterval returns the spawn interval after elapsed elapsed-time ticks from start
func EscalatedInterval(start time.Duration, elapsed int, dc config.DifficultyConfig) time.Duration {
	interval := start
	for range elapsed / dc.StepElapsed {
		interval = stepInterval(interval, dc)
	}
	return interval
}

func stepInterval(interval time.Duration, dc config.DifficultyConfig) time.Duration {
	floor := dc.Floor.Std()
	if interval <= floor {
		return interval
	}
	return max(floor, interval-dc.Step.Std())
}
