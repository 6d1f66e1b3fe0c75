package engine

import (
	"time"

	"github.com/lixenwraith/vi-arena/component"
)

// Phase is the top-level simulation state
type Phase uint8

const (
	// PhaseRunning advances every system each tick
	PhaseRunning Phase = iota
	// PhaseChoosing freezes progression until a power-up is chosen
	PhaseChoosing
	// PhaseDefeated is terminal
	PhaseDefeated
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseChoosing:
		return "choosing"
	case PhaseDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}

// State is the mutable per-session game state shared by the systems
type State struct {
	Score       int
	KillCount   int
	ElapsedTime int
	Ticks       int64
	Phase       Phase

	// SpawnInterval mirrors SpawnTimer's cadence for display and snapshots
	SpawnInterval time.Duration

	// Offered holds the milestone choices while Phase is PhaseChoosing
	Offered []component.PowerUpDefinition

	// Active is the single power-up slot, nil when empty
	Active *component.ActivePowerUp

	// Timers advance only on running ticks
	SpawnTimer   IntervalTimer
	ElapsedTimer IntervalTimer
}

// AwaitingChoice reports whether the milestone overlay is open
func (s *State) AwaitingChoice() bool {
	return s.Phase == PhaseChoosing
}

// Defeated reports the terminal state
func (s *State) Defeated() bool {
	return s.Phase == PhaseDefeated
}

// SetSpawnInterval restarts the spawn timer at a new cadence
func (s *State) SetSpawnInterval(d time.Duration) {
	s.SpawnInterval = d
	s.SpawnTimer.SetInterval(d)
}

// ResetTimers restarts spawn and elapsed timing, as on resume
func (s *State) ResetTimers() {
	s.SpawnTimer.Reset()
	s.ElapsedTimer.Reset()
}
