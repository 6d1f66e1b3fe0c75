package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-arena/config"
	"github.com/lixenwraith/vi-arena/engine"
)

// oneSecondTicks makes every Update one elapsed-time tick
func oneSecondTicks() config.Config {
	cfg := testConfig()
	cfg.Timing.Tick = config.Duration(time.Second)
	cfg.Timing.ElapsedUnit = config.Duration(time.Second)
	return cfg
}

func TestDifficultyRamp(t *testing.T) {
	a := newArena(t, oneSecondTicks())
	st := a.world.State

	for range 89 {
		a.difficulty.Update()
	}
	assert.Equal(t, 400*time.Millisecond, st.SpawnInterval)

	a.difficulty.Update()
	assert.Equal(t, 90, st.ElapsedTime)
	assert.Equal(t, 350*time.Millisecond, st.SpawnInterval)
	assert.Equal(t, 350*time.Millisecond, st.SpawnTimer.Interval())
	assert.Equal(t, int64(350), a.world.Status.Ints.Get("spawn.interval_ms").Load())
}

func TestDifficultyFloor(t *testing.T) {
	a := newArena(t, oneSecondTicks())
	for range 30 * 20 {
		a.difficulty.Update()
	}
	assert.Equal(t, 200*time.Millisecond, a.world.State.SpawnInterval)
}

func TestDifficultyFrozenWhileChoosing(t *testing.T) {
	a := newArena(t, oneSecondTicks())
	a.world.State.Phase = engine.PhaseChoosing
	a.difficulty.Update()
	assert.Zero(t, a.world.State.ElapsedTime)
}

func TestEscalatedInterval(t *testing.T) {
	dc := config.Default().Difficulty
	start := 500 * time.Millisecond

	tests := []struct {
		elapsed int
		want    time.Duration
	}{
		{0, 500 * time.Millisecond},
		{29, 500 * time.Millisecond},
		{30, 450 * time.Millisecond},
		{90, 350 * time.Millisecond},
		{180, 200 * time.Millisecond},
		{10000, 200 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EscalatedInterval(start, tt.elapsed, dc), "elapsed %d", tt.elapsed)
	}

	// A start already under the floor is left alone
	assert.Equal(t, 150*time.Millisecond, EscalatedInterval(150*time.Millisecond, 300, dc))
}

func TestElapsedCounterAccumulatesTicks(t *testing.T) {
	cfg := testConfig()
	cfg.Timing.Tick = config.Duration(250 * time.Millisecond)
	a := newArena(t, cfg)

	for range 7 {
		a.difficulty.Update()
	}
	assert.Equal(t, 1, a.world.State.ElapsedTime)
	a.difficulty.Update()
	assert.Equal(t, 2, a.world.State.ElapsedTime)
}
