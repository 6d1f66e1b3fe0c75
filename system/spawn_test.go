package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/config"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/vmath"
)

func TestSpawnBatchOnInterval(t *testing.T) {
	cfg := testConfig()
	cfg.Timing.Tick = config.Duration(100 * time.Millisecond)
	a := newArena(t, cfg)

	for range 4 {
		a.spawn.Update()
	}
	assert.Zero(t, a.world.Adversaries.Count())

	a.spawn.Update()
	assert.Equal(t, 3, a.world.Adversaries.Count())

	for _, adv := range a.world.Adversaries.Values() {
		assert.True(t, vmath.InRect(adv.Pos, 1200, 800))
		stats := cfg.Adversaries.Stats(adv.Type)
		assert.Equal(t, stats.Health, adv.Health)
		assert.Equal(t, stats.Radius, adv.Radius)
		assert.Equal(t, stats.Color, adv.Color)
	}
}

func TestSpawnRespectsCap(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn.MaxAdversaries = 4
	a := newArena(t, cfg)

	assert.Equal(t, 3, a.spawn.SpawnBatch())
	assert.Equal(t, 1, a.spawn.SpawnBatch())
	assert.Equal(t, 0, a.spawn.SpawnBatch())
	assert.Equal(t, 4, a.world.Adversaries.Count())
}

func TestSpawnFrozenWhileChoosing(t *testing.T) {
	cfg := testConfig()
	cfg.Timing.Tick = config.Duration(time.Second)
	a := newArena(t, cfg)
	a.world.State.Phase = engine.PhaseChoosing

	a.spawn.Update()
	assert.Zero(t, a.world.Adversaries.Count())
}

func TestSpawnUsesEveryVariant(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn.MaxAdversaries = 1000
	a := newArena(t, cfg)
	for range 100 {
		a.spawn.SpawnBatch()
	}

	seen := map[component.AdversaryType]bool{}
	for _, adv := range a.world.Adversaries.Values() {
		seen[adv.Type] = true
	}
	assert.Len(t, seen, int(component.AdversaryTypeCount))
}
