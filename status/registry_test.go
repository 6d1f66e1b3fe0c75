package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReturnsStablePointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("combat.kills")
	b := r.Ints.Get("combat.kills")
	assert.Same(t, a, b)
	assert.True(t, r.Ints.Has("combat.kills"))
	assert.False(t, r.Ints.Has("combat.score"))
}

func TestSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("combat.score").Store(42)
	r.Floats.Get("actor.health").Set(87.5)
	r.Bools.Get("game.paused").Store(true)
	r.Strings.Get("powerup.active").Store("fireRate")

	snap := r.Snapshot()
	assert.Equal(t, int64(42), snap["combat.score"])
	assert.Equal(t, 87.5, snap["actor.health"])
	assert.Equal(t, true, snap["game.paused"])
	assert.Equal(t, "fireRate", snap["powerup.active"])
	assert.Equal(t, 4, r.Count())
}

func TestRangeIsSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	m.Get("b")
	m.Get("c")
	m.Get("a")

	var keys []string
	m.Range(func(k string, _ *AtomicFloat) { keys = append(keys, k) })
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestAtomicStringZeroValue(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())
	s.Store("x")
	assert.Equal(t, "x", s.Load())
}
