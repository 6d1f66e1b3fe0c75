package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/vmath"
)

const eps = 1e-9

var profile = Profile{TankMoveEvery: 3, ZigZagAmplitude: math.Pi / 4, ZigZagFrequency: 0.1}

func TestSeekMovesSpeedUnits(t *testing.T) {
	next := Seek(vmath.V2(0, 0), vmath.V2(30, 40), 5)
	assert.InDelta(t, 3.0, next.X, eps)
	assert.InDelta(t, 4.0, next.Y, eps)

	// Overshoot is not capped
	next = Seek(vmath.V2(0, 0), vmath.V2(1, 0), 5)
	assert.InDelta(t, 5.0, next.X, eps)
}

func TestStepActorClamps(t *testing.T) {
	tests := []struct {
		name   string
		pos    vmath.Vec2
		intent vmath.Vec2
		want   vmath.Vec2
	}{
		{"idle", vmath.V2(600, 400), vmath.V2(0, 0), vmath.V2(600, 400)},
		{"right", vmath.V2(600, 400), vmath.V2(1, 0), vmath.V2(605, 400)},
		{"diagonal not normalized", vmath.V2(600, 400), vmath.V2(-1, 1), vmath.V2(595, 405)},
		{"left wall", vmath.V2(22, 400), vmath.V2(-1, 0), vmath.V2(20, 400)},
		{"bottom right corner", vmath.V2(1178, 779), vmath.V2(1, 1), vmath.V2(1180, 780)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StepActor(tt.pos, tt.intent, 5, 20, 1200, 800)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
		})
	}
}

func TestTankMovesEveryThirdTick(t *testing.T) {
	adv := component.Adversary{Type: component.AdversaryTank, Pos: vmath.V2(0, 0), Speed: 0.7}
	target := vmath.V2(100, 0)

	var xs []float64
	for range 6 {
		StepAdversary(&profile, &adv, target)
		xs = append(xs, adv.Pos.X)
	}
	assert.InDeltaSlice(t, []float64{0.7, 0.7, 0.7, 1.4, 1.4, 1.4}, xs, eps)
	assert.Equal(t, 6, adv.MovementCounter)
}

func TestZigZagOscillates(t *testing.T) {
	adv := component.Adversary{Type: component.AdversaryZigZag, Pos: vmath.V2(0, 0), Speed: 2}
	target := vmath.V2(1000, 0)

	// Counter 0 has zero offset
	StepAdversary(&profile, &adv, target)
	assert.InDelta(t, 2.0, adv.Pos.X, eps)
	assert.InDelta(t, 0.0, adv.Pos.Y, eps)

	// Counter 1 veers by sin(0.1)*pi/4
	before := adv.Pos
	StepAdversary(&profile, &adv, target)
	offset := math.Sin(0.1) * math.Pi / 4
	assert.InDelta(t, before.Y+2*math.Sin(offset), adv.Pos.Y, 1e-6)
}

func TestBasicAndFastSeek(t *testing.T) {
	for _, typ := range []component.AdversaryType{component.AdversaryBasic, component.AdversaryFast} {
		adv := component.Adversary{Type: typ, Pos: vmath.V2(0, 0), Speed: 3}
		StepAdversary(&profile, &adv, vmath.V2(0, -10))
		assert.InDelta(t, -3.0, adv.Pos.Y, eps)
		assert.Equal(t, 1, adv.MovementCounter)
	}
}

func TestStepProjectileHomesThenFallsBack(t *testing.T) {
	live := map[core.Entity]vmath.Vec2{1: vmath.V2(100, 0)}
	lookup := func(e core.Entity) (vmath.Vec2, bool) {
		p, ok := live[e]
		return p, ok
	}
	p := component.Projectile{Pos: vmath.V2(0, 0), Speed: 8, Aim: component.AimAtEntity(1, vmath.V2(100, 0))}

	StepProjectile(&p, lookup)
	assert.InDelta(t, 8.0, p.Pos.X, eps)

	// Target moves: projectile re-aims
	live[1] = vmath.V2(8, 100)
	StepProjectile(&p, lookup)
	assert.InDelta(t, 8.0, p.Pos.X, eps)
	assert.InDelta(t, 8.0, p.Pos.Y, eps)

	// Target removed: keeps flying to the last known point
	delete(live, 1)
	StepProjectile(&p, lookup)
	assert.False(t, p.Aim.IsHoming())
	assert.Equal(t, vmath.V2(8, 100), p.Aim.Point)
	assert.InDelta(t, 16.0, p.Pos.Y, eps)
}
