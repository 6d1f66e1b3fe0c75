package physics

import (
	"math"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/vmath"
)

// Profile tunes the variant movement strategies
type Profile struct {
	// TankMoveEvery lets tanks move only when counter % TankMoveEvery == 0
	TankMoveEvery int
	// ZigZagAmplitude is the peak heading offset in radians
	ZigZagAmplitude float64
	// ZigZagFrequency scales the movement counter into the oscillation phase
	ZigZagFrequency float64
}

// Strategy computes an adversary's next position toward target
// counter is the adversary's movement counter before this tick's increment
type Strategy func(p *Profile, pos, target vmath.Vec2, speed float64, counter int) vmath.Vec2

var strategies = [component.AdversaryTypeCount]Strategy{
	component.AdversaryBasic:  seekStrategy,
	component.AdversaryFast:   seekStrategy,
	component.AdversaryTank:   tankStrategy,
	component.AdversaryZigZag: zigzagStrategy,
}

// StrategyFor returns the movement strategy of t; unknown variants seek
func StrategyFor(t component.AdversaryType) Strategy {
	if t < component.AdversaryTypeCount {
		return strategies[t]
	}
	return seekStrategy
}

// StepAdversary moves adv one tick toward target and increments its movement counter
func StepAdversary(p *Profile, adv *component.Adversary, target vmath.Vec2) {
	adv.Pos = StrategyFor(adv.Type)(p, adv.Pos, target, adv.Speed, adv.MovementCounter)
	adv.MovementCounter++
}

func seekStrategy(_ *Profile, pos, target vmath.Vec2, speed float64, _ int) vmath.Vec2 {
	return Seek(pos, target, speed)
}

func tankStrategy(p *Profile, pos, target vmath.Vec2, speed float64, counter int) vmath.Vec2 {
	if p.TankMoveEvery > 1 && counter%p.TankMoveEvery != 0 {
		return pos
	}
	return Seek(pos, target, speed)
}

func zigzagStrategy(p *Profile, pos, target vmath.Vec2, speed float64, counter int) vmath.Vec2 {
	offset := math.Sin(float64(counter)*p.ZigZagFrequency) * p.ZigZagAmplitude
	return SeekOffset(pos, target, speed, offset)
}
