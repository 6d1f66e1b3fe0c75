package component

import (
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/vmath"
)

// AdversaryType selects stats and movement strategy
type AdversaryType uint8

const (
	AdversaryBasic AdversaryType = iota
	AdversaryFast
	AdversaryTank
	AdversaryZigZag

	// AdversaryTypeCount bounds per-variant tables
	AdversaryTypeCount
)

var adversaryTypeNames = [AdversaryTypeCount]string{"basic", "fast", "tank", "zigzag"}

func (t AdversaryType) String() string {
	if t < AdversaryTypeCount {
		return adversaryTypeNames[t]
	}
	return "unknown"
}

// ParseAdversaryType maps a variant name to its tag
func ParseAdversaryType(s string) (AdversaryType, bool) {
	for i, name := range adversaryTypeNames {
		if name == s {
			return AdversaryType(i), true
		}
	}
	return 0, false
}

// Adversary is a hostile entity; Health > 0 while it is in the store
type Adversary struct {
	Type   AdversaryType
	Pos    vmath.Vec2
	Radius float64
	Speed  float64
	Health int
	Color  core.RGB

	// MovementCounter counts ticks alive, drives tank gating and zigzag phase
	MovementCounter int
}

// Body returns the collision circle
func (a *Adversary) Body() vmath.Circle {
	return vmath.Circle{Center: a.Pos, Radius: a.Radius}
}
