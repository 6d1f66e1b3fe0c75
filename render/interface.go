// Package render defines what the simulation needs from a display
// Hosts implement these; the simulation never draws directly
package render

import (
	"math"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/vmath"
)

// Renderer draws one frame in arena coordinates
// Call order per frame: Clear, Draw*, Show
type Renderer interface {
	Clear()
	DrawActor(actor *component.Actor, active *component.ActivePowerUp)
	DrawAdversary(adv *component.Adversary)
	DrawProjectile(p *component.Projectile)
	DrawChoiceOverlay(choices []component.PowerUpDefinition, layout ChoiceLayout)
	Show()
}

// HUD receives the per-tick display numbers
type HUD interface {
	Update(score, elapsed, health int)
}

// InputSource reports the current movement direction, components in {-1, 0, 1}
type InputSource interface {
	Intent() vmath.Vec2
}

// HealthDisplay rounds actor health for display, never below zero
func HealthDisplay(h float64) int {
	return max(0, int(math.Round(h)))
}

// Discard is a Renderer and HUD that draws nothing
type Discard struct{}

func (Discard) Clear()                                                         {}
func (Discard) DrawActor(*component.Actor, *component.ActivePowerUp)           {}
func (Discard) DrawAdversary(*component.Adversary)                             {}
func (Discard) DrawProjectile(*component.Projectile)                           {}
func (Discard) DrawChoiceOverlay([]component.PowerUpDefinition, ChoiceLayout) {}
func (Discard) Show()                                                          {}
func (Discard) Update(int, int, int)                                           {}
