package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/config"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/input"
	"github.com/lixenwraith/vi-arena/render"
	"github.com/lixenwraith/vi-arena/vmath"
)

// 60x22 cells: 20 arena rows of 40 units and 60 columns of 20 units for a 1200x800 arena
func newTestScreen(t *testing.T) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	t.Cleanup(sim.Fini)
	sim.SetSize(60, 22)
	return sim, NewScreen(sim, 1200, 800)
}

func cell(sim tcell.Screen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func row(sim tcell.Screen, y int) string {
	cols, _ := sim.Size()
	var b strings.Builder
	for x := range cols {
		b.WriteRune(cell(sim, x, y))
	}
	return strings.TrimRight(b.String(), " ")
}

func TestViewportMapping(t *testing.T) {
	v := Viewport{ArenaW: 1200, ArenaH: 800, Cols: 60, Rows: 22}
	assert.Equal(t, 20, v.ArenaRows())

	x, y, ok := v.ToCell(vmath.V2(600, 400))
	require.True(t, ok)
	assert.Equal(t, [2]int{30, 10}, [2]int{x, y})

	x, y, ok = v.ToCell(vmath.V2(1200, 800))
	require.True(t, ok)
	assert.Equal(t, [2]int{59, 19}, [2]int{x, y})

	_, _, ok = v.ToCell(vmath.V2(-1, 10))
	assert.False(t, ok)

	p, ok := v.ToArena(30, 10)
	require.True(t, ok)
	assert.Equal(t, vmath.V2(610, 420), p)

	_, ok = v.ToArena(5, 20)
	assert.False(t, ok, "HUD rows are outside the arena")
}

func TestScreenDrawsEntities(t *testing.T) {
	sim, s := newTestScreen(t)
	cfg := config.Default()
	actor := component.Actor{Pos: vmath.V2(600, 400), Unlocked: []component.ProjectileType{component.ProjectileNormal}}

	s.Clear()
	s.DrawActor(&actor, nil)
	s.DrawAdversary(&component.Adversary{Type: component.AdversaryTank, Pos: vmath.V2(10, 10), Color: cfg.Adversaries.Tank.Color})
	s.DrawProjectile(&component.Projectile{Type: component.ProjectileExplosive, Pos: vmath.V2(1190, 790)})
	s.Show()

	assert.Equal(t, '@', cell(sim, 30, 10))
	assert.Equal(t, 'T', cell(sim, 0, 0))
	assert.Equal(t, '*', cell(sim, 59, 19))

	_, _, style, _ := sim.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	assert.Equal(t, rgbColor(core.RGBDarkRed), fg)
}

func TestScreenHUD(t *testing.T) {
	sim, s := newTestScreen(t)
	actor := component.Actor{Unlocked: []component.ProjectileType{component.ProjectileNormal, component.ProjectileSpread}, ActiveVariant: 1}
	active := &component.ActivePowerUp{Definition: component.PowerUpDefinition{Kind: component.PowerUpSpreadShot, Label: "Spread Shot"}}

	s.Clear()
	s.DrawActor(&actor, active)
	s.Update(12, 3, 80)

	assert.Equal(t, "Score: 12  Time: 3s  Health: 80", row(sim, 20))
	assert.Equal(t, "Weapon: spread  Power-up: Spread Shot", row(sim, 21))
}

func TestScreenChoiceOverlay(t *testing.T) {
	sim, s := newTestScreen(t)
	choices := config.DefaultCatalog()[:3]

	s.Clear()
	s.DrawChoiceOverlay(choices, render.NewChoiceLayout(1200, 800, 3))

	// Panel spans columns 15..44 and rows 5..14
	assert.Equal(t, tcell.RuneULCorner, cell(sim, 15, 5))
	assert.Equal(t, tcell.RuneLRCorner, cell(sim, 44, 14))
	assert.Contains(t, row(sim, 6), "Choose a power-up")

	// First button spans columns 17..24 and rows 7..9
	assert.Equal(t, tcell.RuneULCorner, cell(sim, 17, 7))
	assert.True(t, strings.HasPrefix(string([]rune(row(sim, 8))[18:]), "1 Fire"))
	assert.Equal(t, tcell.RuneVLine, cell(sim, 24, 8))
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want input.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), input.RuneEvent('w')},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.Event{Key: input.KeySpace}},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.Event{Key: input.KeyUp}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), input.Event{Key: input.KeyTab}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.Event{Key: input.KeyEscape}},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), input.Event{Key: input.KeyCtrlC}},
		{"unbound", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), input.Event{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateKey(tt.ev))
		})
	}
}

func TestClickTrackerReportsPressEdge(t *testing.T) {
	v := Viewport{ArenaW: 1200, ArenaH: 800, Cols: 60, Rows: 22}
	var c ClickTracker

	p, ok := c.Click(tcell.NewEventMouse(30, 10, tcell.Button1, tcell.ModNone), v)
	require.True(t, ok)
	assert.Equal(t, vmath.V2(610, 420), p)

	_, ok = c.Click(tcell.NewEventMouse(31, 10, tcell.Button1, tcell.ModNone), v)
	assert.False(t, ok, "drag")

	_, ok = c.Click(tcell.NewEventMouse(31, 10, tcell.ButtonNone, tcell.ModNone), v)
	assert.False(t, ok)

	_, ok = c.Click(tcell.NewEventMouse(5, 21, tcell.Button1, tcell.ModNone), v)
	assert.False(t, ok, "HUD row")
}
