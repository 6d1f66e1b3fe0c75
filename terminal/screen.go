package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/render"
)

var (
	styleDefault    = tcell.StyleDefault
	styleActor      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleActorBlink = tcell.StyleDefault.Foreground(tcell.ColorWhite).Dim(true)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePanel      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleButton     = tcell.StyleDefault.Foreground(rgbColor(core.RGBButton)).Background(tcell.ColorBlack)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHUDWarn    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var adversaryGlyphs = [component.AdversaryTypeCount]rune{'o', 'f', 'T', 'z'}

var projectileGlyphs = [component.ProjectileTypeCount]rune{'.', ',', '|', '*'}

// Screen draws arena frames and the HUD onto a tcell screen
// It implements render.Renderer and render.HUD
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
	arenaW float64
	arenaH float64
	view   Viewport

	// Set by DrawActor, shown on the second HUD row
	activeLabel string
	variant     string
}

var (
	_ render.Renderer = (*Screen)(nil)
	_ render.HUD      = (*Screen)(nil)
)

// NewScreen wraps an initialized tcell screen for an arena of w x h units
func NewScreen(s tcell.Screen, w, h float64) *Screen {
	t := &Screen{screen: s, arenaW: w, arenaH: h}
	t.refresh()
	return t
}

func (s *Screen) refresh() {
	cols, rows := s.screen.Size()
	s.view = Viewport{ArenaW: s.arenaW, ArenaH: s.arenaH, Cols: cols, Rows: rows}
}

// Viewport returns the current arena-to-cell mapping
func (s *Screen) Viewport() Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Resize re-reads the screen size and repaints on the next Show
func (s *Screen) Resize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh()
	s.screen.Sync()
}

func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh()
	s.screen.Clear()
}

func (s *Screen) DrawActor(actor *component.Actor, active *component.ActivePowerUp) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeLabel = ""
	if active != nil {
		s.activeLabel = active.Definition.Label
	}
	s.variant = actor.ActiveType().String()

	style := styleActor
	if actor.Invincibility > 0 && actor.Invincibility%4 < 2 {
		style = styleActorBlink
	}
	s.setCell(actor.Pos.X, actor.Pos.Y, '@', style)
}

func (s *Screen) DrawAdversary(adv *component.Adversary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	glyph := '?'
	if adv.Type < component.AdversaryTypeCount {
		glyph = adversaryGlyphs[adv.Type]
	}
	s.setCell(adv.Pos.X, adv.Pos.Y, glyph, styleDefault.Foreground(rgbColor(adv.Color)))
}

func (s *Screen) DrawProjectile(p *component.Projectile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	glyph := '.'
	if p.Type < component.ProjectileTypeCount {
		glyph = projectileGlyphs[p.Type]
	}
	s.setCell(p.Pos.X, p.Pos.Y, glyph, styleProjectile)
}

// DrawChoiceOverlay draws the panel and one numbered box per offered power-up
func (s *Screen) DrawChoiceOverlay(choices []component.PowerUpDefinition, layout render.ChoiceLayout) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := layout.Panel
	x0, y0, x1, y1 := s.view.CellRect(p.X, p.Y, p.W, p.H)
	s.fill(x0, y0, x1, y1, stylePanel)
	s.box(x0, y0, x1, y1, stylePanel)
	s.text(x0+2, y0+1, x1-1, "Choose a power-up", stylePanel.Bold(true))

	for i, b := range layout.Buttons {
		if i >= len(choices) {
			break
		}
		bx0, by0, bx1, by1 := s.view.CellRect(b.X, b.Y, b.W, b.H)
		s.box(bx0, by0, bx1, by1, styleButton)
		s.text(bx0+1, by0+1, bx1, fmt.Sprintf("%d %s", i+1, choices[i].Label), styleButton.Bold(true))
		if by0+2 < by1 {
			s.text(bx0+1, by0+2, bx1, choices[i].Description, styleButton)
		}
	}
}

func (s *Screen) Show() {
	s.screen.Show()
}

// Update writes the HUD rows below the arena
func (s *Screen) Update(score, elapsed, health int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.view.ArenaRows()
	if row >= s.view.Rows {
		return
	}
	style := styleHUD
	if health <= 25 {
		style = styleHUDWarn
	}
	s.text(0, row, s.view.Cols, fmt.Sprintf("Score: %d  Time: %ds  Health: %d", score, elapsed, health), style)

	if row+1 < s.view.Rows {
		line := "Weapon: " + s.variant
		if s.activeLabel != "" {
			line += "  Power-up: " + s.activeLabel
		}
		s.text(0, row+1, s.view.Cols, line, styleHUD)
	}
	s.screen.Show()
}

func (s *Screen) setCell(x, y float64, r rune, style tcell.Style) {
	cx, cy, ok := s.view.ToCell(vec(x, y))
	if !ok {
		return
	}
	s.screen.SetContent(cx, cy, r, nil, style)
}

// text writes str from (x, y), clipped before column limit
func (s *Screen) text(x, y, limit int, str string, style tcell.Style) {
	for _, r := range str {
		if x >= limit {
			return
		}
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (s *Screen) fill(x0, y0, x1, y1 int, style tcell.Style) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *Screen) box(x0, y0, x1, y1 int, style tcell.Style) {
	for x := x0 + 1; x < x1; x++ {
		s.screen.SetContent(x, y0, tcell.RuneHLine, nil, style)
		s.screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		s.screen.SetContent(x0, y, tcell.RuneVLine, nil, style)
		s.screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	s.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	s.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	s.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	s.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

func rgbColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Banner centers text on the middle arena row and shows it
func (s *Screen) Banner(text string) {
	s.mu.Lock()
	rows := s.view.ArenaRows()
	n := len([]rune(text))
	x := max(0, (s.view.Cols-n)/2)
	s.text(x, rows/2, s.view.Cols, text, styleHUDWarn)
	s.mu.Unlock()
	s.screen.Show()
}
