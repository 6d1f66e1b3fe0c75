package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-arena/input"
	"github.com/lixenwraith/vi-arena/vmath"
)

// TranslateKey converts a tcell key report to an input event
// Keys with no arena meaning come back as KeyNone
func TranslateKey(ev *tcell.EventKey) input.Event {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return input.Event{Key: input.KeySpace}
		}
		return input.RuneEvent(ev.Rune())
	case tcell.KeyEscape:
		return input.Event{Key: input.KeyEscape}
	case tcell.KeyEnter:
		return input.Event{Key: input.KeyEnter}
	case tcell.KeyTab:
		return input.Event{Key: input.KeyTab}
	case tcell.KeyBacktab:
		return input.Event{Key: input.KeyBacktab}
	case tcell.KeyUp:
		return input.Event{Key: input.KeyUp}
	case tcell.KeyDown:
		return input.Event{Key: input.KeyDown}
	case tcell.KeyLeft:
		return input.Event{Key: input.KeyLeft}
	case tcell.KeyRight:
		return input.Event{Key: input.KeyRight}
	case tcell.KeyCtrlC:
		return input.Event{Key: input.KeyCtrlC}
	}
	return input.Event{}
}

// ClickTracker reports primary-button presses, ignoring drag and hold reports
type ClickTracker struct {
	down bool
}

// Click returns the arena point of a new primary-button press
func (c *ClickTracker) Click(ev *tcell.EventMouse, view Viewport) (vmath.Vec2, bool) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasDown := c.down
	c.down = pressed
	if !pressed || wasDown {
		return vmath.Vec2{}, false
	}
	x, y := ev.Position()
	return view.ToArena(x, y)
}

func vec(x, y float64) vmath.Vec2 {
	return vmath.V2(x, y)
}
