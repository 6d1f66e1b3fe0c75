package terminal

import (
	"math"

	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/vmath"
)

// Viewport maps arena coordinates onto a cols x rows cell grid
// The last HUDRows rows are outside the arena
type Viewport struct {
	ArenaW, ArenaH float64
	Cols, Rows     int
}

// ArenaRows is the number of rows the arena occupies
func (v Viewport) ArenaRows() int {
	return max(0, v.Rows-parameter.HUDRows)
}

// ToCell returns the cell containing arena point p and whether it is on screen
func (v Viewport) ToCell(p vmath.Vec2) (int, int, bool) {
	rows := v.ArenaRows()
	if v.Cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	x := int(math.Floor(p.X / v.ArenaW * float64(v.Cols)))
	y := int(math.Floor(p.Y / v.ArenaH * float64(rows)))
	// The far edge belongs to the last cell
	if p.X == v.ArenaW {
		x = v.Cols - 1
	}
	if p.Y == v.ArenaH {
		y = rows - 1
	}
	if x < 0 || x >= v.Cols || y < 0 || y >= rows {
		return 0, 0, false
	}
	return x, y, true
}

// ToArena returns the arena point at the center of cell (x, y)
// Cells in the HUD rows or off screen report false
func (v Viewport) ToArena(x, y int) (vmath.Vec2, bool) {
	rows := v.ArenaRows()
	if x < 0 || x >= v.Cols || y < 0 || y >= rows {
		return vmath.Vec2{}, false
	}
	return vmath.V2(
		(float64(x)+0.5)*v.ArenaW/float64(v.Cols),
		(float64(y)+0.5)*v.ArenaH/float64(rows),
	), true
}

// CellRect returns the cell span covering an arena rectangle, inclusive
func (v Viewport) CellRect(x, y, w, h float64) (x0, y0, x1, y1 int) {
	rows := v.ArenaRows()
	x0 = clampInt(int(math.Floor(x/v.ArenaW*float64(v.Cols))), 0, v.Cols-1)
	y0 = clampInt(int(math.Floor(y/v.ArenaH*float64(rows))), 0, rows-1)
	x1 = clampInt(int(math.Ceil((x+w)/v.ArenaW*float64(v.Cols)))-1, x0, v.Cols-1)
	y1 = clampInt(int(math.Ceil((y+h)/v.ArenaH*float64(rows)))-1, y0, rows-1)
	return
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
