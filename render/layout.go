package render

import "github.com/lixenwraith/vi-arena/parameter"

// Rect is an axis-aligned box in arena coordinates
type Rect struct {
	X, Y, W, H float64
}

// Contains tests p against the box, edges inclusive
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// ChoiceLayout places the power-up buttons in a centered row
type ChoiceLayout struct {
	Panel   Rect
	Buttons []Rect
}

// NewChoiceLayout lays out n buttons for an arena of w x h
func NewChoiceLayout(w, h float64, n int) ChoiceLayout {
	bw := parameter.ChoiceButtonWidth
	bh := parameter.ChoiceButtonHeight
	gap := parameter.ChoiceButtonSpacing
	pw := parameter.ChoicePanelWidth
	ph := parameter.ChoicePanelHeight

	n = max(0, n)
	rowWidth := bw*float64(n) + gap*float64(max(0, n-1))
	startX := (w - rowWidth) / 2
	startY := (h-ph)/2 + parameter.ChoiceRowOffset

	layout := ChoiceLayout{
		Panel:   Rect{X: (w - pw) / 2, Y: (h - ph) / 2, W: pw, H: ph},
		Buttons: make([]Rect, n),
	}
	for i := range n {
		layout.Buttons[i] = Rect{X: startX + float64(i)*(bw+gap), Y: startY, W: bw, H: bh}
	}
	return layout
}

// HitTest returns the index of the button containing (x, y)
func (l ChoiceLayout) HitTest(x, y float64) (int, bool) {
	for i, b := range l.Buttons {
		if b.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}
