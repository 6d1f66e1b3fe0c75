// Package input maps terminal key reports to arena actions and a held-direction intent
package input

import "github.com/lixenwraith/vi-arena/vmath"

// Handler resolves key events through bindings and feeds movement into a KeyState
// It satisfies render.InputSource
type Handler struct {
	bindings *Bindings
	state    *KeyState
}

func NewHandler(bindings *Bindings, state *KeyState) *Handler {
	return &Handler{bindings: bindings, state: state}
}

// Handle returns the bound action; movement actions are also recorded as held
func (h *Handler) Handle(ev Event) Action {
	a := h.bindings.Lookup(ev)
	h.state.Press(a)
	return a
}

func (h *Handler) Intent() vmath.Vec2 {
	return h.state.Intent()
}
