package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/vmath"
)

// KeyState turns press/repeat reports into held directions
// Terminals never report releases, so a direction counts as held for a window after its last report
// Press runs on the event goroutine, Intent on the tick goroutine
type KeyState struct {
	mu     sync.Mutex
	clock  engine.TimeProvider
	window time.Duration
	last   [4]time.Time // indexed by action - ActionMoveUp
}

// NewKeyState creates a tracker reading clock
func NewKeyState(clock engine.TimeProvider) *KeyState {
	return &KeyState{
		clock:  clock,
		window: parameter.HeldKeyWindowMs * time.Millisecond,
	}
}

// SetWindow overrides the hold window
func (s *KeyState) SetWindow(d time.Duration) {
	s.mu.Lock()
	s.window = d
	s.mu.Unlock()
}

// Press records a report for a movement action; other actions are ignored
func (s *KeyState) Press(a Action) {
	if !a.Movement() {
		return
	}
	s.mu.Lock()
	s.last[a-ActionMoveUp] = s.clock.Now()
	s.mu.Unlock()
}

// Release drops every held direction
func (s *KeyState) Release() {
	s.mu.Lock()
	s.last = [4]time.Time{}
	s.mu.Unlock()
}

// Held reports whether a movement action was reported within the window
func (s *KeyState) Held(a Action) bool {
	if !a.Movement() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heldLocked(a, s.clock.Now())
}

func (s *KeyState) heldLocked(a Action, now time.Time) bool {
	t := s.last[a-ActionMoveUp]
	return !t.IsZero() && now.Sub(t) <= s.window
}

// Intent returns the movement direction with components in {-1, 0, 1}
// Opposite directions held together cancel out
func (s *KeyState) Intent() vmath.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()

	var v vmath.Vec2
	if s.heldLocked(ActionMoveLeft, now) {
		v.X--
	}
	if s.heldLocked(ActionMoveRight, now) {
		v.X++
	}
	if s.heldLocked(ActionMoveUp, now) {
		v.Y--
	}
	if s.heldLocked(ActionMoveDown, now) {
		v.Y++
	}
	return v
}
