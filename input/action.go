package input

import "github.com/pkg/errors"

// Action is what a bound key asks the host to do
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionCycleVariant
	ActionChoose1
	ActionChoose2
	ActionChoose3
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	"none",
	"move_up",
	"move_down",
	"move_left",
	"move_right",
	"cycle_variant",
	"choose_1",
	"choose_2",
	"choose_3",
	"quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// ErrUnknownAction is returned for a binding whose action name is not recognized
var ErrUnknownAction = errors.New("unknown action")

// ParseAction resolves a config action name; "none" unbinds a key
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return ActionNone, errors.Wrapf(ErrUnknownAction, "%q", name)
}

// Movement reports whether a is one of the four direction actions
func (a Action) Movement() bool {
	return a >= ActionMoveUp && a <= ActionMoveRight
}

// ChoiceIndex returns the zero-based choice slot for choose_N actions
func (a Action) ChoiceIndex() (int, bool) {
	if a >= ActionChoose1 && a <= ActionChoose3 {
		return int(a - ActionChoose1), true
	}
	return 0, false
}
