package input

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Key identifies a non-printable key; printable keys are KeyRune plus Event.Rune
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

// Event is one key press or auto-repeat reported by the terminal
type Event struct {
	Key  Key
	Rune rune
}

// RuneEvent is shorthand for a printable key press
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// ErrUnknownKey is returned for a binding key name that maps to no key
var ErrUnknownKey = errors.New("unknown key name")

var keyNames = map[string]Key{
	"esc":     KeyEscape,
	"escape":  KeyEscape,
	"enter":   KeyEnter,
	"tab":     KeyTab,
	"backtab": KeyBacktab,
	"space":   KeySpace,
	"up":      KeyUp,
	"down":    KeyDown,
	"left":    KeyLeft,
	"right":   KeyRight,
	"ctrl+c":  KeyCtrlC,
}

// ParseKey resolves a binding name: a named key ("up", "tab", "ctrl+c") or a single character
// Named keys are case-insensitive, single characters are taken literally
func ParseKey(name string) (Event, error) {
	if k, ok := keyNames[strings.ToLower(name)]; ok {
		return Event{Key: k}, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if r == ' ' {
			return Event{Key: KeySpace}, nil
		}
		return RuneEvent(r), nil
	}
	return Event{}, errors.Wrapf(ErrUnknownKey, "%q", name)
}
