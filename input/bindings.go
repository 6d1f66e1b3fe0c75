package input

import (
	"sort"

	"github.com/pkg/errors"
)

// Bindings maps key events to actions
type Bindings struct {
	keys  map[Key]Action
	runes map[rune]Action
}

// ParseBindings builds a table from key name to action name pairs
// Names are resolved in sorted order so the first error is deterministic
func ParseBindings(raw map[string]string) (*Bindings, error) {
	b := &Bindings{
		keys:  make(map[Key]Action),
		runes: make(map[rune]Action),
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ev, err := ParseKey(name)
		if err != nil {
			return nil, errors.Wrap(err, "bindings")
		}
		action, err := ParseAction(raw[name])
		if err != nil {
			return nil, errors.Wrapf(err, "bindings: key %q", name)
		}
		b.bind(ev, action)
	}
	return b, nil
}

func (b *Bindings) bind(ev Event, a Action) {
	if ev.Key == KeyRune {
		b.runes[ev.Rune] = a
		return
	}
	b.keys[ev.Key] = a
}

// Lookup returns the action bound to ev, ActionNone when unbound
func (b *Bindings) Lookup(ev Event) Action {
	if ev.Key == KeyRune {
		return b.runes[ev.Rune]
	}
	return b.keys[ev.Key]
}

// Len returns the number of bound keys, unbinds included
func (b *Bindings) Len() int {
	return len(b.keys) + len(b.runes)
}
