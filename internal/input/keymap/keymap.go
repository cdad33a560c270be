package keymap

import (
	"sort"

	"github.com/dshills/keycodec/internal/input/key"
	"github.com/dshills/keycodec/internal/input/keycodec"
)

// Keymap maps action names to key events.
type Keymap struct {
	// Name is the keymap identifier, usually the file it came from.
	Name string

	// Source indicates where this keymap was defined.
	// Examples: "default", "user", "config"
	Source string

	// Bindings maps an action to the key event that triggers it.
	Bindings map[string]key.Event
}

// NewKeymap creates a new empty keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make(map[string]key.Event),
	}
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add binds action to ev, replacing any previous binding, and returns k
// for chaining. Kind and State are normalized away.
func (k *Keymap) Add(action string, ev key.Event) *Keymap {
	k.Set(action, ev)
	return k
}

// Set binds action to ev, replacing any previous binding.
func (k *Keymap) Set(action string, ev key.Event) {
	if k.Bindings == nil {
		k.Bindings = make(map[string]key.Event)
	}
	k.Bindings[action] = ev.Normalize()
}

// Get returns the event bound to action.
func (k *Keymap) Get(action string) (key.Event, bool) {
	ev, ok := k.Bindings[action]
	return ev, ok
}

// Remove deletes the binding for action. It reports whether one existed.
func (k *Keymap) Remove(action string) bool {
	if _, ok := k.Bindings[action]; !ok {
		return false
	}
	delete(k.Bindings, action)
	return true
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.Bindings)
}

// Actions returns all bound action names in sorted order.
func (k *Keymap) Actions() []string {
	actions := make([]string, 0, len(k.Bindings))
	for action := range k.Bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	return actions
}

// Lookup returns the action bound to ev. Kind and State are ignored.
// When several actions share the event the alphabetically first wins;
// use Conflicts to detect that situation.
func (k *Keymap) Lookup(ev key.Event) (string, bool) {
	for _, action := range k.Actions() {
		if k.Bindings[action].Equals(ev) {
			return action, true
		}
	}
	return "", false
}

// Merge copies every binding of other into k. Bindings in other win.
func (k *Keymap) Merge(other *Keymap) {
	if other == nil {
		return
	}
	for action, ev := range other.Bindings {
		k.Set(action, ev)
	}
}

// Clone returns a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := NewKeymap(k.Name).WithSource(k.Source)
	for action, ev := range k.Bindings {
		clone.Bindings[action] = ev
	}
	return clone
}

// Conflict describes one key event bound to more than one action.
type Conflict struct {
	// Event is the shared key event.
	Event key.Event
	// Actions are the actions bound to Event, sorted.
	Actions []string
}

// String renders the conflict for reports, e.g. "ALT+Up: a, b".
func (c Conflict) String() string {
	label, err := keycodec.Format(c.Event)
	if err != nil {
		label = c.Event.Code.String()
	}
	s := label + ":"
	for i, action := range c.Actions {
		if i > 0 {
			s += ","
		}
		s += " " + action
	}
	return s
}

// Conflicts returns every key event bound to more than one action,
// ordered by the first action of each conflict.
func (k *Keymap) Conflicts() []Conflict {
	byEvent := make(map[key.Event][]string)
	for _, action := range k.Actions() {
		ev := k.Bindings[action].Normalize()
		byEvent[ev] = append(byEvent[ev], action)
	}

	var conflicts []Conflict
	for ev, actions := range byEvent {
		if len(actions) > 1 {
			conflicts = append(conflicts, Conflict{Event: ev, Actions: actions})
		}
	}
	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].Actions[0] < conflicts[j].Actions[0]
	})
	return conflicts
}
