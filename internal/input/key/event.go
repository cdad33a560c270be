package key

import "fmt"

// Kind distinguishes press, repeat and release events.
type Kind uint8

const (
	// KindPress is a key press. It is the zero value.
	KindPress Kind = iota
	// KindRepeat is an auto-repeated press.
	KindRepeat
	// KindRelease is a key release.
	KindRelease
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPress:
		return "press"
	case KindRepeat:
		return "repeat"
	case KindRelease:
		return "release"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// State carries extra keyboard state reported by some terminals.
type State uint8

// StateNone indicates no extra state.
const StateNone State = 0

const (
	// StateKeypad marks a key that came from the keypad.
	StateKeypad State = 1 << iota

	// StateCapsLock marks Caps Lock as active.
	StateCapsLock

	// StateNumLock marks Num Lock as active.
	StateNumLock
)

// Has returns true if s contains flag.
func (s State) Has(flag State) bool {
	return flag != StateNone && s&flag == flag
}

// Event represents a single key event.
type Event struct {
	// Code identifies the key.
	Code Code

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Kind is press, repeat or release.
	Kind Kind

	// State is extra keyboard state.
	State State
}

// NewEvent creates a press event with no extra state.
func NewEvent(code Code, mods Modifier) Event {
	return Event{
		Code:      code,
		Modifiers: mods,
		Kind:      KindPress,
		State:     StateNone,
	}
}

// NewRuneEvent creates a press event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return NewEvent(Char(r), mods)
}

// NewSpecialEvent creates a press event for a named key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return NewEvent(Named(k), mods)
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Code.IsChar()
}

// Equals returns true if two events represent the same key press.
// Kind and State are not compared.
func (e Event) Equals(other Event) bool {
	return e.Code == other.Code && e.Modifiers == other.Modifiers
}

// Normalize returns a copy with Kind and State reset to their defaults.
func (e Event) Normalize() Event {
	return NewEvent(e.Code, e.Modifiers)
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Code: %s, Modifiers: %s, Kind: %s}",
		e.Code.String(), e.Modifiers.String(), e.Kind.String())
}
