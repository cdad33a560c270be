package keycodec

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dshills/keycodec/internal/input/key"
)

// Event is a key.Event that serializes as a Binding record.
// Use it as a struct field type to store key bindings in JSON or YAML.
type Event key.Event

// Key returns the underlying key event.
func (e Event) Key() key.Event {
	return key.Event(e)
}

// MarshalJSON implements json.Marshaler.
func (e Event) MarshalJSON() ([]byte, error) {
	b, err := EncodeEvent(key.Event(e))
	if err != nil {
		return nil, err
	}
	return json.Marshal(b)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Event) UnmarshalJSON(data []byte) error {
	var b Binding
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	ev, err := DecodeEvent(b)
	if err != nil {
		return err
	}
	*e = Event(ev)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e Event) MarshalYAML() (any, error) {
	return EncodeEvent(key.Event(e))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Event) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: key binding must be a mapping with code and modifiers", value.Line)
	}
	var b Binding
	if err := value.Decode(&b); err != nil {
		return err
	}
	ev, err := DecodeEvent(b)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*e = Event(ev)
	return nil
}

// CodeText is a key.Code that serializes as its text form.
type CodeText key.Code

// MarshalText implements encoding.TextMarshaler.
func (c CodeText) MarshalText() ([]byte, error) {
	s, err := EncodeCode(key.Code(c))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CodeText) UnmarshalText(text []byte) error {
	code, err := DecodeCode(string(text))
	if err != nil {
		return err
	}
	*c = CodeText(code)
	return nil
}

// ModifierText is a key.Modifier that serializes as its text form.
type ModifierText key.Modifier

// MarshalText implements encoding.TextMarshaler.
func (m ModifierText) MarshalText() ([]byte, error) {
	return []byte(EncodeModifiers(key.Modifier(m))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ModifierText) UnmarshalText(text []byte) error {
	mods, err := DecodeModifiers(string(text))
	if err != nil {
		return err
	}
	*m = ModifierText(mods)
	return nil
}
