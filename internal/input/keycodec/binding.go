package keycodec

import (
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/dshills/keycodec/internal/input/key"
)

// Binding is the text record of a key event as it appears in
// configuration files.
//
//	code: "Up"
//	modifiers: "ALT+CONTROL"
//
// A nil Modifiers means the field was absent and decodes as no modifiers.
type Binding struct {
	Code      string  `json:"code" yaml:"code" toml:"code" mapstructure:"code"`
	Modifiers *string `json:"modifiers,omitempty" yaml:"modifiers,omitempty" toml:"modifiers,omitempty" mapstructure:"modifiers"`
}

// NewBinding builds a record from already encoded text.
func NewBinding(code, modifiers string) Binding {
	return Binding{Code: code, Modifiers: &modifiers}
}

// ModifiersText returns the modifiers field, defaulting to NONE when absent.
func (b Binding) ModifiersText() string {
	if b.Modifiers == nil {
		return KeywordNone
	}
	return *b.Modifiers
}

// MarshalYAML implements yaml.Marshaler. A code holding a non-printable
// character, such as a newline, is written double-quoted so it reads back
// unchanged.
func (b Binding) MarshalYAML() (any, error) {
	code := strNode(b.Code)
	if strings.ContainsFunc(b.Code, func(r rune) bool { return !unicode.IsPrint(r) }) {
		code.Style = yaml.DoubleQuotedStyle
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	node.Content = append(node.Content, strNode("code"), code)
	if b.Modifiers != nil {
		node.Content = append(node.Content, strNode("modifiers"), strNode(*b.Modifiers))
	}
	return node, nil
}

func strNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// EncodeEvent converts a key event into its record.
// Kind and State are not part of the record.
func EncodeEvent(ev key.Event) (Binding, error) {
	code, err := EncodeCode(ev.Code)
	if err != nil {
		return Binding{}, err
	}
	return NewBinding(code, EncodeModifiers(ev.Modifiers)), nil
}

// DecodeEvent converts a record into a press event with no extra state.
// An absent modifiers field yields no modifiers without being decoded.
func DecodeEvent(b Binding) (key.Event, error) {
	code, err := DecodeCode(b.Code)
	if err != nil {
		return key.Event{}, err
	}

	mods := key.ModNone
	if b.Modifiers != nil {
		mods, err = DecodeModifiers(*b.Modifiers)
		if err != nil {
			return key.Event{}, err
		}
	}
	return key.NewEvent(code, mods), nil
}

// Format returns the canonical "MODIFIERS+code" display form of an event,
// e.g. "ALT+CONTROL+Left", or just the code when no modifiers are set.
func Format(ev key.Event) (string, error) {
	code, err := EncodeCode(ev.Code)
	if err != nil {
		return "", err
	}
	if ev.Modifiers.IsEmpty() {
		return code, nil
	}
	return EncodeModifiers(ev.Modifiers) + Separator + code, nil
}
