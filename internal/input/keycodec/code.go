package keycodec

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/keycodec/internal/input/key"
)

const codeMessage = "must provide one character or a valid name"

// codeNames is the only place a named key is tied to its text form.
// Every name is at least two bytes long so it never collides with a
// single-character code.
var codeNames = map[key.Key]string{
	key.KeyBackspace:   "Backspace",
	key.KeyEnter:       "Enter",
	key.KeyLeft:        "Left",
	key.KeyRight:       "Right",
	key.KeyUp:          "Up",
	key.KeyDown:        "Down",
	key.KeyHome:        "Home",
	key.KeyEnd:         "End",
	key.KeyPageUp:      "PageUp",
	key.KeyPageDown:    "PageDown",
	key.KeyTab:         "Tab",
	key.KeyBackTab:     "BackTab",
	key.KeyDelete:      "Delete",
	key.KeyInsert:      "Insert",
	key.KeyNull:        "Null",
	key.KeyEscape:      "Esc",
	key.KeyCapsLock:    "CapsLock",
	key.KeyScrollLock:  "ScrollLock",
	key.KeyNumLock:     "NumLock",
	key.KeyPrintScreen: "PrintScreen",
	key.KeyPause:       "Pause",
	key.KeyMenu:        "Menu",
	key.KeyKeypadBegin: "KeypadBegin",
}

var codeKeys = invert(codeNames)

func invert(names map[key.Key]string) map[string]key.Key {
	keys := make(map[string]key.Key, len(names))
	for k, name := range names {
		keys[name] = k
	}
	return keys
}

// EncodeCode returns the text form of a key identity.
// Characters encode as themselves; named keys use their reserved name.
func EncodeCode(code key.Code) (string, error) {
	if code.IsChar() {
		if !utf8.ValidRune(code.Rune) {
			return "", &EncodingError{Code: code}
		}
		return string(code.Rune), nil
	}
	if name, ok := codeNames[code.Key]; ok {
		return name, nil
	}
	return "", &EncodingError{Code: code}
}

// DecodeCode parses the text form of a key identity.
//
// Text consisting of exactly one character is always that character, even
// whitespace, so " " decodes as a space instead of being trimmed to empty
// and rejected. This keeps every character EncodeCode produces decodable.
// Otherwise surrounding whitespace is trimmed and the remainder must be a
// single character or an exact, case-sensitive key name.
func DecodeCode(text string) (key.Code, error) {
	if !utf8.ValidString(text) {
		return key.Code{}, &DecodingError{Field: FieldCode, Input: text, Message: "must be valid UTF-8"}
	}
	if r, ok := single(text); ok {
		return key.Char(r), nil
	}

	trimmed := strings.TrimSpace(text)
	if r, ok := single(trimmed); ok {
		return key.Char(r), nil
	}
	if trimmed != "" {
		if k, ok := codeKeys[trimmed]; ok {
			return key.Named(k), nil
		}
	}
	return key.Code{}, &DecodingError{Field: FieldCode, Input: text, Message: codeMessage}
}

// single returns the only rune of s.
func single(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, false
	}
	return r, true
}

// Names returns every reserved key name, ordered by key.
func Names() []string {
	names := make([]string, 0, len(codeNames))
	for k := key.KeyNone; k <= key.KeyF12; k++ {
		if name, ok := codeNames[k]; ok {
			names = append(names, name)
		}
	}
	return names
}
