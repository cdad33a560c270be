package key

import "fmt"

// Key identifies a keyboard key.
// Character keys use KeyRune; the character itself lives in Code.Rune.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyRune is used for character keys (letters, digits, punctuation).
	KeyRune

	// Editing keys
	KeyBackspace
	KeyEnter
	KeyTab
	KeyBackTab
	KeyDelete
	KeyInsert
	KeyEscape
	KeyNull

	// Arrow keys
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Lock and system keys
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyMenu
	KeyKeypadBegin

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = [...]string{
	KeyNone:        "None",
	KeyRune:        "Rune",
	KeyBackspace:   "Backspace",
	KeyEnter:       "Enter",
	KeyTab:         "Tab",
	KeyBackTab:     "BackTab",
	KeyDelete:      "Delete",
	KeyInsert:      "Insert",
	KeyEscape:      "Escape",
	KeyNull:        "Null",
	KeyLeft:        "Left",
	KeyRight:       "Right",
	KeyUp:          "Up",
	KeyDown:        "Down",
	KeyHome:        "Home",
	KeyEnd:         "End",
	KeyPageUp:      "PageUp",
	KeyPageDown:    "PageDown",
	KeyCapsLock:    "CapsLock",
	KeyScrollLock:  "ScrollLock",
	KeyNumLock:     "NumLock",
	KeyPrintScreen: "PrintScreen",
	KeyPause:       "Pause",
	KeyMenu:        "Menu",
	KeyKeypadBegin: "KeypadBegin",
	KeyF1:          "F1",
	KeyF2:          "F2",
	KeyF3:          "F3",
	KeyF4:          "F4",
	KeyF5:          "F5",
	KeyF6:          "F6",
	KeyF7:          "F7",
	KeyF8:          "F8",
	KeyF9:          "F9",
	KeyF10:         "F10",
	KeyF11:         "F11",
	KeyF12:         "F12",
}

// String returns a human-readable name for the key.
// This is a debugging aid, not the configuration text form.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// FunctionKey returns the function key Fn for n in [1, 12].
func FunctionKey(n int) (Key, bool) {
	if n < 1 || n > 12 {
		return KeyNone, false
	}
	return KeyF1 + Key(n-1), true
}
