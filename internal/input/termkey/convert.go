// Package termkey converts between tcell terminal key events and key.Event.
//
// Terminals report Ctrl+letter as a control code; FromTcell turns those back
// into the letter with ModCtrl so that bindings such as
//
//	code: q
//	modifiers: CONTROL
//
// match what the user pressed. Ctrl+H, Ctrl+I and Ctrl+M share their codes
// with Backspace, Tab and Enter and are reported as the latter.
package termkey

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keycodec/internal/input/key"
)

var fromTcellKeys = func() map[tcell.Key]key.Key {
	m := map[tcell.Key]key.Key{
		tcell.KeyBackspace:  key.KeyBackspace,
		tcell.KeyBackspace2: key.KeyBackspace,
		tcell.KeyEnter:      key.KeyEnter,
		tcell.KeyTab:        key.KeyTab,
		tcell.KeyBacktab:    key.KeyBackTab,
		tcell.KeyDelete:     key.KeyDelete,
		tcell.KeyInsert:     key.KeyInsert,
		tcell.KeyEscape:     key.KeyEscape,
		tcell.KeyNUL:        key.KeyNull,
		tcell.KeyLeft:       key.KeyLeft,
		tcell.KeyRight:      key.KeyRight,
		tcell.KeyUp:         key.KeyUp,
		tcell.KeyDown:       key.KeyDown,
		tcell.KeyHome:       key.KeyHome,
		tcell.KeyEnd:        key.KeyEnd,
		tcell.KeyPgUp:       key.KeyPageUp,
		tcell.KeyPgDn:       key.KeyPageDown,
		tcell.KeyPrint:      key.KeyPrintScreen,
		tcell.KeyPause:      key.KeyPause,
	}
	for n := 1; n <= 12; n++ {
		if k, ok := key.FunctionKey(n); ok {
			m[tcell.KeyF1+tcell.Key(n-1)] = k
		}
	}
	return m
}()

// toTcellKeys is the inverse of fromTcellKeys. Backspace maps to the DEL
// code most terminals send.
var toTcellKeys = func() map[key.Key]tcell.Key {
	m := make(map[key.Key]tcell.Key, len(fromTcellKeys))
	for tk, k := range fromTcellKeys {
		m[k] = tk
	}
	m[key.KeyBackspace] = tcell.KeyBackspace2
	return m
}()

// FromTcell converts a tcell key event. It reports false for keys that
// key.Event cannot represent, such as F13 and above.
func FromTcell(ev *tcell.EventKey) (key.Event, bool) {
	if ev == nil {
		return key.Event{}, false
	}
	mods := fromTcellMod(ev.Modifiers())

	k := ev.Key()
	if k == tcell.KeyRune {
		return key.NewRuneEvent(ev.Rune(), mods), true
	}
	if named, ok := fromTcellKeys[k]; ok {
		return key.NewSpecialEvent(named, mods), true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		letter := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRuneEvent(letter, mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

// ToTcell converts a key event into a tcell key event. It reports false when
// tcell has no such key or the event uses Super or Hyper, which tcell does
// not model.
func ToTcell(ev key.Event) (*tcell.EventKey, bool) {
	if ev.Modifiers.HasSuper() || ev.Modifiers.HasHyper() {
		return nil, false
	}
	mods := toTcellMod(ev.Modifiers)

	if ev.Code.IsChar() {
		r := ev.Code.Rune
		if ev.Modifiers.HasCtrl() && r >= 'a' && r <= 'z' {
			return tcell.NewEventKey(tcell.KeyCtrlA+tcell.Key(r-'a'), r, mods), true
		}
		return tcell.NewEventKey(tcell.KeyRune, r, mods), true
	}

	tk, ok := toTcellKeys[ev.Code.Key]
	if !ok {
		return nil, false
	}
	return tcell.NewEventKey(tk, 0, mods), true
}

func fromTcellMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}

func toTcellMod(m key.Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m.HasShift() {
		result |= tcell.ModShift
	}
	if m.HasCtrl() {
		result |= tcell.ModCtrl
	}
	if m.HasAlt() {
		result |= tcell.ModAlt
	}
	if m.HasMeta() {
		result |= tcell.ModMeta
	}
	return result
}
