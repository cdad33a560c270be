package api

import (
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keycodec/internal/input/key"
	"github.com/dshills/keycodec/internal/input/keymap"
)

func setupKeymapTest(t *testing.T, km *keymap.Keymap) (*lua.LState, *KeymapModule) {
	t.Helper()

	mod := NewKeymapModule(km)

	L := lua.NewState()
	t.Cleanup(func() { L.Close() })

	if err := mod.Register(L); err != nil {
		t.Fatalf("Register error = %v", err)
	}
	return L, mod
}

func TestKeymapModuleName(t *testing.T) {
	mod := NewKeymapModule(nil)
	if mod.Name() != "keymap" {
		t.Errorf("Name() = %q, want %q", mod.Name(), "keymap")
	}
	if mod.Keymap() == nil {
		t.Error("Keymap() is nil for a module created without one")
	}
}

func TestKeymapSet(t *testing.T) {
	km := keymap.NewKeymap("test")
	L, _ := setupKeymapTest(t, km)

	if err := L.DoString(`keymap.set("save", "s", "CONTROL"); keymap.set("up", "Up")`); err != nil {
		t.Fatalf("DoString error = %v", err)
	}

	if got, _ := km.Get("save"); got != key.NewRuneEvent('s', key.ModCtrl) {
		t.Errorf("save = %#v", got)
	}
	if got, _ := km.Get("up"); got != key.NewSpecialEvent(key.KeyUp, key.ModNone) {
		t.Errorf("up = %#v", got)
	}
}

func TestKeymapSetErrors(t *testing.T) {
	km := keymap.NewKeymap("test")
	L, _ := setupKeymapTest(t, km)

	tests := []struct {
		name   string
		script string
	}{
		{"empty action", `keymap.set("", "a")`},
		{"bad code", `keymap.set("a", "Nope")`},
		{"bad modifiers", `keymap.set("a", "a", "CMD")`},
		{"missing code", `keymap.set("a")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := L.DoString(tt.script); err == nil {
				t.Error("DoString should fail")
			}
		})
	}
	if km.Len() != 0 {
		t.Errorf("Len() = %d after failed sets, want 0", km.Len())
	}
}

func TestKeymapGet(t *testing.T) {
	km := keymap.NewKeymap("test").Add("move_left", key.NewSpecialEvent(key.KeyLeft, key.ModAlt|key.ModCtrl))
	L, _ := setupKeymapTest(t, km)

	err := L.DoString(`
		local b = keymap.get("move_left")
		code, mods = b.code, b.modifiers
		missing = keymap.get("nope")
	`)
	if err != nil {
		t.Fatalf("DoString error = %v", err)
	}

	if got := L.GetGlobal("code").String(); got != "Left" {
		t.Errorf("code = %q, want Left", got)
	}
	if got := L.GetGlobal("mods").String(); got != "ALT+CONTROL" {
		t.Errorf("mods = %q, want ALT+CONTROL", got)
	}
	if L.GetGlobal("missing") != lua.LNil {
		t.Error("get(nope) should be nil")
	}
}

func TestKeymapDelAndLookup(t *testing.T) {
	km := keymap.NewKeymap("test").Add("quit", key.NewRuneEvent('q', key.ModCtrl))
	L, _ := setupKeymapTest(t, km)

	err := L.DoString(`
		found = keymap.lookup("q", "CONTROL")
		unbound = keymap.lookup("q")
		removed = keymap.del("quit")
		again = keymap.del("quit")
	`)
	if err != nil {
		t.Fatalf("DoString error = %v", err)
	}

	if got := L.GetGlobal("found").String(); got != "quit" {
		t.Errorf("lookup = %q, want quit", got)
	}
	if L.GetGlobal("unbound") != lua.LNil {
		t.Error("lookup(q) without modifiers should be nil")
	}
	if L.GetGlobal("removed") != lua.LTrue || L.GetGlobal("again") != lua.LFalse {
		t.Error("del results wrong")
	}
	if km.Len() != 0 {
		t.Errorf("Len() = %d after del, want 0", km.Len())
	}
}

func TestKeymapList(t *testing.T) {
	km := keymap.NewKeymap("test").
		Add("b", key.NewRuneEvent('b', key.ModNone)).
		Add("a", key.NewSpecialEvent(key.KeyEnter, key.ModShift))
	L, _ := setupKeymapTest(t, km)

	err := L.DoString(`
		local items = keymap.list()
		count = #items
		first_action = items[1].action
		first_code = items[1].code
		first_mods = items[1].modifiers
	`)
	if err != nil {
		t.Fatalf("DoString error = %v", err)
	}

	if got := L.GetGlobal("count"); got != lua.LNumber(2) {
		t.Errorf("count = %v, want 2", got)
	}
	if got := L.GetGlobal("first_action").String(); got != "a" {
		t.Errorf("first action = %q, want a", got)
	}
	if got := L.GetGlobal("first_code").String(); got != "Enter" {
		t.Errorf("first code = %q, want Enter", got)
	}
	if got := L.GetGlobal("first_mods").String(); got != "SHIFT" {
		t.Errorf("first modifiers = %q, want SHIFT", got)
	}
}

func TestKeymapConflicts(t *testing.T) {
	km := keymap.NewKeymap("test").
		Add("a", key.NewSpecialEvent(key.KeyUp, key.ModAlt)).
		Add("b", key.NewSpecialEvent(key.KeyUp, key.ModAlt)).
		Add("c", key.NewSpecialEvent(key.KeyDown, key.ModNone))
	L, _ := setupKeymapTest(t, km)

	err := L.DoString(`
		local c = keymap.conflicts()
		count = #c
		code = c[1].code
		second = c[1].actions[2]
	`)
	if err != nil {
		t.Fatalf("DoString error = %v", err)
	}

	if got := L.GetGlobal("count"); got != lua.LNumber(1) {
		t.Errorf("count = %v, want 1", got)
	}
	if got := L.GetGlobal("code").String(); got != "Up" {
		t.Errorf("code = %q, want Up", got)
	}
	if got := L.GetGlobal("second").String(); got != "b" {
		t.Errorf("second action = %q, want b", got)
	}
}
