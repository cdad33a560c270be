package api

import (
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keycodec/internal/input/keymap"
)

// KeymapModule exposes a keymap to Lua as the global "keymap".
//
//	keymap.set("save", "s", "CONTROL")
//	keymap.get("save")             -- {code="s", modifiers="CONTROL", kind="press"}
//	keymap.lookup("s", "CONTROL")  -- "save"
//	keymap.del("save")             -- true
//	keymap.list()                  -- {{action=..., code=..., modifiers=...}, ...}
//	keymap.conflicts()             -- {{event="ALT+Up", actions={...}}, ...}
type KeymapModule struct {
	mu sync.Mutex
	km *keymap.Keymap
}

// NewKeymapModule creates a module operating on km. Changes made from Lua
// are applied to km directly.
func NewKeymapModule(km *keymap.Keymap) *KeymapModule {
	if km == nil {
		km = keymap.NewKeymap("script")
	}
	return &KeymapModule{km: km}
}

// Name returns the module name.
func (m *KeymapModule) Name() string {
	return "keymap"
}

// Keymap returns the keymap the module edits.
func (m *KeymapModule) Keymap() *keymap.Keymap {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.km
}

// Register installs the module as a global table.
func (m *KeymapModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "set", L.NewFunction(m.set))
	L.SetField(mod, "get", L.NewFunction(m.get))
	L.SetField(mod, "del", L.NewFunction(m.del))
	L.SetField(mod, "lookup", L.NewFunction(m.lookup))
	L.SetField(mod, "list", L.NewFunction(m.list))
	L.SetField(mod, "conflicts", L.NewFunction(m.conflicts))

	L.SetGlobal(m.Name(), mod)
	return nil
}

// set(action, code, modifiers?) -> nil
func (m *KeymapModule) set(L *lua.LState) int {
	action := L.CheckString(1)
	if action == "" {
		L.ArgError(1, "action cannot be empty")
		return 0
	}
	ev := checkEvent(L, 2, 3)

	m.mu.Lock()
	m.km.Set(action, ev)
	m.mu.Unlock()
	return 0
}

// get(action) -> table or nil
func (m *KeymapModule) get(L *lua.LState) int {
	action := L.CheckString(1)

	m.mu.Lock()
	ev, ok := m.km.Get(action)
	m.mu.Unlock()

	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(eventTable(L, ev))
	return 1
}

// del(action) -> bool
func (m *KeymapModule) del(L *lua.LState) int {
	action := L.CheckString(1)

	m.mu.Lock()
	removed := m.km.Remove(action)
	m.mu.Unlock()

	L.Push(lua.LBool(removed))
	return 1
}

// lookup(code, modifiers?) -> action or nil
func (m *KeymapModule) lookup(L *lua.LState) int {
	ev := checkEvent(L, 1, 2)

	m.mu.Lock()
	action, ok := m.km.Lookup(ev)
	m.mu.Unlock()

	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(action))
	return 1
}

// list() -> {{action, code, modifiers, kind}...} sorted by action
func (m *KeymapModule) list(L *lua.LState) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := L.NewTable()
	for i, action := range m.km.Actions() {
		ev, _ := m.km.Get(action)
		tbl := eventTable(L, ev)
		L.SetField(tbl, "action", lua.LString(action))
		result.RawSetInt(i+1, tbl)
	}
	L.Push(result)
	return 1
}

// conflicts() -> {{event, actions}...}
func (m *KeymapModule) conflicts(L *lua.LState) int {
	m.mu.Lock()
	conflicts := m.km.Conflicts()
	m.mu.Unlock()

	result := L.NewTable()
	for i, c := range conflicts {
		tbl := eventTable(L, c.Event)
		L.SetField(tbl, "actions", stringList(L, c.Actions))
		result.RawSetInt(i+1, tbl)
	}
	L.Push(result)
	return 1
}

// getTableString gets a string field from a Lua table.
func getTableString(L *lua.LState, tbl *lua.LTable, field string) string {
	val := L.GetField(tbl, field)
	if str, ok := val.(lua.LString); ok {
		return string(str)
	}
	return ""
}

// stringList converts a slice into a Lua array.
func stringList(L *lua.LState, items []string) *lua.LTable {
	tbl := L.CreateTable(len(items), 0)
	for i, s := range items {
		tbl.RawSetInt(i+1, lua.LString(s))
	}
	return tbl
}
