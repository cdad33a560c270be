package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keycodec/internal/input/key"
	"github.com/dshills/keycodec/internal/input/keycodec"
)

// KeysModule exposes the key binding codec to Lua as the global "keys".
//
//	local ev = keys.decode("Left", "CONTROL+ALT")
//	-- ev.code == "Left", ev.modifiers == "ALT+CONTROL", ev.kind == "press"
//	local code, mods = keys.encode(ev)
//	keys.normalize("SHIFT+NONE+ALT") -- "ALT+SHIFT"
//	keys.names()                     -- {"Backspace", "Enter", ...}
type KeysModule struct{}

// NewKeysModule creates the keys module.
func NewKeysModule() *KeysModule {
	return &KeysModule{}
}

// Name returns the module name.
func (m *KeysModule) Name() string {
	return "keys"
}

// Register installs the module as a global table.
func (m *KeysModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "decode", L.NewFunction(m.decode))
	L.SetField(mod, "encode", L.NewFunction(m.encode))
	L.SetField(mod, "normalize", L.NewFunction(m.normalize))
	L.SetField(mod, "format", L.NewFunction(m.format))
	L.SetField(mod, "names", L.NewFunction(m.names))

	L.SetGlobal(m.Name(), mod)
	return nil
}

// decode(code, modifiers?) -> {code, modifiers, kind}
// Raises an error when either part is invalid.
func (m *KeysModule) decode(L *lua.LState) int {
	ev := checkEvent(L, 1, 2)
	L.Push(eventTable(L, ev))
	return 1
}

// encode(tbl) -> code, modifiers
// tbl is a table with code and optional modifiers fields. The result is the
// canonical text of each field.
func (m *KeysModule) encode(L *lua.LState) int {
	tbl := L.CheckTable(1)
	b := keycodec.Binding{Code: getTableString(L, tbl, "code")}
	if mods, ok := L.GetField(tbl, "modifiers").(lua.LString); ok {
		s := string(mods)
		b.Modifiers = &s
	}

	ev, err := keycodec.DecodeEvent(b)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	out, err := keycodec.EncodeEvent(ev)
	if err != nil {
		L.RaiseError("encode: %v", err)
		return 0
	}

	L.Push(lua.LString(out.Code))
	L.Push(lua.LString(out.ModifiersText()))
	return 2
}

// normalize(modifiers) -> canonical modifiers
func (m *KeysModule) normalize(L *lua.LState) int {
	mods, err := keycodec.DecodeModifiers(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LString(keycodec.EncodeModifiers(mods)))
	return 1
}

// format(code, modifiers?) -> display string such as "ALT+CONTROL+Left"
func (m *KeysModule) format(L *lua.LState) int {
	ev := checkEvent(L, 1, 2)
	s, err := keycodec.Format(ev)
	if err != nil {
		L.RaiseError("format: %v", err)
		return 0
	}
	L.Push(lua.LString(s))
	return 1
}

// names() -> {name...}
func (m *KeysModule) names(L *lua.LState) int {
	L.Push(stringList(L, keycodec.Names()))
	return 1
}

// checkEvent decodes the code argument at codeArg and the optional
// modifiers argument at modsArg.
func checkEvent(L *lua.LState, codeArg, modsArg int) key.Event {
	b := keycodec.Binding{Code: L.CheckString(codeArg)}
	if L.GetTop() >= modsArg && L.Get(modsArg) != lua.LNil {
		s := L.CheckString(modsArg)
		b.Modifiers = &s
	}

	ev, err := keycodec.DecodeEvent(b)
	if err != nil {
		arg := codeArg
		if b.Modifiers != nil {
			if _, codeErr := keycodec.DecodeCode(b.Code); codeErr == nil {
				arg = modsArg
			}
		}
		L.ArgError(arg, err.Error())
	}
	return ev
}

// eventTable converts an event into {code, modifiers, kind}.
func eventTable(L *lua.LState, ev key.Event) *lua.LTable {
	tbl := L.NewTable()
	b, err := keycodec.EncodeEvent(ev)
	if err != nil {
		L.RaiseError("%v", err)
		return tbl
	}
	L.SetField(tbl, "code", lua.LString(b.Code))
	L.SetField(tbl, "modifiers", lua.LString(b.ModifiersText()))
	L.SetField(tbl, "kind", lua.LString(ev.Kind.String()))
	return tbl
}
