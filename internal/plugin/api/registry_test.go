package api

import (
	"errors"
	"reflect"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

// mockModule is a simple test module.
type mockModule struct {
	name       string
	registered bool
	err        error
}

func (m *mockModule) Name() string { return m.name }
func (m *mockModule) Register(L *lua.LState) error {
	if m.err != nil {
		return m.err
	}
	m.registered = true
	L.SetGlobal(m.name, lua.LString("mock"))
	return nil
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	mod := &mockModule{name: "test"}
	if err := r.Register(mod); err != nil {
		t.Errorf("Register error = %v", err)
	}
	if err := r.Register(mod); err == nil {
		t.Error("duplicate Register should return error")
	}
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	mod := &mockModule{name: "test"}
	_ = r.Register(mod)

	got, ok := r.Get("test")
	if !ok || got != mod {
		t.Errorf("Get(test) = (%v, %v), want registered module", got, ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) ok = true")
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(&mockModule{name: "zeta"})
	_ = r.Register(&mockModule{name: "alpha"})

	if got, want := r.List(), []string{"alpha", "zeta"}; !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestRegistryInjectAll(t *testing.T) {
	r := NewRegistry()
	a := &mockModule{name: "a"}
	b := &mockModule{name: "b"}
	_ = r.Register(a)
	_ = r.Register(b)

	L := lua.NewState()
	defer L.Close()

	if err := r.InjectAll(L); err != nil {
		t.Fatalf("InjectAll error = %v", err)
	}
	if !a.registered || !b.registered {
		t.Error("InjectAll did not register every module")
	}
	if got := L.GetGlobal("a"); got != lua.LString("mock") {
		t.Errorf("global a = %v", got)
	}
}

func TestRegistryInjectAllError(t *testing.T) {
	boom := errors.New("boom")
	r := NewRegistry()
	_ = r.Register(&mockModule{name: "bad", err: boom})

	L := lua.NewState()
	defer L.Close()

	if err := r.InjectAll(L); !errors.Is(err, boom) {
		t.Errorf("InjectAll error = %v, want wrapped boom", err)
	}
}
