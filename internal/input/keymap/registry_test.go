package keymap

import (
	"reflect"
	"sync"
	"testing"

	"github.com/dshills/keycodec/internal/input/key"
)

func TestRegistryLookupPriority(t *testing.T) {
	r := NewRegistry()
	up := key.NewSpecialEvent(key.KeyUp, key.ModNone)

	if err := r.Register(NewKeymap("default").Add("move_up", up), PriorityDefault); err != nil {
		t.Fatalf("Register error = %v", err)
	}
	if err := r.Register(NewKeymap("user").Add("scroll_up", up), PriorityUser); err != nil {
		t.Fatalf("Register error = %v", err)
	}

	action, source, ok := r.Lookup(up)
	if !ok || action != "scroll_up" || source != "user" {
		t.Errorf("Lookup = (%q, %q, %v), want (scroll_up, user, true)", action, source, ok)
	}

	r.Unregister("user")
	action, source, ok = r.Lookup(up)
	if !ok || action != "move_up" || source != "default" {
		t.Errorf("Lookup after Unregister = (%q, %q, %v), want (move_up, default, true)", action, source, ok)
	}

	if _, _, ok := r.Lookup(key.NewSpecialEvent(key.KeyDown, key.ModNone)); ok {
		t.Error("Lookup(Down) found a binding")
	}
}

func TestRegistryEqualPriorityLatestWins(t *testing.T) {
	r := NewRegistry()
	q := key.NewRuneEvent('q', key.ModCtrl)

	_ = r.Register(NewKeymap("first").Add("quit", q), PriorityUser)
	_ = r.Register(NewKeymap("second").Add("close", q), PriorityUser)

	if action, _, _ := r.Lookup(q); action != "close" {
		t.Errorf("Lookup = %q, want close", action)
	}
	if want := []string{"second", "first"}; !reflect.DeepEqual(r.Names(), want) {
		t.Errorf("Names() = %v, want %v", r.Names(), want)
	}
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(Default(), PriorityDefault)
	_ = r.Register(NewKeymap("config").Add("quit", key.NewRuneEvent('x', key.ModAlt)), PriorityConfig)

	resolved := r.Resolve("effective")
	if resolved.Name != "effective" {
		t.Errorf("Name = %q, want effective", resolved.Name)
	}
	if resolved.Len() != Default().Len() {
		t.Errorf("Len() = %d, want %d", resolved.Len(), Default().Len())
	}
	if got, _ := resolved.Get("quit"); got != key.NewRuneEvent('x', key.ModAlt) {
		t.Errorf("quit = %#v, want config override", got)
	}
}

func TestRegistryIsolation(t *testing.T) {
	r := NewRegistry()
	km := NewKeymap("user").Add("a", key.NewRuneEvent('a', key.ModNone))
	_ = r.Register(km, PriorityUser)

	km.Add("b", key.NewRuneEvent('b', key.ModNone))
	got, ok := r.Get("user")
	if !ok {
		t.Fatal("Get(user) not found")
	}
	if got.Len() != 1 {
		t.Errorf("registered keymap changed with caller's copy: Len() = %d", got.Len())
	}
}

func TestRegistryRegisterErrors(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(nil, 0); err == nil {
		t.Error("Register(nil) should fail")
	}
	if err := r.Register(NewKeymap(""), 0); err == nil {
		t.Error("Register(unnamed) should fail")
	}
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(Default(), PriorityDefault)
	up := key.NewSpecialEvent(key.KeyUp, key.ModNone)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if i%2 == 0 {
					_ = r.Register(NewKeymap("user").Add("up", up), PriorityUser)
				} else {
					r.Lookup(up)
					r.Resolve("x")
				}
			}
		}(i)
	}
	wg.Wait()
}
