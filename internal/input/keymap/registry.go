package keymap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/keycodec/internal/input/key"
)

// Layer priorities for the usual keymap sources.
const (
	PriorityDefault = 0
	PriorityUser    = 100
	PriorityConfig  = 200
)

type layer struct {
	keymap   *Keymap
	priority int
	seq      int
}

// Registry layers keymaps by priority and resolves events against them.
// Higher priority keymaps override lower ones; among equal priorities the
// most recently registered wins. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	layers map[string]*layer
	seq    int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{layers: make(map[string]*layer)}
}

// Register adds km under its name, replacing any keymap with the same name.
func (r *Registry) Register(km *Keymap, priority int) error {
	if km == nil {
		return fmt.Errorf("cannot register nil keymap")
	}
	if km.Name == "" {
		return fmt.Errorf("cannot register keymap without a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.layers[km.Name] = &layer{keymap: km.Clone(), priority: priority, seq: r.seq}
	return nil
}

// Unregister removes the keymap with the given name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.layers, name)
}

// Get returns a copy of the keymap registered under name.
func (r *Registry) Get(name string) (*Keymap, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.layers[name]
	if !ok {
		return nil, false
	}
	return l.keymap.Clone(), true
}

// Names returns registered keymap names, highest priority first.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ordered := r.orderedLocked()
	names := make([]string, len(ordered))
	for i, l := range ordered {
		names[i] = l.keymap.Name
	}
	return names
}

// Lookup returns the action bound to ev by the highest priority keymap
// that binds it, and the name of that keymap.
func (r *Registry) Lookup(ev key.Event) (action, source string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.orderedLocked() {
		if action, ok := l.keymap.Lookup(ev); ok {
			return action, l.keymap.Name, true
		}
	}
	return "", "", false
}

// Resolve flattens all layers into a single keymap. For each action the
// binding of the highest priority keymap wins.
func (r *Registry) Resolve(name string) *Keymap {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := NewKeymap(name)
	ordered := r.orderedLocked()
	for i := len(ordered) - 1; i >= 0; i-- {
		out.Merge(ordered[i].keymap)
	}
	return out
}

// orderedLocked returns layers from highest to lowest precedence.
// Caller must hold the lock.
func (r *Registry) orderedLocked() []*layer {
	ordered := make([]*layer, 0, len(r.layers))
	for _, l := range r.layers {
		ordered = append(ordered, l)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].priority != ordered[j].priority {
			return ordered[i].priority > ordered[j].priority
		}
		return ordered[i].seq > ordered[j].seq
	})
	return ordered
}
