package registry

import (
	"fmt"
	"reflect"
	"sync"
)

type pairKey struct {
	abstraction reflect.Type
	concrete    reflect.Type
}

// memoryRegistry is an ordered in-memory Registry.
type memoryRegistry struct {
	mu       sync.RWMutex
	bindings []Binding
	index    map[pairKey]struct{}
}

var _ Registry = (*memoryRegistry)(nil)

// NewMemory creates an empty in-memory registry. It preserves insertion
// order and is safe for concurrent use.
func NewMemory() Registry {
	return &memoryRegistry{index: make(map[pairKey]struct{})}
}

func (r *memoryRegistry) Contains(abstraction, concrete reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[pairKey{abstraction, concrete}]
	return ok
}

func (r *memoryRegistry) Insert(b Binding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey{b.Abstraction, b.Concrete}
	if _, ok := r.index[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateBinding, b.Key())
	}
	r.index[key] = struct{}{}
	r.bindings = append(r.bindings, b)
	return nil
}

func (r *memoryRegistry) Bindings() []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Binding, len(r.bindings))
	copy(out, r.bindings)
	return out
}
