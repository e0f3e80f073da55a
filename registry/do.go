package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/samber/do/v2"
)

// serviceNamePrefix namespaces autobind services inside the shared injector.
const serviceNamePrefix = "autobind:"

// BindingService returns the injector service name under which a binding is
// published by the do-backed registry. Hosts resolve it with:
//
//	b, err := do.InvokeNamed[registry.Binding](injector, registry.BindingService(abstraction, concrete))
func BindingService(abstraction, concrete reflect.Type) string {
	return serviceNamePrefix + Binding{Abstraction: abstraction, Concrete: concrete}.Key()
}

// doRegistry adapts a samber/do injector to the Registry interface.
//
// do's registration API is generic and compile-time typed, so bindings
// discovered through reflection cannot be provided as constructor services.
// Instead each binding is published as a named value service (the Binding
// itself); host wiring code reads it back and materializes the service with
// the lifetime it carries. The adapter keeps its own pair index for
// duplicate queries — only bindings inserted through the adapter count.
type doRegistry struct {
	mu       sync.RWMutex
	injector do.Injector
	bindings []Binding
	index    map[pairKey]struct{}
}

var _ Registry = (*doRegistry)(nil)

// NewDo creates a registry that publishes bindings into the given injector.
func NewDo(injector do.Injector) Registry {
	return &doRegistry{
		injector: injector,
		index:    make(map[pairKey]struct{}),
	}
}

func (r *doRegistry) Contains(abstraction, concrete reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[pairKey{abstraction, concrete}]
	return ok
}

func (r *doRegistry) Insert(b Binding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey{b.Abstraction, b.Concrete}
	if _, ok := r.index[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateBinding, b.Key())
	}
	do.ProvideNamedValue(r.injector, serviceNamePrefix+b.Key(), b)
	r.index[key] = struct{}{}
	r.bindings = append(r.bindings, b)
	return nil
}

func (r *doRegistry) Bindings() []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Binding, len(r.bindings))
	copy(out, r.bindings)
	return out
}
