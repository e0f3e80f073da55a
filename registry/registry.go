// Package registry defines the service registry collaborator that autobind
// appends bindings to, plus two implementations: an ordered in-memory
// registry and an adapter over a samber/do injector.
//
// autobind only needs two operations from a registry — a duplicate query and
// an insert — so hosts with their own container can satisfy Registry with a
// thin adapter. Resolution semantics (what a lifetime means at construction
// time) belong entirely to the host container.
package registry

import (
	"reflect"

	"github.com/omarluq/autobind/marker"
)

// Binding is one service registration: a concrete type bound under an
// abstraction with a lifetime. Self-bound services have
// Abstraction == Concrete.
type Binding struct {
	Abstraction reflect.Type
	Concrete    reflect.Type
	Lifetime    marker.Lifetime
}

// Key returns the binding's identity string. Two bindings collide exactly
// when their keys are equal; lifetime is not part of the identity.
func (b Binding) Key() string {
	return b.Abstraction.String() + "=>" + b.Concrete.String()
}

// String returns a human-readable rendering of the binding.
func (b Binding) String() string {
	return b.Key() + " (" + b.Lifetime.String() + ")"
}

// Registry is the mutable service registry autobind appends to.
// Implementations must be safe for concurrent use; autobind additionally
// serializes its own check-then-insert sequence, so implementations do not
// need an atomic compare-and-insert.
type Registry interface {
	// Contains reports whether a binding for the (abstraction, concrete)
	// pair already exists, regardless of lifetime.
	Contains(abstraction, concrete reflect.Type) bool

	// Insert adds the binding. Returns ErrDuplicateBinding if a binding for
	// the same (abstraction, concrete) pair already exists.
	Insert(b Binding) error

	// Bindings returns a snapshot of all bindings in insertion order.
	Bindings() []Binding
}
