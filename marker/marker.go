// Package marker defines the per-type registration annotation for autobind.
//
// A Marker attaches to a concrete type declaration in a module catalog and
// carries the two facts auto-registration needs: the service lifetime and an
// optional abstraction (interface) type to bind the concrete type under.
// When no abstraction is given, the type binds to itself.
//
// Markers are immutable values. A lifetime is mandatory by construction:
//
//	mk := marker.New(marker.Singleton)
//	mk = marker.New(marker.Transient, marker.As[Notifier]())
package marker

import (
	"reflect"

	"github.com/samber/mo"
)

// Marker is the declarative registration annotation for one concrete type.
type Marker struct {
	lifetime    Lifetime
	abstraction mo.Option[reflect.Type]
}

// Option configures optional Marker fields.
type Option func(*Marker)

// As binds the marked type under the abstraction type T instead of itself.
// T is usually an interface; autobind does not verify that the concrete
// type implements it (the container surfaces that at resolution time).
func As[T any]() Option {
	return WithAbstraction(TypeOf[T]())
}

// WithAbstraction is the non-generic form of As, for callers that already
// hold a reflect.Type.
func WithAbstraction(t reflect.Type) Option {
	return func(m *Marker) {
		m.abstraction = mo.Some(t)
	}
}

// New creates a Marker with the given lifetime.
func New(lifetime Lifetime, opts ...Option) Marker {
	m := Marker{
		lifetime:    lifetime,
		abstraction: mo.None[reflect.Type](),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Lifetime returns the declared service lifetime.
func (m Marker) Lifetime() Lifetime {
	return m.lifetime
}

// Abstraction returns the explicit abstraction type, if one was declared.
func (m Marker) Abstraction() mo.Option[reflect.Type] {
	return m.abstraction
}

// TypeOf returns the reflect.Type of T without requiring a value of T.
// Unlike reflect.TypeOf on an interface value, this preserves interface
// types instead of collapsing to the dynamic type.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
