package bind

import (
	"reflect"

	"github.com/samber/lo"

	"github.com/omarluq/autobind/registry"
	"github.com/omarluq/autobind/scan"
)

// Policy selects how the abstraction half of a binding is derived from a
// marked type. The two policies are mutually exclusive; a driver applies
// exactly one.
type Policy int

const (
	// PolicyMarker (the default) uses the marker's explicit abstraction
	// field when present and falls back to self-binding.
	PolicyMarker Policy = iota

	// PolicyConvention ignores the marker's abstraction field and binds the
	// concrete type under an interface named I<ConcreteTypeName> declared in
	// the same module and implemented by the concrete type, falling back to
	// self-binding when no such interface exists.
	PolicyConvention
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyMarker:
		return "marker"
	case PolicyConvention:
		return "convention"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a policy name to its Policy value.
// Returns false if the name is not a known policy.
func ParsePolicy(name string) (Policy, bool) {
	switch name {
	case "marker":
		return PolicyMarker, true
	case "convention":
		return PolicyConvention, true
	default:
		return PolicyMarker, false
	}
}

// derive builds the binding for one marked type under the given policy.
// ifaces is the set of interface types declared in the same module.
func derive(p Policy, mt scan.MarkedType, ifaces []reflect.Type) registry.Binding {
	b := registry.Binding{
		Abstraction: mt.Type,
		Concrete:    mt.Type,
		Lifetime:    mt.Marker.Lifetime(),
	}

	switch p {
	case PolicyConvention:
		if iface, ok := conventionInterface(mt.Type, ifaces); ok {
			b.Abstraction = iface
		}
	default:
		if abs, ok := mt.Marker.Abstraction().Get(); ok {
			b.Abstraction = abs
		}
	}
	return b
}

// conventionInterface finds an interface named I<ConcreteTypeName> among the
// module's declared interfaces that the concrete type implements.
func conventionInterface(concrete reflect.Type, ifaces []reflect.Type) (reflect.Type, bool) {
	base := concrete
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	want := "I" + base.Name()

	return lo.Find(ifaces, func(i reflect.Type) bool {
		return i.Name() == want && implements(concrete, i)
	})
}

// implements reports whether the concrete type satisfies the interface with
// either its value or its pointer method set.
func implements(concrete, iface reflect.Type) bool {
	if concrete.Implements(iface) {
		return true
	}
	return concrete.Kind() != reflect.Pointer && reflect.PointerTo(concrete).Implements(iface)
}
