package catalog

import (
	"reflect"

	"github.com/samber/lo"

	"github.com/omarluq/autobind/marker"
)

// subset is a read-only view of a catalog restricted to chosen modules.
type subset struct {
	inner Catalog
	keep  map[Module]struct{}
}

var _ Catalog = subset{}

// Subset returns a view of cat restricted to the given modules, preserving
// the catalog's module order. Hosts use it to register only part of a
// catalog without copying declarations.
func Subset(cat Catalog, keep ...Module) Catalog {
	set := make(map[Module]struct{}, len(keep))
	for _, m := range keep {
		set[m] = struct{}{}
	}
	return subset{inner: cat, keep: set}
}

func (s subset) Modules() []Module {
	return lo.Filter(s.inner.Modules(), func(m Module, _ int) bool {
		_, ok := s.keep[m]
		return ok
	})
}

func (s subset) DeclaredTypes(m Module) ([]TypeDescriptor, error) {
	if _, ok := s.keep[m]; !ok {
		return nil, ErrUnknownModule
	}
	return s.inner.DeclaredTypes(m)
}

func (s subset) Marker(t reflect.Type) (marker.Marker, bool) {
	return s.inner.Marker(t)
}
