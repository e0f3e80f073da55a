package catalog

import "reflect"

// TypeDescriptor is a lazily resolvable reference to a declared type.
//
// Static declarations made with Type resolve trivially. Generated descriptor
// tables may use LazyType instead, in which case resolution can fail (for
// example when a transitive dependency of the described type is missing);
// the scanner treats such failures as module-local and skips the descriptor.
type TypeDescriptor struct {
	name    string
	resolve func() (reflect.Type, error)
}

// Type creates a descriptor for T that always resolves.
func Type[T any]() TypeDescriptor {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return TypeDescriptor{
		name:    t.String(),
		resolve: func() (reflect.Type, error) { return t, nil },
	}
}

// LazyType creates a descriptor whose resolution is deferred to resolve.
// Intended for generated descriptor tables where a type reference may not
// be satisfiable at catalog-population time.
func LazyType(name string, resolve func() (reflect.Type, error)) TypeDescriptor {
	return TypeDescriptor{name: name, resolve: resolve}
}

// Name returns the descriptor's display name. For failing descriptors this
// is the only identity available.
func (d TypeDescriptor) Name() string {
	return d.name
}

// Resolve materializes the described type.
func (d TypeDescriptor) Resolve() (reflect.Type, error) {
	return d.resolve()
}
