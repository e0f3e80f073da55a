package catalog

import "errors"

// Standard errors for catalog operations.
//
// Use errors.Is to check for these errors:
//
//	descs, err := cat.DeclaredTypes(mod)
//	if errors.Is(err, catalog.ErrUnknownModule) {
//		// module was never declared
//	}
var (
	// ErrUnknownModule is returned when a module has no declarations in the catalog.
	ErrUnknownModule = errors.New("catalog: unknown module")

	// ErrAlreadyMarked is returned when a concrete type is declared with a
	// marker more than once. A type carries at most one marker.
	ErrAlreadyMarked = errors.New("catalog: type already carries a marker")
)
