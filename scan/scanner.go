// Package scan discovers marked types in catalog modules and memoizes the
// results per module.
//
// A scan is a pure read of the catalog: resolve every descriptor a module
// declares, keep the resolved types that carry a marker (in declaration
// order), and silently drop descriptors that fail to resolve. Catalog-level
// enumeration failures are fatal for that module's scan only.
package scan

import (
	"reflect"

	"github.com/samber/lo"

	"github.com/omarluq/autobind/catalog"
	"github.com/omarluq/autobind/marker"
)

// MarkedType is one discovered registration candidate.
type MarkedType struct {
	Type   reflect.Type
	Marker marker.Marker
}

// Result is the outcome of scanning one module.
type Result struct {
	// Marked lists the resolved concrete types carrying a marker, in
	// declaration order.
	Marked []MarkedType

	// Interfaces lists every resolved interface type the module declares.
	// Consumed by convention-based abstraction lookup.
	Interfaces []reflect.Type
}

// Scanner discovers marked types in a catalog's modules.
type Scanner struct {
	catalog catalog.Catalog
}

// NewScanner creates a scanner over the given catalog.
func NewScanner(cat catalog.Catalog) *Scanner {
	return &Scanner{catalog: cat}
}

// Scan resolves the module's declared types and returns the marked ones.
//
// Descriptors that fail to resolve are dropped without error: the rest of
// the module still registers. An enumeration failure from the catalog
// (unknown module, broken generated table) propagates to the caller.
func (s *Scanner) Scan(m catalog.Module) (Result, error) {
	log := logger().With().Str("module", m.String()).Logger()

	descs, err := s.catalog.DeclaredTypes(m)
	if err != nil {
		return Result{}, err
	}

	resolved := make([]reflect.Type, 0, len(descs))
	for _, d := range descs {
		t, rerr := d.Resolve()
		if rerr != nil {
			log.Debug().
				Str("type", d.Name()).
				Err(rerr).
				Msg("descriptor failed to resolve, skipping")
			continue
		}
		resolved = append(resolved, t)
	}

	var marked []MarkedType
	for _, t := range resolved {
		if mk, ok := s.catalog.Marker(t); ok {
			marked = append(marked, MarkedType{Type: t, Marker: mk})
		}
	}

	interfaces := lo.Filter(resolved, func(t reflect.Type, _ int) bool {
		return t.Kind() == reflect.Interface
	})

	log.Debug().
		Int("declared", len(descs)).
		Int("resolved", len(resolved)).
		Int("marked", len(marked)).
		Msg("module scanned")

	return Result{Marked: marked, Interfaces: interfaces}, nil
}
