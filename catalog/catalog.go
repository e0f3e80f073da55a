// Package catalog provides the type catalog that autobind scans.
//
// Go has no runtime enumeration of a binary's declared types, so the catalog
// is an explicit descriptor table: each module (a named unit of code,
// typically a package or a plugin) declares its types, usually from init()
// or generated wiring code, and attaches a marker.Marker to the concrete
// types it wants auto-registered.
//
//	func init() {
//		catalog.MustDeclare("billing", catalog.Type[*InvoiceService](),
//			marker.New(marker.Scoped, marker.As[Invoicer]()))
//		catalog.MustDeclareType("billing", catalog.Type[Invoicer]())
//	}
//
// Interface types declared without a marker are not registered themselves;
// they participate in convention-based abstraction lookup.
package catalog

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/omarluq/autobind/marker"
)

// Module identifies one unit of declared types.
type Module string

// String returns the module name.
func (m Module) String() string { return string(m) }

// Catalog is the type-metadata capability consumed by the scanner.
// Implementations must be safe for concurrent reads.
type Catalog interface {
	// Modules lists every module with at least one declaration, in first
	// declaration order.
	Modules() []Module

	// DeclaredTypes returns the module's descriptors in declaration order.
	// Returns ErrUnknownModule if the module has no declarations.
	DeclaredTypes(m Module) ([]TypeDescriptor, error)

	// Marker returns the marker attached to t, if any.
	Marker(t reflect.Type) (marker.Marker, bool)
}

type entry struct {
	desc TypeDescriptor
}

// Table is an in-memory Catalog backed by a descriptor table.
// Writes (Declare*) normally happen during process init; reads are safe
// concurrently with each other and with late writes.
type Table struct {
	mu      sync.RWMutex
	order   []Module
	entries map[Module][]entry
	markers map[reflect.Type]marker.Marker
}

var _ Catalog = (*Table)(nil)

// NewTable creates an empty catalog table.
func NewTable() *Table {
	return &Table{
		entries: make(map[Module][]entry),
		markers: make(map[reflect.Type]marker.Marker),
	}
}

// Declare adds a marked concrete type to the module.
// Returns ErrAlreadyMarked if the type already carries a marker; a type
// carries at most one.
//
// If the descriptor does not resolve, the declaration is still listed (the
// scanner skips it per its partial-failure policy) but no marker can attach
// to it.
func (t *Table) Declare(m Module, d TypeDescriptor, mk marker.Marker) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if rt, err := d.Resolve(); err == nil {
		if _, dup := t.markers[rt]; dup {
			return fmt.Errorf("%w: %s in module %q", ErrAlreadyMarked, d.Name(), m)
		}
		t.markers[rt] = mk
	}
	t.append(m, d)
	return nil
}

// DeclareType adds an unmarked type to the module. Used for interface types
// (to support convention-based abstraction lookup) and for plain types that
// should be visible to the scanner without being registered.
func (t *Table) DeclareType(m Module, d TypeDescriptor) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.append(m, d)
}

func (t *Table) append(m Module, d TypeDescriptor) {
	if _, known := t.entries[m]; !known {
		t.order = append(t.order, m)
	}
	t.entries[m] = append(t.entries[m], entry{desc: d})
}

// Modules lists every declared module in first declaration order.
func (t *Table) Modules() []Module {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Module, len(t.order))
	copy(out, t.order)
	return out
}

// DeclaredTypes returns the module's descriptors in declaration order.
func (t *Table) DeclaredTypes(m Module) ([]TypeDescriptor, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries, ok := t.entries[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, m)
	}
	out := make([]TypeDescriptor, len(entries))
	for i, e := range entries {
		out[i] = e.desc
	}
	return out, nil
}

// Marker returns the marker attached to rt, if any.
func (t *Table) Marker(rt reflect.Type) (marker.Marker, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	mk, ok := t.markers[rt]
	return mk, ok
}
