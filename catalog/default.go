package catalog

import "github.com/omarluq/autobind/marker"

// defaultTable is the process-wide catalog that modules declare into from
// init(). The registration driver takes a catalog explicitly; Default exists
// so hosts that don't need isolation can share one table.
var defaultTable = NewTable()

// Default returns the process-wide catalog table.
func Default() *Table {
	return defaultTable
}

// MustDeclare adds a marked concrete type to the module in the default
// catalog, panicking on error. Intended for init()-time declarations, where
// a duplicate marker is a programming error.
func MustDeclare(m Module, d TypeDescriptor, mk marker.Marker) {
	if err := defaultTable.Declare(m, d, mk); err != nil {
		panic(err)
	}
}

// MustDeclareType adds an unmarked type to the module in the default catalog.
func MustDeclareType(m Module, d TypeDescriptor) {
	defaultTable.DeclareType(m, d)
}
