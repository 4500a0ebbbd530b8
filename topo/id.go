// Package topo implements the boundary-representation cell types — vertex,
// edge, wire, face, shell, solid — as immutable value types that share an
// opaque identity across copies, the way truck_topology's handles let two
// Edge values refer to "the same" edge with independent orientation.
package topo

import "sync/atomic"

// ID identifies a cell across copies that share underlying geometry: two
// Edge values built by the same connect_edges call carry the same ID even
// when their Sense differs. IDs are assigned from a single process-wide
// counter rather than a threaded session object, per the original model's
// note that identity only needs to be unique, not session-scoped.
type ID uint64

var idCounter uint64

// NewID returns a fresh, process-wide unique ID.
func NewID() ID {
	return ID(atomic.AddUint64(&idCounter, 1))
}
