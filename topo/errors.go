package topo

import "errors"

// Sentinel errors, checked with errors.Is, following the same discipline the
// teacher's dependency graph package uses for its builder errors.
var (
	// ErrNotClosedWire is returned when an operation requires a wire whose
	// back vertex meets its front vertex, but the given wire does not close.
	ErrNotClosedWire = errors.New("topo: wire is not closed")

	// ErrEmptyInput is returned when a wire, shell, or boundary list has no
	// cells to operate on.
	ErrEmptyInput = errors.New("topo: empty input")

	// ErrNotOrientableShell is returned when a shell's faces do not induce a
	// consistent edge orientation across shared edges.
	ErrNotOrientableShell = errors.New("topo: shell is not orientable")

	// ErrClosedShellNotExtrudable is returned when a shell component is
	// already closed, so sweeping it into a solid cannot produce a new
	// boundary — there is nothing left to connect to a ceiling. TryNewSolid
	// also returns it for a boundary shell that is oriented but not closed.
	ErrClosedShellNotExtrudable = errors.New("topo: closed shell component cannot be extruded")

	// ErrDisconnectedWire describes a slice of edges that is not a single
	// connected chain from front to back. No function in this module returns
	// it; Wire.IsConnected reports the condition as a bool.
	ErrDisconnectedWire = errors.New("topo: edges do not form a connected wire")
)
