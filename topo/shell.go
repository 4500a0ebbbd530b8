package topo

import "github.com/ajsb85/brepkit/geom"

// Shell is an unordered collection of faces.
type Shell []Face

// ShellCondition classifies a shell's edge-sharing structure, mirroring the
// original model's ShellCondition enum.
type ShellCondition int

const (
	// ShellIrregular: some edge is shared by more than two face-uses, or a
	// face-use pair shares the same Sense (the shell cannot be consistently
	// oriented).
	ShellIrregular ShellCondition = iota
	// ShellOriented: every edge is either boundary (used once) or shared by
	// exactly two opposing-Sense uses.
	ShellOriented
	// ShellClosed: oriented, and every edge is shared (no boundary edges).
	ShellClosed
)

type edgeUse struct {
	e     Edge
	sense bool
}

func (s Shell) edgeUses() map[ID][]edgeUse {
	uses := make(map[ID][]edgeUse)
	for _, f := range s {
		for _, w := range f.Boundaries() {
			for _, e := range w {
				oriented := e
				if !f.sense {
					oriented = e.Inverse()
				}
				uses[e.ID()] = append(uses[e.ID()], edgeUse{e: oriented, sense: oriented.Sense()})
			}
		}
	}
	return uses
}

// Condition classifies the shell per ShellCondition.
func (s Shell) Condition() ShellCondition {
	uses := s.edgeUses()
	closed := true
	for _, list := range uses {
		switch len(list) {
		case 1:
			closed = false
		case 2:
			if list[0].sense == list[1].sense {
				return ShellIrregular
			}
		default:
			return ShellIrregular
		}
	}
	if closed {
		return ShellClosed
	}
	return ShellOriented
}

// IsClosed reports whether every edge of the shell is shared by exactly two
// oppositely oriented face-uses.
func (s Shell) IsClosed() bool { return s.Condition() == ShellClosed }

// ExtractBoundaries returns the wires formed by edges used by only one face
// in the shell, per the original model's extract_boundaries — used by the
// sweep engine to find the rim it must connect to a ceiling.
func (s Shell) ExtractBoundaries() []Wire {
	uses := s.edgeUses()
	boundary := make(map[ID]Edge)
	for id, list := range uses {
		if len(list) == 1 {
			boundary[id] = list[0].e
		}
	}
	byFront := make(map[ID]Edge, len(boundary))
	for _, e := range boundary {
		byFront[e.Front().ID()] = e
	}
	// Start wires in shell order (face, wire, edge), not map order, so a
	// shell and its Mapped copy yield rims that begin at corresponding edges.
	var starts []Edge
	for _, f := range s {
		for _, w := range f.Boundaries() {
			for _, e := range w {
				if b, ok := boundary[e.ID()]; ok {
					starts = append(starts, b)
				}
			}
		}
	}
	var wires []Wire
	visited := make(map[ID]bool)
	for _, start := range starts {
		if visited[start.ID()] {
			continue
		}
		var w Wire
		cur := start
		for {
			w = append(w, cur)
			visited[cur.ID()] = true
			next, ok := byFront[cur.Back().ID()]
			if !ok || next.ID() == start.ID() {
				break
			}
			cur = next
		}
		wires = append(wires, w)
	}
	return wires
}

// ConnectedComponents splits the shell into maximal subsets of faces joined
// by shared edges.
func (s Shell) ConnectedComponents() []Shell {
	n := len(s)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	edgeOwner := make(map[ID]int)
	for i, f := range s {
		for _, w := range f.Boundaries() {
			for _, e := range w {
				if owner, ok := edgeOwner[e.ID()]; ok {
					union(owner, i)
				} else {
					edgeOwner[e.ID()] = i
				}
			}
		}
	}
	groups := make(map[int]Shell)
	var order []int
	for i, f := range s {
		r := find(i)
		if _, seen := groups[r]; !seen {
			order = append(order, r)
		}
		groups[r] = append(groups[r], f)
	}
	// order already lists roots in first-face-index order, since Go map
	// iteration is the only non-deterministic part of this algorithm and we
	// never range over groups to build the result.
	out := make([]Shell, 0, len(order))
	for _, r := range order {
		out = append(out, groups[r])
	}
	return out
}

// FaceIter returns the shell's faces (Go has no lazy iterator here; this is
// the slice itself).
func (s Shell) FaceIter() []Face { return s }

// Mapped returns a structurally new shell with fp, fc, fs applied throughout.
func (s Shell) Mapped(fp func(geom.Point) geom.Point, fc func(geom.Curve) geom.Curve, fs func(geom.Surface) geom.Surface) Shell {
	return newMapCache(fp, fc, fs).shell(s)
}
