package topo

import "github.com/ajsb85/brepkit/geom"

// Edge is an oriented curve cell bounded by two vertices. Two Edge values
// with the same ID and opposite Sense denote the same underlying curve used
// with reversed orientation — the situation connect_wires produces when a
// bridge edge is shared by the two faces it separates.
type Edge struct {
	id        ID
	v0, v1    Vertex // v0 -> v1 is the curve's native (Sense == true) direction
	curve     geom.Curve
	sense     bool
}

// NewEdge returns a fresh edge from v0 to v1 along curve, which must run from
// v0.Point to v1.Point.
func NewEdge(v0, v1 Vertex, curve geom.Curve) Edge {
	return Edge{id: NewID(), v0: v0, v1: v1, curve: curve, sense: true}
}

func (e Edge) ID() ID { return e.id }

// Front and Back return the edge's start and end vertex, accounting for Sense.
func (e Edge) Front() Vertex {
	if e.sense {
		return e.v0
	}
	return e.v1
}

func (e Edge) Back() Vertex {
	if e.sense {
		return e.v1
	}
	return e.v0
}

// Sense reports whether the edge runs in its native curve direction.
func (e Edge) Sense() bool { return e.sense }

// Curve returns the edge's oriented curve (reversed when Sense is false).
func (e Edge) Curve() geom.Curve {
	if e.sense {
		return e.curve
	}
	return e.curve.Inverse()
}

// RawCurve returns the curve in its native (Sense == true) direction,
// independent of this edge's orientation — used when two edges sharing an ID
// need to agree on the underlying geometry.
func (e Edge) RawCurve() geom.Curve { return e.curve }

// Inverse returns the same edge (same ID, same curve) with Sense flipped.
func (e Edge) Inverse() Edge {
	e.sense = !e.sense
	return e
}

// Mapped returns a structurally new edge (fresh identity) with fp applied to
// both vertices and fc applied to the native curve. fs is accepted but
// unused, keeping the three-argument Mapped signature uniform across cells.
func (e Edge) Mapped(fp func(geom.Point) geom.Point, fc func(geom.Curve) geom.Curve, fs func(geom.Surface) geom.Surface) Edge {
	return newMapCache(fp, fc, fs).edge(e)
}
