package topo

import "github.com/ajsb85/brepkit/geom"

// Vertex is a point cell. Two Vertex values with the same ID denote the same
// topological point even if constructed independently; Point carries the
// geometric location.
type Vertex struct {
	id    ID
	Point geom.Point
}

// NewVertex returns a fresh vertex at pt.
func NewVertex(pt geom.Point) Vertex {
	return Vertex{id: NewID(), Point: pt}
}

// ID returns the vertex's identity.
func (v Vertex) ID() ID { return v.id }

// Mapped returns a new vertex (fresh identity) with fp applied to the point.
// fc and fs are accepted but unused, so Vertex shares the three-argument
// Mapped signature with Edge, Wire, Face, Shell, and Solid — mirroring the
// original model's generic Mapped<P, C, S> trait.
func (v Vertex) Mapped(fp func(geom.Point) geom.Point, fc func(geom.Curve) geom.Curve, fs func(geom.Surface) geom.Surface) Vertex {
	return newMapCache(fp, fc, fs).vertex(v)
}
