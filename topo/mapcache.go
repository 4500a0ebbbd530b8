package topo

import "github.com/ajsb85/brepkit/geom"

// mapCache threads vertex/edge identity sharing through a single Mapped call
// on a composite cell. Two vertices (or edges) with the same original ID —
// a wire's closure vertex, or an edge shared by two adjacent faces of a
// shell — must map to the *same* new ID exactly once; mapping each edge of
// a wire (or each face of a shell) independently would silently turn every
// shared joint into a pile of geometrically-coincident but distinct cells,
// which is exactly the identity-sharing invariant the sweep engine and
// connect primitives depend on (original model §3, §8). mapCache is the
// single place that invariant is enforced: every Mapped method below builds
// exactly one cache and reuses it for every cell it touches.
type mapCache struct {
	fp func(geom.Point) geom.Point
	fc func(geom.Curve) geom.Curve
	fs func(geom.Surface) geom.Surface

	vertices map[ID]Vertex
	edges    map[ID]Edge // keyed by the edge's native (Sense == true) ID
}

func newMapCache(fp func(geom.Point) geom.Point, fc func(geom.Curve) geom.Curve, fs func(geom.Surface) geom.Surface) *mapCache {
	return &mapCache{
		fp:       fp,
		fc:       fc,
		fs:       fs,
		vertices: make(map[ID]Vertex),
		edges:    make(map[ID]Edge),
	}
}

func (m *mapCache) vertex(v Vertex) Vertex {
	if mv, ok := m.vertices[v.id]; ok {
		return mv
	}
	mv := NewVertex(m.fp(v.Point))
	m.vertices[v.id] = mv
	return mv
}

// edge maps e, reusing the image already built for e's ID (regardless of
// which Sense that first call saw) and applying this call's Sense to it.
func (m *mapCache) edge(e Edge) Edge {
	if me, ok := m.edges[e.id]; ok {
		if e.sense {
			return me
		}
		return me.Inverse()
	}
	mv0 := m.vertex(e.v0)
	mv1 := m.vertex(e.v1)
	me := NewEdge(mv0, mv1, m.fc(e.curve))
	m.edges[e.id] = me
	if e.sense {
		return me
	}
	return me.Inverse()
}

func (m *mapCache) wire(w Wire) Wire {
	out := make(Wire, len(w))
	for i, e := range w {
		out[i] = m.edge(e)
	}
	return out
}

func (m *mapCache) face(f Face) Face {
	boundaries := make([]Wire, len(f.boundaries))
	for i, w := range f.boundaries {
		boundaries[i] = m.wire(w)
	}
	nf := NewFace(boundaries, m.fs(f.surface))
	if !f.sense {
		nf = nf.Inverse()
	}
	return nf
}

func (m *mapCache) shell(s Shell) Shell {
	out := make(Shell, len(s))
	for i, f := range s {
		out[i] = m.face(f)
	}
	return out
}

func (m *mapCache) solid(s Solid) Solid {
	out := make([]Shell, len(s.boundaries))
	for i, sh := range s.boundaries {
		out[i] = m.shell(sh)
	}
	return Solid{boundaries: out}
}
