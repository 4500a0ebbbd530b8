package topo

import "github.com/ajsb85/brepkit/geom"

// Wire is an ordered, connected chain of edges: edges[i].Back() must equal
// edges[i+1].Front() by vertex ID.
type Wire []Edge

// IsConnected reports whether consecutive edges share a vertex by ID.
func (w Wire) IsConnected() bool {
	for i := 0; i+1 < len(w); i++ {
		if w[i].Back().ID() != w[i+1].Front().ID() {
			return false
		}
	}
	return true
}

// IsClosed reports whether the wire is non-empty, connected, and its back
// vertex meets its front vertex.
func (w Wire) IsClosed() bool {
	if len(w) == 0 || !w.IsConnected() {
		return false
	}
	return w[len(w)-1].Back().ID() == w[0].Front().ID()
}

// FrontVertex and BackVertex return the wire's endpoints; ok is false for an
// empty wire.
func (w Wire) FrontVertex() (Vertex, bool) {
	if len(w) == 0 {
		return Vertex{}, false
	}
	return w[0].Front(), true
}

func (w Wire) BackVertex() (Vertex, bool) {
	if len(w) == 0 {
		return Vertex{}, false
	}
	return w[len(w)-1].Back(), true
}

// Vertices returns the wire's vertices in order: front of edge 0, then the
// back of every edge. For a closed wire the last back is the front again, so
// it is not repeated: a closed wire of n edges has n vertices.
func (w Wire) Vertices() []Vertex {
	if len(w) == 0 {
		return nil
	}
	out := make([]Vertex, 0, len(w)+1)
	out = append(out, w[0].Front())
	for _, e := range w {
		out = append(out, e.Back())
	}
	if w.IsClosed() {
		out = out[:len(out)-1]
	}
	return out
}

// Inverse returns the wire traversed backwards: edges reversed in order and
// each edge's Sense flipped.
func (w Wire) Inverse() Wire {
	out := make(Wire, len(w))
	for i, e := range w {
		out[len(w)-1-i] = e.Inverse()
	}
	return out
}

// Mapped returns a copy of the wire with every vertex, edge, and underlying
// curve replaced by a fresh, mapped instance — the wire-level counterpart of
// Edge.Mapped, matching the original model's topological_clone for a wire.
// fs is accepted but unused, keeping the three-argument Mapped signature
// uniform across cells.
func (w Wire) Mapped(fp func(geom.Point) geom.Point, fc func(geom.Curve) geom.Curve, fs func(geom.Surface) geom.Surface) Wire {
	return newMapCache(fp, fc, fs).wire(w)
}
