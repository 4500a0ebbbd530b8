// Package builder is the public construction surface: the small set of
// functions an application actually calls to build vertices, edges, faces,
// and solids, grounded in truck_modeling's builder.rs.
package builder

import (
	"github.com/ajsb85/brepkit/geom"
	"github.com/ajsb85/brepkit/topo"
)

// Vertex returns a new vertex at pt.
func Vertex(pt geom.Point) topo.Vertex {
	return topo.NewVertex(pt)
}

// Line returns the straight edge from v0 to v1.
func Line(v0, v1 topo.Vertex) topo.Edge {
	return topo.NewEdge(v0, v1, geom.NewLine(v0.Point, v1.Point))
}

// CircleArc returns the circular-arc edge from v0 to v1 passing through
// transit.
func CircleArc(v0, v1 topo.Vertex, transit geom.Point) topo.Edge {
	curve := geom.CircleArcByThreePoints(v0.Point, v1.Point, transit)
	return topo.NewEdge(v0, v1, curve)
}

// Bezier returns the Bezier edge from v0 to v1 with the given interior
// control points.
func Bezier(v0, v1 topo.Vertex, interior []geom.Point) topo.Edge {
	ctrl := make([]geom.Vec3, 0, len(interior)+2)
	ctrl = append(ctrl, v0.Point)
	ctrl = append(ctrl, interior...)
	ctrl = append(ctrl, v1.Point)
	curve := geom.NewBSplineCurve(geom.BezierKnotVec(len(ctrl)-1), ctrl)
	return topo.NewEdge(v0, v1, curve)
}

// Homotopy returns the ruled face lofted between edge0 and edge1, closed by
// two bridge edges joining their corresponding endpoints.
func Homotopy(edge0, edge1 topo.Edge) topo.Face {
	bridgeBack := Line(edge0.Back(), edge1.Back())
	bridgeFront := Line(edge1.Front(), edge0.Front())
	wire := topo.Wire{edge0, bridgeBack, edge1.Inverse(), bridgeFront}
	surface := geom.Homotopy(edge0.Curve(), edge1.Curve())
	return topo.NewFace([]topo.Wire{wire}, surface)
}

// TryAttachPlane fits a planar face to wires if every control point of every
// edge's curve lies within tolerance of a common plane.
func TryAttachPlane(wires []topo.Wire) (topo.Face, error) {
	var pts []geom.Vec3
	for _, w := range wires {
		for _, e := range w {
			lifted := e.Curve().Lift()
			pts = append(pts, lifted.NonRationalControlPoints()...)
		}
	}
	plane, ok := geom.AttachPlane(pts, geom.DefaultTolerance)
	if !ok {
		return topo.Face{}, ErrWireNotInOnePlane
	}
	return topo.TryNewFace(wires, plane)
}
