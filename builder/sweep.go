package builder

import (
	"math"

	"github.com/ajsb85/brepkit/connect"
	"github.com/ajsb85/brepkit/geom"
	"github.com/ajsb85/brepkit/sweep"
	"github.com/ajsb85/brepkit/topo"
)

// ---- translational sweep ----------------------------------------------------

func tsweepMapping(vector geom.Vec3) sweep.Mapping {
	m := geom.Translate(vector)
	return sweep.Mapping{
		Point:   m.TransformPoint,
		Curve:   func(c geom.Curve) geom.Curve { return c.Transform(m) },
		Surface: func(s geom.Surface) geom.Surface { return s.Transform(m) },
	}
}

func tsweepConnectPoints(front, back geom.Point) geom.Curve {
	return geom.NewLine(front, back)
}

// tsweepConnectCurves pairs two parallel curves (a wire's edge and its
// translated image) into the surface swept between them, matching the
// original builder::tsweep's curve-kind dispatch.
func tsweepConnectCurves(vector geom.Vec3) connect.ConnectCurves {
	return func(front, back geom.Curve) geom.Surface {
		switch c0 := front.(type) {
		case geom.Line:
			return geom.NewPlaneThroughPoints(c0.A, c0.B, c0.A.Add(vector))
		case geom.BSplineCurve:
			c1 := back.(geom.BSplineCurve)
			return geom.Homotopy(c0, c1)
		case geom.NURBSCurve:
			c1 := back.(geom.NURBSCurve)
			return geom.NewNURBSSurfaceFromNonRational(geom.Homotopy(c0.NonRationalized(), c1.NonRationalized()))
		default:
			panic(ErrUnimplemented)
		}
	}
}

// TSweepVertex sweeps v by vector into an edge.
func TSweepVertex(v topo.Vertex, vector geom.Vec3) topo.Edge {
	return sweep.Vertex(v, tsweepMapping(vector), tsweepConnectPoints)
}

// TSweepEdge sweeps e by vector into a face.
func TSweepEdge(e topo.Edge, vector geom.Vec3) topo.Face {
	return sweep.Edge(e, tsweepMapping(vector), tsweepConnectPoints, tsweepConnectCurves(vector))
}

// TSweepWire sweeps w by vector into a shell.
func TSweepWire(w topo.Wire, vector geom.Vec3) topo.Shell {
	return sweep.Wire(w, tsweepMapping(vector), tsweepConnectPoints, tsweepConnectCurves(vector))
}

// TSweepFace sweeps f by vector into a solid.
func TSweepFace(f topo.Face, vector geom.Vec3) topo.Solid {
	return sweep.Face(f, tsweepMapping(vector), tsweepConnectPoints, tsweepConnectCurves(vector))
}

// TSweepShell sweeps each connected component of s by vector, returning one
// result per component.
func TSweepShell(s topo.Shell, vector geom.Vec3) []sweep.ShellResult {
	return sweep.Shell(s, tsweepMapping(vector), tsweepConnectPoints, tsweepConnectCurves(vector))
}

// ---- rotational sweep --------------------------------------------------------

func rsweepMapping(origin, axis geom.Vec3, angle float64) sweep.Mapping {
	m := geom.RigidBetween(origin, axis, angle)
	return sweep.Mapping{
		Point:   m.TransformPoint,
		Curve:   func(c geom.Curve) geom.Curve { return c.Transform(m) },
		Surface: func(s geom.Surface) geom.Surface { return s.Transform(m) },
	}
}

func rsweepConnectPoints(origin, axis geom.Vec3, angle float64) connect.ConnectPoints {
	return func(front, back geom.Point) geom.Curve {
		return geom.CircleArc(front, origin, axis, angle)
	}
}

func rsweepConnectCurves(origin, axis geom.Vec3, angle float64) connect.ConnectCurves {
	return func(front, back geom.Curve) geom.Surface {
		return geom.RevolutedSurface{Curve: front, Origin: origin, Axis: axis, Angle: angle}
	}
}

// rsweepDivision returns how many equal stages a partial sweep of |angle|
// radians should use: a single stage up to π, two stages beyond it — the
// same threshold the original builder::partial_rsweep uses to keep each
// stage's circle_arc construction away from the π singularity.
func rsweepDivision(angle float64) int {
	if math.Abs(angle) < math.Pi {
		return 1
	}
	return 2
}

// RSweepVertex rotationally sweeps v by angle radians about axis through
// origin into a wire (an open arc, or — once |angle| reaches a full turn —
// a closed circle).
func RSweepVertex(v topo.Vertex, origin, axis geom.Vec3, angle float64) topo.Wire {
	if math.Abs(angle) < 2*math.Pi {
		division := rsweepDivision(angle)
		step := angle / float64(division)
		return sweep.MultiSweepVertex(v, rsweepMapping(origin, axis, step), rsweepConnectPoints(origin, axis, step), division)
	}
	a := axis
	if angle < 0 {
		a = axis.Mul(-1)
	}
	return sweep.ClosedSweepVertex(v, rsweepMapping(origin, a, math.Pi), rsweepConnectPoints(origin, a, math.Pi), 2)
}

// RSweepEdge rotationally sweeps e by angle radians about axis through
// origin into a shell (an open ribbon of side faces, or — once |angle|
// reaches a full turn — a closed tube).
func RSweepEdge(e topo.Edge, origin, axis geom.Vec3, angle float64) topo.Shell {
	if math.Abs(angle) < 2*math.Pi {
		division := rsweepDivision(angle)
		step := angle / float64(division)
		return sweep.MultiSweepEdge(e, rsweepMapping(origin, axis, step), rsweepConnectPoints(origin, axis, step), rsweepConnectCurves(origin, axis, step), division)
	}
	a := axis
	if angle < 0 {
		a = axis.Mul(-1)
	}
	return sweep.ClosedSweepEdge(e, rsweepMapping(origin, a, math.Pi), rsweepConnectPoints(origin, a, math.Pi), rsweepConnectCurves(origin, a, math.Pi), 2)
}

// RSweepWire rotationally sweeps w into a shell.
func RSweepWire(w topo.Wire, origin, axis geom.Vec3, angle float64) topo.Shell {
	if math.Abs(angle) < 2*math.Pi {
		division := rsweepDivision(angle)
		step := angle / float64(division)
		return sweep.MultiSweepWire(w, rsweepMapping(origin, axis, step), rsweepConnectPoints(origin, axis, step), rsweepConnectCurves(origin, axis, step), division)
	}
	a := axis
	if angle < 0 {
		a = axis.Mul(-1)
	}
	return sweep.ClosedSweepWire(w, rsweepMapping(origin, a, math.Pi), rsweepConnectPoints(origin, a, math.Pi), rsweepConnectCurves(origin, a, math.Pi), 2)
}

// RSweepFace rotationally sweeps f into a solid.
func RSweepFace(f topo.Face, origin, axis geom.Vec3, angle float64) (topo.Solid, error) {
	if math.Abs(angle) < 2*math.Pi {
		division := rsweepDivision(angle)
		step := angle / float64(division)
		m := rsweepMapping(origin, axis, step)
		solid := sweep.MultiSweepFace(f, m, rsweepConnectPoints(origin, axis, step), rsweepConnectCurves(origin, axis, step), division)
		return solid, nil
	}
	a := axis
	if angle < 0 {
		a = axis.Mul(-1)
	}
	m := rsweepMapping(origin, a, math.Pi)
	return sweep.ClosedSweepFace(f, m, rsweepConnectPoints(origin, a, math.Pi), rsweepConnectCurves(origin, a, math.Pi), 2)
}

// RSweepShell rotationally sweeps each connected component of s by angle
// radians about axis through origin, returning one result per component.
func RSweepShell(s topo.Shell, origin, axis geom.Vec3, angle float64) []sweep.ShellResult {
	if math.Abs(angle) < 2*math.Pi {
		division := rsweepDivision(angle)
		step := angle / float64(division)
		m := rsweepMapping(origin, axis, step)
		return sweep.MultiSweepShell(s, m, rsweepConnectPoints(origin, axis, step), rsweepConnectCurves(origin, axis, step), division)
	}
	a := axis
	if angle < 0 {
		a = axis.Mul(-1)
	}
	m := rsweepMapping(origin, a, math.Pi)
	return sweep.ClosedSweepShell(s, m, rsweepConnectPoints(origin, a, math.Pi), rsweepConnectCurves(origin, a, math.Pi), 2)
}
