package sweep

import (
	"math"
	"testing"

	"github.com/ajsb85/brepkit/geom"
	"github.com/ajsb85/brepkit/topo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rotateMapping(origin, axis geom.Vec3, angle float64) Mapping {
	m := geom.RigidBetween(origin, axis, angle)
	return Mapping{
		Point:   m.TransformPoint,
		Curve:   func(c geom.Curve) geom.Curve { return c.Transform(m) },
		Surface: func(s geom.Surface) geom.Surface { return s.Transform(m) },
	}
}

func circleConnectPoints(origin, axis geom.Vec3, angle float64) func(front, back geom.Point) geom.Curve {
	return func(front, back geom.Point) geom.Curve {
		return geom.CircleArc(front, origin, axis, angle)
	}
}

func revolveConnectCurves(origin, axis geom.Vec3, angle float64) func(front, back geom.Curve) geom.Surface {
	return func(front, back geom.Curve) geom.Surface {
		return geom.RevolutedSurface{Curve: front, Origin: origin, Axis: axis, Angle: angle}
	}
}

func squareFace() topo.Face {
	v0 := topo.NewVertex(geom.NewVec3(1, 0, 0))
	v1 := topo.NewVertex(geom.NewVec3(2, 0, 0))
	v2 := topo.NewVertex(geom.NewVec3(2, 0, 1))
	v3 := topo.NewVertex(geom.NewVec3(1, 0, 1))
	e0 := topo.NewEdge(v0, v1, geom.NewLine(v0.Point, v1.Point))
	e1 := topo.NewEdge(v1, v2, geom.NewLine(v1.Point, v2.Point))
	e2 := topo.NewEdge(v2, v3, geom.NewLine(v2.Point, v3.Point))
	e3 := topo.NewEdge(v3, v0, geom.NewLine(v3.Point, v0.Point))
	wire := topo.Wire{e0, e1, e2, e3}
	plane := geom.Plane{Origin: geom.NewVec3(1, 0, 0), U: geom.NewVec3(1, 0, 0), V: geom.NewVec3(0, 0, 1)}
	return topo.NewFace([]topo.Wire{wire}, plane)
}

func translateMapping(v geom.Vec3) Mapping {
	m := geom.Translate(v)
	return Mapping{
		Point:   m.TransformPoint,
		Curve:   func(c geom.Curve) geom.Curve { return c.Transform(m) },
		Surface: func(s geom.Surface) geom.Surface { return s.Transform(m) },
	}
}

func lineConnectPoints(front, back geom.Point) geom.Curve { return geom.NewLine(front, back) }

func lineConnectCurves(front, back geom.Curve) geom.Surface {
	return geom.NewPlaneThroughPoints(front.Front(), front.Back(), back.Front())
}

func TestSweepVertexToEdge(t *testing.T) {
	v := topo.NewVertex(geom.Origin)
	m := translateMapping(geom.NewVec3(1, 0, 0))
	e := Vertex(v, m, lineConnectPoints)

	assert.Equal(t, v.ID(), e.Front().ID())
	assert.InDelta(t, 1.0, e.Back().Point.X, 1e-9)
}

func TestSweepEdgeToFace(t *testing.T) {
	v0 := topo.NewVertex(geom.Origin)
	v1 := topo.NewVertex(geom.NewVec3(1, 0, 0))
	e := topo.NewEdge(v0, v1, geom.NewLine(v0.Point, v1.Point))
	m := translateMapping(geom.NewVec3(0, 1, 0))
	f := Edge(e, m, lineConnectPoints, lineConnectCurves)

	require.Len(t, f.Boundaries(), 1)
	assert.Len(t, f.Boundaries()[0], 4)
	assert.True(t, f.Boundaries()[0].IsClosed())
}

func TestSweepFaceToSolidCube(t *testing.T) {
	v0 := topo.NewVertex(geom.Origin)
	mx := translateMapping(geom.NewVec3(1, 0, 0))
	my := translateMapping(geom.NewVec3(0, 1, 0))
	mz := translateMapping(geom.NewVec3(0, 0, 1))

	edge := Vertex(v0, mx, lineConnectPoints)
	face := Edge(edge, my, lineConnectPoints, lineConnectCurves)
	cube := Face(face, mz, lineConnectPoints, lineConnectCurves)

	require.Len(t, cube.Boundaries(), 1)
	shell := cube.Boundaries()[0]
	assert.Len(t, shell, 6)
	assert.Equal(t, topo.ShellClosed, shell.Condition())
}

func TestMultiSweepVertexBuildsOpenWire(t *testing.T) {
	v := topo.NewVertex(geom.NewVec3(1, 0, 0))
	step := translateMapping(geom.NewVec3(1, 0, 0))
	wire := MultiSweepVertex(v, step, lineConnectPoints, 3)

	require.Len(t, wire, 3)
	assert.True(t, wire.IsConnected())
	assert.False(t, wire.IsClosed())
	back, _ := wire.BackVertex()
	assert.InDelta(t, 4.0, back.Point.X, 1e-9)
}

func TestClosedSweepVertexBuildsClosedWire(t *testing.T) {
	v := topo.NewVertex(geom.NewVec3(1, 0, 0))
	step := translateMapping(geom.NewVec3(0, 0, 0)) // identity stand-in for this structural test
	wire := ClosedSweepVertex(v, step, lineConnectPoints, 4)

	require.Len(t, wire, 4)
	assert.True(t, wire.IsClosed())
}

func TestMultiSweepEdgeBuildsRibbonOfQuadFaces(t *testing.T) {
	v0 := topo.NewVertex(geom.Origin)
	v1 := topo.NewVertex(geom.NewVec3(1, 0, 0))
	e := topo.NewEdge(v0, v1, geom.NewLine(v0.Point, v1.Point))
	step := translateMapping(geom.NewVec3(0, 1, 0))

	shell := MultiSweepEdge(e, step, lineConnectPoints, lineConnectCurves, 3)

	require.Len(t, shell, 3)
	for _, f := range shell {
		require.Len(t, f.Boundaries(), 1)
		assert.Len(t, f.Boundaries()[0], 4)
	}
	// The ribbon's stages are chained: stage i's trailing edge is stage
	// i+1's leading edge, sharing identity.
	assert.Equal(t, shell[0].Boundaries()[0][2].ID(), shell[1].Boundaries()[0][0].ID())
}

func TestClosedSweepEdgeClosesRibbonBackOntoItself(t *testing.T) {
	v0 := topo.NewVertex(geom.NewVec3(1, 0, 0))
	v1 := topo.NewVertex(geom.NewVec3(2, 0, 0))
	e := topo.NewEdge(v0, v1, geom.NewLine(v0.Point, v1.Point))
	step := translateMapping(geom.NewVec3(0, 0, 0)) // identity stand-in, as ClosedSweepVertex's test above

	shell := ClosedSweepEdge(e, step, lineConnectPoints, lineConnectCurves, 4)

	require.Len(t, shell, 4)
	last := shell[3].Boundaries()[0]
	assert.Equal(t, e.ID(), last[2].ID())
}

func TestMultiSweepShellBuildsSolidFromOpenComponent(t *testing.T) {
	v0 := topo.NewVertex(geom.Origin)
	v1 := topo.NewVertex(geom.NewVec3(1, 0, 0))
	e := topo.NewEdge(v0, v1, geom.NewLine(v0.Point, v1.Point))
	my := translateMapping(geom.NewVec3(0, 1, 0))
	mz := translateMapping(geom.NewVec3(0, 0, 1))

	face := Edge(e, my, lineConnectPoints, lineConnectCurves)
	shell := topo.Shell{face}

	results := MultiSweepShell(shell, mz, lineConnectPoints, lineConnectCurves, 2)

	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, topo.ShellClosed, results[0].Solid.Boundaries()[0].Condition())
}

func TestClosedSweepShellBuildsClosedSquareTorus(t *testing.T) {
	shell := topo.Shell{squareFace()}
	origin := geom.Origin
	axis := geom.NewVec3(0, 0, 1)
	m := rotateMapping(origin, axis, math.Pi)
	cp := circleConnectPoints(origin, axis, math.Pi)
	cc := revolveConnectCurves(origin, axis, math.Pi)

	results := ClosedSweepShell(shell, m, cp, cc, 2)

	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, topo.ShellClosed, results[0].Solid.Boundaries()[0].Condition())
}

func TestShellSweepClosedComponentErrors(t *testing.T) {
	v0 := topo.NewVertex(geom.Origin)
	mx := translateMapping(geom.NewVec3(1, 0, 0))
	my := translateMapping(geom.NewVec3(0, 1, 0))
	mz := translateMapping(geom.NewVec3(0, 0, 1))
	edge := Vertex(v0, mx, lineConnectPoints)
	face := Edge(edge, my, lineConnectPoints, lineConnectCurves)
	cube := Face(face, mz, lineConnectPoints, lineConnectCurves)

	results := Shell(cube.Boundaries()[0], mx, lineConnectPoints, lineConnectCurves)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, topo.ErrClosedShellNotExtrudable)
}
