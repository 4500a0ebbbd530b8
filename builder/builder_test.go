package builder

import (
	"math"
	"testing"

	"github.com/ajsb85/brepkit/geom"
	"github.com/ajsb85/brepkit/topo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeByThreeTSweeps(t *testing.T) {
	v := Vertex(geom.Origin)
	edge := TSweepVertex(v, geom.NewVec3(1, 0, 0))
	face := TSweepEdge(edge, geom.NewVec3(0, 1, 0))
	cube := TSweepFace(face, geom.NewVec3(0, 0, 1))

	require.Len(t, cube.Boundaries(), 1)
	shell := cube.Boundaries()[0]
	assert.Len(t, shell, 6)
	assert.Equal(t, topo.ShellClosed, shell.Condition())
}

func TestLineAndCircleArcEdges(t *testing.T) {
	v0 := Vertex(geom.NewVec3(1, 0, 0))
	v1 := Vertex(geom.NewVec3(-1, 0, 0))
	arc := CircleArc(v0, v1, geom.NewVec3(0, 1, 0))

	t0, t1 := arc.Curve().ParameterRange()
	mid := arc.Curve().Evaluate((t0 + t1) / 2)
	assert.InDelta(t, 1.0, mid.Length(), 1e-6)
	assert.InDelta(t, 1.0, mid.Y, 1e-6)

	line := Line(v0, v1)
	assert.InDelta(t, 0.0, line.Curve().Evaluate(0.5).Length(), 1e-9)
}

func TestTryAttachPlaneRejectsOpenWire(t *testing.T) {
	v0 := Vertex(geom.NewVec3(0, 0, 0))
	v1 := Vertex(geom.NewVec3(1, 0, 0))
	v2 := Vertex(geom.NewVec3(0, 1, 0))
	wire := topo.Wire{Line(v0, v1), Line(v1, v2)}
	_, err := TryAttachPlane([]topo.Wire{wire})
	assert.Error(t, err)
}

func TestTryAttachPlaneRejectsNonPlanarWire(t *testing.T) {
	v0 := Vertex(geom.NewVec3(0, 0, 0))
	v1 := Vertex(geom.NewVec3(1, 0, 0))
	v2 := Vertex(geom.NewVec3(0, 1, 0))
	v3 := Vertex(geom.NewVec3(0, 0, 1))
	wire := topo.Wire{Line(v0, v1), Line(v1, v2), Line(v2, v3), Line(v3, v0)}
	_, err := TryAttachPlane([]topo.Wire{wire})
	assert.ErrorIs(t, err, ErrWireNotInOnePlane)
}

func TestTryAttachPlaneAcceptsPlanarClosedWire(t *testing.T) {
	v0 := Vertex(geom.NewVec3(0, 0, 0))
	v1 := Vertex(geom.NewVec3(1, 0, 0))
	v2 := Vertex(geom.NewVec3(1, 1, 0))
	v3 := Vertex(geom.NewVec3(0, 1, 0))
	wire := topo.Wire{Line(v0, v1), Line(v1, v2), Line(v2, v3), Line(v3, v0)}
	face, err := TryAttachPlane([]topo.Wire{wire})
	require.NoError(t, err)
	n := face.OrientedSurface().Normal(0.5, 0.5)
	assert.InDelta(t, 1.0, math.Abs(n.Z), 1e-9)
}

func TestFullTorusIsGeometricallyConsistent(t *testing.T) {
	v := Vertex(geom.NewVec3(3, 0, 0))
	circle := RSweepVertex(v, geom.NewVec3(2, 0, 0), geom.NewVec3(0, 0, 1), 2*math.Pi)
	require.True(t, circle.IsClosed())

	torus := RSweepWire(circle, geom.Origin, geom.NewVec3(0, 1, 0), 2*math.Pi)
	assert.True(t, torus.IsClosed())
}

func TestPartialTorusFaceSweep(t *testing.T) {
	v := Vertex(geom.NewVec3(0.75+0.5, 0, 0))
	wire := RSweepVertex(v, geom.NewVec3(0.75, 0, 0), geom.NewVec3(0, 1, 0), 7.0)
	face, err := TryAttachPlane([]topo.Wire{wire})
	require.NoError(t, err)

	for _, angle := range []float64{2.0, 5.0, -2.0, -5.0} {
		solid, err := RSweepFace(face, geom.Origin, geom.NewVec3(0, 0, 1), angle)
		require.NoError(t, err)
		require.Len(t, solid.Boundaries(), 1)
		assert.Equal(t, topo.ShellClosed, solid.Boundaries()[0].Condition())
	}
}

func TestConeCollapsesApexToTriangularFace(t *testing.T) {
	v0 := Vertex(geom.NewVec3(0, 1, 0))
	v1 := Vertex(geom.NewVec3(0, 0, 1))
	v2 := Vertex(geom.NewVec3(0, 0, 0))
	wire := topo.Wire{Line(v0, v1), Line(v1, v2)}

	cone := Cone(wire, geom.NewVec3(0, 1, 0), 2*math.Pi)
	irregular := RSweepWire(wire, geom.Origin, geom.NewVec3(0, 1, 0), 2*math.Pi)

	assert.Len(t, cone[0].Boundaries()[0], 3)
	assert.Len(t, irregular[0].Boundaries()[0], 4)

	solid, err := topo.TryNewSolid([]topo.Shell{cone})
	require.NoError(t, err)
	assert.True(t, solid.Boundaries()[0].IsClosed())
}

func TestConeCollapsesApexForCurvedDegenerateEdge(t *testing.T) {
	axis := geom.NewVec3(0, 1, 0)
	v0 := Vertex(geom.NewVec3(1, 0, 0))
	v1 := Vertex(geom.NewVec3(1, 2, 0))
	wire := topo.Wire{CircleArc(v0, v1, geom.NewVec3(2, 1, 0))}

	cone := Cone(wire, axis, 2*math.Pi)
	assert.Len(t, cone[0].Boundaries()[0], 3)

	solid, err := topo.TryNewSolid([]topo.Shell{cone})
	require.NoError(t, err)
	assert.True(t, solid.Boundaries()[0].IsClosed())
}

func TestClonePreservesGeometryFreshIdentity(t *testing.T) {
	v := Vertex(geom.NewVec3(1, 2, 3))
	cloned := Clone(v)
	assert.NotEqual(t, v.ID(), cloned.ID())
	assert.Equal(t, v.Point, cloned.Point)
}

func TestTranslatedRotatedScaled(t *testing.T) {
	v := Vertex(geom.NewVec3(1, 0, 0))
	moved := Translated(v, geom.NewVec3(0, 1, 0))
	assert.InDelta(t, 1.0, moved.Point.Y, 1e-9)

	rotated := Rotated(v, geom.Origin, geom.NewVec3(0, 0, 1), math.Pi/2)
	assert.InDelta(t, 1.0, rotated.Point.Y, 1e-9)
	assert.InDelta(t, 0.0, rotated.Point.X, 1e-9)

	scaled := Scaled(v, geom.Origin, 2, 2, 2)
	assert.InDelta(t, 2.0, scaled.Point.X, 1e-9)
}
