package mesh

import (
	"math"
	"testing"

	"github.com/ajsb85/brepkit/builder"
	"github.com/ajsb85/brepkit/geom"
	"github.com/ajsb85/brepkit/topo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTessellatePlaneFaceCoversBoundary(t *testing.T) {
	v0 := builder.Vertex(geom.NewVec3(0, 0, 0))
	v1 := builder.Vertex(geom.NewVec3(1, 0, 0))
	v2 := builder.Vertex(geom.NewVec3(1, 1, 0))
	v3 := builder.Vertex(geom.NewVec3(0, 1, 0))
	wire := topo.Wire{builder.Line(v0, v1), builder.Line(v1, v2), builder.Line(v2, v3), builder.Line(v3, v0)}

	face, err := builder.TryAttachPlane([]topo.Wire{wire})
	require.NoError(t, err)

	tris := Tessellate(face, 0.2)
	require.NotEmpty(t, tris)
	for _, tri := range tris {
		assert.InDelta(t, 1.0, tri.Normal.Length(), 1e-9)
	}
}

func TestTessellateCubeCoversAllSixFaces(t *testing.T) {
	v := builder.Vertex(geom.Origin)
	edge := builder.TSweepVertex(v, geom.NewVec3(1, 0, 0))
	face := builder.TSweepEdge(edge, geom.NewVec3(0, 1, 0))
	cube := builder.TSweepFace(face, geom.NewVec3(0, 0, 1))

	tris := TessellateSolid(cube, 0.5)
	assert.True(t, len(tris) >= 12)
}

func TestGridStepsNeverZero(t *testing.T) {
	assert.Equal(t, 1, gridSteps(0, 0.1))
	assert.Equal(t, 1, gridSteps(0.05, 0.1))
	assert.True(t, gridSteps(1, 0.1) >= 10)
}

func TestRevolutedSurfaceBoundsMatchCurveRange(t *testing.T) {
	curve := geom.NewLine(geom.NewVec3(1, 0, 0), geom.NewVec3(1, 0, 1))
	surf := geom.RevolutedSurface{Curve: curve, Origin: geom.Origin, Axis: geom.NewVec3(0, 0, 1), Angle: math.Pi}
	u0, u1, v0, v1 := paramBounds(topo.Face{}, surf)
	assert.Equal(t, 0.0, u0)
	assert.Equal(t, 1.0, u1)
	assert.Equal(t, 0.0, v0)
	assert.Equal(t, 1.0, v1)
}
