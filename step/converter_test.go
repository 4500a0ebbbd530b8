package step

import (
	"strings"
	"testing"

	"github.com/ajsb85/brepkit/builder"
	"github.com/ajsb85/brepkit/geom"
	"github.com/ajsb85/brepkit/mesh"
	"github.com/ajsb85/brepkit/topo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countEntities(entities []Entity, keyword string) int {
	n := 0
	for _, e := range entities {
		if strings.Contains(e.String(), keyword) {
			n++
		}
	}
	return n
}

func TestConvertSolidCubeEmitsOneFacePerSide(t *testing.T) {
	v := builder.Vertex(geom.Origin)
	edge := builder.TSweepVertex(v, geom.NewVec3(1, 0, 0))
	face := builder.TSweepEdge(edge, geom.NewVec3(0, 1, 0))
	cube := builder.TSweepFace(face, geom.NewVec3(0, 0, 1))

	c := NewConverter()
	entities := c.ConvertSolid(cube, "cube")

	require.NotEmpty(t, entities)
	assert.Equal(t, 1, countEntities(entities, "MANIFOLD_SOLID_BREP"))
	assert.Equal(t, 1, countEntities(entities, "CLOSED_SHELL"))
	assert.Equal(t, 6, countEntities(entities, "ADVANCED_FACE"))
	assert.Equal(t, 6, countEntities(entities, "=PLANE("))

	// A cube has 12 edges; the bridge-sharing sweep engine reuses one
	// EDGE_CURVE per edge across its two adjacent faces, so the count must
	// not be the naive 6*4 = 24 one would get without identity sharing.
	assert.Equal(t, 12, countEntities(entities, "EDGE_CURVE"))
}

func TestConvertSolidRejectsNothingForPartialRevolve(t *testing.T) {
	v := builder.Vertex(geom.NewVec3(0.75+0.5, 0, 0))
	wire := builder.RSweepVertex(v, geom.NewVec3(0.75, 0, 0), geom.NewVec3(0, 1, 0), 7.0)
	face, err := builder.TryAttachPlane([]topo.Wire{wire})
	require.NoError(t, err)
	solid, err := builder.RSweepFace(face, geom.Origin, geom.NewVec3(0, 0, 1), 2.0)
	require.NoError(t, err)

	c := NewConverter()
	entities := c.ConvertSolid(solid, "partial-revolve")
	require.NotEmpty(t, entities)
	assert.Equal(t, 1, countEntities(entities, "MANIFOLD_SOLID_BREP"))
	// The revolved side faces have no closed-form STEP surface, so they
	// fall back to the sampled B-spline-surface approximation.
	assert.True(t, countEntities(entities, "B_SPLINE_SURFACE_WITH_KNOTS") > 0)
}

func TestConvertMeshSkipsDegenerateTriangles(t *testing.T) {
	tris := []mesh.Triangle{
		{A: geom.NewVec3(0, 0, 0), B: geom.NewVec3(1, 0, 0), C: geom.NewVec3(0, 1, 0), Normal: geom.NewVec3(0, 0, 1)},
		{A: geom.NewVec3(0, 0, 0), B: geom.NewVec3(0, 0, 0), C: geom.NewVec3(0, 0, 0), Normal: geom.NewVec3(0, 0, 1)},
	}
	c := NewConverter()
	entities := c.ConvertMesh(tris, "mesh")
	require.NotEmpty(t, entities)
	assert.Equal(t, 1, countEntities(entities, "ADVANCED_FACE"))
	assert.Equal(t, 1, countEntities(entities, "MANIFOLD_SOLID_BREP"))
}
