package topo

import (
	"testing"

	"github.com/ajsb85/brepkit/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeInverseSharesID(t *testing.T) {
	v0 := NewVertex(geom.NewVec3(0, 0, 0))
	v1 := NewVertex(geom.NewVec3(1, 0, 0))
	e := NewEdge(v0, v1, geom.NewLine(v0.Point, v1.Point))
	inv := e.Inverse()

	assert.Equal(t, e.ID(), inv.ID())
	assert.NotEqual(t, e.Sense(), inv.Sense())
	assert.Equal(t, v1.ID(), inv.Front().ID())
	assert.Equal(t, v0.ID(), inv.Back().ID())
}

func TestWireIsClosed(t *testing.T) {
	vs := make([]Vertex, 4)
	for i := range vs {
		vs[i] = NewVertex(geom.NewVec3(float64(i), 0, 0))
	}
	w := Wire{
		NewEdge(vs[0], vs[1], geom.NewLine(vs[0].Point, vs[1].Point)),
		NewEdge(vs[1], vs[2], geom.NewLine(vs[1].Point, vs[2].Point)),
		NewEdge(vs[2], vs[3], geom.NewLine(vs[2].Point, vs[3].Point)),
	}
	assert.False(t, w.IsClosed())

	closing := NewEdge(vs[3], vs[0], geom.NewLine(vs[3].Point, vs[0].Point))
	w = append(w, closing)
	assert.True(t, w.IsClosed())
	assert.Len(t, w.Vertices(), 4)
}

func TestWireInverse(t *testing.T) {
	v0 := NewVertex(geom.NewVec3(0, 0, 0))
	v1 := NewVertex(geom.NewVec3(1, 0, 0))
	v2 := NewVertex(geom.NewVec3(1, 1, 0))
	w := Wire{
		NewEdge(v0, v1, geom.NewLine(v0.Point, v1.Point)),
		NewEdge(v1, v2, geom.NewLine(v1.Point, v2.Point)),
	}
	inv := w.Inverse()
	require.Len(t, inv, 2)
	front, _ := inv.FrontVertex()
	back, _ := inv.BackVertex()
	assert.Equal(t, v2.ID(), front.ID())
	assert.Equal(t, v0.ID(), back.ID())
}

func square(origin geom.Vec3, side float64) (Wire, []Vertex) {
	vs := []Vertex{
		NewVertex(origin),
		NewVertex(origin.Add(geom.NewVec3(side, 0, 0))),
		NewVertex(origin.Add(geom.NewVec3(side, side, 0))),
		NewVertex(origin.Add(geom.NewVec3(0, side, 0))),
	}
	w := Wire{
		NewEdge(vs[0], vs[1], geom.NewLine(vs[0].Point, vs[1].Point)),
		NewEdge(vs[1], vs[2], geom.NewLine(vs[1].Point, vs[2].Point)),
		NewEdge(vs[2], vs[3], geom.NewLine(vs[2].Point, vs[3].Point)),
		NewEdge(vs[3], vs[0], geom.NewLine(vs[3].Point, vs[0].Point)),
	}
	return w, vs
}

func TestFaceTryNewRequiresClosedBoundary(t *testing.T) {
	w, _ := square(geom.Origin, 1)
	plane := geom.NewPlaneThroughPoints(geom.Origin, geom.NewVec3(1, 0, 0), geom.NewVec3(0, 1, 0))
	_, err := TryNewFace([]Wire{w}, plane)
	require.NoError(t, err)

	open := w[:3]
	_, err = TryNewFace([]Wire{open}, plane)
	assert.ErrorIs(t, err, ErrNotClosedWire)
}

func TestShellConditionSingleFaceIsOriented(t *testing.T) {
	// A single square face alone is an oriented-but-open shell.
	w, _ := square(geom.Origin, 1)
	plane := geom.NewPlaneThroughPoints(geom.Origin, geom.NewVec3(1, 0, 0), geom.NewVec3(0, 1, 0))
	f, err := TryNewFace([]Wire{w}, plane)
	require.NoError(t, err)

	sh := Shell{f}
	assert.Equal(t, ShellOriented, sh.Condition())
	assert.Len(t, sh.ExtractBoundaries(), 1)
}

func TestSolidTryNewRejectsOpenShell(t *testing.T) {
	w, _ := square(geom.Origin, 1)
	plane := geom.NewPlaneThroughPoints(geom.Origin, geom.NewVec3(1, 0, 0), geom.NewVec3(0, 1, 0))
	f, err := TryNewFace([]Wire{w}, plane)
	require.NoError(t, err)

	_, err = TryNewSolid([]Shell{{f}})
	assert.ErrorIs(t, err, ErrClosedShellNotExtrudable)
}
