package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNURBSCurveCutReparameterizesBothHalves(t *testing.T) {
	arc := CircleArcByThreePoints(NewVec3(1, 0, 0), NewVec3(-1, 0, 0), NewVec3(0, 1, 0))
	t0, t1 := arc.ParameterRange()
	mid := (t0 + t1) / 2
	midPoint := arc.Evaluate(mid)

	head, tail := arc.Cut(mid)

	hs, he := head.ParameterRange()
	ts, te := tail.ParameterRange()

	// Each half keeps its own clamped domain rather than a copy of the
	// original [t0, t1] range.
	assert.InDelta(t, t0, hs, 1e-9)
	assert.InDelta(t, mid, he, 1e-9)
	assert.InDelta(t, mid, ts, 1e-9)
	assert.InDelta(t, t1, te, 1e-9)

	assert.True(t, head.Front().Equals(arc.Front(), 1e-9))
	assert.True(t, head.Back().Equals(midPoint, 1e-9))
	assert.True(t, tail.Front().Equals(midPoint, 1e-9))
	assert.True(t, tail.Back().Equals(arc.Back(), 1e-9))

	// Sampled interior points must still lie on the original circle, not
	// some degenerate stand-in for it.
	for _, frac := range []float64{0.25, 0.75} {
		hp := head.Evaluate(hs + frac*(he-hs))
		assert.InDelta(t, 1.0, hp.Length(), 1e-6)
		tp := tail.Evaluate(ts + frac*(te-ts))
		assert.InDelta(t, 1.0, tp.Length(), 1e-6)
	}
}

func TestBSplineCurveCutReparameterizesBothHalves(t *testing.T) {
	ctrl := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 2, 0),
		NewVec3(2, -2, 0),
		NewVec3(3, 0, 0),
	}
	curve := NewBSplineCurve(UniformClampedKnotVec(3, len(ctrl)), ctrl)
	t0, t1 := curve.ParameterRange()
	cut := t0 + 0.3*(t1-t0)
	cutPoint := curve.Evaluate(cut)

	head, tail := curve.Cut(cut)

	hs, he := head.ParameterRange()
	ts, te := tail.ParameterRange()
	assert.InDelta(t, t0, hs, 1e-9)
	assert.InDelta(t, cut, he, 1e-9)
	assert.InDelta(t, cut, ts, 1e-9)
	assert.InDelta(t, t1, te, 1e-9)

	assert.True(t, head.Back().Equals(cutPoint, 1e-6))
	assert.True(t, tail.Front().Equals(cutPoint, 1e-6))
	assert.True(t, head.Front().Equals(curve.Front(), 1e-9))
	assert.True(t, tail.Back().Equals(curve.Back(), 1e-9))

	// A point partway into the tail must match the same point on the
	// original, un-split curve.
	sample := ts + 0.6*(te-ts)
	assert.InDelta(t, 0.0, curve.Evaluate(sample).Sub(tail.Evaluate(sample)).Length(), 1e-6)
}

func TestLineCutSplitsAtMidpoint(t *testing.T) {
	line := NewLine(NewVec3(0, 0, 0), NewVec3(2, 0, 0))
	head, tail := line.Cut(0.5)
	assert.True(t, head.(Line).B.Equals(NewVec3(1, 0, 0), 1e-9))
	assert.True(t, tail.(Line).A.Equals(NewVec3(1, 0, 0), 1e-9))
}
