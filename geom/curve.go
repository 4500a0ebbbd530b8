package geom

import "fmt"

// Curve is the tagged union of curve kinds the kernel consumes, per the
// original spec's §6 "Curve variant set": Line, NURBSCurve, BSplineCurve,
// and the opaque IntersectionCurve that the core never constructs itself.
type Curve interface {
	// Evaluate returns the curve point at parameter t.
	Evaluate(t float64) Vec3
	// ParameterRange returns the curve's valid parameter domain.
	ParameterRange() (float64, float64)
	// Front and Back return the curve's endpoints.
	Front() Vec3
	Back() Vec3
	// Cut splits the curve at parameter t into the [t0, t] and [t, t1]
	// halves.
	Cut(t float64) (head, tail Curve)
	// Transform returns the curve transformed by m.
	Transform(m Matrix4) Curve
	// Inverse returns the curve with its parameter direction reversed.
	Inverse() Curve
	// Lift returns the curve's rational (homogeneous) control polygon —
	// used by try_attach_plane and homotopy.
	Lift() RationalCurve
}

// RationalCurve is a curve's lifted homogeneous representation: a degree, a
// knot vector, and a homogeneous control polygon.
type RationalCurve struct {
	Degree        int
	Knots         KnotVec
	ControlPoints []HPoint
}

func (r RationalCurve) NonRationalControlPoints() []Vec3 {
	pts := make([]Vec3, len(r.ControlPoints))
	for i, h := range r.ControlPoints {
		pts[i] = h.ToPoint()
	}
	return pts
}

// ---- Line -------------------------------------------------------------

// Line is a straight segment from A to B.
type Line struct {
	A, B Vec3
}

func NewLine(a, b Vec3) Line { return Line{A: a, B: b} }

func (l Line) Evaluate(t float64) Vec3          { return l.A.Lerp(l.B, t) }
func (l Line) ParameterRange() (float64, float64) { return 0, 1 }
func (l Line) Front() Vec3                      { return l.A }
func (l Line) Back() Vec3                       { return l.B }

func (l Line) Cut(t float64) (Curve, Curve) {
	mid := l.Evaluate(t)
	return Line{A: l.A, B: mid}, Line{A: mid, B: l.B}
}

func (l Line) Transform(m Matrix4) Curve {
	return Line{A: m.TransformPoint(l.A), B: m.TransformPoint(l.B)}
}

func (l Line) Inverse() Curve { return Line{A: l.B, B: l.A} }

func (l Line) Lift() RationalCurve {
	return RationalCurve{
		Degree: 1,
		Knots:  BezierKnotVec(1),
		ControlPoints: []HPoint{
			ToHomogeneous(l.A, 1),
			ToHomogeneous(l.B, 1),
		},
	}
}

// ---- BSplineCurve -------------------------------------------------------

// BSplineCurve is a non-rational B-spline curve (all weights implicitly 1).
type BSplineCurve struct {
	Degree        int
	Knots         KnotVec
	ControlPoints []Vec3
}

// NewBSplineCurve builds a B-spline curve, inferring degree from the knot
// vector and control point count (len(knots) = len(ctrl) + degree + 1).
func NewBSplineCurve(knots KnotVec, ctrl []Vec3) BSplineCurve {
	degree := len(knots) - len(ctrl) - 1
	return BSplineCurve{Degree: degree, Knots: knots, ControlPoints: ctrl}
}

func (c BSplineCurve) homogeneous() []HPoint {
	h := make([]HPoint, len(c.ControlPoints))
	for i, p := range c.ControlPoints {
		h[i] = ToHomogeneous(p, 1)
	}
	return h
}

func (c BSplineCurve) Evaluate(t float64) Vec3 {
	return deBoorHomogeneous(c.Knots, c.Degree, c.homogeneous(), t).ToPoint()
}

func (c BSplineCurve) ParameterRange() (float64, float64) { return c.Knots.Range(c.Degree) }
func (c BSplineCurve) Front() Vec3                        { return c.ControlPoints[0] }
func (c BSplineCurve) Back() Vec3                         { return c.ControlPoints[len(c.ControlPoints)-1] }

// Cut splits the curve at t by knot-inserting t to full multiplicity
// (degree+1) and reading the two halves off the refined control polygon —
// each half is a genuine reparameterized, independently clamped B-spline
// curve, not a copy of the original domain. Degree-1 two-point lines are
// special-cased to plain Lines, matching how the sweep engine's degenerate-
// edge collapse in builder.Cone treats them.
func (c BSplineCurve) Cut(t float64) (Curve, Curve) {
	if c.Degree == 1 && len(c.ControlPoints) == 2 {
		mid := c.Evaluate(t)
		return Line{A: c.ControlPoints[0], B: mid}, Line{A: mid, B: c.ControlPoints[1]}
	}
	uq, qw, m := insertKnotMultiplicity(c.Knots, c.Degree, c.homogeneous(), t)
	head := BSplineCurve{
		Degree:        c.Degree,
		Knots:         append(KnotVec(nil), uq[:m+c.Degree+1]...),
		ControlPoints: hpointsToVec3(qw[:m]),
	}
	tail := BSplineCurve{
		Degree:        c.Degree,
		Knots:         append(KnotVec(nil), uq[m:]...),
		ControlPoints: hpointsToVec3(qw[m:]),
	}
	return head, tail
}

func hpointsToVec3(hs []HPoint) []Vec3 {
	out := make([]Vec3, len(hs))
	for i, h := range hs {
		out[i] = h.ToPoint()
	}
	return out
}

func (c BSplineCurve) Transform(m Matrix4) Curve {
	ctrl := make([]Vec3, len(c.ControlPoints))
	for i, p := range c.ControlPoints {
		ctrl[i] = m.TransformPoint(p)
	}
	return BSplineCurve{Degree: c.Degree, Knots: c.Knots, ControlPoints: ctrl}
}

func (c BSplineCurve) Inverse() Curve {
	n := len(c.ControlPoints)
	ctrl := make([]Vec3, n)
	for i, p := range c.ControlPoints {
		ctrl[n-1-i] = p
	}
	t0, t1 := c.ParameterRange()
	kv := make(KnotVec, len(c.Knots))
	for i, k := range c.Knots {
		kv[len(kv)-1-i] = t0 + t1 - k
	}
	return BSplineCurve{Degree: c.Degree, Knots: kv, ControlPoints: ctrl}
}

func (c BSplineCurve) Lift() RationalCurve {
	return RationalCurve{Degree: c.Degree, Knots: c.Knots, ControlPoints: c.homogeneous()}
}

// ---- NURBSCurve ---------------------------------------------------------

// NURBSCurve is a rational B-spline curve with a homogeneous control
// polygon; weights are carried in ControlPoints[i].W.
type NURBSCurve struct {
	Degree        int
	Knots         KnotVec
	ControlPoints []HPoint
}

func NewNURBSCurve(knots KnotVec, ctrl []HPoint) NURBSCurve {
	degree := len(knots) - len(ctrl) - 1
	return NURBSCurve{Degree: degree, Knots: knots, ControlPoints: ctrl}
}

func (c NURBSCurve) Evaluate(t float64) Vec3 {
	return deBoorHomogeneous(c.Knots, c.Degree, c.ControlPoints, t).ToPoint()
}

func (c NURBSCurve) ParameterRange() (float64, float64) { return c.Knots.Range(c.Degree) }
func (c NURBSCurve) Front() Vec3                        { return c.ControlPoints[0].ToPoint() }
func (c NURBSCurve) Back() Vec3                         { return c.ControlPoints[len(c.ControlPoints)-1].ToPoint() }

// Cut splits the curve at t the same way BSplineCurve.Cut does, operating
// directly on the rational homogeneous control polygon so weights carry
// through the split exactly.
func (c NURBSCurve) Cut(t float64) (Curve, Curve) {
	uq, qw, m := insertKnotMultiplicity(c.Knots, c.Degree, c.ControlPoints, t)
	head := NURBSCurve{
		Degree:        c.Degree,
		Knots:         append(KnotVec(nil), uq[:m+c.Degree+1]...),
		ControlPoints: append([]HPoint(nil), qw[:m]...),
	}
	tail := NURBSCurve{
		Degree:        c.Degree,
		Knots:         append(KnotVec(nil), uq[m:]...),
		ControlPoints: append([]HPoint(nil), qw[m:]...),
	}
	return head, tail
}

func (c NURBSCurve) Transform(m Matrix4) Curve {
	ctrl := make([]HPoint, len(c.ControlPoints))
	for i, h := range c.ControlPoints {
		ctrl[i] = m.TransformHomogeneous(h)
	}
	return NURBSCurve{Degree: c.Degree, Knots: c.Knots, ControlPoints: ctrl}
}

func (c NURBSCurve) Inverse() Curve {
	n := len(c.ControlPoints)
	ctrl := make([]HPoint, n)
	for i, h := range c.ControlPoints {
		ctrl[n-1-i] = h
	}
	t0, t1 := c.ParameterRange()
	kv := make(KnotVec, len(c.Knots))
	for i, k := range c.Knots {
		kv[len(kv)-1-i] = t0 + t1 - k
	}
	return NURBSCurve{Degree: c.Degree, Knots: kv, ControlPoints: ctrl}
}

func (c NURBSCurve) Lift() RationalCurve {
	return RationalCurve{Degree: c.Degree, Knots: c.Knots, ControlPoints: c.ControlPoints}
}

// NonRationalized returns the curve's control polygon with weights
// discarded — used by tsweep's NURBS x NURBS homotopy branch, which lofts
// the non-rational projections per the original builder::tsweep.
func (c NURBSCurve) NonRationalized() BSplineCurve {
	ctrl := make([]Vec3, len(c.ControlPoints))
	for i, h := range c.ControlPoints {
		ctrl[i] = Vec3{X: h.X, Y: h.Y, Z: h.Z}
	}
	return BSplineCurve{Degree: c.Degree, Knots: c.Knots, ControlPoints: ctrl}
}

// ---- IntersectionCurve ----------------------------------------------------

// IntersectionCurve is an opaque marker curve kind the core never
// constructs. Evaluate, ParameterRange, Front, Back, Cut and Lift panic with
// an "unimplemented" message; Transform and Inverse return another
// IntersectionCurve.
type IntersectionCurve struct{}

func (IntersectionCurve) Evaluate(float64) Vec3 { panic(unimplementedMsg("Evaluate")) }
func (IntersectionCurve) ParameterRange() (float64, float64) {
	panic(unimplementedMsg("ParameterRange"))
}
func (IntersectionCurve) Front() Vec3                    { panic(unimplementedMsg("Front")) }
func (IntersectionCurve) Back() Vec3                     { panic(unimplementedMsg("Back")) }
func (IntersectionCurve) Cut(float64) (Curve, Curve)     { panic(unimplementedMsg("Cut")) }
func (IntersectionCurve) Transform(Matrix4) Curve        { return IntersectionCurve{} }
func (IntersectionCurve) Inverse() Curve                 { return IntersectionCurve{} }
func (IntersectionCurve) Lift() RationalCurve             { panic(unimplementedMsg("Lift")) }

func unimplementedMsg(op string) string {
	return fmt.Sprintf("geom: %s unimplemented for IntersectionCurve", op)
}
