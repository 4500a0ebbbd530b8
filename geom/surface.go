package geom

import "math"

// Surface is the tagged union of surface kinds the kernel consumes, per the
// original spec's §6 "Surface variant set": Plane, NURBSSurface,
// BSplineSurface, RevolutedCurve.
type Surface interface {
	Evaluate(u, v float64) Vec3
	Transform(m Matrix4) Surface
	Normal(u, v float64) Vec3
	// Inverse swaps the surface's (u, v) parameters, matching the original
	// spec's "inverse (parameter-swap)".
	Inverse() Surface
}

// ---- Plane ----------------------------------------------------------------

// Plane is spanned by (U, V) through Origin; Evaluate(u, v) = Origin + u*U + v*V.
type Plane struct {
	Origin, U, V Vec3
}

// NewPlaneThroughPoints builds the plane through three points, with U toward
// b and V toward c (not orthonormalized — matches the original
// Plane::new(origin, u_dir_point, v_dir_point) convention of the teacher's
// tsweep homotopy branch, which constructs Plane(line.front, line.back,
// line.front+vector)).
func NewPlaneThroughPoints(origin, uTarget, vTarget Vec3) Plane {
	return Plane{Origin: origin, U: uTarget.Sub(origin), V: vTarget.Sub(origin)}
}

func (p Plane) Evaluate(u, v float64) Vec3 {
	return p.Origin.Add(p.U.Mul(u)).Add(p.V.Mul(v))
}

func (p Plane) Transform(m Matrix4) Surface {
	return Plane{
		Origin: m.TransformPoint(p.Origin),
		U:      m.TransformVector(p.U),
		V:      m.TransformVector(p.V),
	}
}

func (p Plane) Normal(u, v float64) Vec3 { return p.U.Cross(p.V).Normalize() }

func (p Plane) Inverse() Surface { return Plane{Origin: p.Origin, U: p.V, V: p.U} }

// ---- BSplineSurface ---------------------------------------------------------

// BSplineSurface is a non-rational tensor-product B-spline surface.
type BSplineSurface struct {
	UDegree, VDegree int
	UKnots, VKnots   KnotVec
	ControlPoints    [][]Vec3 // [i][j], i along u, j along v
}

// Homotopy builds the ruled (lofted) ≤degree-1-in-v surface between two
// curves, pairing each curve's lifted control polygon row-for-row — see
// RationalCurve.NonRationalControlPoints. When the curves carry a differing
// number of control points the shorter one is resampled by even parameter
// fraction so the control nets line up; this keeps the construction total
// and simple, consistent with the Non-goal of not guaranteeing numerical
// robustness beyond tolerance.
func Homotopy(c0, c1 Curve) BSplineSurface {
	l0, l1 := c0.Lift(), c1.Lift()
	p0 := l0.NonRationalControlPoints()
	p1 := l1.NonRationalControlPoints()
	n := len(p0)
	if len(p1) > n {
		n = len(p1)
	}
	p0 = resamplePolyline(p0, n)
	p1 = resamplePolyline(p1, n)
	ctrl := make([][]Vec3, n)
	for i := 0; i < n; i++ {
		ctrl[i] = []Vec3{p0[i], p1[i]}
	}
	return BSplineSurface{
		UDegree: l0.Degree, VDegree: 1,
		UKnots: UniformClampedKnotVec(l0.Degree, n),
		VKnots: BezierKnotVec(1),
		ControlPoints: ctrl,
	}
}

func resamplePolyline(pts []Vec3, n int) []Vec3 {
	if len(pts) == n {
		return pts
	}
	out := make([]Vec3, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		f := t * float64(len(pts)-1)
		lo := int(math.Floor(f))
		if lo >= len(pts)-1 {
			out[i] = pts[len(pts)-1]
			continue
		}
		out[i] = pts[lo].Lerp(pts[lo+1], f-float64(lo))
	}
	return out
}

func (s BSplineSurface) homogeneous() [][]HPoint {
	h := make([][]HPoint, len(s.ControlPoints))
	for i, row := range s.ControlPoints {
		hrow := make([]HPoint, len(row))
		for j, p := range row {
			hrow[j] = ToHomogeneous(p, 1)
		}
		h[i] = hrow
	}
	return h
}

func (s BSplineSurface) Evaluate(u, v float64) Vec3 {
	return evaluateTensorProduct(s.UKnots, s.UDegree, s.VKnots, s.VDegree, s.homogeneous(), u, v).ToPoint()
}

func (s BSplineSurface) Transform(m Matrix4) Surface {
	ctrl := make([][]Vec3, len(s.ControlPoints))
	for i, row := range s.ControlPoints {
		nrow := make([]Vec3, len(row))
		for j, p := range row {
			nrow[j] = m.TransformPoint(p)
		}
		ctrl[i] = nrow
	}
	return BSplineSurface{UDegree: s.UDegree, VDegree: s.VDegree, UKnots: s.UKnots, VKnots: s.VKnots, ControlPoints: ctrl}
}

func (s BSplineSurface) Normal(u, v float64) Vec3 {
	return numericalNormal(s, u, v)
}

func (s BSplineSurface) Inverse() Surface {
	n, m := len(s.ControlPoints), len(s.ControlPoints[0])
	ctrl := make([][]Vec3, m)
	for j := 0; j < m; j++ {
		ctrl[j] = make([]Vec3, n)
		for i := 0; i < n; i++ {
			ctrl[j][i] = s.ControlPoints[i][j]
		}
	}
	return BSplineSurface{UDegree: s.VDegree, VDegree: s.UDegree, UKnots: s.VKnots, VKnots: s.UKnots, ControlPoints: ctrl}
}

// ---- NURBSSurface -----------------------------------------------------------

// NURBSSurface is a rational tensor-product B-spline surface.
type NURBSSurface struct {
	UDegree, VDegree int
	UKnots, VKnots   KnotVec
	ControlPoints    [][]HPoint
}

// NewNURBSSurfaceFromNonRational lifts a non-rational surface (e.g. the
// result of Homotopy) to rational form with unit weights — the way
// builder.TSweep's NURBS x NURBS branch wraps the non-rational homotopy
// result in a NURBSSurface.
func NewNURBSSurfaceFromNonRational(s BSplineSurface) NURBSSurface {
	ctrl := make([][]HPoint, len(s.ControlPoints))
	for i, row := range s.ControlPoints {
		hrow := make([]HPoint, len(row))
		for j, p := range row {
			hrow[j] = ToHomogeneous(p, 1)
		}
		ctrl[i] = hrow
	}
	return NURBSSurface{UDegree: s.UDegree, VDegree: s.VDegree, UKnots: s.UKnots, VKnots: s.VKnots, ControlPoints: ctrl}
}

func (s NURBSSurface) Evaluate(u, v float64) Vec3 {
	return evaluateTensorProduct(s.UKnots, s.UDegree, s.VKnots, s.VDegree, s.ControlPoints, u, v).ToPoint()
}

func (s NURBSSurface) Transform(m Matrix4) Surface {
	ctrl := make([][]HPoint, len(s.ControlPoints))
	for i, row := range s.ControlPoints {
		nrow := make([]HPoint, len(row))
		for j, h := range row {
			nrow[j] = m.TransformHomogeneous(h)
		}
		ctrl[i] = nrow
	}
	return NURBSSurface{UDegree: s.UDegree, VDegree: s.VDegree, UKnots: s.UKnots, VKnots: s.VKnots, ControlPoints: ctrl}
}

func (s NURBSSurface) Normal(u, v float64) Vec3 { return numericalNormal(s, u, v) }

func (s NURBSSurface) Inverse() Surface {
	n, m := len(s.ControlPoints), len(s.ControlPoints[0])
	ctrl := make([][]HPoint, m)
	for j := 0; j < m; j++ {
		ctrl[j] = make([]HPoint, n)
		for i := 0; i < n; i++ {
			ctrl[j][i] = s.ControlPoints[i][j]
		}
	}
	return NURBSSurface{UDegree: s.VDegree, VDegree: s.UDegree, UKnots: s.VKnots, VKnots: s.UKnots, ControlPoints: ctrl}
}

// ---- RevolutedSurface -------------------------------------------------------

// RevolutedSurface is the surface traced by revolving Curve about Axis
// through Origin. Its v parameter is normalized to [0, 1] representing a
// sweep of Angle radians, matching how builder.RSweep's connect_curve
// constructs one per sweep stage.
type RevolutedSurface struct {
	Curve       Curve
	Origin, Axis Vec3
	Angle       float64
}

func (s RevolutedSurface) Evaluate(u, v float64) Vec3 {
	p := s.Curve.Evaluate(u)
	return RotateAbout(p, s.Origin, s.Axis, v*s.Angle)
}

func (s RevolutedSurface) Transform(m Matrix4) Surface {
	return RevolutedSurface{
		Curve:  s.Curve.Transform(m),
		Origin: m.TransformPoint(s.Origin),
		Axis:   m.TransformVector(s.Axis).Normalize(),
		Angle:  s.Angle,
	}
}

func (s RevolutedSurface) Normal(u, v float64) Vec3 { return numericalNormal(s, u, v) }

func (s RevolutedSurface) Inverse() Surface {
	return swappedSurface{inner: s}
}

// swappedSurface lazily swaps (u, v) for a surface kind (such as
// RevolutedSurface) that has no closed-form parameter-swapped
// representation of its own.
type swappedSurface struct{ inner Surface }

func (s swappedSurface) Evaluate(u, v float64) Vec3 { return s.inner.Evaluate(v, u) }
func (s swappedSurface) Transform(m Matrix4) Surface {
	return swappedSurface{inner: s.inner.Transform(m)}
}
func (s swappedSurface) Normal(u, v float64) Vec3 { return s.inner.Normal(v, u) }
func (s swappedSurface) Inverse() Surface         { return s.inner }

// ---- shared helpers ---------------------------------------------------------

func evaluateTensorProduct(uKnots KnotVec, uDegree int, vKnots KnotVec, vDegree int, ctrl [][]HPoint, u, v float64) HPoint {
	// Evaluate along v for each row, then along u.
	col := make([]HPoint, len(ctrl))
	for i, row := range ctrl {
		col[i] = deBoorHomogeneous(vKnots, vDegree, row, v)
	}
	return deBoorHomogeneous(uKnots, uDegree, col, u)
}

func numericalNormal(s Surface, u, v float64) Vec3 {
	const h = 1e-5
	p0 := s.Evaluate(u, v)
	du := s.Evaluate(u+h, v).Sub(p0)
	dv := s.Evaluate(u, v+h).Sub(p0)
	return du.Cross(dv).Normalize()
}
