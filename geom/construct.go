package geom

import "math"

// CircleArcByThreePoints returns the NURBS circular arc from start to end
// passing through transit, grounded in the original spec's
// `circle_arc_by_three_points(start, end, transit) -> NURBS` constructor
// (truck's geom_impls module). The circle's center, radius and the plane's
// normal (used as the sweep axis) are derived from the three points; the
// sweep direction and angle are chosen so the arc actually passes through
// transit rather than the complementary arc.
func CircleArcByThreePoints(start, end, transit Vec3) NURBSCurve {
	center, axis, radius := circumcircle(start, end, transit)
	u0 := start.Sub(center).Normalize()
	uEnd := end.Sub(center).Normalize()
	uTransit := transit.Sub(center).Normalize()

	thetaEnd := positiveAngle(signedAngle(u0, uEnd, axis))
	thetaTransit := positiveAngle(signedAngle(u0, uTransit, axis))

	// Three points on a circle keep the cyclic order of their triangle's
	// winding (which `axis` was built from as cross(end-start, transit-start)).
	// If transit's CCW angle from start falls beyond end's, the direct CCW
	// arc to end skips over transit; go the other way around instead.
	angle := thetaEnd
	if thetaTransit > thetaEnd {
		angle = thetaEnd - 2*math.Pi
	}
	return circleArcConic(start, center, axis, radius, angle)
}

func positiveAngle(a float64) float64 {
	if a < 0 {
		return a + 2*math.Pi
	}
	return a
}

// CircleArc returns the NURBS circular arc of sweep `angle` about `axis`
// through `origin`, starting at `start`, per the original spec's
// `circle_arc(start_hom, origin, axis, angle) -> NURBS`. Arcs whose absolute
// angle is not small are built as two (or more) quadratic-Bezier spans
// joined at interior double knots, since a single rational quadratic
// Bezier's middle weight degenerates to zero (a control point at infinity)
// as the angle approaches π — the standard multi-span circular-arc
// construction avoids that singularity.
func CircleArc(start, origin, axis Vec3, angle float64) NURBSCurve {
	radius := start.Sub(origin).Length()
	return circleArcConic(start, origin, axis, radius, angle)
}

// circleArcConic builds a (possibly multi-span) rational-quadratic NURBS arc
// of total sweep `angle`, splitting into enough spans that no single span's
// angle reaches the numerically unstable neighborhood of π.
func circleArcConic(start, center, axis Vec3, radius, angle float64) NURBSCurve {
	const maxSpanAngle = 0.9 * math.Pi
	spans := 1
	for math.Abs(angle)/float64(spans) > maxSpanAngle {
		spans++
	}
	spanAngle := angle / float64(spans)

	ctrl := make([]HPoint, 0, 2*spans+1)
	knots := make(KnotVec, 0, 2*spans+3)
	cur := start
	ctrl = append(ctrl, ToHomogeneous(cur, 1))
	knots = append(knots, 0, 0, 0)
	for i := 0; i < spans; i++ {
		// The middle control point is the corner where the span's end
		// tangents meet, radius/w from the center along the bisector.
		w := math.Cos(spanAngle / 2)
		mid := center.Add(RotateAbout(cur, center, axis, spanAngle/2).Sub(center).Mul(1 / w))
		next := RotateAbout(cur, center, axis, spanAngle)
		ctrl = append(ctrl, ToHomogeneous(mid, w), ToHomogeneous(next, 1))
		if i < spans-1 {
			knots = append(knots, float64(i+1), float64(i+1))
		}
		cur = next
	}
	knots = append(knots, float64(spans), float64(spans), float64(spans))
	return NURBSCurve{Degree: 2, Knots: knots, ControlPoints: ctrl}
}

// circumcircle returns the center, unit normal (axis), and radius of the
// circle through three non-collinear points.
func circumcircle(a, b, c Vec3) (center, axis Vec3, radius float64) {
	axis = b.Sub(a).Cross(c.Sub(a)).Normalize()
	// Solve for the center as the intersection of the perpendicular
	// bisector planes of (a,b) and (a,c), constrained to the plane of a,b,c.
	ab := b.Sub(a)
	ac := c.Sub(a)
	d1 := ab.Dot(ab)
	d2 := ab.Dot(ac)
	d3 := ac.Dot(ac)
	denom := d1*d3 - d2*d2
	// Standard planar circumcenter formula in the local (ab, ac) basis.
	s := d3 * (d1 - d2) / (2 * denom)
	tt := d1 * (d3 - d2) / (2 * denom)
	center = a.Add(ab.Mul(s)).Add(ac.Mul(tt))
	radius = center.Sub(a).Length()
	return center, axis, radius
}

// signedAngle returns the signed angle from u to v about axis, both unit
// vectors orthogonal to axis, in (-pi, pi].
func signedAngle(u, v, axis Vec3) float64 {
	cos := u.Dot(v)
	sin := axis.Dot(u.Cross(v))
	return math.Atan2(sin, cos)
}

// AttachPlane fits a plane to pts if all of them lie within tol of a common
// plane, per the original spec's `attach_plane(points) -> Option<Plane>`.
// The candidate plane is built from the first three non-collinear points;
// every remaining point is checked for coplanarity within tol.
func AttachPlane(pts []Vec3, tol float64) (Plane, bool) {
	if len(pts) < 3 {
		return Plane{}, false
	}
	origin := pts[0]
	var normal Vec3
	var uDir Vec3
	found := false
	for i := 1; i < len(pts)-1 && !found; i++ {
		for j := i + 1; j < len(pts) && !found; j++ {
			u := pts[i].Sub(origin)
			w := pts[j].Sub(origin)
			n := u.Cross(w)
			if n.Length() > tol {
				normal = n.Normalize()
				uDir = u.Normalize()
				found = true
			}
		}
	}
	if !found {
		return Plane{}, false
	}
	for _, p := range pts {
		if math.Abs(p.Sub(origin).Dot(normal)) > tol {
			return Plane{}, false
		}
	}
	vDir := normal.Cross(uDir).Normalize()
	return Plane{Origin: origin, U: uDir, V: vDir}, true
}
