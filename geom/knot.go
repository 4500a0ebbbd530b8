package geom

// KnotVec is a non-decreasing knot sequence for a B-spline/NURBS curve or
// one direction of a surface.
type KnotVec []float64

// BezierKnotVec returns the clamped knot vector for a single Bezier segment
// of the given degree: degree+1 zeros followed by degree+1 ones.
func BezierKnotVec(degree int) KnotVec {
	kv := make(KnotVec, 0, 2*(degree+1))
	for i := 0; i <= degree; i++ {
		kv = append(kv, 0)
	}
	for i := 0; i <= degree; i++ {
		kv = append(kv, 1)
	}
	return kv
}

// UniformClampedKnotVec returns a clamped uniform knot vector for the given
// degree and control-point count.
func UniformClampedKnotVec(degree, numCtrlPts int) KnotVec {
	numInternal := numCtrlPts - degree - 1
	kv := make(KnotVec, 0, numCtrlPts+degree+1)
	for i := 0; i <= degree; i++ {
		kv = append(kv, 0)
	}
	for i := 1; i <= numInternal; i++ {
		kv = append(kv, float64(i)/float64(numInternal+1))
	}
	for i := 0; i <= degree; i++ {
		kv = append(kv, 1)
	}
	return kv
}

// Range returns the parameter domain [knots[degree], knots[len-degree-1]].
func (kv KnotVec) Range(degree int) (float64, float64) {
	return kv[degree], kv[len(kv)-degree-1]
}

// findSpan returns the knot span index i such that kv[i] <= t < kv[i+1]
// (clamped at the domain end), for De Boor evaluation.
func (kv KnotVec) findSpan(degree int, numCtrlPts int, t float64) int {
	hi := numCtrlPts
	if t >= kv[hi] {
		return hi - 1
	}
	lo := degree
	for i := lo; i < hi; i++ {
		if t >= kv[i] && t < kv[i+1] {
			return i
		}
	}
	return lo
}

// insertKnotMultiplicity inserts u into (kv, ctrl) enough times to raise its
// multiplicity to degree+1, i.e. a full clamped breakpoint, following Piegl
// & Tiller's CurveKnotIns (The NURBS Book, Algorithm A5.1) specialized to
// r = degree+1-s insertions at once. Works uniformly in homogeneous space,
// so it is exact for both rational and non-rational control polygons.
//
// It returns the refined knot vector, the refined control points, and m,
// the index of the first of the degree+1 copies of u in the result — the
// curve's control points and knots each split cleanly at m with no further
// computation: ctrl[:m]/kv[:m+degree+1] is the curve up to u, ctrl[m:]/
// kv[m:] is the curve from u onward.
func insertKnotMultiplicity(kv KnotVec, degree int, ctrl []HPoint, u float64) (KnotVec, []HPoint, int) {
	n := len(ctrl) - 1
	p := degree
	k := kv.findSpan(degree, len(ctrl), u)
	s := 0
	for _, kk := range kv {
		if kk == u {
			s++
		}
	}
	r := p + 1 - s
	if r <= 0 {
		return kv, ctrl, k - s + 1
	}

	mp := n + p + 1
	nq := n + r

	uq := make(KnotVec, mp+r+1)
	for i := 0; i <= k; i++ {
		uq[i] = kv[i]
	}
	for i := 1; i <= r; i++ {
		uq[k+i] = u
	}
	for i := k + 1; i <= mp; i++ {
		uq[i+r] = kv[i]
	}

	qw := make([]HPoint, nq+1)
	for i := 0; i <= k-p; i++ {
		qw[i] = ctrl[i]
	}
	for i := k - s; i <= n; i++ {
		qw[i+r] = ctrl[i]
	}

	rw := make([]HPoint, p-s+1)
	for i := 0; i <= p-s; i++ {
		rw[i] = ctrl[k-p+i]
	}

	var l int
	for j := 1; j <= r; j++ {
		l = k - p + j
		for i := 0; i <= p-s-j; i++ {
			alpha := (u - kv[l+i]) / (kv[i+k+1] - kv[l+i])
			rw[i] = rw[i+1].Mul(alpha).Add(rw[i].Mul(1 - alpha))
		}
		qw[l] = rw[0]
		// The last of the degree+1 copies adds no new point: it only
		// duplicates the on-curve point rw[0] at the split.
		if p-s-j >= 0 {
			qw[k+r-j-s] = rw[p-s-j]
		}
	}
	for i := l + 1; i <= k-s; i++ {
		qw[i] = rw[i-l]
	}

	return uq, qw, k - s + 1
}

// deBoorHomogeneous evaluates a B-spline curve with homogeneous control
// points ctrl at parameter t using De Boor's algorithm. Works uniformly for
// rational (NURBS) and non-rational curves since non-rational points simply
// carry weight 1.
func deBoorHomogeneous(kv KnotVec, degree int, ctrl []HPoint, t float64) HPoint {
	n := len(ctrl)
	span := kv.findSpan(degree, n, t)
	d := make([]HPoint, degree+1)
	for j := 0; j <= degree; j++ {
		idx := span - degree + j
		if idx < 0 {
			idx = 0
		}
		if idx >= n {
			idx = n - 1
		}
		d[j] = ctrl[idx]
	}
	for r := 1; r <= degree; r++ {
		for j := degree; j >= r; j-- {
			idx := span - degree + j
			left := idx
			right := idx + degree - r + 1
			if left < 0 {
				left = 0
			}
			if right >= len(kv) {
				right = len(kv) - 1
			}
			denom := kv[right] - kv[left]
			var alpha float64
			if denom != 0 {
				alpha = (t - kv[left]) / denom
			}
			d[j] = d[j-1].Mul(1 - alpha).Add(d[j].Mul(alpha))
		}
	}
	return d[degree]
}
