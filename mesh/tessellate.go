// Package mesh flattens topology cells into triangles, grounded in
// truck-polymesh's PolygonMesh/Faces grid-then-split approach, for
// consumption by package step's ConvertMesh fallback and package render.
package mesh

import (
	"math"

	"github.com/ajsb85/brepkit/geom"
	"github.com/ajsb85/brepkit/topo"
)

// Triangle is a flat-shaded triangle: three corner points and the normal
// sampled at its surface parameter.
type Triangle struct {
	A, B, C geom.Point
	Normal  geom.Vec3
}

// Tessellate samples face's surface on an evenly spaced (u, v) grid over the
// face's parameter bounding box and splits each grid quad into two
// triangles. tol bounds the parameter spacing directly (not arc length):
// this is intentionally coarse, the way the kernel's tolerance-only
// robustness contract allows.
func Tessellate(face topo.Face, tol float64) []Triangle {
	surface := face.OrientedSurface()
	u0, u1, v0, v1 := paramBounds(face, surface)
	nu := gridSteps(u1-u0, tol)
	nv := gridSteps(v1-v0, tol)

	grid := make([][]geom.Vec3, nu+1)
	for i := 0; i <= nu; i++ {
		u := u0 + (u1-u0)*float64(i)/float64(nu)
		row := make([]geom.Vec3, nv+1)
		for j := 0; j <= nv; j++ {
			v := v0 + (v1-v0)*float64(j)/float64(nv)
			row[j] = surface.Evaluate(u, v)
		}
		grid[i] = row
	}

	tris := make([]Triangle, 0, 2*nu*nv)
	for i := 0; i < nu; i++ {
		for j := 0; j < nv; j++ {
			a, b := grid[i][j], grid[i+1][j]
			c, d := grid[i+1][j+1], grid[i][j+1]
			n1 := b.Sub(a).Cross(c.Sub(a)).Normalize()
			n2 := c.Sub(a).Cross(d.Sub(a)).Normalize()
			tris = append(tris, Triangle{A: a, B: b, C: c, Normal: n1})
			tris = append(tris, Triangle{A: a, B: c, C: d, Normal: n2})
		}
	}
	return tris
}

// TessellateShell tessellates every face of shell and concatenates the
// results.
func TessellateShell(shell topo.Shell, tol float64) []Triangle {
	var out []Triangle
	for _, f := range shell.FaceIter() {
		out = append(out, Tessellate(f, tol)...)
	}
	return out
}

// TessellateSolid tessellates every boundary shell of solid and concatenates
// the results.
func TessellateSolid(solid topo.Solid, tol float64) []Triangle {
	var out []Triangle
	for _, shell := range solid.Boundaries() {
		out = append(out, TessellateShell(shell, tol)...)
	}
	return out
}

func gridSteps(span, tol float64) int {
	if tol <= 0 {
		tol = geom.DefaultTolerance
	}
	n := int(math.Ceil(math.Abs(span) / tol))
	if n < 1 {
		n = 1
	}
	return n
}

// paramBounds computes face's (u, v) parameter bounding box: from the
// surface's own knot domain when it carries one (BSplineSurface,
// NURBSSurface), from the generating curve's parameter range and the [0, 1]
// sweep fraction for a RevolutedSurface, or else by projecting the face's
// boundary vertices onto the surface's own basis (Plane).
func paramBounds(face topo.Face, surface geom.Surface) (u0, u1, v0, v1 float64) {
	switch s := surface.(type) {
	case geom.BSplineSurface:
		u0, u1 = s.UKnots.Range(s.UDegree)
		v0, v1 = s.VKnots.Range(s.VDegree)
		return
	case geom.NURBSSurface:
		u0, u1 = s.UKnots.Range(s.UDegree)
		v0, v1 = s.VKnots.Range(s.VDegree)
		return
	case geom.RevolutedSurface:
		u0, u1 = s.Curve.ParameterRange()
		v0, v1 = 0, 1
		return
	case geom.Plane:
		return planeVertexBounds(face, s)
	default:
		return planeVertexBounds(face, surface)
	}
}

// planeVertexBounds projects every boundary vertex of face onto plane's (U,
// V) basis (not necessarily orthonormal) and returns the resulting bounding
// box, widened to at least one tolerance step so a degenerate single-point
// boundary still yields a sample.
func planeVertexBounds(face topo.Face, surface geom.Surface) (u0, u1, v0, v1 float64) {
	plane, ok := surface.(geom.Plane)
	if !ok {
		// No closed-form inverse available; fall back to the unit square.
		return 0, 1, 0, 1
	}
	first := true
	for _, w := range face.Boundaries() {
		for _, v := range w.Vertices() {
			u, vv := planeUV(plane, v.Point)
			if first {
				u0, u1, v0, v1 = u, u, vv, vv
				first = false
				continue
			}
			if u < u0 {
				u0 = u
			}
			if u > u1 {
				u1 = u
			}
			if vv < v0 {
				v0 = vv
			}
			if vv > v1 {
				v1 = vv
			}
		}
	}
	if u0 == u1 {
		u1 = u0 + 1
	}
	if v0 == v1 {
		v1 = v0 + 1
	}
	return
}

// planeUV solves pt = plane.Origin + u*plane.U + v*plane.V for (u, v) by
// least squares, valid whenever U and V are linearly independent.
func planeUV(plane geom.Plane, pt geom.Vec3) (u, v float64) {
	w := pt.Sub(plane.Origin)
	uu := plane.U.Dot(plane.U)
	uv := plane.U.Dot(plane.V)
	vv := plane.V.Dot(plane.V)
	wu := w.Dot(plane.U)
	wv := w.Dot(plane.V)
	det := uu*vv - uv*uv
	if det == 0 {
		return 0, 0
	}
	u = (wu*vv - wv*uv) / det
	v = (wv*uu - wu*uv) / det
	return
}
