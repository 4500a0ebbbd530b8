package geom

import "math"

// Matrix4 is a row-major 4x4 affine transform, applied to points as
// Matrix4 * [x y z 1]^T. Mirrors the cgmath Matrix4 the original source
// threads through builder::transformed/translated/rotated/scaled.
type Matrix4 [4][4]float64

// Identity returns the identity transform.
func Identity() Matrix4 {
	var m Matrix4
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

// Translate returns a translation by v.
func Translate(v Vec3) Matrix4 {
	m := Identity()
	m[0][3], m[1][3], m[2][3] = v.X, v.Y, v.Z
	return m
}

// Scale returns a non-uniform scale about the origin.
func Scale(sx, sy, sz float64) Matrix4 {
	m := Identity()
	m[0][0], m[1][1], m[2][2] = sx, sy, sz
	return m
}

// RotateAxisAngle returns a rotation by angle radians about the (unit) axis,
// through the origin, via Rodrigues' rotation formula in matrix form.
func RotateAxisAngle(axis Vec3, angle float64) Matrix4 {
	ax := axis.Normalize()
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c
	x, y, z := ax.X, ax.Y, ax.Z
	m := Identity()
	m[0][0], m[0][1], m[0][2] = t*x*x+c, t*x*y-s*z, t*x*z+s*y
	m[1][0], m[1][1], m[1][2] = t*x*y+s*z, t*y*y+c, t*y*z-s*x
	m[2][0], m[2][1], m[2][2] = t*x*z-s*y, t*y*z+s*x, t*z*z+c
	return m
}

// Mul returns m * o (apply o first, then m).
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[i][k] * o[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// TransformPoint applies m to an affine point (implicit w=1).
func (m Matrix4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// TransformVector applies only the linear part of m (no translation) —
// correct for directions such as curve tangents or surface normals.
func (m Matrix4) TransformVector(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// TransformHomogeneous applies m to a homogeneous point, preserving weight.
func (m Matrix4) TransformHomogeneous(h HPoint) HPoint {
	return HPoint{
		X: m[0][0]*h.X + m[0][1]*h.Y + m[0][2]*h.Z + m[0][3]*h.W,
		Y: m[1][0]*h.X + m[1][1]*h.Y + m[1][2]*h.Z + m[1][3]*h.W,
		Z: m[2][0]*h.X + m[2][1]*h.Y + m[2][2]*h.Z + m[2][3]*h.W,
		W: h.W,
	}
}

// RigidBetween builds the composite T(origin) * R(axis, angle) * T(-origin)
// transform used throughout rsweep and builder.Rotated.
func RigidBetween(origin, axis Vec3, angle float64) Matrix4 {
	return Translate(origin).Mul(RotateAxisAngle(axis, angle)).Mul(Translate(origin.Mul(-1)))
}
