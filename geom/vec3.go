// Package geom implements the geometric primitives the modeling kernel
// builds on: affine points/vectors, rigid transforms, and the curve/surface
// variant sets consumed by the topology and sweep layers.
package geom

import "math"

// DefaultTolerance is used by near-equality checks when a caller does not
// supply its own tolerance. The kernel never claims robustness beyond
// whatever tolerance is in effect; package builder's TryAttachPlane uses it
// directly, and SoSmall compares against it.
const DefaultTolerance = 1e-7

// Vec3 is a 3D affine point or free vector, depending on context. The
// modeling layer does not distinguish the two types the way a stricter
// affine-geometry library would; control points and curve evaluations are
// Vec3, as are translation/rotation vectors.
type Vec3 struct {
	X, Y, Z float64
}

// Point is an alias for Vec3: cells carry points, not vectors, but the
// underlying representation is identical.
type Point = Vec3

var Origin = Vec3{}

func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Lerp returns the affine combination (1-t)*v + t*o.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Mul(1 - t).Add(o.Mul(t))
}

// Equals reports whether v and o are within tol of each other in Euclidean
// distance — the kernel's one and only notion of "near enough," per the
// original spec's externally supplied tolerance.
func (v Vec3) Equals(o Vec3, tol float64) bool {
	return v.Sub(o).Length() <= tol
}

// SoSmall reports whether v is negligible relative to DefaultTolerance —
// used the way `so_small()` is used in the source builder to detect a point
// lying on a sweep axis.
func (v Vec3) SoSmall() bool { return v.Length() <= DefaultTolerance }

// HPoint is a point lifted to homogeneous (rational) form: (X, Y, Z, W).
// W == 0 denotes a direction (a point at infinity). The circle-arc
// constructors keep every span below π, so their weights stay positive and
// they never produce one.
type HPoint struct {
	X, Y, Z, W float64
}

// ToHomogeneous lifts an affine point to homogeneous form with weight w.
func ToHomogeneous(p Vec3, w float64) HPoint {
	return HPoint{X: p.X * w, Y: p.Y * w, Z: p.Z * w, W: w}
}

// ToPoint projects a homogeneous point back to affine space. Dividing by a
// zero weight is a caller error (only valid as an intermediate control
// point, never as an evaluated curve point) and returns the raw numerator.
func (h HPoint) ToPoint() Vec3 {
	if h.W == 0 {
		return Vec3{X: h.X, Y: h.Y, Z: h.Z}
	}
	return Vec3{X: h.X / h.W, Y: h.Y / h.W, Z: h.Z / h.W}
}

func (h HPoint) Add(o HPoint) HPoint {
	return HPoint{X: h.X + o.X, Y: h.Y + o.Y, Z: h.Z + o.Z, W: h.W + o.W}
}

func (h HPoint) Mul(s float64) HPoint {
	return HPoint{X: h.X * s, Y: h.Y * s, Z: h.Z * s, W: h.W * s}
}

// RotateAbout rotates v about the given (unit) axis through origin by angle
// radians, using Rodrigues' rotation formula.
func RotateAbout(v, origin, axis Vec3, angle float64) Vec3 {
	rel := v.Sub(origin)
	cos, sin := math.Cos(angle), math.Sin(angle)
	rotated := rel.Mul(cos).
		Add(axis.Cross(rel).Mul(sin)).
		Add(axis.Mul(axis.Dot(rel) * (1 - cos)))
	return rotated.Add(origin)
}
