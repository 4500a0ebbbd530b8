package builder

import "github.com/ajsb85/brepkit/geom"

func identityPoint(p geom.Point) geom.Point     { return p }
func identityCurve(c geom.Curve) geom.Curve     { return c }
func identitySurface(s geom.Surface) geom.Surface { return s }

// mapped is the shape every topo cell's Mapped method shares: fp applied to
// points, fc to curves, fs to surfaces, producing a structurally new T.
type mapped[T any] interface {
	Mapped(fp func(geom.Point) geom.Point, fc func(geom.Curve) geom.Curve, fs func(geom.Surface) geom.Surface) T
}

// Clone returns another topology with the same geometry but fresh identity
// throughout, per the original builder::clone.
func Clone[T mapped[T]](elem T) T {
	return elem.Mapped(identityPoint, identityCurve, identitySurface)
}

// Transformed returns elem mapped by the affine transform mat, per the
// original builder::transformed.
func Transformed[T mapped[T]](elem T, mat geom.Matrix4) T {
	return elem.Mapped(
		mat.TransformPoint,
		func(c geom.Curve) geom.Curve { return c.Transform(mat) },
		func(s geom.Surface) geom.Surface { return s.Transform(mat) },
	)
}

// Translated returns elem translated by v, per the original builder::translated.
func Translated[T mapped[T]](elem T, v geom.Vec3) T {
	return Transformed(elem, geom.Translate(v))
}

// Rotated returns elem rotated by angle radians about axis through origin,
// per the original builder::rotated.
func Rotated[T mapped[T]](elem T, origin, axis geom.Vec3, angle float64) T {
	return Transformed(elem, geom.RigidBetween(origin, axis, angle))
}

// Scaled returns elem non-uniformly scaled about origin, per the original
// builder::scaled.
func Scaled[T mapped[T]](elem T, origin geom.Vec3, sx, sy, sz float64) T {
	m := geom.Translate(origin).
		Mul(geom.Scale(sx, sy, sz)).
		Mul(geom.Translate(origin.Mul(-1)))
	return Transformed(elem, m)
}
