package topo

import "github.com/ajsb85/brepkit/geom"

// Solid is a region of space bounded by one or more closed shells: the first
// is the outer boundary, any remaining are voids, per the original model's
// Solid::try_new.
type Solid struct {
	boundaries []Shell
}

// NewSolid builds a solid from boundaries without checking closure, used by
// the sweep engine where closure is guaranteed by construction.
func NewSolid(boundaries []Shell) Solid {
	return Solid{boundaries: boundaries}
}

// TryNewSolid builds a solid, requiring every boundary shell to be closed and
// oriented.
func TryNewSolid(boundaries []Shell) (Solid, error) {
	if len(boundaries) == 0 {
		return Solid{}, ErrEmptyInput
	}
	for _, sh := range boundaries {
		switch sh.Condition() {
		case ShellClosed:
		case ShellOriented:
			return Solid{}, ErrClosedShellNotExtrudable
		default:
			return Solid{}, ErrNotOrientableShell
		}
	}
	return NewSolid(boundaries), nil
}

func (s Solid) Boundaries() []Shell { return s.boundaries }

// Mapped returns a structurally new solid with fp, fc, fs applied throughout.
func (s Solid) Mapped(fp func(geom.Point) geom.Point, fc func(geom.Curve) geom.Curve, fs func(geom.Surface) geom.Surface) Solid {
	return newMapCache(fp, fc, fs).solid(s)
}
