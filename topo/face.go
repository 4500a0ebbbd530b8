package topo

import "github.com/ajsb85/brepkit/geom"

// Face is a trimmed surface cell: boundaries[0] is the outer wire, any
// remaining wires are holes, per the original model's Face::try_new.
type Face struct {
	id         ID
	boundaries []Wire
	surface    geom.Surface
	sense      bool
}

// NewFace builds a face from boundaries and surface without checking that the
// boundaries are closed — used internally by the sweep engine the way the
// original model's Face::debug_new skips the check for faces it knows are
// valid by construction.
func NewFace(boundaries []Wire, surface geom.Surface) Face {
	return Face{id: NewID(), boundaries: boundaries, surface: surface, sense: true}
}

// TryNewFace builds a face, requiring every boundary wire to be closed.
func TryNewFace(boundaries []Wire, surface geom.Surface) (Face, error) {
	if len(boundaries) == 0 {
		return Face{}, ErrEmptyInput
	}
	for _, w := range boundaries {
		if !w.IsClosed() {
			return Face{}, ErrNotClosedWire
		}
	}
	return NewFace(boundaries, surface), nil
}

func (f Face) ID() ID               { return f.id }
func (f Face) Boundaries() []Wire   { return f.boundaries }
func (f Face) Sense() bool          { return f.sense }
func (f Face) RawSurface() geom.Surface { return f.surface }

// OrientedSurface returns the surface, parameter-swapped when Sense is false,
// matching the convention that Surface.Normal follows Evaluate's (u, v) frame.
func (f Face) OrientedSurface() geom.Surface {
	if f.sense {
		return f.surface
	}
	return f.surface.Inverse()
}

// Inverse returns the face with Sense flipped (same ID, same boundaries,
// same underlying surface).
func (f Face) Inverse() Face {
	f.sense = !f.sense
	return f
}

// Mapped returns a structurally new face (fresh identity throughout) with fp
// and fc applied to the boundary wires and fs applied to the surface.
func (f Face) Mapped(fp func(geom.Point) geom.Point, fc func(geom.Curve) geom.Curve, fs func(geom.Surface) geom.Surface) Face {
	return newMapCache(fp, fc, fs).face(f)
}
