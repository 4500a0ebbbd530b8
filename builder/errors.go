package builder

import "errors"

// ErrWireNotInOnePlane is returned by TryAttachPlane when the given wires'
// control points do not all lie within tolerance of a common plane.
var ErrWireNotInOnePlane = errors.New("builder: wire is not in one plane")

// ErrUnimplemented is the value tsweep's curve connector panics with when
// the front curve is a kind it builds no connecting surface for (anything
// but Line, BSplineCurve or NURBSCurve, e.g. an IntersectionCurve). No
// function returns it as an error.
var ErrUnimplemented = errors.New("builder: unimplemented construction for this curve/surface pairing")
