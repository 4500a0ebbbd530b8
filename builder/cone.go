package builder

import (
	"math"

	"github.com/ajsb85/brepkit/geom"
	"github.com/ajsb85/brepkit/topo"
)

// Cone rotationally sweeps wire like RSweepWire, about axis through the
// wire's front vertex, and collapses the degenerate edges produced where an
// endpoint sits on the rotation axis (so its swept image is itself): the
// 4-edge quad an ordinary rsweep would emit there becomes a 3-edge triangle,
// the way builder::cone's apex faces do. The front end is always collapsed,
// since the axis passes through it; the back end is collapsed only when the
// back vertex also lies on the axis, and is otherwise left as RSweepWire
// builds it.
func Cone(wire topo.Wire, axis geom.Vec3, angle float64) topo.Shell {
	if len(wire) == 0 {
		return nil
	}
	closed := math.Abs(angle) >= 2*math.Pi
	origin := wire[0].Front().Point
	back := wire[len(wire)-1].Back().Point
	backOnAxis := back.Sub(origin).Cross(axis).SoSmall()

	if len(wire) == 1 && backOnAxis {
		wire = splitDegenerateEdge(wire[0])
	}

	shell := RSweepWire(wire, origin, axis, angle)
	n := len(wire)
	if n == 0 || len(shell)%n != 0 {
		return shell
	}
	stages := len(shell) / n

	collapseApexRing(shell, n, stages, closed, true)
	if backOnAxis {
		collapseApexRing(shell, n, stages, closed, false)
	}
	return shell
}

// splitDegenerateEdge halves a single-edge wire whose far endpoint sits on
// the axis at its parameter midpoint, the way builder::cone introduces a
// pivot vertex before sweeping so the apex side has two short edges instead
// of one degenerate one. The split is always at the parameter midpoint: the
// input is never rejected and no other split point is tried.
func splitDegenerateEdge(e topo.Edge) topo.Wire {
	curve := e.Curve()
	t0, t1 := curve.ParameterRange()
	t := (t0 + t1) * 0.5
	mid := topo.NewVertex(curve.Evaluate(t))
	head, tail := curve.Cut(t)
	return topo.Wire{
		topo.NewEdge(e.Front(), mid, head),
		topo.NewEdge(mid, e.Back(), tail),
	}
}

// collapseApexRing welds the degenerate bridge edges at one end of the swept
// ring (front end when front is true, back end otherwise) across every
// sweep stage, turning each stage's 4-edge side face at that end into a
// 3-edge face.
func collapseApexRing(shell topo.Shell, n, stages int, closed, front bool) {
	var pos int
	if front {
		pos = 0
	} else {
		pos = n - 1
	}
	edge := shell[pos].Boundaries()[0][0]
	firstFace := shell[pos]
	for i := 0; i < stages; i++ {
		idx := i*n + pos
		face := shell[idx]
		surface := face.OrientedSurface()
		old := face.Boundaries()[0]

		var newWire topo.Wire
		var newEdge topo.Edge
		last := i+1 == stages
		if front {
			newWire = topo.Wire{edge, old[1]}
			if closed && last {
				newEdge = firstFace.Boundaries()[0][0].Inverse()
			} else {
				c := old[2].Curve()
				newEdge = topo.NewEdge(old[2].Front(), newWire[0].Front(), c)
			}
			newWire = append(newWire, newEdge)
		} else {
			if closed && last {
				newEdge = firstFace.Boundaries()[0][0].Inverse()
			} else {
				c := old[2].Curve()
				newEdge = topo.NewEdge(edge.Back(), old[2].Back(), c)
			}
			newWire = topo.Wire{edge, newEdge, old[3]}
		}
		shell[idx] = topo.NewFace([]topo.Wire{newWire}, surface)
		edge = newEdge.Inverse()
	}
}
