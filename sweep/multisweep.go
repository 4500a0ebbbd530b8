package sweep

import (
	"github.com/ajsb85/brepkit/connect"
	"github.com/ajsb85/brepkit/topo"
)

// MultiSweepVertex chains `stages` single-step sweeps of v, each applying the
// same relative Mapping, into one Wire — the partial-angle rsweep of a
// vertex into a polygonal arc of `stages` segments.
func MultiSweepVertex(v topo.Vertex, m Mapping, cp connect.ConnectPoints, stages int) topo.Wire {
	wire := make(topo.Wire, 0, stages)
	cur := v
	for i := 0; i < stages; i++ {
		next := cur.Mapped(m.Point, m.Curve, m.Surface)
		wire = append(wire, connect.ConnectVertices(cur, next, cp))
		cur = next
	}
	return wire
}

// MultiSweepEdge chains `stages` single-step sweeps of e into one Shell: each
// stage's ConnectEdges bridge produces one ribbon face, accumulated the way
// MultiSweepWire accumulates ConnectWires' partial shells.
func MultiSweepEdge(e topo.Edge, m Mapping, cp connect.ConnectPoints, cc connect.ConnectCurves, stages int) topo.Shell {
	shell := make(topo.Shell, 0, stages)
	cur := e
	for i := 0; i < stages; i++ {
		next := cur.Mapped(m.Point, m.Curve, m.Surface)
		shell = append(shell, connect.ConnectEdges(cur, next, cp, cc))
		cur = next
	}
	return shell
}

// MultiSweepWire chains `stages` single-step sweeps of w into one Shell.
func MultiSweepWire(w topo.Wire, m Mapping, cp connect.ConnectPoints, cc connect.ConnectCurves, stages int) topo.Shell {
	var shell topo.Shell
	cur := w
	for i := 0; i < stages; i++ {
		next := cur.Mapped(m.Point, m.Curve, m.Surface)
		shell = append(shell, connect.ConnectWires(cur, next, cp, cc)...)
		cur = next
	}
	return shell
}

// MultiSweepFace chains `stages` single-step sweeps of f into one Solid: the
// original face inverted as the floor, a final mapped copy as the ceiling,
// and the side shell bridging every intermediate stage.
func MultiSweepFace(f topo.Face, m Mapping, cp connect.ConnectPoints, cc connect.ConnectCurves, stages int) topo.Solid {
	shell := topo.Shell{f.Inverse()}
	cur := f
	for i := 0; i < stages; i++ {
		next := cur.Mapped(m.Point, m.Curve, m.Surface)
		shell = append(shell, sideFaces(cur, next, cp, cc)...)
		cur = next
	}
	shell = append(shell, cur)
	return topo.NewSolid([]topo.Shell{shell})
}

// ClosedSweepEdge is MultiSweepEdge's whole-turn variant, closing the shell's
// last stage back onto e itself.
func ClosedSweepEdge(e topo.Edge, m Mapping, cp connect.ConnectPoints, cc connect.ConnectCurves, stages int) topo.Shell {
	shell := make(topo.Shell, 0, stages)
	cur := e
	for i := 0; i < stages; i++ {
		next := e
		if i < stages-1 {
			next = cur.Mapped(m.Point, m.Curve, m.Surface)
		}
		shell = append(shell, connect.ConnectEdges(cur, next, cp, cc))
		cur = next
	}
	return shell
}

// ClosedSweepVertex is MultiSweepVertex's whole-turn variant: the final stage
// bridges back to v itself (same identity), closing the wire into a loop
// instead of leaving it open — used for a full-turn rsweep of a vertex into a
// circle.
func ClosedSweepVertex(v topo.Vertex, m Mapping, cp connect.ConnectPoints, stages int) topo.Wire {
	wire := make(topo.Wire, 0, stages)
	cur := v
	for i := 0; i < stages; i++ {
		next := v
		if i < stages-1 {
			next = cur.Mapped(m.Point, m.Curve, m.Surface)
		}
		wire = append(wire, connect.ConnectVertices(cur, next, cp))
		cur = next
	}
	return wire
}

// ClosedSweepWire is MultiSweepWire's whole-turn variant, closing the shell's
// last stage back onto w itself.
func ClosedSweepWire(w topo.Wire, m Mapping, cp connect.ConnectPoints, cc connect.ConnectCurves, stages int) topo.Shell {
	var shell topo.Shell
	cur := w
	for i := 0; i < stages; i++ {
		next := w
		if i < stages-1 {
			next = cur.Mapped(m.Point, m.Curve, m.Surface)
		}
		shell = append(shell, connect.ConnectWires(cur, next, cp, cc)...)
		cur = next
	}
	return shell
}

// ClosedSweepFace is MultiSweepFace's whole-turn variant: the last stage
// bridges back onto f itself, so neither a floor nor a ceiling face is
// included — the side faces alone close up into the result.
func ClosedSweepFace(f topo.Face, m Mapping, cp connect.ConnectPoints, cc connect.ConnectCurves, stages int) (topo.Solid, error) {
	var shell topo.Shell
	cur := f
	for i := 0; i < stages; i++ {
		next := f
		if i < stages-1 {
			next = cur.Mapped(m.Point, m.Curve, m.Surface)
		}
		shell = append(shell, sideFaces(cur, next, cp, cc)...)
		cur = next
	}
	return topo.TryNewSolid([]topo.Shell{shell})
}

// MultiSweepShell chains `stages` single-step sweeps of s into zero or more
// Solids, one per connected component — the multi-stage generalization of
// Shell's single-step sweep, the way MultiSweepFace generalizes Face's.
func MultiSweepShell(s topo.Shell, m Mapping, cp connect.ConnectPoints, cc connect.ConnectCurves, stages int) []ShellResult {
	var results []ShellResult
	for _, component := range s.ConnectedComponents() {
		results = append(results, multiSweepShellComponent(component, m, cp, cc, stages, false))
	}
	return results
}

// ClosedSweepShell is MultiSweepShell's whole-turn variant: the last stage
// bridges back onto each component itself, so neither the inverted floor nor
// a ceiling is included, the way ClosedSweepFace closes without them.
func ClosedSweepShell(s topo.Shell, m Mapping, cp connect.ConnectPoints, cc connect.ConnectCurves, stages int) []ShellResult {
	var results []ShellResult
	for _, component := range s.ConnectedComponents() {
		results = append(results, multiSweepShellComponent(component, m, cp, cc, stages, true))
	}
	return results
}

func multiSweepShellComponent(s topo.Shell, m Mapping, cp connect.ConnectPoints, cc connect.ConnectCurves, stages int, closed bool) ShellResult {
	bdry := make(topo.Shell, 0, len(s)*(stages+1))
	if !closed {
		for _, f := range s {
			bdry = append(bdry, f.Inverse())
		}
	}

	cur := s
	for i := 0; i < stages; i++ {
		next := s
		if !closed || i < stages-1 {
			next = cur.Mapped(m.Point, m.Curve, m.Surface)
		}

		frontWires := cur.ExtractBoundaries()
		backWires := next.ExtractBoundaries()
		var frontEdges, backEdges []topo.Edge
		for _, w := range frontWires {
			frontEdges = append(frontEdges, w...)
		}
		for _, w := range backWires {
			backEdges = append(backEdges, w...)
		}
		bdry = append(bdry, connect.ConnectRawWires(frontEdges, backEdges, cp, cc)...)
		cur = next
	}
	if !closed {
		bdry = append(bdry, cur...)
	}

	solid, err := topo.TryNewSolid([]topo.Shell{bdry})
	return ShellResult{Solid: solid, Err: err}
}

func sideFaces(front, back topo.Face, cp connect.ConnectPoints, cc connect.ConnectCurves) topo.Shell {
	var frontEdges, backEdges []topo.Edge
	for _, w := range front.Boundaries() {
		frontEdges = append(frontEdges, w...)
	}
	for _, w := range back.Boundaries() {
		backEdges = append(backEdges, w...)
	}
	return connect.ConnectRawWires(frontEdges, backEdges, cp, cc)
}
