// Package sweep implements the dimension-dispatched extrusion engine that
// turns a vertex into an edge, an edge into a face, a wire into a shell, a
// face into a solid, or a shell into solids — grounded in truck_modeling's
// sweep.rs Sweep/MultiSweep/ClosedSweep trait implementations.
package sweep

import (
	"github.com/ajsb85/brepkit/connect"
	"github.com/ajsb85/brepkit/geom"
	"github.com/ajsb85/brepkit/topo"
)

// Mapping bundles the three structural maps a sweep threads through its
// swept copy: point, curve, and surface transforms.
type Mapping struct {
	Point   func(geom.Point) geom.Point
	Curve   func(geom.Curve) geom.Curve
	Surface func(geom.Surface) geom.Surface
}

// Vertex sweeps a vertex into an edge bridging it to its mapped image.
func Vertex(v topo.Vertex, m Mapping, cp connect.ConnectPoints) topo.Edge {
	w := v.Mapped(m.Point, m.Curve, m.Surface)
	return connect.ConnectVertices(v, w, cp)
}

// Edge sweeps an edge into a face bridging it to its mapped image.
func Edge(e topo.Edge, m Mapping, cp connect.ConnectPoints, cc connect.ConnectCurves) topo.Face {
	e2 := e.Mapped(m.Point, m.Curve, m.Surface)
	return connect.ConnectEdges(e, e2, cp, cc)
}

// Wire sweeps a wire into a shell bridging it to its mapped image.
func Wire(w topo.Wire, m Mapping, cp connect.ConnectPoints, cc connect.ConnectCurves) topo.Shell {
	w2 := w.Mapped(m.Point, m.Curve, m.Surface)
	return connect.ConnectWires(w, w2, cp, cc)
}

// Face sweeps a face into a solid: the original face (inverted, as the
// floor), the ceiling (the mapped face), and a ring of side faces bridging
// every boundary wire's edges between floor and ceiling.
func Face(f topo.Face, m Mapping, cp connect.ConnectPoints, cc connect.ConnectCurves) topo.Solid {
	ceiling := f.Mapped(m.Point, m.Curve, m.Surface)
	shell := topo.Shell{f.Inverse()}
	shell = append(shell, sideFaces(f, ceiling, cp, cc)...)
	shell = append(shell, ceiling)
	return topo.NewSolid([]topo.Shell{shell})
}

// Shell sweeps a shell into zero or more solids, one per connected
// component; a component is only extrudable if it is open (oriented but not
// closed) — a closed component already bounds a solid on its own and has no
// rim left to bridge to a ceiling.
func Shell(s topo.Shell, m Mapping, cp connect.ConnectPoints, cc connect.ConnectCurves) []ShellResult {
	var results []ShellResult
	for _, component := range s.ConnectedComponents() {
		results = append(results, sweepShellComponent(component, m, cp, cc))
	}
	return results
}

// ShellResult is the outcome of sweeping one connected shell component: a
// solid on success, or an error if the component could not be extruded.
type ShellResult struct {
	Solid topo.Solid
	Err   error
}

func sweepShellComponent(s topo.Shell, m Mapping, cp connect.ConnectPoints, cc connect.ConnectCurves) ShellResult {
	if s.IsClosed() {
		return ShellResult{Err: topo.ErrClosedShellNotExtrudable}
	}
	ceiling := s.Mapped(m.Point, m.Curve, m.Surface)

	bdry := make(topo.Shell, 0, len(s)+len(ceiling))
	for _, f := range s {
		bdry = append(bdry, f.Inverse())
	}

	frontWires := s.ExtractBoundaries()
	backWires := ceiling.ExtractBoundaries()
	var frontEdges, backEdges []topo.Edge
	for _, w := range frontWires {
		frontEdges = append(frontEdges, w...)
	}
	for _, w := range backWires {
		backEdges = append(backEdges, w...)
	}
	bdry = append(bdry, connect.ConnectRawWires(frontEdges, backEdges, cp, cc)...)
	bdry = append(bdry, ceiling...)

	solid, err := topo.TryNewSolid([]topo.Shell{bdry})
	return ShellResult{Solid: solid, Err: err}
}
