// Package connect builds the bridge cells — edges, faces, shells — that join
// vertices, edges and wires to their swept copies, grounded in truck_modeling's
// topo_impls::{connect_vertices, connect_edges, connect_wires,
// connect_raw_wires}.
package connect

import (
	"github.com/ajsb85/brepkit/geom"
	"github.com/ajsb85/brepkit/topo"
)

// ConnectPoints builds the curve joining two points at corresponding
// positions in a front and back cell, e.g. a translated or rotated copy of a
// point.
type ConnectPoints func(front, back geom.Point) geom.Curve

// ConnectCurves builds the surface joining two curves at corresponding
// positions in a front and back cell.
type ConnectCurves func(front, back geom.Curve) geom.Surface

// Bridge memoizes the bridge edge built between a given pair of (front, back)
// vertex IDs, so that the same physical edge — not a duplicate with a
// different identity — is reused by the two faces it separates. Scope one
// Bridge per sweep call.
type Bridge struct {
	edges map[[2]topo.ID]topo.Edge
}

// NewBridge returns an empty bridge-edge memoization table.
func NewBridge() *Bridge {
	return &Bridge{edges: make(map[[2]topo.ID]topo.Edge)}
}

// Vertices returns the bridge edge from front to back, building it with cp
// the first time this (front, back) pair is requested and returning the
// memoized edge (oriented from the caller's point of view) on subsequent
// calls.
func (b *Bridge) Vertices(front, back topo.Vertex, cp ConnectPoints) topo.Edge {
	key := [2]topo.ID{front.ID(), back.ID()}
	if e, ok := b.edges[key]; ok {
		return e
	}
	revKey := [2]topo.ID{back.ID(), front.ID()}
	if e, ok := b.edges[revKey]; ok {
		return e.Inverse()
	}
	e := topo.NewEdge(front, back, cp(front.Point, back.Point))
	b.edges[key] = e
	return e
}

// ConnectVertices builds the bridge edge from vertex v to its swept image w.
func ConnectVertices(v, w topo.Vertex, cp ConnectPoints) topo.Edge {
	return topo.NewEdge(v, w, cp(v.Point, w.Point))
}

// ConnectEdges builds the face swept from edge e to its image edge2,
// bounded by e, the bridge edge at e's back, the inverse of edge2, and the
// bridge edge at e's front.
func ConnectEdges(e, e2 topo.Edge, cp ConnectPoints, cc ConnectCurves) topo.Face {
	backBridge := ConnectVertices(e.Back(), e2.Back(), cp)
	frontBridge := ConnectVertices(e.Front(), e2.Front(), cp)
	wire := topo.Wire{e, backBridge, e2.Inverse(), frontBridge.Inverse()}
	surface := cc(e.Curve(), e2.Curve())
	return topo.NewFace([]topo.Wire{wire}, surface)
}

// ConnectWires builds the shell swept from wire w to its image w2: one face
// per corresponding edge pair, with bridge edges shared between neighboring
// faces so the resulting shell is properly oriented (not merely a pile of
// independently-bridged faces).
func ConnectWires(w, w2 topo.Wire, cp ConnectPoints, cc ConnectCurves) topo.Shell {
	return connectRawWires(w, w2, cp, cc)
}

// ConnectRawWires is the n-ary generalization of ConnectWires: front and back
// may each be a concatenation of several wires' edges (e.g. all of a face's
// boundary wires flattened together), still bridged edge-for-edge in order,
// sharing bridge edges across consecutive edges.
func ConnectRawWires(front, back []topo.Edge, cp ConnectPoints, cc ConnectCurves) topo.Shell {
	return connectRawWires(front, back, cp, cc)
}

func connectRawWires(front, back []topo.Edge, cp ConnectPoints, cc ConnectCurves) topo.Shell {
	n := len(front)
	if n == 0 || len(back) != n {
		return nil
	}
	bridge := NewBridge()
	shell := make(topo.Shell, 0, n)
	for i := 0; i < n; i++ {
		e, e2 := front[i], back[i]
		backBridge := bridge.Vertices(e.Back(), e2.Back(), cp)
		frontBridge := bridge.Vertices(e.Front(), e2.Front(), cp)
		wire := topo.Wire{e, backBridge, e2.Inverse(), frontBridge.Inverse()}
		surface := cc(e.Curve(), e2.Curve())
		shell = append(shell, topo.NewFace([]topo.Wire{wire}, surface))
	}
	return shell
}
