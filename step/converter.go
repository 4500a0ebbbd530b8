package step

import (
	"math"

	"github.com/ajsb85/brepkit/geom"
	"github.com/ajsb85/brepkit/mesh"
	"github.com/ajsb85/brepkit/topo"
)

// pointTolerance governs CARTESIAN_POINT deduplication, matching the
// teacher's hardcoded 1e-6 cache tolerance.
const pointTolerance = 1e-6

// surfaceSampleGrid is the resolution used to approximate a surface kind
// with no direct STEP equivalent (anything but Plane/BSplineSurface/
// NURBSSurface) as a B_SPLINE_SURFACE_WITH_KNOTS.
const surfaceSampleGrid = 8

type pointCacheEntry struct {
	p  geom.Point
	id int
}

type triEdgeKey struct{ a, b geom.Vec3 }

func newTriEdgeKey(a, b geom.Vec3) triEdgeKey {
	if lessVec3(b, a) {
		a, b = b, a
	}
	return triEdgeKey{a, b}
}

func lessVec3(a, b geom.Vec3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// Converter accumulates STEP entities for one export. It has two entry
// points: ConvertSolid walks real topology and geometry (the primary path),
// ConvertMesh falls back to a triangle soup for callers that only have a
// tessellation. Both share the point/direction/edge caches below, adapted
// from ajsb85-sdfx's MeshConverter to key on this kernel's own geom.Point and
// topo.ID rather than sdfx's v3.Vec.
type Converter struct {
	entities  []Entity
	idCounter int

	pointCache     []pointCacheEntry
	directionCache map[geom.Vec3]int
	edgeCache      map[topo.ID]int
	triEdgeCache   map[triEdgeKey]int
}

// NewConverter returns a ready-to-use Converter.
func NewConverter() *Converter {
	c := &Converter{}
	c.reset()
	return c
}

func (c *Converter) reset() {
	c.entities = c.entities[:0]
	c.idCounter = 1
	c.pointCache = nil
	c.directionCache = make(map[geom.Vec3]int)
	c.edgeCache = make(map[topo.ID]int)
	c.triEdgeCache = make(map[triEdgeKey]int)
}

func (c *Converter) add(e Entity) int {
	e.SetID(c.idCounter)
	c.entities = append(c.entities, e)
	c.idCounter++
	return e.ID()
}

func (c *Converter) point(p geom.Point) int {
	for _, cached := range c.pointCache {
		if cached.p.Equals(p, pointTolerance) {
			return cached.id
		}
	}
	id := c.add(&cartesianPoint{coordinates: []float64{p.X, p.Y, p.Z}})
	c.pointCache = append(c.pointCache, pointCacheEntry{p: p, id: id})
	return id
}

func (c *Converter) direction(d geom.Vec3) int {
	d = d.Normalize()
	if id, ok := c.directionCache[d]; ok {
		return id
	}
	id := c.add(&direction{directionRatios: []float64{d.X, d.Y, d.Z}})
	c.directionCache[d] = id
	return id
}

func (c *Converter) axis(origin, zAxis, xAxis geom.Vec3) int {
	return c.add(&axis2Placement3D{
		location:     c.point(origin),
		axis:         c.direction(zAxis),
		refDirection: c.direction(xAxis),
	})
}

func (c *Converter) vertex(p geom.Point) int {
	return c.add(&vertexPoint{vertexGeometry: c.point(p)})
}

func (c *Converter) lineEntity(a, b geom.Vec3) int {
	dir := b.Sub(a)
	length := dir.Length()
	if length == 0 {
		length = 1
	}
	vecID := c.add(&vector{orientation: c.direction(dir), magnitude: length})
	return c.add(&stepLine{pnt: c.point(a), dir: vecID})
}

// curveGeometry emits (or looks up) the EDGE_GEOMETRY entity for cv, ignoring
// any rational weight a NURBSCurve carries (STEP's rational counterpart is a
// complex entity combining B_SPLINE_CURVE_WITH_KNOTS and
// RATIONAL_B_SPLINE_CURVE, which this writer does not emit; see
// bSplineCurveWithKnots's doc comment). front and back are the edge's end
// points in cv's direction.
func (c *Converter) curveGeometry(cv geom.Curve, front, back geom.Point) int {
	switch g := cv.(type) {
	case geom.Line:
		return c.lineEntity(g.A, g.B)
	case geom.BSplineCurve:
		return c.bsplineCurveEntity(g.Degree, g.Knots, g.ControlPoints, false)
	case geom.NURBSCurve:
		pts := make([]geom.Vec3, len(g.ControlPoints))
		for i, h := range g.ControlPoints {
			pts[i] = h.ToPoint()
		}
		return c.bsplineCurveEntity(g.Degree, g.Knots, pts, false)
	default:
		// An opaque curve kind (geom.IntersectionCurve) has no evaluable
		// control polygon; approximate it as the chord between the edge's
		// end points rather than failing the whole export.
		return c.lineEntity(front, back)
	}
}

func (c *Converter) bsplineCurveEntity(degree int, knots geom.KnotVec, ctrl []geom.Vec3, closed bool) int {
	pts := make([]int, len(ctrl))
	for i, p := range ctrl {
		pts[i] = c.point(p)
	}
	mult, uniq := multiplicities(knots)
	return c.add(&bSplineCurveWithKnots{
		degree:             degree,
		controlPointsList:  pts,
		curveForm:          "UNSPECIFIED",
		closedCurve:        closed,
		knotMultiplicities: mult,
		knots:              uniq,
		knotSpec:           "UNSPECIFIED",
	})
}

// multiplicities collapses a clamped knot vector into STEP's
// (multiplicities, distinct-values) pair.
func multiplicities(kv geom.KnotVec) ([]int, []float64) {
	var mult []int
	var uniq []float64
	for _, k := range kv {
		if len(uniq) > 0 && math.Abs(uniq[len(uniq)-1]-k) < 1e-12 {
			mult[len(mult)-1]++
			continue
		}
		uniq = append(uniq, k)
		mult = append(mult, 1)
	}
	return mult, uniq
}

func (c *Converter) bsplineSurfaceEntity(uDegree, vDegree int, uKnots, vKnots geom.KnotVec, ctrl [][]geom.Vec3) int {
	rows := make([][]int, len(ctrl))
	for i, row := range ctrl {
		ids := make([]int, len(row))
		for j, p := range row {
			ids[j] = c.point(p)
		}
		rows[i] = ids
	}
	uMult, uUniq := multiplicities(uKnots)
	vMult, vUniq := multiplicities(vKnots)
	return c.add(&bSplineSurfaceWithKnots{
		uDegree:           uDegree,
		vDegree:           vDegree,
		controlPointsList: rows,
		surfaceForm:       "UNSPECIFIED",
		uMultiplicities:   uMult,
		vMultiplicities:   vMult,
		uKnots:            uUniq,
		vKnots:            vUniq,
		knotSpec:          "UNSPECIFIED",
	})
}

// sampledSurfaceEntity approximates a surface kind with no direct STEP
// counterpart (RevolutedSurface, or a parameter-swapped wrapper of one) by
// evaluating it on a coarse grid and building a degree-1 B-spline surface
// through the samples, per SPEC_FULL.md §4.8's fallback.
func (c *Converter) sampledSurfaceEntity(s geom.Surface) int {
	u0, u1, v0, v1 := 0.0, 1.0, 0.0, 1.0
	if rs, ok := s.(geom.RevolutedSurface); ok {
		u0, u1 = rs.Curve.ParameterRange()
	}
	n := surfaceSampleGrid
	ctrl := make([][]geom.Vec3, n)
	for i := 0; i < n; i++ {
		u := u0 + (u1-u0)*float64(i)/float64(n-1)
		row := make([]geom.Vec3, n)
		for j := 0; j < n; j++ {
			v := v0 + (v1-v0)*float64(j)/float64(n-1)
			row[j] = s.Evaluate(u, v)
		}
		ctrl[i] = row
	}
	uKnots := geom.UniformClampedKnotVec(1, n)
	vKnots := geom.UniformClampedKnotVec(1, n)
	return c.bsplineSurfaceEntity(1, 1, uKnots, vKnots, ctrl)
}

func (c *Converter) surfaceGeometry(s geom.Surface) int {
	switch g := s.(type) {
	case geom.Plane:
		zAxis := g.U.Cross(g.V).Normalize()
		return c.add(&plane{position: c.axis(g.Origin, zAxis, g.U.Normalize())})
	case geom.BSplineSurface:
		return c.bsplineSurfaceEntity(g.UDegree, g.VDegree, g.UKnots, g.VKnots, g.ControlPoints)
	case geom.NURBSSurface:
		pts := make([][]geom.Vec3, len(g.ControlPoints))
		for i, row := range g.ControlPoints {
			r := make([]geom.Vec3, len(row))
			for j, h := range row {
				r[j] = h.ToPoint()
			}
			pts[i] = r
		}
		return c.bsplineSurfaceEntity(g.UDegree, g.VDegree, g.UKnots, g.VKnots, pts)
	default:
		return c.sampledSurfaceEntity(s)
	}
}

// canonicalEnds returns e's endpoints in its underlying (sense-independent)
// direction, so the cached EDGE_CURVE is built once regardless of which
// sense first requests it.
func canonicalEnds(e topo.Edge) (front, back topo.Vertex) {
	if e.Sense() {
		return e.Front(), e.Back()
	}
	return e.Back(), e.Front()
}

// edgeCurveEntity returns the cached EDGE_CURVE for e's underlying edge
// identity. Because the sweep/connect engine shares one topo.ID for a bridge
// edge used by two adjacent faces (see package connect), this cache
// naturally dedups those shared edges across faces without needing a
// geometric vertex-pair key the way a triangle soup would.
func (c *Converter) edgeCurveEntity(e topo.Edge) int {
	if id, ok := c.edgeCache[e.ID()]; ok {
		return id
	}
	front, back := canonicalEnds(e)
	geomID := c.curveGeometry(e.RawCurve(), front.Point, back.Point)
	id := c.add(&edgeCurve{
		edgeStart:    c.vertex(front.Point),
		edgeEnd:      c.vertex(back.Point),
		edgeGeometry: geomID,
		sameSense:    true,
	})
	c.edgeCache[e.ID()] = id
	return id
}

func (c *Converter) orientedEdgeEntity(e topo.Edge) int {
	return c.add(&orientedEdge{edgeElement: c.edgeCurveEntity(e), orientation: e.Sense()})
}

func (c *Converter) edgeLoopEntity(w topo.Wire) int {
	ids := make([]int, len(w))
	for i, e := range w {
		ids[i] = c.orientedEdgeEntity(e)
	}
	return c.add(&edgeLoop{edgeList: ids})
}

func (c *Converter) faceEntity(f topo.Face) int {
	boundaries := f.Boundaries()
	bounds := make([]int, len(boundaries))
	for i, w := range boundaries {
		loopID := c.edgeLoopEntity(w)
		if i == 0 {
			bounds[i] = c.add(&faceOuterBound{bound: loopID, orientation: true})
		} else {
			bounds[i] = c.add(&faceBound{bound: loopID, orientation: true})
		}
	}
	return c.add(&advancedFace{
		bounds: bounds,
		// OrientedSurface already folds f's sense into the surface's own
		// (u, v) frame (swapping it when sense is false), so the face
		// always agrees with the geometry it references here.
		faceGeometry: c.surfaceGeometry(f.OrientedSurface()),
		sameSense:    true,
	})
}

func (c *Converter) shellEntity(s topo.Shell) int {
	faceIDs := make([]int, len(s))
	for i, f := range s {
		faceIDs[i] = c.faceEntity(f)
	}
	if s.IsClosed() {
		return c.add(&closedShell{faces: faceIDs})
	}
	return c.add(&openShell{faces: faceIDs})
}

// documentContext emits the application/unit/product entity chain both
// conversion paths share, returning the geometric representation context and
// product-definition-shape ids later entities reference.
func (c *Converter) documentContext(name, description string) (geomContextID, pdsID int) {
	appContextID := c.add(&applicationContext{application: "brepkit STEP writer"})

	lengthUnitID := c.add(&lengthUnit{})
	angleUnitID := c.add(&planeAngleUnit{})
	solidAngleUnitID := c.add(&solidAngleUnit{})

	uncertaintyID := c.add(&uncertaintyMeasureWithUnit{
		value:       1e-6,
		unit:        lengthUnitID,
		name:        "DISTANCE_ACCURACY_VALUE",
		description: "Maximum model space distance between geometric entities",
	})

	geomContextID = c.add(&geometricRepresentationContext{
		contextType:              "3D",
		coordinateSpaceDimension: 3,
		uncertainty:              []int{uncertaintyID},
		units:                    []int{lengthUnitID, angleUnitID, solidAngleUnitID},
	})

	productContextID := c.add(&productContext{frameOfReference: appContextID, disciplineType: "mechanical"})
	productID := c.add(&product{name: name, description: description, frameOfReference: []int{productContextID}})
	pdfID := c.add(&productDefinitionFormation{ofProduct: productID})
	pdcID := c.add(&productDefinitionContext{frameOfReference: appContextID, lifeCycleStage: "design"})
	pdID := c.add(&productDefinition{formation: pdfID, frameOfReference: pdcID})
	pdsID = c.add(&productDefinitionShape{definition: pdID})
	return
}

func (c *Converter) worldPlacement() int {
	return c.axis(geom.Origin, geom.NewVec3(0, 0, 1), geom.NewVec3(1, 0, 0))
}

// ConvertSolid is the primary, B-rep-native conversion path: it walks
// solid's boundary shells, faces, and wires and emits real ADVANCED_FACE/
// EDGE_LOOP/EDGE_CURVE geometry rather than a tessellation.
func (c *Converter) ConvertSolid(solid topo.Solid, name string) []Entity {
	c.reset()
	geomContextID, pdsID := c.documentContext(name, "Exported brepkit solid")

	boundaries := solid.Boundaries()
	shellIDs := make([]int, len(boundaries))
	for i, shell := range boundaries {
		shellIDs[i] = c.shellEntity(shell)
	}
	// Only the first (outer) boundary shell becomes the MANIFOLD_SOLID_BREP;
	// any further void shells are written as shell entities but no
	// BREP_WITH_VOIDS references them.
	brepID := c.add(&manifoldSolidBrep{outer: shellIDs[0]})

	advBrepID := c.add(&advancedBrepShapeRepresentation{
		items:          []int{brepID, c.worldPlacement()},
		contextOfItems: geomContextID,
	})
	c.add(&shapeDefinitionRepresentation{definition: pdsID, usedRepresentation: advBrepID})
	return c.entities
}

func triangleDegenerate(tri mesh.Triangle, tol float64) bool {
	return tri.B.Sub(tri.A).Cross(tri.C.Sub(tri.A)).Length() < tol
}

func (c *Converter) triangleEdge(a, b geom.Vec3) int {
	key := newTriEdgeKey(a, b)
	if id, ok := c.triEdgeCache[key]; ok {
		return id
	}
	id := c.add(&edgeCurve{
		edgeStart:    c.vertex(a),
		edgeEnd:      c.vertex(b),
		edgeGeometry: c.lineEntity(a, b),
		sameSense:    true,
	})
	c.triEdgeCache[key] = id
	return id
}

func (c *Converter) triangleFaceEntity(tri mesh.Triangle) int {
	oe := func(a, b geom.Vec3) int {
		return c.add(&orientedEdge{edgeElement: c.triangleEdge(a, b), orientation: true})
	}
	loopID := c.add(&edgeLoop{edgeList: []int{oe(tri.A, tri.B), oe(tri.B, tri.C), oe(tri.C, tri.A)}})
	boundID := c.add(&faceOuterBound{bound: loopID, orientation: true})

	xAxis := tri.B.Sub(tri.A).Normalize()
	planeID := c.add(&plane{position: c.axis(tri.A, tri.Normal, xAxis)})
	return c.add(&advancedFace{bounds: []int{boundID}, faceGeometry: planeID, sameSense: true})
}

// ConvertMesh is the fallback conversion path, kept close to the teacher's
// original triangle-based converter: every triangle becomes its own planar
// ADVANCED_FACE. Used when a face's surface has no direct STEP equivalent
// this writer supports natively — in practice this writer approximates those
// via sampledSurfaceEntity instead, so ConvertMesh mainly serves callers that
// only ever had a tessellation (no topo.Solid) to begin with.
func (c *Converter) ConvertMesh(triangles []mesh.Triangle, name string) []Entity {
	c.reset()
	geomContextID, pdsID := c.documentContext(name, "Exported brepkit tessellation")

	faceIDs := make([]int, 0, len(triangles))
	for _, tri := range triangles {
		if triangleDegenerate(tri, 1e-9) {
			continue
		}
		faceIDs = append(faceIDs, c.triangleFaceEntity(tri))
	}

	shellID := c.add(&closedShell{faces: faceIDs})
	brepID := c.add(&manifoldSolidBrep{outer: shellID})
	advBrepID := c.add(&advancedBrepShapeRepresentation{
		items:          []int{brepID, c.worldPlacement()},
		contextOfItems: geomContextID,
	})
	c.add(&shapeDefinitionRepresentation{definition: pdsID, usedRepresentation: advBrepID})
	return c.entities
}
