// Package step renders a Solid's boundary representation as an ISO-10303-21
// (STEP) AP214 exchange file, grounded in ajsb85-sdfx's step package.
package step

import (
	"fmt"
	"strings"
)

// Entity is a single STEP record: something that can be assigned an #id and
// rendered as one (possibly multi-line, for complex entities) data section
// line.
type Entity interface {
	ID() int
	SetID(int)
	String() string
}

// baseEntity carries the #id every concrete entity embeds.
type baseEntity struct{ id int }

func (e *baseEntity) ID() int      { return e.id }
func (e *baseEntity) SetID(id int) { e.id = id }

// ---- application / product hierarchy --------------------------------------

type applicationContext struct {
	baseEntity
	application string
}

func (e *applicationContext) String() string {
	return fmt.Sprintf("#%d=APPLICATION_CONTEXT('%s');", e.id, e.application)
}

type product struct {
	baseEntity
	name, description string
	frameOfReference   []int
}

func (e *product) String() string {
	return fmt.Sprintf("#%d=PRODUCT('','%s','%s',(%s));", e.id, e.name, e.description, formatRefs(e.frameOfReference))
}

type productContext struct {
	baseEntity
	name             string
	frameOfReference int
	disciplineType   string
}

func (e *productContext) String() string {
	return fmt.Sprintf("#%d=PRODUCT_CONTEXT('%s',#%d,'%s');", e.id, e.name, e.frameOfReference, e.disciplineType)
}

type productDefinitionFormation struct {
	baseEntity
	description string
	ofProduct   int
}

func (e *productDefinitionFormation) String() string {
	return fmt.Sprintf("#%d=PRODUCT_DEFINITION_FORMATION('','%s',#%d);", e.id, e.description, e.ofProduct)
}

type productDefinitionContext struct {
	baseEntity
	name             string
	frameOfReference int
	lifeCycleStage   string
}

func (e *productDefinitionContext) String() string {
	return fmt.Sprintf("#%d=PRODUCT_DEFINITION_CONTEXT('%s',#%d,'%s');", e.id, e.name, e.frameOfReference, e.lifeCycleStage)
}

type productDefinition struct {
	baseEntity
	description      string
	formation        int
	frameOfReference int
}

func (e *productDefinition) String() string {
	return fmt.Sprintf("#%d=PRODUCT_DEFINITION('','%s',#%d,#%d);", e.id, e.description, e.formation, e.frameOfReference)
}

type productDefinitionShape struct {
	baseEntity
	name, description string
	definition         int
}

func (e *productDefinitionShape) String() string {
	return fmt.Sprintf("#%d=PRODUCT_DEFINITION_SHAPE('%s','%s',#%d);", e.id, e.name, e.description, e.definition)
}

type shapeDefinitionRepresentation struct {
	baseEntity
	definition         int
	usedRepresentation int
}

func (e *shapeDefinitionRepresentation) String() string {
	return fmt.Sprintf("#%d=SHAPE_DEFINITION_REPRESENTATION(#%d,#%d);", e.id, e.definition, e.usedRepresentation)
}

type advancedBrepShapeRepresentation struct {
	baseEntity
	name           string
	items          []int
	contextOfItems int
}

func (e *advancedBrepShapeRepresentation) String() string {
	return fmt.Sprintf("#%d=ADVANCED_BREP_SHAPE_REPRESENTATION('%s',(%s),#%d);", e.id, e.name, formatRefs(e.items), e.contextOfItems)
}

// ---- B-rep topology entities ------------------------------------------------

type manifoldSolidBrep struct {
	baseEntity
	name  string
	outer int
}

func (e *manifoldSolidBrep) String() string {
	return fmt.Sprintf("#%d=MANIFOLD_SOLID_BREP('%s',#%d);", e.id, e.name, e.outer)
}

type closedShell struct {
	baseEntity
	name  string
	faces []int
}

func (e *closedShell) String() string {
	return fmt.Sprintf("#%d=CLOSED_SHELL('%s',(%s));", e.id, e.name, formatRefs(e.faces))
}

type openShell struct {
	baseEntity
	name  string
	faces []int
}

func (e *openShell) String() string {
	return fmt.Sprintf("#%d=OPEN_SHELL('%s',(%s));", e.id, e.name, formatRefs(e.faces))
}

type advancedFace struct {
	baseEntity
	name         string
	bounds       []int
	faceGeometry int
	sameSense    bool
}

func (e *advancedFace) String() string {
	return fmt.Sprintf("#%d=ADVANCED_FACE('%s',(%s),#%d,%s);", e.id, e.name, formatRefs(e.bounds), e.faceGeometry, formatBool(e.sameSense))
}

type faceOuterBound struct {
	baseEntity
	name        string
	bound       int
	orientation bool
}

func (e *faceOuterBound) String() string {
	return fmt.Sprintf("#%d=FACE_OUTER_BOUND('%s',#%d,%s);", e.id, e.name, e.bound, formatBool(e.orientation))
}

type faceBound struct {
	baseEntity
	name        string
	bound       int
	orientation bool
}

func (e *faceBound) String() string {
	return fmt.Sprintf("#%d=FACE_BOUND('%s',#%d,%s);", e.id, e.name, e.bound, formatBool(e.orientation))
}

type edgeLoop struct {
	baseEntity
	name     string
	edgeList []int
}

func (e *edgeLoop) String() string {
	return fmt.Sprintf("#%d=EDGE_LOOP('%s',(%s));", e.id, e.name, formatRefs(e.edgeList))
}

type orientedEdge struct {
	baseEntity
	name        string
	edgeElement int
	orientation bool
}

func (e *orientedEdge) String() string {
	return fmt.Sprintf("#%d=ORIENTED_EDGE('%s',*,*,#%d,%s);", e.id, e.name, e.edgeElement, formatBool(e.orientation))
}

type edgeCurve struct {
	baseEntity
	name                   string
	edgeStart, edgeEnd     int
	edgeGeometry           int
	sameSense              bool
}

func (e *edgeCurve) String() string {
	return fmt.Sprintf("#%d=EDGE_CURVE('%s',#%d,#%d,#%d,%s);", e.id, e.name, e.edgeStart, e.edgeEnd, e.edgeGeometry, formatBool(e.sameSense))
}

type vertexPoint struct {
	baseEntity
	name           string
	vertexGeometry int
}

func (e *vertexPoint) String() string {
	return fmt.Sprintf("#%d=VERTEX_POINT('%s',#%d);", e.id, e.name, e.vertexGeometry)
}

// ---- geometry entities ------------------------------------------------------

type cartesianPoint struct {
	baseEntity
	name        string
	coordinates []float64
}

func (e *cartesianPoint) String() string {
	return fmt.Sprintf("#%d=CARTESIAN_POINT('%s',(%s));", e.id, e.name, formatFloats(e.coordinates))
}

type direction struct {
	baseEntity
	name            string
	directionRatios []float64
}

func (e *direction) String() string {
	return fmt.Sprintf("#%d=DIRECTION('%s',(%s));", e.id, e.name, formatFloats(e.directionRatios))
}

type vector struct {
	baseEntity
	name        string
	orientation int
	magnitude   float64
}

func (e *vector) String() string {
	return fmt.Sprintf("#%d=VECTOR('%s',#%d,%.6f);", e.id, e.name, e.orientation, e.magnitude)
}

type axis2Placement3D struct {
	baseEntity
	name                       string
	location, axis, refDirection int
}

func (e *axis2Placement3D) String() string {
	return fmt.Sprintf("#%d=AXIS2_PLACEMENT_3D('%s',#%d,#%d,#%d);", e.id, e.name, e.location, e.axis, e.refDirection)
}

type stepLine struct {
	baseEntity
	name     string
	pnt, dir int
}

func (e *stepLine) String() string {
	return fmt.Sprintf("#%d=LINE('%s',#%d,#%d);", e.id, e.name, e.pnt, e.dir)
}

type circle struct {
	baseEntity
	name     string
	position int
	radius   float64
}

func (e *circle) String() string {
	return fmt.Sprintf("#%d=CIRCLE('%s',#%d,%.6f);", e.id, e.name, e.position, e.radius)
}

type plane struct {
	baseEntity
	name     string
	position int
}

func (e *plane) String() string {
	return fmt.Sprintf("#%d=PLANE('%s',#%d);", e.id, e.name, e.position)
}

// bSplineCurveWithKnots represents a B_SPLINE_CURVE_WITH_KNOTS entity. A
// NURBSCurve converted through this loses its weights (see
// Converter.curveGeometry) — STEP's rational counterpart is a complex entity
// this writer does not emit, matching SPEC_FULL.md's approximation call.
type bSplineCurveWithKnots struct {
	baseEntity
	name               string
	degree             int
	controlPointsList  []int
	curveForm          string
	closedCurve        bool
	selfIntersect      bool
	knotMultiplicities []int
	knots              []float64
	knotSpec           string
}

func (e *bSplineCurveWithKnots) String() string {
	return fmt.Sprintf("#%d=B_SPLINE_CURVE_WITH_KNOTS('%s',%d,(%s),%s,%s,%s,(%s),(%s),%s);",
		e.id, e.name, e.degree, formatRefs(e.controlPointsList), e.curveForm,
		formatBool(e.closedCurve), formatBool(e.selfIntersect),
		formatInts(e.knotMultiplicities), formatFloats(e.knots), e.knotSpec)
}

// bSplineSurfaceWithKnots represents a B_SPLINE_SURFACE_WITH_KNOTS entity —
// the approximated form every non-planar geom.Surface this writer exports
// takes, per SPEC_FULL.md §4.8: control points are sampled or carried
// straight from the kernel's own BSplineSurface/NURBSSurface control nets.
type bSplineSurfaceWithKnots struct {
	baseEntity
	name                         string
	uDegree, vDegree             int
	controlPointsList            [][]int
	surfaceForm                  string
	uClosed, vClosed, selfIntersect bool
	uMultiplicities, vMultiplicities []int
	uKnots, vKnots               []float64
	knotSpec                     string
}

func (e *bSplineSurfaceWithKnots) String() string {
	rows := make([]string, len(e.controlPointsList))
	for i, row := range e.controlPointsList {
		rows[i] = "(" + formatRefs(row) + ")"
	}
	return fmt.Sprintf("#%d=B_SPLINE_SURFACE_WITH_KNOTS('%s',%d,%d,(%s),%s,%s,%s,%s,(%s),(%s),(%s),(%s),%s);",
		e.id, e.name, e.uDegree, e.vDegree, strings.Join(rows, ","), e.surfaceForm,
		formatBool(e.uClosed), formatBool(e.vClosed), formatBool(e.selfIntersect),
		formatInts(e.uMultiplicities), formatInts(e.vMultiplicities),
		formatFloats(e.uKnots), formatFloats(e.vKnots), e.knotSpec)
}

// ---- representation context / units (complex entities) ---------------------

type geometricRepresentationContext struct {
	baseEntity
	contextIdentifier, contextType string
	coordinateSpaceDimension       int
	uncertainty                    []int
	units                          []int
}

func (e *geometricRepresentationContext) String() string {
	parts := []string{
		fmt.Sprintf("GEOMETRIC_REPRESENTATION_CONTEXT(%d)", e.coordinateSpaceDimension),
		fmt.Sprintf("GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT((%s))", formatRefs(e.uncertainty)),
		fmt.Sprintf("GLOBAL_UNIT_ASSIGNED_CONTEXT((%s))", formatRefs(e.units)),
		fmt.Sprintf("REPRESENTATION_CONTEXT('%s','%s')", e.contextIdentifier, e.contextType),
	}
	return fmt.Sprintf("#%d=(%s);", e.id, strings.Join(parts, "\n"))
}

type uncertaintyMeasureWithUnit struct {
	baseEntity
	value              float64
	unit               int
	name, description  string
}

func (e *uncertaintyMeasureWithUnit) String() string {
	return fmt.Sprintf("#%d=UNCERTAINTY_MEASURE_WITH_UNIT(LENGTH_MEASURE(%.6E),#%d,'%s','%s');", e.id, e.value, e.unit, e.name, e.description)
}

type lengthUnit struct{ baseEntity }

func (e *lengthUnit) String() string {
	return fmt.Sprintf("#%d=(LENGTH_UNIT()\nNAMED_UNIT(*)\nSI_UNIT(.MILLI.,.METRE.));", e.id)
}

type planeAngleUnit struct{ baseEntity }

func (e *planeAngleUnit) String() string {
	return fmt.Sprintf("#%d=(NAMED_UNIT(*)\nPLANE_ANGLE_UNIT()\nSI_UNIT($,.RADIAN.));", e.id)
}

type solidAngleUnit struct{ baseEntity }

func (e *solidAngleUnit) String() string {
	return fmt.Sprintf("#%d=(NAMED_UNIT(*)\nSI_UNIT($,.STERADIAN.)\nSOLID_ANGLE_UNIT());", e.id)
}

// ---- formatting helpers ------------------------------------------------------

func formatRefs(refs []int) string {
	strs := make([]string, len(refs))
	for i, ref := range refs {
		strs[i] = fmt.Sprintf("#%d", ref)
	}
	return strings.Join(strs, ",")
}

func formatFloats(vals []float64) string {
	strs := make([]string, len(vals))
	for i, val := range vals {
		strs[i] = fmt.Sprintf("%.6f", val)
	}
	return strings.Join(strs, ",")
}

func formatInts(vals []int) string {
	strs := make([]string, len(vals))
	for i, val := range vals {
		strs[i] = fmt.Sprintf("%d", val)
	}
	return strings.Join(strs, ",")
}

func formatBool(b bool) string {
	if b {
		return ".T."
	}
	return ".F."
}
