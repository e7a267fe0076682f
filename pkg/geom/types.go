// Package geom provides the 2D geometry primitives shared by the serpentine
// generator and the preview renderer.
package geom

// Position represents a 2D coordinate in the board coordinate system
// NOTE: coordinates are in millimeters throughout; conversion to screen
// pixels is the preview transform's job.
type Position struct {
	X float64 // X coordinate in mm
	Y float64 // Y coordinate in mm
}

// Layer names used by the generator and the preview color mapping.
// These follow the KiCad naming convention.
const (
	LayerFrontCopper = "F.Cu"
	LayerBackCopper  = "B.Cu"
	LayerEdgeCuts    = "Edge.Cuts"
)

// Segment is a geometry primitive placed on a layer. Exactly two
// implementations exist: LineSeg and Arc. The unexported method keeps the
// set closed so a type switch over both cases is exhaustive.
type Segment interface {
	// Points returns every control point of the primitive. For arcs this
	// includes the mid point, which can extend a bounding box beyond the
	// endpoints.
	Points() []Position

	segment()
}

// LineSeg represents a straight trace segment
type LineSeg struct {
	Start Position // Start position
	End   Position // End position
}

func (LineSeg) segment() {}

// Points returns the two endpoints.
func (s LineSeg) Points() []Position {
	return []Position{s.Start, s.End}
}

// Arc represents an arc trace segment
// Arcs are defined by three points: start, mid (on arc), and end. The center
// and radius are not stored; they are derived on demand via Circumcircle so
// the representation tolerates imprecise generator output.
type Arc struct {
	Start Position // Start position
	Mid   Position // Mid position (point on arc)
	End   Position // End position
}

func (Arc) segment() {}

// Points returns start, mid, and end.
func (a Arc) Points() []Position {
	return []Position{a.Start, a.Mid, a.End}
}

// Layer holds the ordered segments of one board layer and the nominal trace
// width used when stroking them.
type Layer struct {
	Segments []Segment // Ordered trace segments
	Width    float64   // Nominal trace width in mm
}

// LayerSet maps layer names to their geometry. Insertion order is
// irrelevant; lookup by name drives color and role assignment.
type LayerSet map[string]Layer

// BoundingBox calculates the bounding box over every control point of every
// segment in the set. Arcs contribute all three points.
func (ls LayerSet) BoundingBox() BoundingBox {
	bbox := NewBoundingBox()
	for _, layer := range ls {
		for _, seg := range layer.Segments {
			for _, pt := range seg.Points() {
				bbox.Expand(pt)
			}
		}
	}
	return bbox
}

// BoundingBox represents a rectangular boundary
type BoundingBox struct {
	Min Position // Minimum (top-left) corner
	Max Position // Maximum (bottom-right) corner
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Position{X: 1e9, Y: 1e9},   // Start with very large values
		Max: Position{X: -1e9, Y: -1e9}, // Start with very small values
	}
}

// IsEmpty checks if the bounding box is empty
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand expands the bounding box to include a position
func (bb *BoundingBox) Expand(pos Position) {
	if pos.X < bb.Min.X {
		bb.Min.X = pos.X
	}
	if pos.Y < bb.Min.Y {
		bb.Min.Y = pos.Y
	}
	if pos.X > bb.Max.X {
		bb.Max.X = pos.X
	}
	if pos.Y > bb.Max.Y {
		bb.Max.Y = pos.Y
	}
}

// ExpandBox expands to include another bounding box
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Width returns the width of the bounding box
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box
func (bb BoundingBox) Center() Position {
	return Position{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}
