// Package preview renders serpentine trace geometry onto an abstract 2D
// canvas: it fits world-space geometry into a surface, decomposes
// three-point arcs into chords, and strokes each layer in its role color.
package preview

import "github.com/OpenTraceLab/MeanderTrace/pkg/geom"

// Transform maps world coordinates (mm) to screen coordinates (pixels) with
// a uniform scale and a per-axis offset. It has no identity beyond "current
// transform for the current geometry and surface size".
type Transform struct {
	Scale   float64 // Pixels per mm, uniform in X and Y
	OffsetX float64 // Translation in X, pixels
	OffsetY float64 // Translation in Y, pixels
}

// NewTransform creates the no-op transform (scale 1, zero offset).
func NewTransform() Transform {
	return Transform{Scale: 1.0}
}

// Apply converts a world position to a screen position.
func (t Transform) Apply(pos geom.Position) geom.Position {
	return geom.Position{
		X: pos.X*t.Scale + t.OffsetX,
		Y: pos.Y*t.Scale + t.OffsetY,
	}
}
