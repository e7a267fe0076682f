package preview

import (
	"image/color"

	"github.com/OpenTraceLab/MeanderTrace/pkg/geom"
)

// Canvas is the minimal 2D drawing surface the renderer targets. Arcs are
// always decomposed into lines before they reach a Canvas, so stroked lines,
// a background fill, and a small annotation are all it needs to support.
type Canvas interface {
	// Clear fills the whole surface with a background color.
	Clear(bg color.NRGBA)

	// SetStroke sets the color and width (pixels) used by subsequent
	// DrawLine calls.
	SetStroke(col color.NRGBA, width float64)

	// DrawLine strokes a straight line between two screen positions.
	DrawLine(from, to geom.Position)

	// DrawText renders a short annotation with its top-left corner at the
	// given screen position, in the current stroke color.
	DrawText(s string, at geom.Position)
}
