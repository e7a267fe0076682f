package preview

import (
	"math"

	"github.com/OpenTraceLab/MeanderTrace/pkg/geom"
)

const (
	// Margin is the padding in pixels kept between the pattern and the
	// surface edge on each side.
	Margin = 20.0

	// MaxScale caps the zoom so tiny patterns do not degenerate into a
	// handful of huge strokes.
	MaxScale = 50.0
)

// Fit computes the transform that scales the layer geometry uniformly into a
// width x height surface and centers it, leaving Margin pixels on every
// side. The second return value is false when the layers contain no
// geometry at all; callers should render the placeholder instead.
//
// A pattern with zero width or height keeps scale 1 rather than dividing by
// zero; the offsets still center whatever extent it has. A surface smaller
// than the margin band also keeps scale 1, so the scale stays positive no
// matter how far the surface shrinks.
func Fit(layers geom.LayerSet, width, height int) (Transform, bool) {
	bbox := layers.BoundingBox()
	if bbox.IsEmpty() {
		return NewTransform(), false
	}

	availWidth := float64(width) - 2*Margin
	availHeight := float64(height) - 2*Margin
	patternWidth := bbox.Width()
	patternHeight := bbox.Height()

	scale := 1.0
	if patternWidth > 0 && patternHeight > 0 && availWidth > 0 && availHeight > 0 {
		scale = math.Min(availWidth/patternWidth, availHeight/patternHeight)
		if scale > MaxScale {
			scale = MaxScale
		}
	}

	return Transform{
		Scale:   scale,
		OffsetX: (float64(width)-patternWidth*scale)/2 - bbox.Min.X*scale,
		OffsetY: (float64(height)-patternHeight*scale)/2 - bbox.Min.Y*scale,
	}, true
}
