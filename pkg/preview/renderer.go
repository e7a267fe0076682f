package preview

import (
	"math"
	"sort"

	"github.com/OpenTraceLab/MeanderTrace/pkg/geom"
)

const (
	// Stroke width clamp in pixels: strokes stay visible at low zoom and
	// sane at high zoom.
	minStrokePx = 1
	maxStrokePx = 5

	placeholderText = "Preview unavailable"
)

// drawOrder fixes layer stacking: edge cuts at the bottom, back copper, then
// front copper on top. Unrecognized layers draw above these in name order.
var drawOrder = []string{geom.LayerEdgeCuts, geom.LayerBackCopper, geom.LayerFrontCopper}

// Render redraws one full frame onto c: clears the surface, then strokes
// every layer with its role color at a width derived from the layer's trace
// width and the transform scale. Lines are drawn directly; arcs go through
// RasterizeArc after their points are transformed. Rendering is a pure read
// of the given geometry and transform.
//
// An empty or nil layer set renders the "Preview unavailable" placeholder.
func Render(c Canvas, layers geom.LayerSet, tr Transform) {
	c.Clear(BackgroundColor())

	if len(layers) == 0 {
		c.SetStroke(PlaceholderColor(), 1)
		c.DrawText(placeholderText, geom.Position{X: 10, Y: 10})
		return
	}

	for _, name := range layerOrder(layers) {
		layer := layers[name]
		if len(layer.Segments) == 0 {
			continue
		}

		c.SetStroke(GetLayerColor(name), strokeWidth(layer.Width, tr.Scale))

		for _, seg := range layer.Segments {
			switch s := seg.(type) {
			case geom.LineSeg:
				c.DrawLine(tr.Apply(s.Start), tr.Apply(s.End))
			case geom.Arc:
				screen := geom.Arc{
					Start: tr.Apply(s.Start),
					Mid:   tr.Apply(s.Mid),
					End:   tr.Apply(s.End),
				}
				chords, _ := RasterizeArc(screen)
				for _, chord := range chords {
					c.DrawLine(chord.Start, chord.End)
				}
			}
		}
	}
}

// layerOrder returns the layer names present in the set, known roles first
// in stacking order, then any extra layers sorted by name.
func layerOrder(layers geom.LayerSet) []string {
	names := make([]string, 0, len(layers))
	known := make(map[string]bool, len(drawOrder))
	for _, name := range drawOrder {
		known[name] = true
		if _, ok := layers[name]; ok {
			names = append(names, name)
		}
	}

	var extra []string
	for name := range layers {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)

	return append(names, extra...)
}

// strokeWidth converts a trace width in mm to a clamped pixel width.
func strokeWidth(width, scale float64) float64 {
	px := math.Round(width * scale)
	if px < minStrokePx {
		return minStrokePx
	}
	if px > maxStrokePx {
		return maxStrokePx
	}
	return px
}
