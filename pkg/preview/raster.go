package preview

import (
	"math"

	"github.com/OpenTraceLab/MeanderTrace/pkg/geom"
)

// ArcChords is the fixed number of chords an arc is approximated with. It
// trades fidelity for simplicity and is not derived from arc length.
const ArcChords = 20

// ArcResult classifies the outcome of rasterizing a three-point arc.
type ArcResult int

const (
	// ArcOK means the arc was expanded into ArcChords chords along its
	// circumcircle.
	ArcOK ArcResult = iota

	// ArcDegenerate means the three points were collinear or the math
	// produced non-finite values, and the two-chord straight fallback was
	// used instead.
	ArcDegenerate
)

// RasterizeArc expands a three-point arc (already in screen space) into
// straight chords. The sweep direction is chosen so the emitted polyline
// passes through the side the arc's own mid point lies on: if the mid angle
// sits on the counter-clockwise arc from start to end the sweep is CCW,
// otherwise CW. The first chord starts at arc.Start and the last ends at
// arc.End.
//
// Degenerate input never fails: it degrades to the chords
// start->mid and mid->end.
func RasterizeArc(arc geom.Arc) ([]geom.LineSeg, ArcResult) {
	center, radius, ok := geom.Circumcircle(arc.Start, arc.Mid, arc.End)
	if !ok || radius <= 0 {
		return arcFallback(arc), ArcDegenerate
	}

	startAngle := normalizeAngle(math.Atan2(arc.Start.Y-center.Y, arc.Start.X-center.X))
	midAngle := normalizeAngle(math.Atan2(arc.Mid.Y-center.Y, arc.Mid.X-center.X))
	endAngle := normalizeAngle(math.Atan2(arc.End.Y-center.Y, arc.End.X-center.X))

	var step float64
	if angleBetween(startAngle, midAngle, endAngle) {
		// Counter-clockwise through the mid point.
		if endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
		step = (endAngle - startAngle) / ArcChords
	} else {
		// Clockwise.
		if startAngle < endAngle {
			startAngle += 2 * math.Pi
		}
		step = -(startAngle - endAngle) / ArcChords
	}

	segments := make([]geom.LineSeg, 0, ArcChords)
	prev := arc.Start
	for i := 1; i <= ArcChords; i++ {
		angle := startAngle + float64(i)*step
		curr := geom.Position{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
		if math.IsNaN(curr.X) || math.IsNaN(curr.Y) {
			return arcFallback(arc), ArcDegenerate
		}
		segments = append(segments, geom.LineSeg{Start: prev, End: curr})
		prev = curr
	}

	return segments, ArcOK
}

// arcFallback approximates a degenerate arc with two straight chords
// through the mid point.
func arcFallback(arc geom.Arc) []geom.LineSeg {
	return []geom.LineSeg{
		{Start: arc.Start, End: arc.Mid},
		{Start: arc.Mid, End: arc.End},
	}
}

// normalizeAngle maps an angle into [0, 2*pi).
func normalizeAngle(angle float64) float64 {
	for angle < 0 {
		angle += 2 * math.Pi
	}
	for angle >= 2*math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// angleBetween reports whether mid lies on the counter-clockwise arc from
// start to end. All angles must already be normalized into [0, 2*pi); the
// wraparound case is the second branch.
func angleBetween(start, mid, end float64) bool {
	if start <= end {
		return start <= mid && mid <= end
	}
	return mid >= start || mid <= end
}
