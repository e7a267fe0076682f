package serpentine

import (
	"fmt"

	"github.com/OpenTraceLab/MeanderTrace/pkg/geom"
)

const (
	// EdgeCutsWidth is the stroke width used for the board outline, matching
	// the KiCad default.
	EdgeCutsWidth = 0.05

	// edgeMargin is the clearance between the copper pattern and the board
	// outline.
	edgeMargin = 1.0
)

// Generate produces the serpentine trace geometry for the given parameters:
// a meander on the front copper layer, a mirrored meander on the back copper
// layer, and (unless NoEdge) a rectangular board outline on the edge-cuts
// layer. The whole copper pattern is rotated by p.Angle degrees.
//
// Invalid parameter combinations return an error and no geometry; callers
// that only preview should degrade to their placeholder state.
func Generate(p Parameters) (geom.LayerSet, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	layers := geom.LayerSet{
		geom.LayerFrontCopper: {
			Segments: rotateSegments(meander(p, p.FrontCount, false), p.Angle),
			Width:    p.FrontWidth,
		},
		geom.LayerBackCopper: {
			Segments: rotateSegments(meander(p, p.BackCount, true), p.Angle),
			Width:    p.BackWidth,
		},
	}

	if !p.NoEdge {
		layers[geom.LayerEdgeCuts] = geom.Layer{
			Segments: outline(layers.BoundingBox()),
			Width:    EdgeCutsWidth,
		}
	}

	return layers, nil
}

func validate(p Parameters) error {
	switch {
	case p.Radius <= 0:
		return fmt.Errorf("radius must be positive, got %v", p.Radius)
	case p.Amplitude <= 0:
		return fmt.Errorf("amplitude must be positive, got %v", p.Amplitude)
	case p.Pitch <= 0:
		return fmt.Errorf("pitch must be positive, got %v", p.Pitch)
	case p.Length < 0:
		return fmt.Errorf("lead length must not be negative, got %v", p.Length)
	case p.FrontCount < 1:
		return fmt.Errorf("front run count must be at least 1, got %d", p.FrontCount)
	case p.BackCount < 1:
		return fmt.Errorf("back run count must be at least 1, got %d", p.BackCount)
	case p.FrontWidth <= 0:
		return fmt.Errorf("front trace width must be positive, got %v", p.FrontWidth)
	case p.BackWidth <= 0:
		return fmt.Errorf("back trace width must be positive, got %v", p.BackWidth)
	}
	return nil
}

// meander builds one serpentine: count vertical runs of height p.Amplitude,
// spaced 2*Radius+Pitch apart, joined by semicircular three-point arcs that
// alternate between the top and bottom ends, with straight leads on both
// ends. mirror flips the pattern below the x axis for the back layer.
func meander(p Parameters, count int, mirror bool) []geom.Segment {
	spacing := 2*p.Radius + p.Pitch
	turnRadius := spacing / 2

	segments := make([]geom.Segment, 0, 2*count+2)

	// Lead-in along the x axis.
	if p.Length > 0 {
		segments = append(segments, geom.LineSeg{
			Start: geom.Position{X: -p.Length, Y: 0},
			End:   geom.Position{X: 0, Y: 0},
		})
	}

	for i := 0; i < count; i++ {
		x := float64(i) * spacing

		// Vertical run. Even runs go up, odd runs come back down, so the
		// segment order follows the trace.
		bottom := geom.Position{X: x, Y: 0}
		top := geom.Position{X: x, Y: p.Amplitude}
		if i%2 == 0 {
			segments = append(segments, geom.LineSeg{Start: bottom, End: top})
		} else {
			segments = append(segments, geom.LineSeg{Start: top, End: bottom})
		}

		if i == count-1 {
			break
		}

		// Turn to the next run: a semicircle bulging past the run end, at
		// the top after even runs and at the bottom after odd ones.
		nextX := float64(i+1) * spacing
		midX := x + turnRadius
		if i%2 == 0 {
			segments = append(segments, geom.Arc{
				Start: geom.Position{X: x, Y: p.Amplitude},
				Mid:   geom.Position{X: midX, Y: p.Amplitude + turnRadius},
				End:   geom.Position{X: nextX, Y: p.Amplitude},
			})
		} else {
			segments = append(segments, geom.Arc{
				Start: geom.Position{X: x, Y: 0},
				Mid:   geom.Position{X: midX, Y: -turnRadius},
				End:   geom.Position{X: nextX, Y: 0},
			})
		}
	}

	// Lead-out from wherever the last run ended.
	if p.Length > 0 {
		exitX := float64(count-1) * spacing
		exitY := 0.0
		if (count-1)%2 == 0 {
			exitY = p.Amplitude
		}
		segments = append(segments, geom.LineSeg{
			Start: geom.Position{X: exitX, Y: exitY},
			End:   geom.Position{X: exitX + p.Length, Y: exitY},
		})
	}

	if mirror {
		for i, seg := range segments {
			segments[i] = mirrorSegment(seg)
		}
	}

	return segments
}

func mirrorSegment(seg geom.Segment) geom.Segment {
	flip := func(pos geom.Position) geom.Position {
		return geom.Position{X: pos.X, Y: -pos.Y}
	}
	switch s := seg.(type) {
	case geom.LineSeg:
		return geom.LineSeg{Start: flip(s.Start), End: flip(s.End)}
	case geom.Arc:
		return geom.Arc{Start: flip(s.Start), Mid: flip(s.Mid), End: flip(s.End)}
	}
	return seg
}

func rotateSegments(segments []geom.Segment, degrees float64) []geom.Segment {
	if degrees == 0 {
		return segments
	}
	for i, seg := range segments {
		switch s := seg.(type) {
		case geom.LineSeg:
			segments[i] = geom.LineSeg{
				Start: geom.Rotate(s.Start, degrees),
				End:   geom.Rotate(s.End, degrees),
			}
		case geom.Arc:
			// Rotating the three sample points rotates the arc; the derived
			// center follows.
			segments[i] = geom.Arc{
				Start: geom.Rotate(s.Start, degrees),
				Mid:   geom.Rotate(s.Mid, degrees),
				End:   geom.Rotate(s.End, degrees),
			}
		}
	}
	return segments
}

// outline returns the rectangular board edge around the copper bounding box.
func outline(bbox geom.BoundingBox) []geom.Segment {
	minX := bbox.Min.X - edgeMargin
	minY := bbox.Min.Y - edgeMargin
	maxX := bbox.Max.X + edgeMargin
	maxY := bbox.Max.Y + edgeMargin

	return []geom.Segment{
		geom.LineSeg{Start: geom.Position{X: minX, Y: minY}, End: geom.Position{X: maxX, Y: minY}},
		geom.LineSeg{Start: geom.Position{X: maxX, Y: minY}, End: geom.Position{X: maxX, Y: maxY}},
		geom.LineSeg{Start: geom.Position{X: maxX, Y: maxY}, End: geom.Position{X: minX, Y: maxY}},
		geom.LineSeg{Start: geom.Position{X: minX, Y: maxY}, End: geom.Position{X: minX, Y: minY}},
	}
}
