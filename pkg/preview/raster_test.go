package preview

import (
	"math"
	"testing"

	"github.com/OpenTraceLab/MeanderTrace/pkg/geom"
)

// circlePoint returns the point at the given angle (degrees) on a circle.
func circlePoint(cx, cy, r, degrees float64) geom.Position {
	rad := degrees * math.Pi / 180.0
	return geom.Position{X: cx + r*math.Cos(rad), Y: cy + r*math.Sin(rad)}
}

func TestRasterizeArcChordCount(t *testing.T) {
	tests := []struct {
		name string
		arc  geom.Arc
	}{
		{
			name: "upper half of unit circle",
			arc: geom.Arc{
				Start: geom.Position{X: 1, Y: 0},
				Mid:   geom.Position{X: 0, Y: 1},
				End:   geom.Position{X: -1, Y: 0},
			},
		},
		{
			name: "clockwise sweep",
			arc: geom.Arc{
				Start: geom.Position{X: -1, Y: 0},
				Mid:   geom.Position{X: 0, Y: 1},
				End:   geom.Position{X: 1, Y: 0},
			},
		},
		{
			name: "sweep across the zero angle",
			arc: geom.Arc{
				Start: circlePoint(5, 5, 2, 350),
				Mid:   circlePoint(5, 5, 2, 10),
				End:   circlePoint(5, 5, 2, 30),
			},
		},
		{
			name: "large off-center arc",
			arc: geom.Arc{
				Start: circlePoint(120, -40, 75, 200),
				Mid:   circlePoint(120, -40, 75, 290),
				End:   circlePoint(120, -40, 75, 20),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs, result := RasterizeArc(tt.arc)

			if result != ArcOK {
				t.Fatalf("RasterizeArc() result = %v, want ArcOK", result)
			}
			if len(segs) != ArcChords {
				t.Fatalf("chord count = %d, want %d", len(segs), ArcChords)
			}
			if segs[0].Start != tt.arc.Start {
				t.Errorf("first chord starts at %v, want %v", segs[0].Start, tt.arc.Start)
			}

			last := segs[len(segs)-1].End
			if math.Abs(last.X-tt.arc.End.X) > 1e-6 || math.Abs(last.Y-tt.arc.End.Y) > 1e-6 {
				t.Errorf("last chord ends at %v, want %v", last, tt.arc.End)
			}

			// Every chord endpoint must lie on the circumcircle of the
			// three input points.
			center, radius, ok := geom.Circumcircle(tt.arc.Start, tt.arc.Mid, tt.arc.End)
			if !ok {
				t.Fatal("test arc unexpectedly degenerate")
			}
			for i, seg := range segs {
				d := math.Hypot(seg.End.X-center.X, seg.End.Y-center.Y)
				if math.Abs(d-radius) > 1e-6 {
					t.Errorf("chord %d endpoint off circle: distance %v, radius %v", i, d, radius)
				}
			}

			// Chain continuity.
			for i := 1; i < len(segs); i++ {
				if segs[i].Start != segs[i-1].End {
					t.Errorf("chord %d does not continue chord %d", i, i-1)
				}
			}
		})
	}
}

func TestRasterizeArcPassesThroughMidSide(t *testing.T) {
	// Same endpoints, mid point above vs below: the emitted polyline must
	// stay on the mid point's side.
	top := geom.Arc{
		Start: geom.Position{X: 1, Y: 0},
		Mid:   geom.Position{X: 0, Y: 1},
		End:   geom.Position{X: -1, Y: 0},
	}
	bottom := geom.Arc{
		Start: geom.Position{X: 1, Y: 0},
		Mid:   geom.Position{X: 0, Y: -1},
		End:   geom.Position{X: -1, Y: 0},
	}

	topSegs, _ := RasterizeArc(top)
	for i, seg := range topSegs[:len(topSegs)-1] {
		if seg.End.Y < 0 {
			t.Errorf("top arc chord %d dips below the chord line: %v", i, seg.End)
		}
	}

	bottomSegs, _ := RasterizeArc(bottom)
	for i, seg := range bottomSegs[:len(bottomSegs)-1] {
		if seg.End.Y > 0 {
			t.Errorf("bottom arc chord %d rises above the chord line: %v", i, seg.End)
		}
	}
}

func TestRasterizeArcDegenerateFallback(t *testing.T) {
	tests := []struct {
		name string
		arc  geom.Arc
	}{
		{
			name: "collinear diagonal",
			arc: geom.Arc{
				Start: geom.Position{X: 0, Y: 0},
				Mid:   geom.Position{X: 1, Y: 1},
				End:   geom.Position{X: 2, Y: 2},
			},
		},
		{
			name: "all points coincident",
			arc: geom.Arc{
				Start: geom.Position{X: 3, Y: 3},
				Mid:   geom.Position{X: 3, Y: 3},
				End:   geom.Position{X: 3, Y: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs, result := RasterizeArc(tt.arc)

			if result != ArcDegenerate {
				t.Fatalf("result = %v, want ArcDegenerate", result)
			}
			if len(segs) != 2 {
				t.Fatalf("fallback chord count = %d, want 2", len(segs))
			}
			if segs[0].Start != tt.arc.Start || segs[0].End != tt.arc.Mid {
				t.Errorf("first fallback chord = %+v, want start->mid", segs[0])
			}
			if segs[1].Start != tt.arc.Mid || segs[1].End != tt.arc.End {
				t.Errorf("second fallback chord = %+v, want mid->end", segs[1])
			}
			for _, seg := range segs {
				for _, pt := range seg.Points() {
					if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
						t.Errorf("fallback produced NaN: %+v", seg)
					}
				}
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{2 * math.Pi, 0},
		{5 * math.Pi, math.Pi},
		{-3 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		if got := normalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("normalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		start, mid, end float64
		want            bool
	}{
		{0, 1, 2, true},
		{0, 3, 2, false},
		{5, 6, 1, true},   // wraparound, mid before zero
		{5, 0.5, 1, true}, // wraparound, mid after zero
		{5, 3, 1, false},  // wraparound, mid outside
	}
	for _, tt := range tests {
		if got := angleBetween(tt.start, tt.mid, tt.end); got != tt.want {
			t.Errorf("angleBetween(%v, %v, %v) = %v, want %v", tt.start, tt.mid, tt.end, got, tt.want)
		}
	}
}
