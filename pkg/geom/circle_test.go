package geom

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestCircumcircle(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Position
		wantCenter Position
		wantRadius float64
		wantOK     bool
	}{
		{
			name:       "unit circle CCW through top",
			p1:         Position{X: 1, Y: 0},
			p2:         Position{X: 0, Y: 1},
			p3:         Position{X: -1, Y: 0},
			wantCenter: Position{X: 0, Y: 0},
			wantRadius: 1,
			wantOK:     true,
		},
		{
			name:       "offset circle radius 5",
			p1:         Position{X: 8, Y: 2},
			p2:         Position{X: 3, Y: 7},
			p3:         Position{X: -2, Y: 2},
			wantCenter: Position{X: 3, Y: 2},
			wantRadius: 5,
			wantOK:     true,
		},
		{
			name:   "collinear diagonal",
			p1:     Position{X: 0, Y: 0},
			p2:     Position{X: 1, Y: 1},
			p3:     Position{X: 2, Y: 2},
			wantOK: false,
		},
		{
			name:   "collinear horizontal",
			p1:     Position{X: -3, Y: 1},
			p2:     Position{X: 0, Y: 1},
			p3:     Position{X: 7, Y: 1},
			wantOK: false,
		},
		{
			name:   "coincident points",
			p1:     Position{X: 2, Y: 2},
			p2:     Position{X: 2, Y: 2},
			p3:     Position{X: 2, Y: 2},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			center, radius, ok := Circumcircle(tt.p1, tt.p2, tt.p3)

			if ok != tt.wantOK {
				t.Fatalf("Circumcircle() ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.wantOK {
				if center != (Position{}) || radius != 0 {
					t.Errorf("degenerate result not zeroed: center=%v radius=%v", center, radius)
				}
				return
			}

			if math.Abs(center.X-tt.wantCenter.X) > tol || math.Abs(center.Y-tt.wantCenter.Y) > tol {
				t.Errorf("center = (%v, %v), want (%v, %v)", center.X, center.Y, tt.wantCenter.X, tt.wantCenter.Y)
			}
			if math.Abs(radius-tt.wantRadius) > tol {
				t.Errorf("radius = %v, want %v", radius, tt.wantRadius)
			}
		})
	}
}

func TestCircumcircleAllPointsOnCircle(t *testing.T) {
	p1 := Position{X: 4.2, Y: -1.3}
	p2 := Position{X: -0.7, Y: 2.9}
	p3 := Position{X: 1.1, Y: -3.8}

	center, radius, ok := Circumcircle(p1, p2, p3)
	if !ok {
		t.Fatal("Circumcircle() returned degenerate for non-collinear points")
	}

	for i, pt := range []Position{p1, p2, p3} {
		d := math.Hypot(pt.X-center.X, pt.Y-center.Y)
		if math.Abs(d-radius) > tol {
			t.Errorf("point %d distance to center = %v, want radius %v", i, d, radius)
		}
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name    string
		pos     Position
		degrees float64
		want    Position
	}{
		{"zero angle is identity", Position{X: 3, Y: 4}, 0, Position{X: 3, Y: 4}},
		{"quarter turn", Position{X: 1, Y: 0}, 90, Position{X: 0, Y: 1}},
		{"half turn", Position{X: 2, Y: -1}, 180, Position{X: -2, Y: 1}},
		{"negative quarter turn", Position{X: 0, Y: 1}, -90, Position{X: 1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotate(tt.pos, tt.degrees)
			if math.Abs(got.X-tt.want.X) > tol || math.Abs(got.Y-tt.want.Y) > tol {
				t.Errorf("Rotate(%v, %v) = (%v, %v), want (%v, %v)",
					tt.pos, tt.degrees, got.X, got.Y, tt.want.X, tt.want.Y)
			}
		})
	}
}
