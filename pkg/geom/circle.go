package geom

import "math"

// collinearEps is the signed-area threshold below which three points are
// treated as collinear.
const collinearEps = 1e-10

// Circumcircle derives the center and radius of the circle passing through
// three points using the determinant formula. ok is false when the points
// are collinear, the denominator vanishes, or the result is not finite; in
// that case the returned center and radius are zero.
func Circumcircle(p1, p2, p3 Position) (center Position, radius float64, ok bool) {
	// Signed area test for collinearity.
	cross := (p2.X-p1.X)*(p3.Y-p1.Y) - (p2.Y-p1.Y)*(p3.X-p1.X)
	if math.Abs(cross) < collinearEps {
		return Position{}, 0, false
	}

	d := 2 * (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y))
	if math.Abs(d) < collinearEps {
		return Position{}, 0, false
	}

	s1 := p1.X*p1.X + p1.Y*p1.Y
	s2 := p2.X*p2.X + p2.Y*p2.Y
	s3 := p3.X*p3.X + p3.Y*p3.Y

	ux := (s1*(p2.Y-p3.Y) + s2*(p3.Y-p1.Y) + s3*(p1.Y-p2.Y)) / d
	uy := (s1*(p3.X-p2.X) + s2*(p1.X-p3.X) + s3*(p2.X-p1.X)) / d

	r := math.Hypot(p1.X-ux, p1.Y-uy)
	if math.IsNaN(ux) || math.IsNaN(uy) || math.IsInf(ux, 0) || math.IsInf(uy, 0) ||
		math.IsNaN(r) || math.IsInf(r, 0) {
		return Position{}, 0, false
	}

	return Position{X: ux, Y: uy}, r, true
}

// Rotate rotates a position around the origin by the given angle in degrees.
func Rotate(pos Position, degrees float64) Position {
	if degrees == 0 {
		return pos
	}
	rad := degrees * math.Pi / 180.0
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return Position{
		X: pos.X*cos - pos.Y*sin,
		Y: pos.X*sin + pos.Y*cos,
	}
}
