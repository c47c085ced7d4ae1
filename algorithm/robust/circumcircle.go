package robust

import (
	"math"

	"github.com/UMDGeoVis/mttri/types"
)

// Circumcircle returns the center and radius of the circle through a, b, c.
// ok is false when the three points are (numerically) collinear and no
// finite circumcircle exists.
func Circumcircle(a, b, c types.Point) (center types.Point, radius float64, ok bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	maxMag := maxAbs(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	eps := maxMag * maxMag * orientFilter
	if eps < orientFilter {
		eps = orientFilter
	}
	if math.Abs(d) <= eps {
		return types.Point{}, 0, false
	}

	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y

	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d

	center = types.Point{X: ux, Y: uy}
	radius = math.Hypot(center.X-a.X, center.Y-a.Y)
	return center, radius, true
}

// EdgeZ linearly interpolates the elevation at point p along segment (a,b).
// p is assumed to lie on the segment; the parameter of p along (a,b) is not
// clamped, so a p beyond either endpoint extrapolates along the line.
func EdgeZ(a, b types.Point3, p types.Point) float64 {
	t := paramOnSegment(a.Point, b.Point, p)
	return a.Z + t*(b.Z-a.Z)
}

// TriangleZ evaluates the plane through a, b, c at point p using barycentric
// weights. ok is false when the triangle is degenerate (collinear vertices).
func TriangleZ(a, b, c types.Point3, p types.Point) (z float64, ok bool) {
	det := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	maxMag := maxAbs(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	eps := maxMag * maxMag * orientFilter
	if eps < orientFilter {
		eps = orientFilter
	}
	if math.Abs(det) <= eps {
		return 0, false
	}

	w1 := ((b.Y-c.Y)*(p.X-c.X) + (c.X-b.X)*(p.Y-c.Y)) / det
	w2 := ((c.Y-a.Y)*(p.X-c.X) + (a.X-c.X)*(p.Y-c.Y)) / det
	w3 := 1 - w1 - w2

	return w1*a.Z + w2*b.Z + w3*c.Z, true
}
