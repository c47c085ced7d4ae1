package types

// Point3 extends Point with an elevation sample, as carried by terrain
// vertices and pending-point records. The xy plane is used for every
// planar predicate (orientation, in-circle, point location); Z only
// matters for error computation and rendering.
type Point3 struct {
	Point
	Z float64
}

// NewPoint3 builds a Point3 from explicit coordinates.
func NewPoint3(x, y, z float64) Point3 {
	return Point3{Point: Point{X: x, Y: y}, Z: z}
}

// XY returns the planar projection, discarding elevation.
func (p Point3) XY() Point {
	return p.Point
}
