// Package geom provides the small planar and spatial value types shared by
// the daily puzzle solvers: integer points in two and three dimensions and
// the four compass directions.
//
// All types are plain value types: they are cheap to copy, comparable, and
// safe to use as map keys. Nothing in this package allocates beyond the
// values themselves.
package geom

// Point is an integer point on the plane.
type Point struct {
	X, Y int
}

// Add returns the pointwise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the pointwise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Touching reports whether p and q are within one unit of each other on
// both axes (including diagonals and p == q).
func (p Point) Touching(q Point) bool {
	return abs(p.X-q.X) <= 1 && abs(p.Y-q.Y) <= 1
}

// Point3 is an integer point in three-dimensional space.
type Point3 struct {
	X, Y, Z int
}

// Add returns the pointwise sum of p and q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Neighbors returns the six face-adjacent points of p.
func (p Point3) Neighbors() [6]Point3 {
	return [6]Point3{
		{p.X - 1, p.Y, p.Z},
		{p.X + 1, p.Y, p.Z},
		{p.X, p.Y - 1, p.Z},
		{p.X, p.Y + 1, p.Z},
		{p.X, p.Y, p.Z - 1},
		{p.X, p.Y, p.Z + 1},
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
