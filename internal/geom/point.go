// Package geom provides the small geometry types shared by the input and
// scene packages. Points are float64 so the same type serves both screen
// coordinates (device pixels) and scene coordinates (after the viewport
// transform).
package geom

// Point is a position in screen or scene space.
type Point struct {
	X float64
	Y float64
}

// Delta returns the component-wise difference p - other.
func (p Point) Delta(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Translate returns the point shifted by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Equal returns true if two points are exactly equal.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}
