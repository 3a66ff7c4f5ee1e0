package geo3d

import (
	"fmt"
	"iter"
)

// Point is a position in 3D space. It shares Vec3's layout and canonical
// key: a Point and a Vec3 with equal components have the same Tuple and
// Hash. The difference is purely semantic: subtracting two points yields a
// Vec3 displacement, and adding a Vec3 to a point yields a translated point.
type Point Vec3

// NewPoint creates a point from its three coordinates.
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Vec returns p reinterpreted as a displacement from the origin.
func (p Point) Vec() Vec3 {
	return Vec3(p)
}

// Tuple returns the canonical coordinate triple of p.
func (p Point) Tuple() [3]float64 {
	return Vec3(p).Tuple()
}

// Hash returns a 64-bit hash of the canonical triple.
func (p Point) Hash() uint64 {
	return Vec3(p).Hash()
}

// Add returns p translated by the displacement v.
func (p Point) Add(v Vec3) Point {
	return Point(Vec3(p).AddVec(v))
}

// Sub returns the displacement from o to p, so that o.Add(p.Sub(o)) == p.
func (p Point) Sub(o Point) Vec3 {
	return Vec3(p).SubVec(Vec3(o))
}

// DistanceTo returns the Euclidean distance between p and o.
func (p Point) DistanceTo(o Point) float64 {
	return o.Sub(p).Length()
}

// VectorTo returns the displacement vector from p to o.
func (p Point) VectorTo(o Point) Vec3 {
	return o.Sub(p)
}

// At returns the coordinate at position i; see Vec3.At.
func (p Point) At(i int) float64 {
	return Vec3(p).At(i)
}

// Slice returns a fresh copy of the coordinates in [lo, hi); see Vec3.Slice.
func (p Point) Slice(lo, hi int) []float64 {
	return Vec3(p).Slice(lo, hi)
}

// AxisValue returns the coordinate named by "x", "y" or "z"; see Vec3.AxisValue.
func (p Point) AxisValue(name string) (float64, error) {
	return Vec3(p).AxisValue(name)
}

// Components returns a restartable iterator over the coordinates in
// x, y, z order.
func (p Point) Components() iter.Seq[float64] {
	return Vec3(p).Components()
}

// String returns p in constructor form.
func (p Point) String() string {
	return fmt.Sprintf("Point(%v, %v, %v)", p.X, p.Y, p.Z)
}
