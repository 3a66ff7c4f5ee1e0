package geo3d

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// ZeroTolerance is the squared-length threshold below which a vector is
// treated as having no direction. The default is the point at which a
// squared magnitude stops rounding to zero at seven decimal places, matching
// the historical round-to-7-digits test. It is a package-level configuration
// point; change it before constructing vectors, not concurrently with use.
var ZeroTolerance = 5e-8

// World axis unit vectors.
var (
	WorldX = Vec3{X: 1}
	WorldY = Vec3{Y: 1}
	WorldZ = Vec3{Z: 1}
)

// Vec3 is an immutable 3D vector: a direction with a magnitude.
//
// The zero value is the zero vector. All methods use value receivers and
// return new values; a Vec3 never changes after construction. Component
// values are not validated: NaN and Inf pass through arithmetic untouched.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a vector from its three components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Tuple returns the canonical coordinate triple of v.
//
// The triple is the single identity key: equality, Hash and the pointset
// coordinate index are all defined over it, so a Vec3, a Point and a bare
// [3]float64 with equal components are interchangeable as keys.
func (v Vec3) Tuple() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Hash returns a 64-bit hash of the canonical triple.
// Values with equal tuples hash equal.
func (v Vec3) Hash() uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(v.X))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(v.Y))
	binary.LittleEndian.PutUint64(buf[16:24], math.Float64bits(v.Z))
	return xxhash.Sum64(buf[:])
}

// Length returns the Euclidean norm of v. Computed on demand, never cached.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.SquaredLength())
}

// SquaredLength returns the squared Euclidean norm of v.
func (v Vec3) SquaredLength() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalized returns the unit vector with the direction of v.
// It fails with ErrZeroDirection when the squared length is below ZeroTolerance.
func (v Vec3) Normalized() (Vec3, error) {
	norm2 := v.SquaredLength()
	if norm2 < ZeroTolerance {
		return Vec3{}, ErrZeroDirection
	}
	inv := 1 / math.Sqrt(norm2)
	return v.Scale(inv), nil
}

// ToLength returns a vector with the direction of v and magnitude n.
// It propagates ErrZeroDirection from normalization.
func (v Vec3) ToLength(n float64) (Vec3, error) {
	u, err := v.Normalized()
	if err != nil {
		return Vec3{}, err
	}
	return u.Scale(n), nil
}

// ToX returns a copy of v with the x component replaced by n.
func (v Vec3) ToX(n float64) Vec3 {
	return Vec3{X: n, Y: v.Y, Z: v.Z}
}

// ToY returns a copy of v with the y component replaced by n.
func (v Vec3) ToY(n float64) Vec3 {
	return Vec3{X: v.X, Y: n, Z: v.Z}
}

// ToZ returns a copy of v with the z component replaced by n.
func (v Vec3) ToZ(n float64) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: n}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// AddVec returns the elementwise sum of v and o.
func (v Vec3) AddVec(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// SubVec returns the elementwise difference of v and o,
// defined as v.AddVec(o.Neg()).
func (v Vec3) SubVec(o Vec3) Vec3 {
	return v.AddVec(o.Neg())
}

// Scale returns v scaled elementwise by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns v with all components negated.
func (v Vec3) Neg() Vec3 {
	return v.Scale(-1)
}

// ExtendLength returns a vector with the direction of v and magnitude
// v.Length()+s. It fails with ErrZeroDirection when v has no direction
// to extend along.
func (v Vec3) ExtendLength(s float64) (Vec3, error) {
	u, err := v.Normalized()
	if err != nil {
		return Vec3{}, err
	}
	return u.Scale(s).AddVec(v), nil
}

// ShrinkLength returns a vector with the direction of v and magnitude
// v.Length()-s, equivalent to ExtendLength(-s).
func (v Vec3) ShrinkLength(s float64) (Vec3, error) {
	return v.ExtendLength(-s)
}

// At returns the component at position i. Negative indices count from the
// end, so At(-1) is the z component. Out-of-range indices panic with the
// runtime's bounds error.
func (v Vec3) At(i int) float64 {
	t := v.Tuple()
	if i < 0 {
		i += len(t)
	}
	return t[i]
}

// Slice returns a fresh copy of the components in the half-open range
// [lo, hi), with Go slice bounds semantics.
func (v Vec3) Slice(lo, hi int) []float64 {
	t := v.Tuple()
	return slices.Clone(t[lo:hi])
}

// AxisValue returns the component named by "x", "y" or "z".
// Any other name fails with ErrUnknownAxis.
func (v Vec3) AxisValue(name string) (float64, error) {
	switch name {
	case "x":
		return v.X, nil
	case "y":
		return v.Y, nil
	case "z":
		return v.Z, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, name)
	}
}

// Components returns an iterator over the three components in x, y, z order.
// Each call yields a fresh, restartable sequence.
func (v Vec3) Components() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !yield(v.X) {
			return
		}
		if !yield(v.Y) {
			return
		}
		yield(v.Z)
	}
}

// String returns v in constructor form.
func (v Vec3) String() string {
	return fmt.Sprintf("Vec3(%v, %v, %v)", v.X, v.Y, v.Z)
}
