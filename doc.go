// Package geo3d provides 3D vector and point value types for geometric code.
//
// The two core types are Vec3 (a displacement: direction and magnitude) and
// Point (an absolute position). Both are immutable value types: every
// operation returns a new value and never mutates its receiver.
//
// # Quick Start
//
//	v := geo3d.NewVec3(0, 1, 2)
//	w, _ := v.ExtendLength(1)   // same direction, length grown by 1
//	d := v.Dot(geo3d.WorldY)
//
//	p1 := geo3d.NewPoint(-2.2, -0.5, 0.0034)
//	p2 := geo3d.NewPoint(3.45, 0.01, -2004.665)
//	dist := p1.DistanceTo(p2)
//
// # Arithmetic
//
// Each semantic operation has its own name: AddVec adds elementwise,
// ExtendLength grows the magnitude along the vector's own direction, Scale
// multiplies elementwise by a scalar, and Dot is the scalar product. The
// package-level Add, Subtract and Multiply functions accept an untyped
// operand and dispatch to those core operations by operand kind, for callers
// that deal with mixed scalar/vector inputs:
//
//	sum, _  := geo3d.Add(v, geo3d.NewVec3(1, 1, 1)) // elementwise
//	long, _ := geo3d.Add(v, 2.5)                    // length grows by 2.5
//	dot, _  := geo3d.Multiply(v, w)                 // scalar result
//
// Direction-dependent operations (Normalized, ToLength, ExtendLength and the
// scalar forms of Add/Subtract) fail with ErrZeroDirection when the vector's
// squared length falls below ZeroTolerance.
//
// # Identity
//
// Tuple returns the canonical [3]float64 key of a value. Two values with the
// same component triple share the same key and the same Hash, regardless of
// whether they are a Vec3, a Point, or a bare [3]float64. The pointset
// subpackage builds its coordinate index on this key.
package geo3d
