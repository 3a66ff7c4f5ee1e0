package geo3d

// Dynamic-operand arithmetic. Each function dispatches on the operand's
// type tag and delegates to the named core operation carrying that meaning:
// vector operands go elementwise (AddVec, SubVec) or to the dot product,
// scalar operands adjust magnitude (ExtendLength, ShrinkLength) or scale.
// The accepted operand shapes form a closed set; anything else fails with
// *ErrUnsupportedOperand.

// asScalar reports whether operand is one of the accepted real-number kinds.
func asScalar(operand any) (float64, bool) {
	switch s := operand.(type) {
	case float64:
		return s, true
	case float32:
		return float64(s), true
	case int:
		return float64(s), true
	case int64:
		return float64(s), true
	}
	return 0, false
}

// asVec reports whether operand is one of the accepted vector-like kinds.
func asVec(operand any) (Vec3, bool) {
	switch o := operand.(type) {
	case Vec3:
		return o, true
	case Point:
		return Vec3(o), true
	case [3]float64:
		return Vec3{X: o[0], Y: o[1], Z: o[2]}, true
	}
	return Vec3{}, false
}

// Add combines v with operand. A vector-like operand is added elementwise;
// a scalar operand extends v's magnitude along its own direction, failing
// with ErrZeroDirection when v has none.
func Add(v Vec3, operand any) (Vec3, error) {
	if o, ok := asVec(operand); ok {
		return v.AddVec(o), nil
	}
	if s, ok := asScalar(operand); ok {
		return v.ExtendLength(s)
	}
	return Vec3{}, &ErrUnsupportedOperand{Op: "add", Operand: operand}
}

// Subtract is Add with the operand negated: elementwise difference for
// vector-like operands, magnitude shrink for scalars.
func Subtract(v Vec3, operand any) (Vec3, error) {
	if o, ok := asVec(operand); ok {
		return v.AddVec(o.Neg()), nil
	}
	if s, ok := asScalar(operand); ok {
		return v.ShrinkLength(s)
	}
	return Vec3{}, &ErrUnsupportedOperand{Op: "subtract", Operand: operand}
}

// Multiply combines v with operand. A scalar operand scales elementwise and
// yields a Vec3; a vector-like operand yields the dot product as a float64.
// The cross product is never implied; use Vec3.Cross.
func Multiply(v Vec3, operand any) (any, error) {
	if s, ok := asScalar(operand); ok {
		return v.Scale(s), nil
	}
	if o, ok := asVec(operand); ok {
		return v.Dot(o), nil
	}
	return nil, &ErrUnsupportedOperand{Op: "multiply", Operand: operand}
}

// Equal reports whether operand is vector-like and shares v's canonical
// triple. Non-vector operands are unequal, never an error.
func Equal(v Vec3, operand any) bool {
	o, ok := asVec(operand)
	return ok && v.Tuple() == o.Tuple()
}

// AsPoint converts a value of a known point shape into a Point.
//
// Accepted shapes: Point, Vec3, [3]float64, and []float64 with at least
// three components (extras are ignored). Anything else fails with
// *ErrUnsupportedOperand; a short []float64 fails with ErrTooFewComponents.
func AsPoint(value any) (Point, error) {
	switch p := value.(type) {
	case Point:
		return p, nil
	case Vec3:
		return Point(p), nil
	case [3]float64:
		return Point{X: p[0], Y: p[1], Z: p[2]}, nil
	case []float64:
		if len(p) < 3 {
			return Point{}, ErrTooFewComponents
		}
		return Point{X: p[0], Y: p[1], Z: p[2]}, nil
	}
	return Point{}, &ErrUnsupportedOperand{Op: "point conversion", Operand: value}
}
