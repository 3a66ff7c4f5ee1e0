package geo3d

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDirection is returned when a direction-dependent operation
	// (Normalized, ToLength, ExtendLength, ShrinkLength, scalar Add/Subtract)
	// is applied to a vector whose squared length is below ZeroTolerance.
	// Such a vector has no direction to preserve; there is no fallback.
	ErrZeroDirection = errors.New("zero direction: squared length is effectively zero")

	// ErrUnknownAxis is returned by AxisValue for a name other than "x", "y" or "z".
	ErrUnknownAxis = errors.New("unknown axis")

	// ErrTooFewComponents is returned by AsPoint when a []float64 input
	// carries fewer than the three required components.
	ErrTooFewComponents = errors.New("at least three components required")
)

// ErrUnsupportedOperand indicates that a dynamic-operand operation received
// a value outside its closed set of accepted shapes.
type ErrUnsupportedOperand struct {
	Op      string
	Operand any
}

func (e *ErrUnsupportedOperand) Error() string {
	return fmt.Sprintf("unsupported operand for %s: %T", e.Op, e.Operand)
}
