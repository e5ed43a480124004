// Package num describes the numeric types that the rest of xvec is
// generic over and decides how mixed pairs of them are promoted.
//
// Every binary operation that combines two different numeric types
// runs at the "higher" type of the pair. A floating-point type always
// outranks an integer type. Between two types of the same category
// the wider one wins, and equal widths are broken by a fixed order of
// kinds so that the result does not depend on operand order.
package num

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that xvec types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// Float is a constraint for any floating-point type.
type Float interface {
	constraints.Float
}

// Sqrt returns the square root of v computed with the backend that
// matches T. Integer types are rooted in float64 and truncated back.
func Sqrt[T Scalar](v T) T {
	if KindOf[T]() == Float32 {
		return T(math32.Sqrt(float32(v)))
	}
	return T(math.Sqrt(float64(v)))
}

// FromFloat64 converts v to T. Integer types truncate toward zero, and
// a negative v wraps around for unsigned types the same way a negative
// int64 does when converted.
func FromFloat64[T Scalar](v float64) T {
	k := KindOf[T]()
	switch {
	case k.IsFloat():
		return T(v)
	case v < 0:
		return T(int64(v))
	default:
		return T(uint64(v))
	}
}

// IsInteger reports whether T is an integer type.
func IsInteger[T Scalar]() bool {
	return KindOf[T]().IsInteger()
}
