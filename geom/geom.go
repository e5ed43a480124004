// Package geom provides fixed-dimension points and vectors over any
// of the numeric types described by package num.
//
// It is patterned heavily after image.Point, but is generic over both
// the component type and the dimension. The dimension is carried by
// the component storage: a Point[T, [3]T] is three-dimensional, and
// indexing its Components beyond 2 does not compile. A Point[T, []T]
// has a dimension chosen when it is created.
//
// Point and Vector share the same storage and the same per-component
// algebra. A Point is a location and a Vector is a displacement, and
// only Vector has a magnitude, a direction, and a dot product.
package geom

import (
	"errors"
	"fmt"

	"deedles.dev/xvec/num"
)

// Components is a constraint for the storage of a Point or Vector.
type Components[T num.Scalar] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | []T
}

// ErrSyntax is returned when a textual tuple cannot be parsed.
var ErrSyntax = errors.New("invalid tuple syntax")

// DimensionError reports an operation between tuples of different
// dimensions. Operations on slice-backed tuples panic with a
// *DimensionError when their dimensions differ.
type DimensionError struct {
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

type (
	Point1[T num.Scalar] = Point[T, [1]T]
	Point2[T num.Scalar] = Point[T, [2]T]
	Point3[T num.Scalar] = Point[T, [3]T]
	Point4[T num.Scalar] = Point[T, [4]T]
	PointN[T num.Scalar] = Point[T, []T]

	Vector1[T num.Scalar] = Vector[T, [1]T]
	Vector2[T num.Scalar] = Vector[T, [2]T]
	Vector3[T num.Scalar] = Vector[T, [3]T]
	Vector4[T num.Scalar] = Vector[T, [4]T]
	VectorN[T num.Scalar] = Vector[T, []T]
)
