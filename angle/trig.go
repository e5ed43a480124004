package angle

import (
	"math"

	"deedles.dev/xvec/num"
	"github.com/chewxy/math32"
)

// call evaluates x with the single-precision backend when T is a
// float32 type and with package math otherwise.
func call[T num.Float](f32 func(float32) float32, f64 func(float64) float64, x T) T {
	if num.KindOf[T]() == num.Float32 {
		return T(f32(float32(x)))
	}
	return T(f64(float64(x)))
}

func call2[T num.Float](f32 func(float32, float32) float32, f64 func(float64, float64) float64, x, y T) T {
	if num.KindOf[T]() == num.Float32 {
		return T(f32(float32(x), float32(y)))
	}
	return T(f64(float64(x), float64(y)))
}

// Sin returns the sine of a, computed as a T.
func Sin[T num.Float, S num.Scalar](a Angle[S]) T {
	return call(math32.Sin, math.Sin, ToRadians[T](a))
}

// Cos returns the cosine of a, computed as a T.
func Cos[T num.Float, S num.Scalar](a Angle[S]) T {
	return call(math32.Cos, math.Cos, ToRadians[T](a))
}

// Tan returns the tangent of a, computed as a T.
func Tan[T num.Float, S num.Scalar](a Angle[S]) T {
	return call(math32.Tan, math.Tan, ToRadians[T](a))
}

// Arcsin returns the angle whose sine is x. Arguments outside of
// [-1, 1] yield NaN.
func Arcsin[T num.Float](x T) Radians[T] {
	return Radians[T]{angle: call(math32.Asin, math.Asin, x)}
}

// Arccos returns the angle whose cosine is x. Arguments outside of
// [-1, 1] yield NaN.
func Arccos[T num.Float](x T) Radians[T] {
	return Radians[T]{angle: call(math32.Acos, math.Acos, x)}
}

// Arctan returns the angle whose tangent is x.
func Arctan[T num.Float](x T) Radians[T] {
	return Radians[T]{angle: call(math32.Atan, math.Atan, x)}
}

// Arctan2 returns the angle of the point (x, y) from the positive x
// axis. Note the argument order: x comes first.
func Arctan2[T num.Float](x, y T) Radians[T] {
	return Radians[T]{angle: call2(math32.Atan2, math.Atan2, y, x)}
}
