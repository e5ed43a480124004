package geom

import (
	"iter"
	"slices"

	"deedles.dev/xvec/angle"
	"deedles.dev/xvec/num"
)

// Vector is a displacement with one component per dimension.
type Vector[T num.Scalar, C Components[T]] Point[T, C]

// Vec1 is shorthand for a one-dimensional Vector.
func Vec1[T num.Scalar](x T) Vector1[T] {
	return Vector1[T]{c: [1]T{x}}
}

// Vec2 is shorthand for Vector2[T]{x, y}.
func Vec2[T num.Scalar](x, y T) Vector2[T] {
	return Vector2[T]{c: [2]T{x, y}}
}

func Vec3[T num.Scalar](x, y, z T) Vector3[T] {
	return Vector3[T]{c: [3]T{x, y, z}}
}

func Vec4[T num.Scalar](x, y, z, w T) Vector4[T] {
	return Vector4[T]{c: [4]T{x, y, z, w}}
}

// VecN returns a Vector whose dimension is the number of components
// given. The components are copied.
func VecN[T num.Scalar](c ...T) VectorN[T] {
	return VectorN[T]{c: slices.Clone(c)}
}

// SplatVec returns a Vector with every component set to v.
func SplatVec[T num.Scalar, C Components[T]](v T) Vector[T, C] {
	return Vector[T, C](Splat[T, C](v))
}

// Between returns the displacement from a to b, b-a.
func Between[T num.Scalar, C Components[T]](a, b Point[T, C]) Vector[T, C] {
	return Vector[T, C]{c: combine(b.c, a.c, opSub[T])}
}

// Polar returns the two-dimensional Vector of the given magnitude
// pointing in the direction a, measured from the positive x axis.
// Integer components are truncated, and negative components of an
// unsigned Vector wrap around as they do for integer conversion.
func Polar[T, S num.Scalar](a angle.Angle[S], magnitude T) Vector2[T] {
	m := float64(magnitude)
	return Vec2(
		num.FromFloat64[T](angle.Cos[float64](a)*m),
		num.FromFloat64[T](angle.Sin[float64](a)*m),
	)
}

func (v Vector[T, C]) Len() int { return len(v.c) }

// Components returns v's storage. For slice-backed Vectors the
// returned slice aliases v.
func (v Vector[T, C]) Components() C { return v.c }

func (v Vector[T, C]) At(i int) T { return v.c[i] }

func (v *Vector[T, C]) Set(i int, x T) { v.c[i] = x }

func (v Vector[T, C]) X() T { return v.c[0] }
func (v Vector[T, C]) Y() T { return v.At(1) }
func (v Vector[T, C]) Z() T { return v.At(2) }
func (v Vector[T, C]) W() T { return v.At(3) }

// All returns an iterator over the index and value of each component.
func (v Vector[T, C]) All() iter.Seq2[int, T] {
	return Point[T, C](v).All()
}

// Clone returns a copy of v that does not share storage with it.
func (v Vector[T, C]) Clone() Vector[T, C] {
	return Vector[T, C]{c: clone[T](v.c)}
}

// Point returns the location reached by displacing the origin by v.
func (v Vector[T, C]) Point() Point[T, C] {
	return Point[T, C](v)
}

func (v Vector[T, C]) Equal(w Vector[T, C]) bool {
	return equal[T](v.c, w.c)
}

func (v Vector[T, C]) NotEqual(w Vector[T, C]) bool {
	return notEqual[T](v.c, w.c)
}

func (v Vector[T, C]) Add(w Vector[T, C]) Vector[T, C] {
	return Vector[T, C]{c: combine(v.c, w.c, opAdd[T])}
}

func (v Vector[T, C]) Sub(w Vector[T, C]) Vector[T, C] {
	return Vector[T, C]{c: combine(v.c, w.c, opSub[T])}
}

// Mul returns v scaled by s.
func (v Vector[T, C]) Mul(s T) Vector[T, C] {
	return Vector[T, C]{c: scale(v.c, s, opMul[T])}
}

// Div returns v scaled by 1/s. For integer types each component is
// divided separately.
func (v Vector[T, C]) Div(s T) Vector[T, C] {
	return Vector[T, C]{c: scale(v.c, s, opDiv[T])}
}

// Neg returns -v.
func (v Vector[T, C]) Neg() Vector[T, C] {
	return Vector[T, C]{c: scale(v.c, 0, func(c, z T) T { return z - c })}
}

func (v *Vector[T, C]) AddAssign(w Vector[T, C]) *Vector[T, C] {
	combineInPlace(&v.c, w.c, opAdd[T])
	return v
}

func (v *Vector[T, C]) SubAssign(w Vector[T, C]) *Vector[T, C] {
	combineInPlace(&v.c, w.c, opSub[T])
	return v
}

func (v *Vector[T, C]) MulAssign(s T) *Vector[T, C] {
	scaleInPlace(&v.c, s, opMul[T])
	return v
}

func (v *Vector[T, C]) DivAssign(s T) *Vector[T, C] {
	scaleInPlace(&v.c, s, opDiv[T])
	return v
}

// DistanceSq returns the squared distance between the tips of v and
// w.
func (v Vector[T, C]) DistanceSq(w Vector[T, C]) T {
	return distanceSq[T](v.c, w.c)
}

// Distance returns the distance between the tips of v and w.
func (v Vector[T, C]) Distance(w Vector[T, C]) T {
	return num.Sqrt(v.DistanceSq(w))
}

// Dot returns the dot product of v and w, computed as a T.
func (v Vector[T, C]) Dot(w Vector[T, C]) T {
	return dot[T](v.c, w.c)
}

// MagnitudeSq returns the squared magnitude of v as a T.
func (v Vector[T, C]) MagnitudeSq() T {
	return MagnitudeSqAs[T](v)
}

// Magnitude returns the magnitude of v as a T. A one-dimensional
// Vector's magnitude is its only component, sign included.
func (v Vector[T, C]) Magnitude() T {
	return MagnitudeAs[T](v)
}

// LengthSq is the same as MagnitudeSq.
func (v Vector[T, C]) LengthSq() T { return v.MagnitudeSq() }

// Length is the same as Magnitude.
func (v Vector[T, C]) Length() T { return v.Magnitude() }

func magnitudeSq[M, T num.Scalar, C Components[T]](v Vector[T, C]) num.Value[M, T] {
	sum := num.Promote2[M, T](0)
	for i := range len(v.c) {
		c := num.Promote2[M](v.c[i])
		sum = sum.Add(c.Mul(c))
	}
	return sum
}

// MagnitudeSqAs returns the squared magnitude of v as an M. The sum
// is accumulated at the higher of M and T and only then narrowed to
// M.
func MagnitudeSqAs[M, T num.Scalar, C Components[T]](v Vector[T, C]) M {
	return magnitudeSq[M](v).First()
}

// MagnitudeAs returns the magnitude of v as an M. The square root is
// taken at the higher of M and T before narrowing.
func MagnitudeAs[M, T num.Scalar, C Components[T]](v Vector[T, C]) M {
	if len(v.c) == 1 {
		return M(v.c[0])
	}
	return magnitudeSq[M](v).Sqrt().First()
}

// LengthSqAs is the same as MagnitudeSqAs.
func LengthSqAs[M, T num.Scalar, C Components[T]](v Vector[T, C]) M {
	return MagnitudeSqAs[M](v)
}

// LengthAs is the same as MagnitudeAs.
func LengthAs[M, T num.Scalar, C Components[T]](v Vector[T, C]) M {
	return MagnitudeAs[M](v)
}

// norm is the Euclidean norm used for normalisation. Unlike
// Magnitude it does not special-case one dimension.
func (v Vector[T, C]) norm() T {
	return num.Sqrt(v.MagnitudeSq())
}

// Normalized returns a Vector with the direction of v and a magnitude
// of one. Integer Vectors are divided by their truncated length, and
// floating-point Vectors are multiplied by its reciprocal. The zero
// Vector yields NaNs for floating-point types and panics for integer
// types.
func (v Vector[T, C]) Normalized() Vector[T, C] {
	l := v.norm()
	if num.IsInteger[T]() {
		return v.Div(l)
	}
	return v.Mul(1 / l)
}

// Normalize normalizes v in place. See Normalized.
func (v *Vector[T, C]) Normalize() {
	l := v.norm()
	if num.IsInteger[T]() {
		v.DivAssign(l)
		return
	}
	v.MulAssign(1 / l)
}

// Direction returns the angle of v measured from the positive x
// axis.
func Direction[A num.Float, T num.Scalar](v Vector2[T]) angle.Radians[A] {
	return angle.Arctan2(A(v.c[0]), A(v.c[1]))
}

// AngleBetween returns the unsigned angle between u and v. The
// product of their Euclidean lengths and its ratio to their dot
// product are formed at the higher of A and T before the arccosine is
// taken as an A. Lengths are not truncated to T.
func AngleBetween[A num.Float, T num.Scalar, C Components[T]](u, v Vector[T, C]) angle.Radians[A] {
	d := num.Promote2[A](u.Dot(v))
	l := magnitudeSq[A](u).Mul(magnitudeSq[A](v)).Sqrt()
	return angle.Arccos(d.Div(l).First())
}
