package geom

import (
	"iter"
	"slices"

	"deedles.dev/xiter"
	"deedles.dev/xvec/num"
)

// Point is a location with one component per dimension. The zero
// value of an array-backed Point is the origin.
//
// Point is a value type. Slice-backed Points share their storage when
// copied by assignment, so use Clone before mutating a copy in place.
type Point[T num.Scalar, C Components[T]] struct {
	c C
}

// Pt1 is shorthand for a one-dimensional Point.
func Pt1[T num.Scalar](x T) Point1[T] {
	return Point1[T]{c: [1]T{x}}
}

// Pt2 is shorthand for Point2[T]{x, y}.
func Pt2[T num.Scalar](x, y T) Point2[T] {
	return Point2[T]{c: [2]T{x, y}}
}

func Pt3[T num.Scalar](x, y, z T) Point3[T] {
	return Point3[T]{c: [3]T{x, y, z}}
}

func Pt4[T num.Scalar](x, y, z, w T) Point4[T] {
	return Point4[T]{c: [4]T{x, y, z, w}}
}

// PtN returns a Point whose dimension is the number of components
// given. The components are copied.
func PtN[T num.Scalar](c ...T) PointN[T] {
	return PointN[T]{c: slices.Clone(c)}
}

// Splat returns a Point with every component set to v. It is not
// useful for slice-backed Points; use SplatN for those.
func Splat[T num.Scalar, C Components[T]](v T) Point[T, C] {
	var p Point[T, C]
	scaleInPlace(&p.c, v, func(_, s T) T { return s })
	return p
}

// SplatN returns an n-dimensional Point with every component set to
// v.
func SplatN[T num.Scalar](n int, v T) PointN[T] {
	c := make([]T, n)
	for i := range c {
		c[i] = v
	}
	return PointN[T]{c: c}
}

// FromSeq fills a Point's components in order from seq. Array-backed
// Points ignore values past their dimension and leave missing ones at
// zero. Slice-backed Points take every value.
func FromSeq[T num.Scalar, C Components[T]](seq iter.Seq[T]) Point[T, C] {
	var p Point[T, C]
	if s, ok := any(&p.c).(*[]T); ok {
		*s = slices.Collect(seq)
		return p
	}

	for i, v := range xiter.Enumerate(seq) {
		if i >= len(p.c) {
			break
		}
		p.c[i] = v
	}
	return p
}

// Len returns the dimension of p.
func (p Point[T, C]) Len() int { return len(p.c) }

// Components returns p's storage. For slice-backed Points the
// returned slice aliases p.
func (p Point[T, C]) Components() C { return p.c }

// At returns the component at index i. It panics if i is out of
// range.
func (p Point[T, C]) At(i int) T { return p.c[i] }

// Set sets the component at index i to v.
func (p *Point[T, C]) Set(i int, v T) { p.c[i] = v }

// X returns the first component.
func (p Point[T, C]) X() T { return p.c[0] }

// Y returns the second component. It panics if p has fewer than two
// dimensions.
func (p Point[T, C]) Y() T { return p.At(1) }

// Z returns the third component. It panics if p has fewer than three
// dimensions.
func (p Point[T, C]) Z() T { return p.At(2) }

// W returns the fourth component. It panics if p has fewer than four
// dimensions.
func (p Point[T, C]) W() T { return p.At(3) }

// All returns an iterator over the index and value of each component.
func (p Point[T, C]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range len(p.c) {
			if !yield(i, p.c[i]) {
				return
			}
		}
	}
}

// Clone returns a copy of p that does not share storage with it.
func (p Point[T, C]) Clone() Point[T, C] {
	return Point[T, C]{c: clone[T](p.c)}
}

// Equal reports whether every component of p equals the corresponding
// component of q.
func (p Point[T, C]) Equal(q Point[T, C]) bool {
	return equal[T](p.c, q.c)
}

// NotEqual reports whether any component of p differs from the
// corresponding component of q.
func (p Point[T, C]) NotEqual(q Point[T, C]) bool {
	return notEqual[T](p.c, q.c)
}

// Add returns the component-wise sum p+q.
func (p Point[T, C]) Add(q Point[T, C]) Point[T, C] {
	return Point[T, C]{c: combine(p.c, q.c, opAdd[T])}
}

// Sub returns the component-wise difference p-q.
func (p Point[T, C]) Sub(q Point[T, C]) Point[T, C] {
	return Point[T, C]{c: combine(p.c, q.c, opSub[T])}
}

// Mul returns p with every component multiplied by s.
func (p Point[T, C]) Mul(s T) Point[T, C] {
	return Point[T, C]{c: scale(p.c, s, opMul[T])}
}

// Div returns p with every component divided by s.
func (p Point[T, C]) Div(s T) Point[T, C] {
	return Point[T, C]{c: scale(p.c, s, opDiv[T])}
}

// AddAssign adds q to p in place and returns p.
func (p *Point[T, C]) AddAssign(q Point[T, C]) *Point[T, C] {
	combineInPlace(&p.c, q.c, opAdd[T])
	return p
}

// SubAssign subtracts q from p in place and returns p.
func (p *Point[T, C]) SubAssign(q Point[T, C]) *Point[T, C] {
	combineInPlace(&p.c, q.c, opSub[T])
	return p
}

// MulAssign multiplies p by s in place and returns p.
func (p *Point[T, C]) MulAssign(s T) *Point[T, C] {
	scaleInPlace(&p.c, s, opMul[T])
	return p
}

// DivAssign divides p by s in place and returns p.
func (p *Point[T, C]) DivAssign(s T) *Point[T, C] {
	scaleInPlace(&p.c, s, opDiv[T])
	return p
}

// Translate returns p displaced by v.
func (p Point[T, C]) Translate(v Vector[T, C]) Point[T, C] {
	return Point[T, C]{c: combine(p.c, v.c, opAdd[T])}
}

// Vector returns the displacement from the origin to p.
func (p Point[T, C]) Vector() Vector[T, C] {
	return Vector[T, C](p)
}

// DistanceSq returns the squared Euclidean distance between p and q,
// computed as a T.
func (p Point[T, C]) DistanceSq(q Point[T, C]) T {
	return distanceSq[T](p.c, q.c)
}

// Distance returns the Euclidean distance between p and q, computed
// as a T.
func (p Point[T, C]) Distance(q Point[T, C]) T {
	return num.Sqrt(p.DistanceSq(q))
}
