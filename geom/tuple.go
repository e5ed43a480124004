package geom

import (
	"deedles.dev/xvec/num"
)

// The functions in this file implement the component algebra shared
// by Point and Vector. Each walks every index of its operands in
// order. Arrays always match in length, and slices are checked.

func opAdd[T num.Scalar](a, b T) T { return a + b }
func opSub[T num.Scalar](a, b T) T { return a - b }
func opMul[T num.Scalar](a, b T) T { return a * b }
func opDiv[T num.Scalar](a, b T) T { return a / b }

// like returns zeroed storage with the same dimension as c.
func like[T num.Scalar, C Components[T]](c C) C {
	var out C
	if s, ok := any(&out).(*[]T); ok {
		*s = make([]T, len(c))
	}
	return out
}

func clone[T num.Scalar, C Components[T]](c C) C {
	out := like[T](c)
	for i := range len(c) {
		out[i] = c[i]
	}
	return out
}

func mustMatch[T num.Scalar, C Components[T]](a, b C) {
	if len(a) != len(b) {
		panic(&DimensionError{Expected: len(a), Actual: len(b)})
	}
}

func equal[T num.Scalar, C Components[T]](a, b C) bool {
	mustMatch[T](a, b)
	eq := true
	for i := range len(a) {
		eq = a[i] == b[i] && eq
	}
	return eq
}

func notEqual[T num.Scalar, C Components[T]](a, b C) bool {
	mustMatch[T](a, b)
	ne := false
	for i := range len(a) {
		ne = a[i] != b[i] || ne
	}
	return ne
}

func combine[T num.Scalar, C Components[T]](a, b C, op func(T, T) T) C {
	mustMatch[T](a, b)
	out := like[T](a)
	for i := range len(a) {
		out[i] = op(a[i], b[i])
	}
	return out
}

func combineInPlace[T num.Scalar, C Components[T]](a *C, b C, op func(T, T) T) {
	mustMatch[T](*a, b)
	for i := range len(b) {
		(*a)[i] = op((*a)[i], b[i])
	}
}

func scale[T num.Scalar, C Components[T]](a C, s T, op func(T, T) T) C {
	out := like[T](a)
	for i := range len(a) {
		out[i] = op(a[i], s)
	}
	return out
}

func scaleInPlace[T num.Scalar, C Components[T]](a *C, s T, op func(T, T) T) {
	for i := range len(*a) {
		(*a)[i] = op((*a)[i], s)
	}
}

func distanceSq[T num.Scalar, C Components[T]](a, b C) T {
	mustMatch[T](a, b)
	var sum T
	for i := range len(a) {
		d := b[i] - a[i]
		sum += d * d
	}
	return sum
}

func dot[T num.Scalar, C Components[T]](a, b C) T {
	mustMatch[T](a, b)
	var sum T
	for i := range len(a) {
		sum += a[i] * b[i]
	}
	return sum
}
