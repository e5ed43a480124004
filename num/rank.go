package num

// outranks reports whether a is the higher kind of the pair (a, b).
// The relation is total and antisymmetric for distinct kinds, so the
// higher member of a pair never depends on argument order.
func outranks(a, b Kind) bool {
	af, bf := a.IsFloat(), b.IsFloat()
	if af != bf {
		return af
	}
	if as, bs := a.Size(), b.Size(); as != bs {
		return as > bs
	}
	return a >= b
}

// Resolve returns the higher and lower kinds of the pair (a, b). The
// higher kind is the working type of a computation that mixes values
// of both kinds.
func Resolve(a, b Kind) (higher, lower Kind) {
	if outranks(a, b) {
		return a, b
	}
	return b, a
}

// Higher returns the higher kind of the pair (a, b).
func Higher(a, b Kind) Kind {
	h, _ := Resolve(a, b)
	return h
}

// FirstOutranks reports whether T1 is the higher type of the pair
// (T1, T2).
func FirstOutranks[T1, T2 Scalar]() bool {
	return outranks(KindOf[T1](), KindOf[T2]())
}

// Value is a number held at the higher type of the pair (T1, T2).
// Arithmetic between Values happens entirely at that type, and
// First and Second narrow the result back to either member of the
// pair.
//
// The zero Value is not useful. Create Values with Promote1,
// Promote2, or Const.
type Value[T1, T2 Scalar] struct {
	first bool
	v1    T1
	v2    T2
}

// Promote1 promotes v, a value of the first type of the pair, to the
// pair's higher type.
func Promote1[T1, T2 Scalar](v T1) Value[T1, T2] {
	if FirstOutranks[T1, T2]() {
		return Value[T1, T2]{first: true, v1: v}
	}
	return Value[T1, T2]{v2: T2(v)}
}

// Promote2 promotes v, a value of the second type of the pair, to the
// pair's higher type.
func Promote2[T1, T2 Scalar](v T2) Value[T1, T2] {
	if FirstOutranks[T1, T2]() {
		return Value[T1, T2]{first: true, v1: T1(v)}
	}
	return Value[T1, T2]{v2: v}
}

// Const converts a constant such as π directly to the pair's higher
// type so that it is rounded only once.
func Const[T1, T2 Scalar](c float64) Value[T1, T2] {
	if FirstOutranks[T1, T2]() {
		return Value[T1, T2]{first: true, v1: T1(c)}
	}
	return Value[T1, T2]{v2: T2(c)}
}

// Kind returns the kind that v is held at.
func (v Value[T1, T2]) Kind() Kind {
	if v.first {
		return KindOf[T1]()
	}
	return KindOf[T2]()
}

// First narrows v to T1.
func (v Value[T1, T2]) First() T1 {
	if v.first {
		return v.v1
	}
	return T1(v.v2)
}

// Second narrows v to T2.
func (v Value[T1, T2]) Second() T2 {
	if v.first {
		return T2(v.v1)
	}
	return v.v2
}

func (v Value[T1, T2]) Add(w Value[T1, T2]) Value[T1, T2] {
	if v.first {
		v.v1 += w.v1
		return v
	}
	v.v2 += w.v2
	return v
}

func (v Value[T1, T2]) Sub(w Value[T1, T2]) Value[T1, T2] {
	if v.first {
		v.v1 -= w.v1
		return v
	}
	v.v2 -= w.v2
	return v
}

func (v Value[T1, T2]) Mul(w Value[T1, T2]) Value[T1, T2] {
	if v.first {
		v.v1 *= w.v1
		return v
	}
	v.v2 *= w.v2
	return v
}

// Div divides v by w. Division by zero behaves as it does for the
// higher type.
func (v Value[T1, T2]) Div(w Value[T1, T2]) Value[T1, T2] {
	if v.first {
		v.v1 /= w.v1
		return v
	}
	v.v2 /= w.v2
	return v
}

// Sqrt returns the square root of v computed at the higher type.
func (v Value[T1, T2]) Sqrt() Value[T1, T2] {
	if v.first {
		v.v1 = Sqrt(v.v1)
		return v
	}
	v.v2 = Sqrt(v.v2)
	return v
}
