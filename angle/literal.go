package angle

// Deg returns n whole degrees normalised modulo 360.
func Deg(n uint64) Degrees[int] {
	return Degrees[int]{angle: int(n % 360)}
}

// DegF returns v degrees. Unlike Deg, it does not normalise.
func DegF(v float64) Degrees[float64] {
	return Degrees[float64]{angle: v}
}

// Rad returns n radians in single precision.
func Rad(n uint64) Radians[float32] {
	return Radians[float32]{angle: float32(n)}
}

// RadF returns v radians.
func RadF(v float64) Radians[float64] {
	return Radians[float64]{angle: v}
}

// Pi returns n·π in single precision.
func Pi(n uint64) PiFactor[float32] {
	return PiFactor[float32]{angle: float32(n)}
}

// PiF returns v·π.
func PiF(v float64) PiFactor[float64] {
	return PiFactor[float64]{angle: v}
}
