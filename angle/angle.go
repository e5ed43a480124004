// Package angle provides three interchangeable representations of a
// planar rotation: Radians, Degrees, and PiFactor, a number of
// half-turns.
//
// The representations convert into each other following
//
//	radians = degrees * π/180 = pifactor * π
//
// with every conversion carried out at the higher of the stored type
// and the requested result type (see package num). Conversions never
// wrap values into a canonical range. The only normalisation is done
// by NewDegrees and Deg for non-negative integer degrees.
package angle

import (
	"fmt"
	"math"

	"deedles.dev/xvec/num"
)

// Unit identifies the representation of an Angle.
type Unit uint8

const (
	UnitRadians Unit = iota
	UnitDegrees
	UnitPiFactor
)

func (u Unit) String() string {
	switch u {
	case UnitRadians:
		return "rad"
	case UnitDegrees:
		return "deg"
	case UnitPiFactor:
		return "pi"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// ParseUnit returns the unit named by s. It accepts the names
// returned by String as well as "°" and "π".
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "rad", "radians":
		return UnitRadians, nil
	case "deg", "degrees", "°":
		return UnitDegrees, nil
	case "pi", "π", "turns":
		return UnitPiFactor, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// Angle is implemented by Radians, Degrees, and PiFactor.
type Angle[T num.Scalar] interface {
	Unit() Unit
	Value() T
}

// Radians is an angle measured in radians.
type Radians[T num.Float] struct {
	angle T
}

// NewRadians returns v radians.
func NewRadians[T num.Float](v T) Radians[T] {
	return Radians[T]{angle: v}
}

// RadiansFrom converts a to radians stored as T.
func RadiansFrom[T num.Float, S num.Scalar](a Angle[S]) Radians[T] {
	return Radians[T]{angle: ToRadians[T](a)}
}

func (r Radians[T]) Unit() Unit { return UnitRadians }

func (r Radians[T]) Value() T { return r.angle }

// Native returns a pointer to the stored value.
func (r *Radians[T]) Native() *T { return &r.angle }

// Degrees is an angle measured in degrees.
type Degrees[T num.Scalar] struct {
	angle T
}

// NewDegrees returns v degrees. If T is an integer type and v is not
// negative, the stored value is v modulo 360. No other construction
// normalises.
func NewDegrees[T num.Scalar](v T) Degrees[T] {
	if num.IsInteger[T]() && v >= 0 {
		v = T(uint64(v) % 360)
	}
	return Degrees[T]{angle: v}
}

// DegreesFrom converts a to degrees stored as T.
func DegreesFrom[T, S num.Scalar](a Angle[S]) Degrees[T] {
	return Degrees[T]{angle: ToDegrees[T](a)}
}

func (d Degrees[T]) Unit() Unit { return UnitDegrees }

func (d Degrees[T]) Value() T { return d.angle }

// Native returns a pointer to the stored value.
func (d *Degrees[T]) Native() *T { return &d.angle }

// PiFactor is an angle measured in multiples of π.
type PiFactor[T num.Scalar] struct {
	angle T
}

// NewPiFactor returns v·π radians expressed as a PiFactor.
func NewPiFactor[T num.Scalar](v T) PiFactor[T] {
	return PiFactor[T]{angle: v}
}

// PiFactorFrom converts a to multiples of π stored as T.
func PiFactorFrom[T, S num.Scalar](a Angle[S]) PiFactor[T] {
	return PiFactor[T]{angle: ToPiFactor[T](a)}
}

func (p PiFactor[T]) Unit() Unit { return UnitPiFactor }

func (p PiFactor[T]) Value() T { return p.angle }

// Native returns a pointer to the stored value.
func (p *PiFactor[T]) Native() *T { return &p.angle }

// ToRadians returns a in radians as an A.
func ToRadians[A num.Float, T num.Scalar](a Angle[T]) A {
	v := num.Promote2[A](a.Value())
	switch a.Unit() {
	case UnitRadians:
		return v.First()
	case UnitDegrees:
		return v.Mul(num.Const[A, T](math.Pi)).Div(num.Const[A, T](180)).First()
	case UnitPiFactor:
		return v.Mul(num.Const[A, T](math.Pi)).First()
	default:
		panic(fmt.Errorf("angle: invalid unit %v", a.Unit()))
	}
}

// ToDegrees returns a in degrees as an A. Integer results are
// truncated and are not normalised.
func ToDegrees[A, T num.Scalar](a Angle[T]) A {
	v := num.Promote2[A](a.Value())
	switch a.Unit() {
	case UnitRadians:
		return v.Mul(num.Const[A, T](1 / math.Pi)).Mul(num.Const[A, T](180)).First()
	case UnitDegrees:
		return v.First()
	case UnitPiFactor:
		return v.Mul(num.Const[A, T](180)).First()
	default:
		panic(fmt.Errorf("angle: invalid unit %v", a.Unit()))
	}
}

// ToPiFactor returns a in multiples of π as an A.
func ToPiFactor[A, T num.Scalar](a Angle[T]) A {
	v := num.Promote2[A](a.Value())
	switch a.Unit() {
	case UnitRadians:
		return v.Mul(num.Const[A, T](1 / math.Pi)).First()
	case UnitDegrees:
		return v.Div(num.Const[A, T](180)).First()
	case UnitPiFactor:
		return v.First()
	default:
		panic(fmt.Errorf("angle: invalid unit %v", a.Unit()))
	}
}

// Convert returns a expressed in the unit u with storage type A.
func Convert[A num.Float, T num.Scalar](a Angle[T], u Unit) Angle[A] {
	switch u {
	case UnitRadians:
		return RadiansFrom[A](a)
	case UnitDegrees:
		return DegreesFrom[A](a)
	case UnitPiFactor:
		return PiFactorFrom[A](a)
	default:
		panic(fmt.Errorf("angle: invalid unit %v", u))
	}
}
