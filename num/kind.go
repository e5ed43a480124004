package num

import (
	"fmt"
	"math/bits"
	"reflect"
	"unsafe"
)

// Kind identifies one of the closed set of numeric types that satisfy
// Scalar. Named types report the kind of their underlying type.
type Kind uint8

const (
	Invalid Kind = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Uintptr
	Float32
	Float64
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint:    "uint",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Uintptr: "uintptr",
	Float32: "float32",
	Float64: "float64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the Kind named by s, such as "float32".
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if k != int(Invalid) && name == s {
			return Kind(k), nil
		}
	}
	return Invalid, fmt.Errorf("unknown numeric kind %q", s)
}

// Size returns the width of the kind in bytes.
func (k Kind) Size() int {
	switch k {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	case Int, Uint:
		return bits.UintSize / 8
	case Uintptr:
		return int(unsafe.Sizeof(uintptr(0)))
	default:
		return 0
	}
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsInteger reports whether k is an integer kind.
func (k Kind) IsInteger() bool {
	return k >= Int && k <= Uintptr
}

// IsSigned reports whether k can hold negative values.
func (k Kind) IsSigned() bool {
	return (k >= Int && k <= Int64) || k.IsFloat()
}

// KindOf returns the Kind of T.
func KindOf[T Scalar]() Kind {
	switch any(*new(T)).(type) {
	case int:
		return Int
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint:
		return Uint
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case uintptr:
		return Uintptr
	case float32:
		return Float32
	case float64:
		return Float64
	}

	return kindFromReflect(reflect.TypeFor[T]().Kind())
}

func kindFromReflect(k reflect.Kind) Kind {
	switch k {
	case reflect.Int:
		return Int
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint:
		return Uint
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Uintptr:
		return Uintptr
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		return Invalid
	}
}
