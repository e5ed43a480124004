package geom

import (
	"fmt"
	"strconv"
	"strings"

	"deedles.dev/xvec/num"
)

func format[T num.Scalar, C Components[T]](c C) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := range len(c) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, c[i])
	}
	sb.WriteByte(')')
	return sb.String()
}

func parseScalar[T num.Scalar](s string) (T, error) {
	k := num.KindOf[T]()
	switch {
	case k.IsFloat():
		v, err := strconv.ParseFloat(s, k.Size()*8)
		return T(v), err
	case k.IsSigned():
		v, err := strconv.ParseInt(s, 10, k.Size()*8)
		return T(v), err
	default:
		v, err := strconv.ParseUint(s, 10, k.Size()*8)
		return T(v), err
	}
}

// parse reads decimal components separated by commas or whitespace,
// optionally surrounded by parentheses, into c. Slice storage is
// resized to fit. c is left unchanged if text is invalid.
func parse[T num.Scalar, C Components[T]](c *C, text []byte) error {
	s := strings.TrimSpace(string(text))
	if inner, ok := strings.CutPrefix(s, "("); ok {
		inner, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return fmt.Errorf("%w: unbalanced parentheses in %q", ErrSyntax, s)
		}
		s = inner
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	p, resize := any(c).(*[]T)
	if !resize && len(fields) != len(*c) {
		return &DimensionError{Expected: len(*c), Actual: len(fields)}
	}

	vals := make([]T, len(fields))
	for i, f := range fields {
		v, err := parseScalar[T](f)
		if err != nil {
			return fmt.Errorf("%w: component %d: %w", ErrSyntax, i, err)
		}
		vals[i] = v
	}

	if resize {
		*p = vals
		return nil
	}
	for i, v := range vals {
		(*c)[i] = v
	}
	return nil
}

func (p Point[T, C]) String() string { return format[T](p.c) }

func (p Point[T, C]) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses text such as "1, 2" or "(1 2)". The number of
// components must match p's dimension unless p is slice-backed.
func (p *Point[T, C]) UnmarshalText(text []byte) error {
	return parse[T](&p.c, text)
}

func (v Vector[T, C]) String() string { return format[T](v.c) }

func (v Vector[T, C]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses text the same way as Point.UnmarshalText.
func (v *Vector[T, C]) UnmarshalText(text []byte) error {
	return parse[T](&v.c, text)
}
