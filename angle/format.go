package angle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownUnit is returned when an angle's unit suffix is not
// recognized.
var ErrUnknownUnit = errors.New("unknown angle unit")

func (r Radians[T]) String() string { return fmt.Sprintf("%vrad", r.angle) }

func (d Degrees[T]) String() string { return fmt.Sprintf("%v°", d.angle) }

func (p PiFactor[T]) String() string { return fmt.Sprintf("%vπ", p.angle) }

var suffixes = []struct {
	suffix string
	unit   Unit
}{
	{"rad", UnitRadians},
	{"deg", UnitDegrees},
	{"°", UnitDegrees},
	{"pi", UnitPiFactor},
	{"π", UnitPiFactor},
}

// Parse parses an angle written as a number followed by a unit
// suffix, such as "90deg", "90°", "1.5rad", "0.5pi", or "0.5π".
func Parse(s string) (Angle[float64], error) {
	s = strings.TrimSpace(s)
	for _, suf := range suffixes {
		n, ok := strings.CutSuffix(s, suf.suffix)
		if !ok {
			continue
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil, fmt.Errorf("parse angle %q: %w", s, err)
		}

		switch suf.unit {
		case UnitRadians:
			return RadF(v), nil
		case UnitDegrees:
			return DegF(v), nil
		default:
			return PiF(v), nil
		}
	}

	return nil, fmt.Errorf("parse angle %q: %w", s, ErrUnknownUnit)
}
