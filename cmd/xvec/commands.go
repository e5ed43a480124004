package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"deedles.dev/xvec/angle"
	"deedles.dev/xvec/geom"
	"deedles.dev/xvec/num"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type command struct {
	args  int
	usage string
}

var commands = map[string]command{
	"distance":   {2, "distance A B        distance between points A and B"},
	"distancesq": {2, "distancesq A B      squared distance between points A and B"},
	"magnitude":  {1, "magnitude V         magnitude of vector V"},
	"normalize":  {1, "normalize V         unit vector in the direction of V"},
	"dot":        {2, "dot U V             dot product of U and V"},
	"between":    {2, "between A B         displacement from point A to point B"},
	"angle":      {2, "angle U V           unsigned angle between U and V"},
	"heading":    {1, "heading V           direction of the 2-D vector V"},
	"polar":      {2, "polar ANGLE MAG     2-D vector with the given direction and magnitude"},
	"convert":    {1, "convert ANGLE       ANGLE expressed in the configured unit"},
	"rank":       {2, "rank T1 T2          working type of a computation mixing T1 and T2"},
}

var errUsage = errors.New("usage")

func usage(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		fmt.Fprintf(w, "  %v\n", commands[name].usage)
	}
	fmt.Fprintln(w, "\nTuples are written as \"1,2,3\" or \"(1 2 3)\". Angles are written")
	fmt.Fprintln(w, "with a unit suffix, as in \"90deg\", \"1.5rad\", or \"0.5pi\". An")
	fmt.Fprintln(w, "argument of \"-\" is read as one line of standard input.")
}

type env struct {
	kind num.Kind
	unit angle.Unit
	in   io.Reader
	w    io.Writer
	p    *message.Printer
	log  *slog.Logger
}

func newEnv(cfg Config, in io.Reader, w io.Writer, log *slog.Logger) (*env, error) {
	kind, err := num.ParseKind(cfg.Type)
	if err != nil {
		return nil, fmt.Errorf("type: %w", err)
	}
	unit, err := angle.ParseUnit(cfg.Unit)
	if err != nil {
		return nil, fmt.Errorf("unit: %w", err)
	}
	tag, err := language.Parse(cfg.Lang)
	if err != nil {
		return nil, fmt.Errorf("lang: %w", err)
	}

	return &env{
		kind: kind,
		unit: unit,
		in:   in,
		w:    w,
		p:    message.NewPrinter(tag),
		log:  log,
	}, nil
}

func (e *env) println(v any) {
	e.p.Fprintf(e.w, "%v\n", v)
}

// run evaluates the command named by args[0] with the remaining
// elements of args as its arguments.
func (e *env) run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	name, args := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	if len(args) != cmd.args {
		return fmt.Errorf("%v: expected %v arguments, got %v", name, cmd.args, len(args))
	}

	args, err := resolveArgs(e.in, args)
	if err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}

	e.log.Debug("evaluating", "command", name, "args", args, "type", e.kind)

	switch name {
	case "convert":
		return e.convert(args[0])
	case "rank":
		return e.rank(args[0], args[1])
	}

	switch e.kind {
	case num.Int:
		return runAs[int](e, name, args)
	case num.Int8:
		return runAs[int8](e, name, args)
	case num.Int16:
		return runAs[int16](e, name, args)
	case num.Int32:
		return runAs[int32](e, name, args)
	case num.Int64:
		return runAs[int64](e, name, args)
	case num.Uint:
		return runAs[uint](e, name, args)
	case num.Uint8:
		return runAs[uint8](e, name, args)
	case num.Uint16:
		return runAs[uint16](e, name, args)
	case num.Uint32:
		return runAs[uint32](e, name, args)
	case num.Uint64:
		return runAs[uint64](e, name, args)
	case num.Uintptr:
		return runAs[uintptr](e, name, args)
	case num.Float32:
		return runAs[float32](e, name, args)
	case num.Float64:
		return runAs[float64](e, name, args)
	default:
		return fmt.Errorf("unsupported type %v", e.kind)
	}
}

// resolveArgs replaces each "-" in args with the next line of in.
func resolveArgs(in io.Reader, args []string) ([]string, error) {
	var sc *bufio.Scanner
	out := make([]string, len(args))
	for i, arg := range args {
		if arg != "-" {
			out[i] = arg
			continue
		}

		if sc == nil {
			sc = bufio.NewScanner(in)
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("argument %v: %w", i+1, io.ErrUnexpectedEOF)
		}
		out[i] = sc.Text()
	}
	return out, nil
}

func (e *env) convert(arg string) error {
	a, err := angle.Parse(arg)
	if err != nil {
		e.log.Warn("bad angle", "arg", arg, "err", err)
		return err
	}
	e.println(angle.Convert[float64](a, e.unit))
	return nil
}

func (e *env) rank(arg1, arg2 string) error {
	k1, err := num.ParseKind(arg1)
	if err != nil {
		return err
	}
	k2, err := num.ParseKind(arg2)
	if err != nil {
		return err
	}

	higher, lower := num.Resolve(k1, k2)
	fmt.Fprintf(e.w, "%v %v\n", higher, lower)
	return nil
}

type textUnmarshaler[P any] interface {
	*P
	UnmarshalText([]byte) error
}

func parseTuple[P any, PP textUnmarshaler[P]](e *env, arg string) (P, error) {
	var t P
	err := PP(&t).UnmarshalText([]byte(arg))
	if err != nil {
		e.log.Warn("bad tuple", "arg", arg, "type", e.kind, "err", err)
	}
	return t, err
}

func points[T num.Scalar](e *env, args []string) (a, b geom.PointN[T], err error) {
	a, err = parseTuple[geom.PointN[T]](e, args[0])
	if err != nil {
		return a, b, err
	}
	b, err = parseTuple[geom.PointN[T]](e, args[1])
	if err != nil {
		return a, b, err
	}
	if a.Len() != b.Len() {
		return a, b, &geom.DimensionError{Expected: a.Len(), Actual: b.Len()}
	}
	return a, b, nil
}

func vectors[T num.Scalar](e *env, args []string) (u, v geom.VectorN[T], err error) {
	a, b, err := points[T](e, args)
	return a.Vector(), b.Vector(), err
}

func runAs[T num.Scalar](e *env, name string, args []string) error {
	switch name {
	case "distance", "distancesq":
		a, b, err := points[T](e, args)
		if err != nil {
			return err
		}
		if name == "distancesq" {
			e.println(a.DistanceSq(b))
			return nil
		}
		e.println(a.Distance(b))

	case "magnitude", "normalize":
		v, err := parseTuple[geom.VectorN[T]](e, args[0])
		if err != nil {
			return err
		}
		if name == "magnitude" {
			e.println(v.Magnitude())
			return nil
		}
		if num.IsInteger[T]() && v.MagnitudeSq() == 0 {
			return errors.New("normalize: zero-length integer vector")
		}
		e.println(v.Normalized())

	case "dot":
		u, v, err := vectors[T](e, args)
		if err != nil {
			return err
		}
		e.println(u.Dot(v))

	case "between":
		a, b, err := points[T](e, args)
		if err != nil {
			return err
		}
		e.println(geom.Between(a, b))

	case "angle":
		u, v, err := vectors[T](e, args)
		if err != nil {
			return err
		}
		e.println(angle.Convert[float64](geom.AngleBetween[float64](u, v), e.unit))

	case "heading":
		v, err := parseTuple[geom.Vector2[T]](e, args[0])
		if err != nil {
			return err
		}
		e.println(angle.Convert[float64](geom.Direction[float64](v), e.unit))

	case "polar":
		a, err := angle.Parse(args[0])
		if err != nil {
			e.log.Warn("bad angle", "arg", args[0], "err", err)
			return err
		}
		m, err := parseTuple[geom.Vector1[T]](e, args[1])
		if err != nil {
			return err
		}
		e.println(geom.Polar(a, m.X()))

	default:
		return fmt.Errorf("unknown command %q", name)
	}

	return nil
}
