package geom_test

import (
	"math"
	"testing"

	"deedles.dev/xvec/angle"
	"deedles.dev/xvec/geom"
	"github.com/stretchr/testify/require"
)

func TestVectorMagnitude(t *testing.T) {
	v := geom.Vec2[float32](3, 4)
	require.Equal(t, float32(25), v.MagnitudeSq())
	require.Equal(t, float32(5), v.Magnitude())
	require.Equal(t, v.Magnitude(), v.Length())
	require.Equal(t, v.MagnitudeSq(), v.LengthSq())

	require.InDelta(t, 1, v.Normalized().Magnitude(), 1e-6)

	v3 := geom.Vec3(2.0, 3, 6)
	require.Equal(t, 7.0, v3.Magnitude())

	n := geom.VecN(1.0, 1, 1, 1, 1, 1, 1, 1, 1)
	require.Equal(t, 3.0, n.Magnitude())
}

func TestVectorMagnitudeOneDimension(t *testing.T) {
	require.Equal(t, -3.0, geom.Vec1(-3.0).Magnitude())
	require.Equal(t, -3.0, geom.Vec1(-3.0).Length())
	require.Equal(t, 9.0, geom.Vec1(-3.0).MagnitudeSq())
	require.Equal(t, float32(-2), geom.MagnitudeAs[float32](geom.Vec1(-2)))

	// Normalisation still divides by the Euclidean norm.
	require.InDelta(t, -1, geom.Vec1(-3.0).Normalized().X(), 1e-15)
}

func TestVectorMagnitudeAs(t *testing.T) {
	// 100² + 100² does not fit in an int8, but the accumulation
	// happens at int32.
	v := geom.Vec2[int8](100, 100)
	require.Equal(t, int32(20000), geom.MagnitudeSqAs[int32](v))
	require.Equal(t, int32(20000), geom.LengthSqAs[int32](v))
	require.Equal(t, int32(141), geom.MagnitudeAs[int32](v))

	// Asking for a narrower result still accumulates wide.
	w := geom.Vec2[int32](60, 80)
	require.Equal(t, int8(100), geom.MagnitudeAs[int8](w))
	require.Equal(t, int8(100), geom.LengthAs[int8](w))

	// A floating result type outranks an integer component type.
	u := geom.Vec2(1, 1)
	require.InDelta(t, math.Sqrt2, geom.MagnitudeAs[float64](u), 1e-15)
	require.Equal(t, 1, u.Magnitude())
}

func TestVectorNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   geom.Vector3[float64]
	}{
		{"axis", geom.Vec3(0.0, 0, 5)},
		{"diagonal", geom.Vec3(1.0, 1, 1)},
		{"negative", geom.Vec3(-3.0, 4, -12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.in.Normalized()
			require.InDelta(t, 1, n.Magnitude(), 1e-12)

			v := tt.in
			v.Normalize()
			require.Equal(t, n, v)

			// Direction is preserved.
			l := tt.in.Magnitude()
			for i, c := range n.All() {
				require.InDelta(t, tt.in.At(i)/l, c, 1e-12)
			}
		})
	}
}

func TestVectorNormalizeInteger(t *testing.T) {
	require.Equal(t, geom.Vec2(1, 0), geom.Vec2(10, 0).Normalized())
	require.Equal(t, geom.Vec2(0, 0), geom.Vec2(3, 4).Normalized())

	v := geom.Vec2(0, -7)
	v.Normalize()
	require.Equal(t, geom.Vec2(0, -1), v)

	require.Panics(t, func() { geom.Vec2(0, 0).Normalized() })
}

func TestVectorNormalizeZero(t *testing.T) {
	n := geom.Vec2(0.0, 0).Normalized()
	require.True(t, math.IsNaN(n.X()))
	require.True(t, math.IsNaN(n.Y()))
}

func TestVectorDot(t *testing.T) {
	require.Equal(t, 0, geom.Vec2(1, 0).Dot(geom.Vec2(0, 1)))

	v := geom.Vec2(2, 3)
	require.Equal(t, v.MagnitudeSq(), v.Dot(v))
	require.Equal(t, 13, v.Dot(v))

	require.Equal(t, 32.0, geom.Vec3(1.0, 2, 3).Dot(geom.Vec3(4.0, 5, 6)))
}

func TestAngleBetween(t *testing.T) {
	a := geom.AngleBetween[float32](geom.Vec2[float32](1, 0), geom.Vec2[float32](0, 1))
	require.InDelta(t, 90, angle.ToDegrees[float32](a), 1e-4)

	b := geom.AngleBetween[float64](geom.Vec2(1.0, 0), geom.Vec2(-1.0, 0))
	require.InDelta(t, math.Pi, b.Value(), 1e-12)

	// Lengths of integer vectors are not truncated before the ratio is
	// formed.
	c := geom.AngleBetween[float64](geom.Vec2(3, 0), geom.Vec2(3, 3))
	require.InDelta(t, 45, angle.ToDegrees[float64](c), 1e-9)

	for _, v := range []geom.Vector2[int]{geom.Vec2(1, 1), geom.Vec2(3, 4), geom.Vec2(-7, 2)} {
		self := geom.AngleBetween[float64](v, v)
		require.False(t, math.IsNaN(self.Value()), "%v", v)
		require.InDelta(t, 0, self.Value(), 1e-7, "%v", v)
	}

	e := geom.AngleBetween[float32](geom.Vec3[int8](1, 2, 3), geom.Vec3[int8](1, 2, 3))
	require.Equal(t, float32(0), e.Value())

	d := geom.AngleBetween[float64](geom.Vec3(1.0, 0, 0), geom.Vec3(0.0, 0, 2))
	require.InDelta(t, 90, angle.ToDegrees[float64](d), 1e-12)
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name string
		v    geom.Vector2[float64]
		deg  float64
	}{
		{"east", geom.Vec2(1.0, 0), 0},
		{"north", geom.Vec2(0.0, 1), 90},
		{"west", geom.Vec2(-2.0, 0), 180},
		{"south", geom.Vec2(0.0, -3), -90},
		{"northeast", geom.Vec2(1.0, 1), 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := geom.Direction[float64](tt.v)
			require.InDelta(t, tt.deg, angle.ToDegrees[float64](d), 1e-12)
		})
	}

	require.InDelta(t, math.Pi/4, geom.Direction[float32](geom.Vec2(5, 5)).Value(), 1e-6)
}

func TestPolar(t *testing.T) {
	v := geom.Polar(angle.Deg(90), 2.0)
	require.InDelta(t, 0, v.X(), 1e-12)
	require.InDelta(t, 2, v.Y(), 1e-12)

	w := geom.Polar(angle.RadF(math.Pi/3), 10.0)
	require.InDelta(t, 10, w.Magnitude(), 1e-12)
	require.InDelta(t, 60, angle.ToDegrees[float64](geom.Direction[float64](w)), 1e-9)

	i := geom.Polar(angle.Deg(0), 7)
	require.Equal(t, geom.Vec2(7, 0), i)

	j := geom.Polar(angle.Deg(180), -3)
	require.Equal(t, geom.Vec2(3, 0), j)

	// Unsigned components wrap like a negative integer conversion.
	u := geom.Polar(angle.Deg(180), uint(2))
	require.Equal(t, geom.Vec2(^uint(1), 0), u)
}

func TestVectorArithmetic(t *testing.T) {
	v := geom.Vec4(1, 2, 3, 4)
	w := geom.Vec4(4, 3, 2, 1)
	require.Equal(t, geom.Vec4(5, 5, 5, 5), v.Add(w))
	require.Equal(t, geom.Vec4(-3, -1, 1, 3), v.Sub(w))
	require.Equal(t, geom.Vec4(2, 4, 6, 8), v.Mul(2))
	require.Equal(t, geom.Vec4(0, 1, 1, 2), v.Div(2))
	require.Equal(t, geom.Vec4(-1, -2, -3, -4), v.Neg())
	require.True(t, v.Add(w).Sub(w).Equal(v))
	require.True(t, v.NotEqual(w))
	require.Equal(t, 4, v.W())

	x := v
	x.AddAssign(w).SubAssign(w).MulAssign(3).DivAssign(3)
	require.Equal(t, v, x)

	require.Equal(t, 20, v.DistanceSq(w))
	require.Equal(t, 4, v.Distance(w))

	s := geom.SplatVec[float32, [3]float32](2)
	require.Equal(t, geom.Vec3[float32](2, 2, 2), s)
}

func BenchmarkMagnitude(b *testing.B) {
	v := geom.Vec3(1.0, 2, 3)
	for b.Loop() {
		v.Magnitude()
	}
}

func BenchmarkNormalizedN(b *testing.B) {
	v := geom.VecN(1.0, 2, 3, 4, 5, 6, 7, 8)
	for b.Loop() {
		v.Normalized()
	}
}
