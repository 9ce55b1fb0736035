package stack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

// The exponent is the value pushed last: top = second ^ top.
func TestPow(t *testing.T) {
	s := NewClassic(2.0, 10.0, 2.0, 3.0)

	require.NoError(t, Pow[float64](s))

	require.InDelta(t, 100.0, s.X(), epsilon)
	require.Equal(t, 2.0, s.Y())
	require.Equal(t, 3.0, s.Z())
	require.Equal(t, 3.0, s.T())
}

func TestPowDynamic(t *testing.T) {
	s := NewDynamic[float64]()
	s.Push(10.0)
	s.Push(2.0)

	require.NoError(t, Pow[float64](s))

	require.Equal(t, 1, s.Len())
	top, ok := s.Get(0)
	require.True(t, ok)
	require.InDelta(t, 100.0, top, epsilon)
}

func TestUnaryFloatOps(t *testing.T) {
	cases := []struct {
		name string
		op   func(Applier[float64]) error
		in   float64
		want float64
	}{
		{"ln", Ln[float64], 42.0, 3.7376696182833684},
		{"log2", Log2[float64], 64.0, 6.0},
		{"log10", Log10[float64], 100.0, 2.0},
		{"exp", Exp[float64], 1.0, math.E},
		{"exp2", Exp2[float64], 12.0, 4096.0},
		{"sin", Sin[float64], math.Pi / 6, 0.5},
		{"cos", Cos[float64], math.Pi / 3, 0.5},
		{"tan", Tan[float64], math.Pi / 4, 1.0},
		{"asin", Asin[float64], 0.5, math.Pi / 6},
		{"acos", Acos[float64], 0.5, math.Pi / 3},
		{"atan", Atan[float64], 1.0, math.Pi / 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewClassic(c.in, 1.0, 2.0, 3.0)

			require.NoError(t, c.op(s))

			require.InDelta(t, c.want, s.X(), epsilon)
			require.Equal(t, 1.0, s.Y())
			require.Equal(t, 2.0, s.Z())
			require.Equal(t, 3.0, s.T())
		})
	}
}

func TestAtan2(t *testing.T) {
	s := NewClassic(3.0, math.Sqrt(3.0), 2.0, 3.0)

	require.NoError(t, Atan2[float64](s))

	require.InDelta(t, math.Pi/6, s.X(), epsilon)
	require.Equal(t, 2.0, s.Y())
	require.Equal(t, 3.0, s.Z())
	require.Equal(t, 3.0, s.T())
}

// Domain errors are not trapped: the result is NaN, not a stack error.
func TestAsinOutOfDomain(t *testing.T) {
	s := NewClassic(2.0, 1.0, 1.0, 1.0)

	require.NoError(t, Asin[float64](s))
	require.True(t, math.IsNaN(s.X()))
}

func TestFloatUnderflow(t *testing.T) {
	s := NewDynamic[float64]()
	expectUnderflow(t, Ln[float64](s), 1, 0)

	s.Push(2.0)
	expectUnderflow(t, Pow[float64](s), 2, 1)
	expectUnderflow(t, Atan2[float64](s), 2, 1)

	require.Equal(t, 1, s.Len())
}
