package cplx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmath/cplx"
)

func TestNew_Finite(t *testing.T) {
	z, err := cplx.New(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, z.Re)
	assert.Equal(t, 2.0, z.Im)
}

func TestNew_RejectsNonFinite(t *testing.T) {
	cases := []struct {
		name   string
		re, im float64
	}{
		{"NaN real", math.NaN(), 0},
		{"NaN imaginary", 0, math.NaN()},
		{"+Inf real", math.Inf(1), 0},
		{"-Inf imaginary", 0, math.Inf(-1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cplx.New(tc.re, tc.im)
			assert.ErrorIs(t, err, cplx.ErrNonFinite)
		})
	}
}

func TestFromReal(t *testing.T) {
	z, err := cplx.FromReal(-2.5)
	require.NoError(t, err)
	assert.Equal(t, cplx.Complex{Re: -2.5}, z)

	_, err = cplx.FromReal(math.Inf(1))
	assert.ErrorIs(t, err, cplx.ErrNonFinite)
}

func TestZeroValue_IsComplexZero(t *testing.T) {
	var z cplx.Complex
	assert.True(t, z.IsZero())
	assert.Equal(t, 0.0, z.Modulus())
	assert.False(t, mustNew(t, 0, 1e-300).IsZero())
}

func TestOne(t *testing.T) {
	one := cplx.Complex{}.One()
	assert.Equal(t, cplx.Complex{Re: 1}, one)

	z := mustNew(t, 3, -4)
	assert.Equal(t, z, z.Mul(one))
}

func TestEqual_Exact(t *testing.T) {
	z := mustNew(t, 1, 2)
	assert.True(t, z.Equal(mustNew(t, 1, 2)))
	assert.False(t, z.Equal(mustNew(t, 1, 2.0000000001)))
	assert.False(t, z.Equal(mustNew(t, -1, 2)))
}

func TestString(t *testing.T) {
	cases := []struct {
		z    cplx.Complex
		want string
	}{
		{cplx.Complex{Re: 1, Im: 2}, "1 + 2 i"},
		{cplx.Complex{Re: 1, Im: -1}, "1 - 1 i"},
		{cplx.Complex{Re: -0.5, Im: 1.5}, "-0.5 + 1.5 i"},
		{cplx.Complex{}, "0 + 0 i"},
		{cplx.Complex{Re: 2.25, Im: -3.75}, "2.25 - 3.75 i"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.z.String())
	}
}

func TestModulus(t *testing.T) {
	// √(1² + 2²) must agree with math.Sqrt(5) to the last bit.
	assert.Equal(t, math.Sqrt(5), mustNew(t, 1, 2).Modulus())

	// A 3-4-5 triangle keeps the modulus exact.
	assert.Equal(t, 5.0, mustNew(t, 3, -4).Modulus())
}

func TestAbs2(t *testing.T) {
	assert.Equal(t, 5.0, mustNew(t, 1, 2).Abs2())
	assert.Equal(t, 2.0, mustNew(t, 1, -1).Abs2())
}

func TestArg_Quadrants(t *testing.T) {
	assert.Equal(t, 0.0, mustNew(t, 1, 0).Arg())
	assert.InDelta(t, math.Pi/2, mustNew(t, 0, 3).Arg(), 1e-15)
	assert.InDelta(t, math.Pi, mustNew(t, -2, 0).Arg(), 1e-15)
	assert.InDelta(t, -math.Pi/2, mustNew(t, 0, -5).Arg(), 1e-15)
	assert.InDelta(t, math.Pi/4, mustNew(t, 1, 1).Arg(), 1e-15)
	assert.InDelta(t, -3*math.Pi/4, mustNew(t, -1, -1).Arg(), 1e-15)
}

func TestDiv(t *testing.T) {
	z := mustNew(t, 1, 2)
	w := mustNew(t, 1, -1)

	q, err := z.Div(w)
	require.NoError(t, err)
	assert.Equal(t, cplx.Complex{Re: -0.5, Im: 1.5}, q)

	// Round trip: (z/w)·w recovers z.
	back := q.Mul(w)
	assert.InDelta(t, z.Re, back.Re, 1e-15)
	assert.InDelta(t, z.Im, back.Im, 1e-15)
}

func TestDiv_ByZero(t *testing.T) {
	z := mustNew(t, 1, 2)

	_, err := z.Div(cplx.Complex{})
	assert.ErrorIs(t, err, cplx.ErrDivisionByZero)

	_, err = z.DivReal(0)
	assert.ErrorIs(t, err, cplx.ErrDivisionByZero)

	_, err = cplx.Complex{}.Inv()
	assert.ErrorIs(t, err, cplx.ErrDivisionByZero)
}

func TestDivReal(t *testing.T) {
	q, err := mustNew(t, 3, -9).DivReal(3)
	require.NoError(t, err)
	assert.Equal(t, cplx.Complex{Re: 1, Im: -3}, q)
}

func TestInv(t *testing.T) {
	z := mustNew(t, 1, -1)
	inv, err := z.Inv()
	require.NoError(t, err)
	assert.Equal(t, cplx.Complex{Re: 0.5, Im: 0.5}, inv)

	// z·z⁻¹ lands on the identity exactly for this dyadic value.
	assert.Equal(t, cplx.Complex{Re: 1}, z.Mul(inv))
}
