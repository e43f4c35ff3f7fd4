package gf2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// S1: k=8, mod=0x11D (x^8+x^4+x^3+x^2+1).
const s1Mod = 0x11d

func TestMulCommutativeAndAssociative(t *testing.T) {
	a := New(8, s1Mod, 0xa6)
	b := New(8, s1Mod, 0x87)
	c := New(8, s1Mod, 0x5d)

	require.True(t, a.Mul(b).Equal(b.Mul(a)))
	require.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))))
}

func TestAddIsSelfInverse(t *testing.T) {
	a := New(8, s1Mod, 0x42)
	require.True(t, a.Add(a).IsZero())
}

func TestMulInverseRoundTrip(t *testing.T) {
	for v := uint64(1); v < 256; v++ {
		a := New(8, s1Mod, v)
		inv, err := a.Inverse()
		require.NoError(t, err)
		require.True(t, a.Mul(inv).Equal(One(8, s1Mod)))
	}
}

// S1 concrete scenario: FE(0xA6) * FE(0x87) pinned against a value
// computed independently via schoolbook carryless multiplication reduced
// by 0x11D.
func TestS1MulPinned(t *testing.T) {
	a := New(8, s1Mod, 0xa6)
	b := New(8, s1Mod, 0x87)
	got := a.Mul(b)

	want := New(8, s1Mod, 0xac)
	require.True(t, got.Equal(want), "got %s want %s", got, want)
}

func TestS1DivRoundTrip(t *testing.T) {
	a := New(8, s1Mod, 0xa6)
	b := New(8, s1Mod, 0x87)

	quotient, err := a.Mul(b).Div(b)
	require.NoError(t, err)
	require.True(t, quotient.Equal(a))
}

func TestPowZeroExponent(t *testing.T) {
	a := New(8, s1Mod, 0x34)
	require.True(t, a.Pow(0).Equal(One(8, s1Mod)))
}

func TestPowZeroBase(t *testing.T) {
	z := Zero(8, s1Mod)
	require.True(t, z.Pow(0).Equal(One(8, s1Mod)))
	require.True(t, z.Pow(5).IsZero())
}

func TestPowGroupOrderIsIdentity(t *testing.T) {
	a := New(8, s1Mod, 0x05)
	require.True(t, a.Pow(255).Equal(One(8, s1Mod)))
}

func TestInverseOfZeroFails(t *testing.T) {
	z := Zero(8, s1Mod)
	_, err := z.Inverse()
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestFieldMismatchPanics(t *testing.T) {
	a := New(8, s1Mod, 1)
	b := New(8, 0x11b, 1)
	require.Panics(t, func() { a.Add(b) })
}

func TestNewMasksOverflowingValue(t *testing.T) {
	e := New(4, 0x13, 0xff)
	require.Equal(t, uint64(0xf), e.Uint64())
}
