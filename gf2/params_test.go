package gf2

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lavode/coinflip/rng"
)

func TestFindIrreducibleProducesIrreduciblePolynomial(t *testing.T) {
	src := rng.NewDeterministic([]byte("irreducible-seed"))

	for _, size := range []uint{4, 8, 16} {
		mod, err := FindIrreducible(size, src)
		require.NoError(t, err)

		require.Equal(t, size+1, uint(bitsLen(mod)))
		require.True(t, isIrreducible(mod, size, primeFactorsOf(uint64(size))))
	}
}

func TestFindIrreducibleRejectsReducibleExample(t *testing.T) {
	// x^4 + 1 = (x+1)^4 over GF(2): reducible.
	require.False(t, isIrreducible(0b10001, 4, primeFactorsOf(4)))
}

func TestFindGeneratorHasFullOrder(t *testing.T) {
	src := rng.NewDeterministic([]byte("generator-seed"))

	mod, err := FindIrreducible(8, src)
	require.NoError(t, err)

	g, err := FindGenerator(8, mod, src)
	require.NoError(t, err)

	order := groupOrder(8)
	elem := New(8, mod, g)

	require.True(t, elem.Pow(order).Equal(One(8, mod)))
	for _, q := range primeFactorsOf(order) {
		require.False(t, elem.Pow(order/q).Equal(One(8, mod)))
	}
}

func TestDeriveGeneratorStaysAGenerator(t *testing.T) {
	src := rng.NewDeterministic([]byte("derive-seed"))

	table, ok := HardcodedModGen(8)
	require.True(t, ok)
	entry := table[0]

	g := DeriveGenerator(8, entry.Mod, entry.Generator, src)
	order := groupOrder(8)
	elem := New(8, entry.Mod, g)

	require.True(t, elem.Pow(order).Equal(One(8, entry.Mod)))
	for _, q := range primeFactorsOf(order) {
		require.False(t, elem.Pow(order/q).Equal(One(8, entry.Mod)))
	}
}

func TestGenerateParamsHardcodeUsesTable(t *testing.T) {
	src := rng.NewDeterministic([]byte("params-seed"))

	mod, g, err := GenerateParams(8, src, true)
	require.NoError(t, err)

	table, _ := HardcodedModGen(8)
	found := false
	for _, entry := range table {
		if entry.Mod == mod {
			found = true
		}
	}
	require.True(t, found, "expected mod to come from the hardcoded table")

	order := groupOrder(8)
	require.True(t, New(8, mod, g).Pow(order).Equal(One(8, mod)))
}

func TestGenerateParamsFallsBackWithoutTable(t *testing.T) {
	src := rng.NewDeterministic([]byte("params-seed-24"))

	mod, g, err := GenerateParams(24, src, true)
	require.NoError(t, err)
	require.True(t, isIrreducible(mod, 24, primeFactorsOf(24)))

	order := groupOrder(24)
	require.True(t, New(24, mod, g).Pow(order).Equal(One(24, mod)))
}

func bitsLen(v uint64) int {
	n := 0
	for v != 0 {
		n++
		v >>= 1
	}
	return n
}
