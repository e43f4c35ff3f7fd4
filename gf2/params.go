package gf2

import (
	"math/bits"

	"github.com/lavode/coinflip/rng"
)

// FindIrreducible draws random degree-size polynomials until it finds one
// that is irreducible over GF(2), using the Ben-Or / Rabin test: f is
// irreducible iff x^(2^size) ≡ x (mod f) and, for every prime p dividing
// size, gcd(x^(2^(size/p)) - x, f) = 1.
func FindIrreducible(size uint, src rng.Source) (uint64, error) {
	if size == 0 || size > maxSize {
		return 0, ErrUnsupportedSize
	}

	primes := primeFactorsOf(uint64(size))

	for {
		candidate := randomMonicCandidate(size, src)
		if isIrreducible(candidate, size, primes) {
			return candidate, nil
		}
	}
}

// randomMonicCandidate returns a random degree-size polynomial with its
// leading and constant terms forced to 1 — the only two bits an
// irreducible polynomial's caller can fix in advance.
func randomMonicCandidate(size uint, src rng.Source) uint64 {
	leading := uint64(1) << size
	if size == 1 {
		return leading | 1
	}
	middle := src.RandomBelow(uint64(1) << (size - 1))
	return leading | (middle << 1) | 1
}

// isIrreducible runs the Ben-Or test for f, a candidate degree-size
// polynomial, given the prime factors of size itself.
func isIrreducible(f uint64, size uint, primes []uint64) bool {
	if xPow2ToK(size, f) != 0b10 {
		return false
	}

	for _, p := range primes {
		reduced := xPow2ToK(size/uint(p), f) ^ 0b10
		if reduced == 0 {
			// x^(2^(size/p)) == x (mod f): f divides a strictly
			// smaller field's defining polynomial, so it factors.
			return false
		}
		if polyGCD(reduced, f) != 1 {
			return false
		}
	}
	return true
}

// xPow2ToK computes x^(2^k) mod f by repeated squaring of the polynomial
// x (bit pattern 0b10) under f.
func xPow2ToK(k uint, f uint64) uint64 {
	result := uint64(0b10)
	for i := uint(0); i < k; i++ {
		result = polyMulMod(result, result, f)
	}
	return result
}

// polyMulMod multiplies two GF(2)-polynomials and reduces modulo f, whose
// leading bit sits at position deg(f).
func polyMulMod(a, b, f uint64) uint64 {
	hi, lo := clmul(a, b)
	return reduce128(hi, lo, uint(bits.Len64(f)-1), f)
}

// polyGCD returns gcd(a, b) over GF(2)[x], discarding the Bezout
// coefficients polyEGCD also computes.
func polyGCD(a, b uint64) uint64 {
	for b != 0 {
		_, r := polyDivMod(a, b)
		a, b = b, r
	}
	return a
}

// primeFactorsOf returns the distinct prime factors of n via trial
// division. n is either a field size (from FindIrreducible) or a
// multiplicative group order 2^size - 1 (from FindGenerator); for the
// table sizes 8, 16 and 32 trial division is fast.
func primeFactorsOf(n uint64) []uint64 {
	var factors []uint64
	for p := uint64(2); p*p <= n; p++ {
		if n%p == 0 {
			factors = append(factors, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// FindGenerator draws random nonzero elements of GF(2^size)/mod until it
// finds one whose multiplicative order is exactly 2^size - 1, i.e. a
// generator of the field's cyclic multiplicative group.
func FindGenerator(size uint, mod uint64, src rng.Source) (uint64, error) {
	if size == 0 || size > maxSize {
		return 0, ErrUnsupportedSize
	}

	order := groupOrder(size)
	factors := primeFactorsOf(order)

	for {
		g := src.RandomIn(1, order+1)
		elem := Element{size, mod, g}

		isGenerator := true
		for _, q := range factors {
			if elem.Pow(order / q).value == 1 {
				isGenerator = false
				break
			}
		}
		if isGenerator {
			return g, nil
		}
	}
}

// DeriveGenerator re-randomizes a known generator g of GF(2^size)/mod by
// raising it to a random exponent s coprime to the group order, so that
// different protocol runs reusing a hardcoded (mod, g) pair do not all
// traverse the same subgroup in the same way.
func DeriveGenerator(size uint, mod uint64, g uint64, src rng.Source) uint64 {
	order := groupOrder(size)
	for {
		s := src.RandomIn(1, order+1)
		if gcdUint64(s, order) == 1 {
			return Element{size, mod, g}.Pow(s).value
		}
	}
}

func gcdUint64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
