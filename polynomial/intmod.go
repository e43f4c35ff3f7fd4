package polynomial

// IntMod is the integers-mod-m instantiation of Field[int64]. The
// reference implementation's polynomial type worked over plain integers
// as well as GF(2^k) elements via duck typing; this package keeps that
// second axis available as a concrete Field so Polynomial[T] is provably
// generic rather than accidentally GF(2^k)-specific. Nothing in this
// module's coin-flipping path instantiates it (the protocol only ever
// shares over GF(2^k)) but intmod_test.go exercises Polynomial[int64]
// directly against it.
type IntMod struct {
	M int64
}

func (r IntMod) reduce(v int64) int64 {
	v %= r.M
	if v < 0 {
		v += r.M
	}
	return v
}

func (r IntMod) Zero() int64 { return 0 }
func (r IntMod) One() int64  { return r.reduce(1) }

func (r IntMod) Add(a, b int64) int64 { return r.reduce(a + b) }
func (r IntMod) Sub(a, b int64) int64 { return r.reduce(a - b) }
func (r IntMod) Mul(a, b int64) int64 { return r.reduce(a * b) }
func (r IntMod) Equal(a, b int64) bool {
	return r.reduce(a) == r.reduce(b)
}

// Inv returns the modular inverse of a via the extended Euclidean
// algorithm on plain integers, failing if gcd(a, m) != 1 (m need not be
// prime, so not every nonzero residue is invertible).
func (r IntMod) Inv(a int64) (int64, error) {
	a = r.reduce(a)
	g, x := extGCDInt(a, r.M)
	if g != 1 {
		return 0, ErrZeroDivisor
	}
	return r.reduce(x), nil
}

// extGCDInt returns gcd(a, b) and a Bezout coefficient x such that
// a*x + b*y = gcd(a, b) for some y.
func extGCDInt(a, b int64) (gcd, x int64) {
	oldR, r := a, b
	oldS, s := int64(1), int64(0)

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}

	return oldR, oldS
}
