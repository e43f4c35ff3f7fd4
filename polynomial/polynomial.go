// Package polynomial implements dense, ring-parameterized polynomials:
// add, subtract, multiply, Euclidean divmod, extended GCD, Horner
// evaluation, Lagrange interpolation, and Berlekamp-Welch decoding. The
// coefficient type is a generic parameter; callers supply a Ring or Field
// describing how that type behaves, rather than the package hard-coding
// one coefficient representation. This mirrors the reference
// implementation's duck-typed polynomial, which worked interchangeably
// over plain integers and over GF(2^k) elements, without the dynamic
// dispatch: the ring description is an explicit value passed alongside
// the coefficients.
package polynomial

// Ring describes the operations a polynomial's coefficients must support:
// an additive and multiplicative identity, addition, subtraction,
// multiplication, and equality. T is expected to be an immutable value
// type (a plain integer, or something like gf2.Element).
type Ring[T any] interface {
	Zero() T
	One() T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Equal(a, b T) bool
}

// Field extends Ring with multiplicative inversion, needed for scalar
// division, synthetic polynomial long division, and Lagrange
// interpolation's denominators.
type Field[T any] interface {
	Ring[T]
	Inv(a T) (T, error)
}

// Polynomial is a dense, little-endian coefficient vector (index 0 is the
// constant term) over a coefficient ring T. It is canonicalized on
// construction: trailing (highest-degree) zero coefficients are stripped,
// except the zero polynomial itself stays a single-element [0] — it is
// never represented as an empty slice.
type Polynomial[T any] struct {
	ring   Field[T]
	Coeffs []T
}

// New builds a canonicalized Polynomial from coeffs. The slice is copied;
// callers may reuse or mutate coeffs afterwards.
func New[T any](ring Field[T], coeffs []T) Polynomial[T] {
	cc := append([]T(nil), coeffs...)
	return canonicalize(ring, cc)
}

// Zero returns the zero polynomial, [ring.Zero()].
func Zero[T any](ring Field[T]) Polynomial[T] {
	return Polynomial[T]{ring: ring, Coeffs: []T{ring.Zero()}}
}

// One returns the constant polynomial 1.
func One[T any](ring Field[T]) Polynomial[T] {
	return Polynomial[T]{ring: ring, Coeffs: []T{ring.One()}}
}

func canonicalize[T any](ring Field[T], coeffs []T) Polynomial[T] {
	last := len(coeffs) - 1
	for last > 0 && ring.Equal(coeffs[last], ring.Zero()) {
		last--
	}
	return Polynomial[T]{ring: ring, Coeffs: coeffs[:last+1]}
}

// Ring returns the coefficient-ring descriptor this polynomial was built
// with, so callers that only have a Polynomial value in hand can still
// build further polynomials (zero, one, scalar constants) over the same
// ring.
func (p Polynomial[T]) Ring() Field[T] {
	return p.ring
}

// Degree returns the index of the leading (highest-order, nonzero)
// coefficient. The zero polynomial's degree is 0, by convention, not -1.
func (p Polynomial[T]) Degree() int {
	return len(p.Coeffs) - 1
}

// IsZero reports whether p is the canonical zero polynomial.
func (p Polynomial[T]) IsZero() bool {
	return len(p.Coeffs) == 1 && p.ring.Equal(p.Coeffs[0], p.ring.Zero())
}

func (p Polynomial[T]) coeffAt(i int) T {
	if i < 0 || i >= len(p.Coeffs) {
		return p.ring.Zero()
	}
	return p.Coeffs[i]
}

// Eval evaluates p at x via Horner's rule, from the leading coefficient
// down to the constant term.
func (p Polynomial[T]) Eval(x T) T {
	result := p.Coeffs[len(p.Coeffs)-1]
	for i := len(p.Coeffs) - 2; i >= 0; i-- {
		result = p.ring.Add(p.ring.Mul(result, x), p.Coeffs[i])
	}
	return result
}

// Add returns p+q, padding the shorter operand with the ring's zero.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = p.ring.Add(p.coeffAt(i), q.coeffAt(i))
	}
	return canonicalize(p.ring, out)
}

// Sub returns p-q.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = p.ring.Sub(p.coeffAt(i), q.coeffAt(i))
	}
	return canonicalize(p.ring, out)
}

// Mul returns p*q via schoolbook O(deg(p)*deg(q)) multiplication.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	if p.IsZero() || q.IsZero() {
		return Zero(p.ring)
	}

	out := make([]T, len(p.Coeffs)+len(q.Coeffs)-1)
	for i := range out {
		out[i] = p.ring.Zero()
	}
	for i, a := range p.Coeffs {
		if p.ring.Equal(a, p.ring.Zero()) {
			continue
		}
		for j, b := range q.Coeffs {
			out[i+j] = p.ring.Add(out[i+j], p.ring.Mul(a, b))
		}
	}
	return canonicalize(p.ring, out)
}

// ScalarMul multiplies every coefficient of p by the ring element s.
func (p Polynomial[T]) ScalarMul(s T) Polynomial[T] {
	out := make([]T, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = p.ring.Mul(c, s)
	}
	return canonicalize(p.ring, out)
}

// DivMod performs synthetic long division: p = q*d + r with
// deg(r) < deg(d). It requires d to be nonzero; when deg(d) = 0 the
// result is (p * d[0]^-1, 0).
func (p Polynomial[T]) DivMod(d Polynomial[T]) (q, r Polynomial[T], err error) {
	if d.IsZero() {
		return Polynomial[T]{}, Polynomial[T]{}, ErrZeroDivisor
	}

	if d.Degree() == 0 {
		inv, invErr := p.ring.Inv(d.Coeffs[0])
		if invErr != nil {
			return Polynomial[T]{}, Polynomial[T]{}, invErr
		}
		return p.ScalarMul(inv), Zero(p.ring), nil
	}

	db := d.Degree()
	c := d.Coeffs[db]
	cInv, invErr := p.ring.Inv(c)
	if invErr != nil {
		return Polynomial[T]{}, Polynomial[T]{}, invErr
	}

	remainder := p
	qCoeffs := make([]T, 0)
	if p.Degree() >= db {
		qCoeffs = make([]T, p.Degree()-db+1)
		for i := range qCoeffs {
			qCoeffs[i] = p.ring.Zero()
		}
	}

	for !remainder.IsZero() && remainder.Degree() >= db {
		dr := remainder.Degree()
		shift := dr - db
		coeff := p.ring.Mul(remainder.Coeffs[dr], cInv)

		if shift < len(qCoeffs) {
			qCoeffs[shift] = coeff
		}

		term := shiftedMonomial(p.ring, coeff, shift)
		remainder = remainder.Sub(term.Mul(d))
	}

	if len(qCoeffs) == 0 {
		qCoeffs = []T{p.ring.Zero()}
	}

	return canonicalize(p.ring, qCoeffs), remainder, nil
}

// shiftedMonomial returns the single-term polynomial coeff * x^shift.
func shiftedMonomial[T any](ring Field[T], coeff T, shift int) Polynomial[T] {
	out := make([]T, shift+1)
	for i := range out {
		out[i] = ring.Zero()
	}
	out[shift] = coeff
	return canonicalize(ring, out)
}

// EGCDStep is one entry of the extended-Euclidean remainder sequence:
// r = a*s + b*t.
type EGCDStep[T any] struct {
	R, S, T Polynomial[T]
}

// EGCD runs the extended Euclidean algorithm on polynomials a and b,
// pursuing the remainder sequence r0=a, r1=b, r2, r3, ... until the
// latest remainder's degree drops to stop or below (or hits zero first).
// It returns every step, each satisfying the invariant r_i = a*s_i + b*t_i.
func EGCD[T any](a, b Polynomial[T], stop int) ([]EGCDStep[T], error) {
	ring := a.ring
	steps := []EGCDStep[T]{
		{R: a, S: One(ring), T: Zero(ring)},
		{R: b, S: Zero(ring), T: One(ring)},
	}

	for {
		last := steps[len(steps)-1]
		if last.R.IsZero() || last.R.Degree() <= stop {
			break
		}
		prev := steps[len(steps)-2]

		q, r, err := prev.R.DivMod(last.R)
		if err != nil {
			return nil, err
		}

		steps = append(steps, EGCDStep[T]{
			R: r,
			S: prev.S.Sub(q.Mul(last.S)),
			T: prev.T.Sub(q.Mul(last.T)),
		})
	}

	return steps, nil
}
