package polynomial

// Point is one data point (x, y) a polynomial passes through.
type Point[T any] struct {
	X, Y T
}

// MaybePoint is a Point that may be an erasure: a recipient who never
// produced a value for this x. Present=false marks an erasure; X/Y are
// meaningless in that case.
type MaybePoint[T any] struct {
	X, Y    T
	Present bool
}

// Interpolate builds the unique polynomial of degree < len(points) passing
// through every (x_j, y_j), via Lagrange's formula:
//
//	L(x) = sum_j y_j * prod_{i != j} (x - x_i) / (x_j - x_i)
//
// Every denominator is divided out immediately through ring.Inv; there is
// no deferred/symbolic-denominator path. Interpolate fails with ring.Inv's
// error when a denominator has no inverse: always when two points share an
// x-coordinate (the denominator is zero), and over a ring such as IntMod
// with a composite modulus also when some difference x_j - x_i shares a
// factor with it.
func Interpolate[T any](ring Field[T], points []Point[T]) (Polynomial[T], error) {
	acc := Zero(ring)

	for j, pj := range points {
		basis := One(ring)
		denom := ring.One()

		for i, pi := range points {
			if i == j {
				continue
			}
			// (x - x_i), as the polynomial [-x_i, 1].
			monomial := New(ring, []T{ring.Sub(ring.Zero(), pi.X), ring.One()})
			basis = basis.Mul(monomial)
			denom = ring.Mul(denom, ring.Sub(pj.X, pi.X))
		}

		denomInv, err := ring.Inv(denom)
		if err != nil {
			return Polynomial[T]{}, err
		}

		term := basis.ScalarMul(ring.Mul(pj.Y, denomInv))
		acc = acc.Add(term)
	}

	return acc, nil
}

// Decode implements Berlekamp-Welch-style Reed-Solomon decoding: given a
// mix of surviving points and erasures, it recovers the degree-<k
// polynomial consistent with the surviving points, tolerating up to
// floor((n - k - d) / 2) errors among them (n = surviving count, d =
// erasure count). It returns ErrDecodingFailed when no such polynomial is
// consistent with the input.
func Decode[T any](ring Field[T], points []MaybePoint[T], k int) (Polynomial[T], error) {
	var surviving []Point[T]
	erasures := 0
	for _, p := range points {
		if p.Present {
			surviving = append(surviving, Point[T]{X: p.X, Y: p.Y})
		} else {
			erasures++
		}
	}
	n := len(surviving)
	if n == 0 {
		return Polynomial[T]{}, ErrDecodingFailed
	}

	g0 := One(ring)
	for _, p := range surviving {
		monomial := New(ring, []T{ring.Sub(ring.Zero(), p.X), ring.One()})
		g0 = g0.Mul(monomial)
	}

	g1, err := Interpolate(ring, surviving)
	if err != nil {
		return Polynomial[T]{}, err
	}

	stop := (n + k - erasures - 1) / 2
	if stop < 0 {
		stop = 0
	}

	steps, err := EGCD(g0, g1, stop)
	if err != nil {
		return Polynomial[T]{}, ErrDecodingFailed
	}
	last := steps[len(steps)-1]

	q, r, err := last.R.DivMod(last.T)
	if err != nil {
		return Polynomial[T]{}, ErrDecodingFailed
	}
	if !r.IsZero() || q.Degree() >= k {
		return Polynomial[T]{}, ErrDecodingFailed
	}

	return q, nil
}
