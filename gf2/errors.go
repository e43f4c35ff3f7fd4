package gf2

import "errors"

// ErrNotInvertible is returned when an element has no multiplicative
// inverse with respect to its modulus. For a nonzero element under an
// irreducible modulus this should never happen; seeing it usually means
// the modulus passed in was not actually irreducible.
var ErrNotInvertible = errors.New("gf2: element is not invertible")

// ErrUnsupportedSize is returned when a field width falls outside the
// range this package can represent in a single machine word (1..63 bits).
var ErrUnsupportedSize = errors.New("gf2: unsupported field size")
