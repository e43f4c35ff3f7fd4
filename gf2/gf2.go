// Package gf2 implements arithmetic over the binary extension fields
// GF(2^k), for k in the range this package can fit in a single uint64
// word (up to 63 bits). Field elements are bit-strings of length k,
// interpreted as polynomials over GF(2) reduced modulo a degree-k
// irreducible polynomial.
//
// The modulus is carried on every element rather than hidden behind a
// package-level Field object, matching the reference implementation this
// package is ported from: a GF2 value knows its own (size, mod) and two
// elements compare unequal unless both match.
package gf2

import "fmt"

// maxSize is the largest field width this package can represent: a
// degree-size modulus needs size+1 bits, which must fit in a uint64.
const maxSize = 63

// Element is a single value in GF(2^size), reduced modulo mod. mod is
// encoded the same way the field's literature and the hardcoded table
// write it: as the full (size+1)-bit polynomial, leading bit included
// (e.g. 0x11D for x^8+x^4+x^3+x^2+1).
type Element struct {
	size  uint
	mod   uint64
	value uint64
}

// New builds a field element, masking value down to size bits. It does
// not validate that mod is irreducible; callers get that guarantee from
// FindIrreducible or the hardcoded table.
func New(size uint, mod uint64, value uint64) Element {
	return Element{size: size, mod: mod, value: value & sizeMask(size)}
}

// Zero returns the additive identity of GF(2^size) under mod.
func Zero(size uint, mod uint64) Element {
	return Element{size: size, mod: mod}
}

// One returns the multiplicative identity of GF(2^size) under mod.
func One(size uint, mod uint64) Element {
	return Element{size: size, mod: mod, value: 1}
}

func sizeMask(size uint) uint64 {
	if size >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << size) - 1
}

// Size reports the field's bit-width k.
func (e Element) Size() uint { return e.size }

// Mod reports the (size+1)-bit reduction polynomial, leading bit included.
func (e Element) Mod() uint64 { return e.mod }

// Uint64 returns the element's raw value as an unsigned integer in
// [0, 2^size).
func (e Element) Uint64() uint64 { return e.value }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e.value == 0 }

func (e Element) sameField(o Element) {
	if e.size != o.size || e.mod != o.mod {
		panic(fmt.Sprintf("gf2: field mismatch: GF(2^%d)/0x%x vs GF(2^%d)/0x%x", e.size, e.mod, o.size, o.mod))
	}
}

// Equal reports whether e and o are the same element of the same field.
func (e Element) Equal(o Element) bool {
	return e.size == o.size && e.mod == o.mod && e.value == o.value
}

// Add returns e+o. Addition in GF(2^k) is bitwise XOR; no reduction is
// ever needed since XOR cannot raise the degree.
func (e Element) Add(o Element) Element {
	e.sameField(o)
	return Element{e.size, e.mod, e.value ^ o.value}
}

// Sub is identical to Add: GF(2^k) has characteristic 2, so subtraction
// and addition coincide.
func (e Element) Sub(o Element) Element {
	return e.Add(o)
}

// Mul returns e*o: schoolbook carryless multiplication of the two
// bit-polynomials, followed by reduction modulo e.mod.
func (e Element) Mul(o Element) Element {
	e.sameField(o)
	hi, lo := clmul(e.value, o.value)
	return Element{e.size, e.mod, reduce128(hi, lo, e.size, e.mod)}
}

// groupOrder is the order of GF(2^size)'s multiplicative group.
func groupOrder(size uint) uint64 {
	return sizeMask(size)
}

// Pow returns e^exp. The exponent is taken modulo the multiplicative
// group's order (2^size - 1) whenever e is nonzero, per the usual
// convention that a^(group order) = 1. 0^0 = 1, and 0^exp = 0 for exp > 0.
func (e Element) Pow(exp uint64) Element {
	if e.IsZero() {
		if exp == 0 {
			return One(e.size, e.mod)
		}
		return Zero(e.size, e.mod)
	}

	order := groupOrder(e.size)
	if order != 0 {
		exp %= order
	}

	result := One(e.size, e.mod)
	base := e
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// Inverse returns e^-1 via the extended Euclidean algorithm run on the
// underlying GF(2)-polynomials of e and the field modulus. It fails with
// ErrNotInvertible if gcd(e, mod) != 1 — which should not happen for a
// nonzero e given an irreducible mod.
func (e Element) Inverse() (Element, error) {
	if e.IsZero() {
		return Element{}, ErrNotInvertible
	}

	g, s := polyEGCD(e.value, e.mod)
	if g != 1 {
		return Element{}, ErrNotInvertible
	}
	return Element{e.size, e.mod, s & sizeMask(e.size)}, nil
}

// Div returns e/o, i.e. e * o^-1.
func (e Element) Div(o Element) (Element, error) {
	e.sameField(o)
	inv, err := o.Inverse()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv), nil
}

// String renders the element as a hex value, e.g. "GF(2^8)/0x11d:0xa6".
func (e Element) String() string {
	return fmt.Sprintf("GF(2^%d)/0x%x:0x%x", e.size, e.mod, e.value)
}
