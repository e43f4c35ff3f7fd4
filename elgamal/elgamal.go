// Package elgamal implements ElGamal public-key encryption in the
// multiplicative group of a binary extension field GF(2^k), rather than
// the classical (Z/pZ)* Schnorr-group construction: Encrypt/Decrypt carry
// gf2.Element operands throughout, and the group order is 2^k-1.
package elgamal

import (
	"fmt"

	"github.com/lavode/coinflip/gf2"
	"github.com/lavode/coinflip/rng"
)

// PublicKey is (mod, generator, Y) for a single GF(2^k) group: the field's
// reduction polynomial, a generator g of its multiplicative group, and
// Y = g^x for some private x.
type PublicKey struct {
	Size      uint
	Mod       uint64
	Generator gf2.Element
	Y         gf2.Element
}

// PrivateKey is the raw discrete-log exponent x. A PrivateKey with no
// value set (X is the zero element and HasX is false) cannot decrypt;
// Decrypt reports ErrNoSecretKey in that case, matching the coin-flipping
// protocol's "revealed secret key" semantics during reconstruction, where
// an aborting dealer's private key is simply absent.
type PrivateKey struct {
	X    gf2.Element
	HasX bool
}

// Ciphertext is (C1, C2) = (g^r, m*Y^r).
type Ciphertext struct {
	C1 gf2.Element
	C2 gf2.Element
}

// KeyGen draws a private exponent x uniformly from [0, 2^size) and
// returns (Y, x) for the group described by (size, mod, generator).
func KeyGen(size uint, mod uint64, generator gf2.Element, src rng.Source) (PublicKey, PrivateKey) {
	x := src.RandomBelow(uint64(1) << size)
	xElem := gf2.New(size, mod, x)

	pub := PublicKey{
		Size:      size,
		Mod:       mod,
		Generator: generator,
		Y:         generator.Pow(xElem.Uint64()),
	}
	priv := PrivateKey{X: xElem, HasX: true}

	return pub, priv
}

// Encrypt encrypts a nonzero plaintext field element under pub, drawing a
// fresh per-message exponent r from src.
func Encrypt(pub PublicKey, message gf2.Element, src rng.Source) (Ciphertext, error) {
	if message.IsZero() {
		return Ciphertext{}, ErrZeroPlaintext
	}

	r := src.RandomBelow(uint64(1) << pub.Size)

	c1 := pub.Generator.Pow(r)
	c2 := message.Mul(pub.Y.Pow(r))

	return Ciphertext{C1: c1, C2: c2}, nil
}

// Decrypt recovers the plaintext from ctxt using priv, by computing
// s = C1^x and returning C2/s.
func Decrypt(ctxt Ciphertext, priv PrivateKey) (gf2.Element, error) {
	if !priv.HasX {
		return gf2.Element{}, ErrNoSecretKey
	}

	s := ctxt.C1.Pow(priv.X.Uint64())
	m, err := ctxt.C2.Div(s)
	if err != nil {
		return gf2.Element{}, fmt.Errorf("elgamal: decrypting: %w", err)
	}
	return m, nil
}

// DeriveKeyPair rebuilds the public key that a revealed private key x
// would have produced under (size, mod, generator); used during
// reconstruction to confirm a dealer's revealed secret key actually
// matches the public key it published earlier.
func DeriveKeyPair(size uint, mod uint64, generator gf2.Element, x gf2.Element) PublicKey {
	return PublicKey{
		Size:      size,
		Mod:       mod,
		Generator: generator,
		Y:         generator.Pow(x.Uint64()),
	}
}
