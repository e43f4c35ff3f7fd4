package elgamal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lavode/coinflip/gf2"
	"github.com/lavode/coinflip/rng"
)

// Testable property #4: for every keypair and nonzero message,
// decrypt(encrypt(m, Y), x) = m.
func TestEncryptDecryptRoundTrip(t *testing.T) {
	const size = 8
	const mod = 0x11d

	src := rng.NewDeterministic([]byte("elgamal-roundtrip"))
	g := gf2.New(size, mod, 0x03)

	pub, priv := KeyGen(size, mod, g, src)

	for v := uint64(1); v < 256; v++ {
		m := gf2.New(size, mod, v)
		ctxt, err := Encrypt(pub, m, src)
		require.NoError(t, err)

		got, err := Decrypt(ctxt, priv)
		require.NoError(t, err)
		require.True(t, got.Equal(m), "round trip mismatch for v=%d", v)
	}
}

func TestEncryptRejectsZeroPlaintext(t *testing.T) {
	const size = 8
	const mod = 0x11d

	src := rng.NewDeterministic([]byte("elgamal-zero"))
	g := gf2.New(size, mod, 0x03)
	pub, _ := KeyGen(size, mod, g, src)

	_, err := Encrypt(pub, gf2.Zero(size, mod), src)
	require.ErrorIs(t, err, ErrZeroPlaintext)
}

func TestDecryptWithoutSecretKeyFails(t *testing.T) {
	const size = 8
	const mod = 0x11d

	ctxt := Ciphertext{C1: gf2.New(size, mod, 1), C2: gf2.New(size, mod, 2)}
	_, err := Decrypt(ctxt, PrivateKey{})
	require.ErrorIs(t, err, ErrNoSecretKey)
}

// S2 — ElGamal round trip (k=32, mod=0x199740c05, g=0xdd9345ba), pinned
// intermediate values computed independently.
func TestS2RoundTripPinned(t *testing.T) {
	const size = 32
	const mod = 0x199740c05
	g := gf2.New(size, mod, 0xdd9345ba)

	x := gf2.New(size, mod, 0x12345678)
	y := g.Pow(x.Uint64())
	require.Equal(t, uint64(0xd2bcd996), y.Uint64())

	pub := PublicKey{Size: size, Mod: mod, Generator: g, Y: y}
	priv := PrivateKey{X: x, HasX: true}

	// r is fixed by the scenario rather than drawn from src; Encrypt's use
	// of the RNG is already exercised by TestEncryptDecryptRoundTrip, so
	// here the ciphertext is built directly from the pinned r.
	r := uint64(0xCAFEBABE)
	c1 := g.Pow(r)
	require.Equal(t, uint64(0x6641362e), c1.Uint64())

	m := gf2.New(size, mod, 0xDEADBEEF)
	c2 := m.Mul(y.Pow(r))
	require.Equal(t, uint64(0xe9a0bb70), c2.Uint64())

	ctxt := Ciphertext{C1: c1, C2: c2}
	got, err := Decrypt(ctxt, priv)
	require.NoError(t, err)
	require.True(t, got.Equal(m))
}

func TestDeriveKeyPairMatchesKeyGen(t *testing.T) {
	const size = 16
	const mod = 0x1a2fd

	src := rng.NewDeterministic([]byte("derive-match"))
	g := gf2.New(size, mod, 0x9ae5)

	pub, priv := KeyGen(size, mod, g, src)
	rederived := DeriveKeyPair(size, mod, g, priv.X)

	require.True(t, pub.Y.Equal(rederived.Y))
}
