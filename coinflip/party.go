// Package coinflip implements the three-phase distributed coin-flipping
// protocol: each party generates ElGamal keypairs, deals a random Shamir
// sharing polynomial encrypted to every peer, and later the deals are
// opened, verified, and summed into public randomness. A Party instance
// is single-use per protocol run and advances through a strict linear
// state machine: Fresh -> Keyed -> Shared -> Reconstructed.
package coinflip

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"

	"github.com/lavode/coinflip/elgamal"
	"github.com/lavode/coinflip/gf2"
	"github.com/lavode/coinflip/polynomial"
	"github.com/lavode/coinflip/rng"
)

// Party is one participant's view of the protocol: its own per-peer
// ElGamal keypairs, its sharing polynomial and the deals derived from it,
// and (once reconstruct has run) the summed polynomial and per-dealer
// warnings from auditing every party's revealed keys.
type Party struct {
	n int
	t int
	k uint

	src rng.Source
	log zerolog.Logger

	state State

	peerMods    []uint64
	peerGens    []uint64
	publicKeys  []PublicKeyTriple
	privateKeys []uint64

	polyMod     uint64
	sharingPoly polynomial.Polynomial[gf2.Element]
	deal        []uint64
	encDeal     []CiphertextPair

	summedPoly polynomial.Polynomial[gf2.Element]
	warnings   []Warning

	// testing hook, set only by the test helper newPartyWithForcedDegree;
	// nil in normal use.
	forcedPoly *polynomial.Polynomial[gf2.Element]
}

// NewParty constructs a fresh party for an n-party protocol run trading
// k-bit field elements, drawing all randomness from src.
func NewParty(n int, k uint, src rng.Source, log zerolog.Logger) *Party {
	return &Party{
		n:        n,
		t:        n / 2,
		k:        k,
		src:      src,
		log:      log.With().Int("n", n).Uint("k", uint(k)).Logger(),
		state:    StateFresh,
		warnings: make([]Warning, n),
	}
}

// N reports the party count this instance was configured for.
func (p *Party) N() int { return p.n }

// T reports the reconstruction threshold floor(n/2).
func (p *Party) T() int { return p.t }

// State reports the party's current lifecycle state.
func (p *Party) State() State { return p.state }

// Warnings reports the per-dealer warning vector populated by
// Reconstruct. Before Reconstruct runs, every entry is WarningNone.
func (p *Party) Warnings() []Warning {
	out := make([]Warning, len(p.warnings))
	copy(out, p.warnings)
	return out
}

// PublicKeys returns this party's published public-key vector: entry i
// is the key reserved for peer i to use when it deals a share to this
// party. Valid once GenerateKeys has run.
func (p *Party) PublicKeys() []PublicKeyTriple {
	return append([]PublicKeyTriple(nil), p.publicKeys...)
}

// RevealPrivateKeys returns this party's private-key vector, matching
// PublicKeys entry for entry. Reconstruction is publicly verifiable
// exactly because every party discloses this vector once all dealing has
// finished; a party that withholds it is recorded as WarningAborted by
// whoever runs Reconstruct.
func (p *Party) RevealPrivateKeys() []uint64 {
	return append([]uint64(nil), p.privateKeys...)
}

// GenerateKeys produces n independent ElGamal keypairs, one per peer,
// each over its own independently drawn (mod, generator). The draws are
// not compared with each other, so two peers can end up with the same
// field. When hardcode is true and a hardcoded (mod, generator)
// table exists for this party's field size, keys are drawn from it
// instead of running the full irreducible/generator search.
func (p *Party) GenerateKeys(hardcode bool) ([]PublicKeyTriple, error) {
	if p.state != StateFresh {
		return nil, fmt.Errorf("%w: GenerateKeys requires state Fresh, have %s", ErrInvalidState, p.state)
	}

	p.peerMods = make([]uint64, p.n)
	p.peerGens = make([]uint64, p.n)
	p.publicKeys = make([]PublicKeyTriple, p.n)
	p.privateKeys = make([]uint64, p.n)

	for i := 0; i < p.n; i++ {
		mod, gen, err := gf2.GenerateParams(p.k, p.src, hardcode)
		if err != nil {
			return nil, fmt.Errorf("coinflip: generating keys for peer %d: %w", i, err)
		}
		generator := gf2.New(p.k, mod, gen)

		pub, priv := elgamal.KeyGen(p.k, mod, generator, p.src)

		p.peerMods[i] = mod
		p.peerGens[i] = gen
		p.publicKeys[i] = PublicKeyTriple{Mod: mod, Generator: gen, Y: pub.Y.Uint64()}
		p.privateKeys[i] = priv.X.Uint64()
	}

	p.state = StateKeyed
	p.log.Debug().Msg("generated keys")

	return append([]PublicKeyTriple(nil), p.publicKeys...), nil
}

// Share draws this party's random degree-t sharing polynomial, deals one
// point per peer, and encrypts each point under the matching entry of
// sharedPublicKeys. If polyMod is nil, a fresh irreducible polynomial of
// degree k is drawn; otherwise polyMod fixes the field every dealer's
// polynomial lives in (all dealers must agree on it for reconstruction to
// make sense).
func (p *Party) Share(sharedPublicKeys []PublicKeyTriple, polyMod *uint64) ([]CiphertextPair, error) {
	if p.state != StateKeyed {
		return nil, fmt.Errorf("%w: Share requires state Keyed, have %s", ErrInvalidState, p.state)
	}
	if len(sharedPublicKeys) != p.n {
		return nil, fmt.Errorf("%w: expected %d shared public keys, got %d", ErrDimensionMismatch, p.n, len(sharedPublicKeys))
	}

	mod, err := p.resolvePolyMod(polyMod)
	if err != nil {
		return nil, err
	}
	p.polyMod = mod
	ring := gf2.NewRing(p.k, mod)

	if p.forcedPoly != nil {
		p.sharingPoly = *p.forcedPoly
	} else {
		coeffs := make([]gf2.Element, p.t+1)
		for i := range coeffs {
			coeffs[i] = gf2.New(p.k, mod, p.src.RandomBelow(uint64(1)<<p.k))
		}
		p.sharingPoly = polynomial.New[gf2.Element](ring, coeffs)
	}

	p.deal = make([]uint64, p.n)
	p.encDeal = make([]CiphertextPair, p.n)

	for i := 0; i < p.n; i++ {
		x := gf2.New(p.k, mod, uint64(i+p.t+1))
		p.deal[i] = p.sharingPoly.Eval(x).Uint64()

		pk := sharedPublicKeys[i]
		peerGenerator := gf2.New(p.k, pk.Mod, pk.Generator)
		peerPub := elgamal.PublicKey{Size: p.k, Mod: pk.Mod, Generator: peerGenerator, Y: gf2.New(p.k, pk.Mod, pk.Y)}

		plaintext := gf2.New(p.k, pk.Mod, p.deal[i])
		ctxt, err := elgamal.Encrypt(peerPub, plaintext, p.src)
		if err != nil {
			return nil, fmt.Errorf("coinflip: encrypting deal for peer %d: %w", i, err)
		}
		p.encDeal[i] = CiphertextPair{C1: ctxt.C1.Uint64(), C2: ctxt.C2.Uint64()}
	}

	p.state = StateShared
	p.log.Debug().Msg("shared dealt polynomial")

	return append([]CiphertextPair(nil), p.encDeal...), nil
}

func (p *Party) resolvePolyMod(polyMod *uint64) (uint64, error) {
	if polyMod != nil {
		return *polyMod, nil
	}
	mod, err := gf2.FindIrreducible(p.k, p.src)
	if err != nil {
		return 0, fmt.Errorf("coinflip: drawing a fresh polynomial modulus: %w", err)
	}
	return mod, nil
}

// Reconstruct audits every dealer's revealed key material, decrypts and
// interpolates each dealer's surviving points, sums the honest dealers'
// polynomials, and serializes the result into the output randomness.
// encShares, sharedPublicKeys, and sharedSecretKeys are all indexed
// [dealer][recipient]; a nil row for dealer d means d never revealed its
// key bundle.
func (p *Party) Reconstruct(encShares [][]CiphertextPair, sharedPublicKeys [][]PublicKeyTriple, sharedSecretKeys [][]uint64, polyMod uint64) ([]byte, error) {
	if p.state != StateShared {
		return nil, fmt.Errorf("%w: Reconstruct requires state Shared, have %s", ErrInvalidState, p.state)
	}
	if len(encShares) != p.n || len(sharedPublicKeys) != p.n || len(sharedSecretKeys) != p.n {
		return nil, fmt.Errorf("%w: expected %d dealer rows in every input matrix", ErrDimensionMismatch, p.n)
	}

	ring := gf2.NewRing(p.k, polyMod)
	aborted := bitset.New(uint(p.n))
	malicious := bitset.New(uint(p.n))

	p.summedPoly = polynomial.Zero[gf2.Element](ring)

	for d := 0; d < p.n; d++ {
		pkRow := sharedPublicKeys[d]
		skRow := sharedSecretKeys[d]
		encRow := encShares[d]

		if pkRow == nil || skRow == nil {
			aborted.Set(uint(d))
			p.warnings[d] = WarningAborted
			p.log.Warn().Int("dealer", d).Msg("dealer did not reveal its key bundle")
			continue
		}
		if len(pkRow) != p.n || len(skRow) != p.n || len(encRow) != p.n {
			return nil, fmt.Errorf("%w: dealer %d's key/share rows must have length %d", ErrDimensionMismatch, d, p.n)
		}

		points := make([]polynomial.Point[gf2.Element], 0, p.n)
		for i := 0; i < p.n; i++ {
			pk := pkRow[i]
			sk := skRow[i]

			peerGenerator := gf2.New(p.k, pk.Mod, pk.Generator)
			rederived := elgamal.DeriveKeyPair(p.k, pk.Mod, peerGenerator, gf2.New(p.k, pk.Mod, sk))
			if rederived.Y.Uint64() != pk.Y {
				malicious.Set(uint(d))
				p.warnings[d] = WarningMalicious
				p.log.Warn().Int("dealer", d).Int("peer", i).Msg("revealed secret key does not match published public key")
				continue
			}

			ctxt := elgamal.Ciphertext{C1: gf2.New(p.k, pk.Mod, encRow[i].C1), C2: gf2.New(p.k, pk.Mod, encRow[i].C2)}
			priv := elgamal.PrivateKey{X: gf2.New(p.k, pk.Mod, sk), HasX: true}
			plaintext, err := elgamal.Decrypt(ctxt, priv)
			if err != nil {
				malicious.Set(uint(d))
				p.warnings[d] = WarningMalicious
				p.log.Warn().Int("dealer", d).Int("peer", i).Err(err).Msg("failed to decrypt dealt share")
				continue
			}

			x := gf2.New(p.k, polyMod, uint64(i+p.t+1))
			y := gf2.New(p.k, polyMod, plaintext.Uint64())
			points = append(points, polynomial.Point[gf2.Element]{X: x, Y: y})
		}

		if len(points) == 0 {
			if !aborted.Test(uint(d)) && !malicious.Test(uint(d)) {
				aborted.Set(uint(d))
				p.warnings[d] = WarningAborted
			}
			continue
		}

		interpolant, err := polynomial.Interpolate[gf2.Element](ring, points)
		if err != nil {
			malicious.Set(uint(d))
			p.warnings[d] = WarningMalicious
			p.log.Warn().Int("dealer", d).Err(err).Msg("failed to interpolate dealer's points")
			continue
		}

		if interpolant.Degree() > p.t {
			malicious.Set(uint(d))
			p.warnings[d] = WarningMalicious
			p.log.Warn().Int("dealer", d).Int("degree", interpolant.Degree()).Msg("dealer's polynomial exceeds threshold degree")
			continue
		}

		p.summedPoly = p.summedPoly.Add(interpolant)
	}

	out := make([]byte, 0, p.t*byteWidth(p.k))
	for i := 0; i < p.t; i++ {
		v := p.summedPoly.Eval(gf2.New(p.k, polyMod, uint64(i))).Uint64()
		out = append(out, encodeBigEndian(v, byteWidth(p.k))...)
	}

	p.state = StateReconstructed
	p.log.Debug().Int("abortedCount", int(aborted.Count())).Int("maliciousCount", int(malicious.Count())).Msg("reconstructed randomness")

	return out, nil
}

func byteWidth(k uint) int {
	return (int(k) + 7) / 8
}

func encodeBigEndian(v uint64, width int) []byte {
	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}
