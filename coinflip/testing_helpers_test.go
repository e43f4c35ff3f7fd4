package coinflip

import (
	"github.com/rs/zerolog"

	"github.com/lavode/coinflip/gf2"
	"github.com/lavode/coinflip/polynomial"
	"github.com/lavode/coinflip/rng"
)

// newPartyWithForcedDegree builds a party whose Share call will deal a
// polynomial of exactly the given degree (rather than t), regardless of
// what t would otherwise require. This mirrors the reference
// implementation's `_testing={'degree': ...}` hook and exists solely to
// drive the malicious-dealer scenarios: it has no production entry point.
func newPartyWithForcedDegree(n int, k uint, mod uint64, degree int, src rng.Source) *Party {
	p := NewParty(n, k, src, zerolog.Nop())
	ring := gf2.NewRing(k, mod)

	coeffs := make([]gf2.Element, degree+1)
	for i := range coeffs {
		coeffs[i] = gf2.New(k, mod, src.RandomBelow(uint64(1)<<k))
	}
	// A nonzero leading coefficient keeps the degree exact.
	coeffs[degree] = gf2.New(k, mod, src.RandomIn(1, uint64(1)<<k))
	poly := polynomial.New[gf2.Element](ring, coeffs)
	p.forcedPoly = &poly

	return p
}
