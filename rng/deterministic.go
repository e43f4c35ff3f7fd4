package rng

import (
	"encoding/binary"
	"math/bits"

	"github.com/zeebo/blake3"
)

// DeterministicSource is a reseedable, reproducible Source for tests: the
// same seed always produces the same stream of RandomBelow/RandomIn
// results, which is what lets coinflip's scenario tests assert a fixed
// output byte string. It expands the seed into an unbounded stream by
// hashing seed||counter with BLAKE3 and incrementing counter each time a
// fresh block is needed, so the stream never has to be held in memory.
type DeterministicSource struct {
	seed    []byte
	counter uint64
}

// NewDeterministic returns a DeterministicSource seeded with seed. The
// seed bytes are copied; the caller's slice may be reused afterwards.
func NewDeterministic(seed []byte) *DeterministicSource {
	d := &DeterministicSource{}
	d.Reseed(seed)
	return d
}

// Reseed restarts the stream from scratch under a new seed.
func (d *DeterministicSource) Reseed(seed []byte) {
	d.seed = append([]byte(nil), seed...)
	d.counter = 0
}

func (d *DeterministicSource) nextBlock() [32]byte {
	var counterBytes [8]byte
	binary.LittleEndian.PutUint64(counterBytes[:], d.counter)
	d.counter++

	h := blake3.New()
	h.Write(d.seed)
	h.Write(counterBytes[:])

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// RandomBelow implements Source via rejection sampling over the BLAKE3
// stream, mirroring CryptoSource's approach so both sources are unbiased.
func (d *DeterministicSource) RandomBelow(n uint64) uint64 {
	if n == 0 {
		panic("rng: RandomBelow requires n > 0")
	}
	if n == 1 {
		return 0
	}

	bitLen := bits.Len64(n - 1)
	mask := uint64(1)<<uint(bitLen) - 1

	for {
		block := d.nextBlock()
		v := binary.LittleEndian.Uint64(block[:8]) & mask
		if v < n {
			return v
		}
	}
}

// RandomIn implements Source as lo + RandomBelow(hi-lo).
func (d *DeterministicSource) RandomIn(lo, hi uint64) uint64 {
	if hi <= lo {
		panic("rng: RandomIn requires hi > lo")
	}
	return lo + d.RandomBelow(hi-lo)
}
