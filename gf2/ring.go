package gf2

import "github.com/lavode/coinflip/polynomial"

// Ring adapts a fixed GF(2^size)/mod field into polynomial.Field[Element],
// so polynomial.Polynomial[Element] can be built over it. It carries no
// state of its own beyond the field parameters every Element it touches is
// expected to already share.
type Ring struct {
	size uint
	mod  uint64
}

// NewRing returns the Field adapter for GF(2^size)/mod.
func NewRing(size uint, mod uint64) Ring {
	return Ring{size: size, mod: mod}
}

var _ polynomial.Field[Element] = Ring{}

func (r Ring) Zero() Element { return Zero(r.size, r.mod) }
func (r Ring) One() Element  { return One(r.size, r.mod) }

func (r Ring) Add(a, b Element) Element { return a.Add(b) }
func (r Ring) Sub(a, b Element) Element { return a.Sub(b) }
func (r Ring) Mul(a, b Element) Element { return a.Mul(b) }

func (r Ring) Equal(a, b Element) bool { return a.Equal(b) }

func (r Ring) Inv(a Element) (Element, error) { return a.Inverse() }
