// Package integer implements the §4.4 integer-group backend: prime-order
// subgroups of the multiplicative group of integers modulo a large prime,
// specified by a (p, q, g) triple. Three published instantiations are
// provided in params.go.
package integer

import (
	"math/big"

	"github.com/openspake/spake2/pkg/crypto/group"
)

// Group is a prime-order subgroup of (Z/pZ)* generated by g, with subgroup
// order q. It implements group.Group.
type Group struct {
	name string
	p    *big.Int
	q    *big.Int
	g    *big.Int

	scalarSizeBytes  int
	elementSizeBytes int

	base *Element
	zero *Element
}

// Element is a member of a Group's subgroup, represented by its residue mod p.
type Element struct {
	group *Group
	v     *big.Int
}

// New constructs a named (p, q, g) integer group. It verifies g generates a
// subgroup of order q modulo p.
func New(name string, p, q, g *big.Int) (*Group, error) {
	if new(big.Int).Exp(g, q, p).Cmp(big1) != 0 {
		return nil, group.ErrBadArgument
	}

	gr := &Group{
		name:             name,
		p:                new(big.Int).Set(p),
		q:                new(big.Int).Set(q),
		g:                new(big.Int).Set(g),
		scalarSizeBytes:  group.SizeBytes(q),
		elementSizeBytes: group.SizeBytes(p),
	}
	gr.zero = &Element{group: gr, v: new(big.Int).Set(big1)}
	gr.base = &Element{group: gr, v: new(big.Int).Set(g)}
	return gr, nil
}

var big1 = big.NewInt(1)

// Name implements group.Group.
func (g *Group) Name() string { return g.name }

// Order implements group.Group.
func (g *Group) Order() *big.Int { return new(big.Int).Set(g.q) }

// ScalarSizeBytes implements group.Group.
func (g *Group) ScalarSizeBytes() int { return g.scalarSizeBytes }

// ElementSizeBytes implements group.Group.
func (g *Group) ElementSizeBytes() int { return g.elementSizeBytes }

// Base implements group.Group.
func (g *Group) Base() group.Element { return g.base }

// Zero implements group.Group.
func (g *Group) Zero() group.Element { return g.zero }

// RandomScalar implements group.Group.
func (g *Group) RandomScalar(entropy group.EntropyFunc) (*big.Int, error) {
	return group.UnbiasedRandrange(big.NewInt(0), g.q, entropy)
}

// ScalarToBytes implements group.Group.
func (g *Group) ScalarToBytes(i *big.Int) ([]byte, error) {
	if i.Sign() < 0 || i.Cmp(g.q) >= 0 {
		return nil, group.ErrBadArgument
	}
	return group.NumberToBytes(i, g.q)
}

// BytesToScalar implements group.Group.
func (g *Group) BytesToScalar(b []byte) (*big.Int, error) {
	if len(b) != g.scalarSizeBytes {
		return nil, group.ErrBadArgument
	}
	i := group.BytesToNumber(b)
	if i.Cmp(g.q) >= 0 {
		return nil, group.ErrBadArgument
	}
	return i, nil
}

// PasswordToScalar implements group.Group: the oversized HKDF expansion
// (scalar_size_bytes+16) reduces modular bias to a negligible amount before
// the final mod q.
func (g *Group) PasswordToScalar(pw []byte) (*big.Int, error) {
	oversized, err := group.ExpandPassword(pw, g.scalarSizeBytes+16)
	if err != nil {
		return nil, err
	}
	i := group.BytesToNumber(oversized)
	return i.Mod(i, g.q), nil
}

// BytesToElement implements group.Group, validating that the decoded value
// lies in [1, p) and is a member of the order-q subgroup.
func (g *Group) BytesToElement(b []byte) (group.Element, error) {
	if len(b) != g.elementSizeBytes {
		return nil, group.ErrInvalidElement
	}
	i := group.BytesToNumber(b)
	if i.Sign() <= 0 || i.Cmp(g.p) >= 0 {
		return nil, group.ErrInvalidElement
	}
	e := &Element{group: g, v: i}
	if !g.isMember(e) {
		return nil, group.ErrInvalidElement
	}
	return e, nil
}

// ArbitraryElement implements group.Group: it expands seed to an
// element-sized integer mod p, then raises it to r = (p-1)/q to project it
// into the order-q subgroup. The discrete log of the result is unknown under
// the random-oracle assumption.
func (g *Group) ArbitraryElement(seed []byte) (group.Element, error) {
	processed, err := group.ExpandArbitraryElementSeed(seed, g.elementSizeBytes)
	if err != nil {
		return nil, err
	}
	h := group.BytesToNumber(processed)
	h.Mod(h, g.p)

	r := new(big.Int).Sub(g.p, big1)
	r.Div(r, g.q)

	v := new(big.Int).Exp(h, r, g.p)
	e := &Element{group: g, v: v}
	if !g.isMember(e) {
		// Unreachable for well-formed (p, q) params: pow(h, r, p) is always
		// a q-th root of unity mod p. Kept as a defense against a corrupt
		// parameter set rather than a path expected to trigger.
		return nil, group.ErrInvalidElement
	}
	return e, nil
}

func (g *Group) isMember(e *Element) bool {
	if e.group != g {
		return false
	}
	return new(big.Int).Exp(e.v, g.q, g.p).Cmp(big1) == 0
}

// Add implements group.Element: (a*b) mod p.
func (e *Element) Add(other group.Element) (group.Element, error) {
	o, ok := other.(*Element)
	if !ok || o.group != e.group {
		return nil, group.ErrBadArgument
	}
	v := new(big.Int).Mul(e.v, o.v)
	v.Mod(v, e.group.p)
	return &Element{group: e.group, v: v}, nil
}

// ScalarMult implements group.Element: pow(a, i mod q, p).
func (e *Element) ScalarMult(i *big.Int) (group.Element, error) {
	if i == nil {
		return nil, group.ErrBadArgument
	}
	exp := new(big.Int).Mod(i, e.group.q)
	v := new(big.Int).Exp(e.v, exp, e.group.p)
	return &Element{group: e.group, v: v}, nil
}

// Bytes implements group.Element: big-endian, fixed to element_size_bytes.
func (e *Element) Bytes() []byte {
	b, err := group.NumberToBytes(e.v, e.group.p)
	if err != nil {
		// e.v is always < p for any Element this package constructs.
		panic("integer: element out of range: " + err.Error())
	}
	return b
}

// Equal implements group.Element.
func (e *Element) Equal(other group.Element) bool {
	o, ok := other.(*Element)
	if !ok || o.group != e.group {
		return false
	}
	return e.v.Cmp(o.v) == 0
}
