package edwards25519

import (
	"math/big"

	"filippo.io/edwards25519"

	"github.com/openspake/spake2/pkg/crypto/group"
)

// maxArbitraryElementAttempts bounds the deterministic retry loop in
// ArbitraryElement. Roughly half of all 32-byte candidates fail to
// decompress (their y has no matching x on the curve), so each attempt
// succeeds with probability about 1/2 and this is a generous backstop, not a
// normal code path.
const maxArbitraryElementAttempts = 256

var orderL = mustDecimal("7237005577332262213973186563042994240857116359379907606001950938285454250989")

// Group is the Ed25519 prime-order group. It implements group.Group.
type Group struct{}

// New returns the Ed25519 group.
func New() *Group { return &Group{} }

// Element wraps a curve point already projected into the prime-order
// subgroup (i.e. already multiplied by the cofactor).
type Element struct {
	p *edwards25519.Point
}

// Name implements group.Group.
func (Group) Name() string { return "Ed25519" }

// Order implements group.Group.
func (Group) Order() *big.Int { return new(big.Int).Set(orderL) }

// ScalarSizeBytes implements group.Group.
func (Group) ScalarSizeBytes() int { return 32 }

// ElementSizeBytes implements group.Group.
func (Group) ElementSizeBytes() int { return 32 }

// Base implements group.Group: the standard Ed25519 base point.
func (Group) Base() group.Element { return &Element{p: edwards25519.NewGeneratorPoint()} }

// Zero implements group.Group: the neutral (identity) point.
func (Group) Zero() group.Element { return &Element{p: edwards25519.NewIdentityPoint()} }

// RandomScalar implements group.Group.
func (Group) RandomScalar(entropy group.EntropyFunc) (*big.Int, error) {
	return group.UnbiasedRandrange(big.NewInt(0), orderL, entropy)
}

// ScalarToBytes implements group.Group. The curve library's scalar encoding
// is little-endian; the group-generic big.Int representation this package
// exposes is big-endian, so the bytes are reversed at this boundary.
func (Group) ScalarToBytes(i *big.Int) ([]byte, error) {
	if i.Sign() < 0 || i.Cmp(orderL) >= 0 {
		return nil, group.ErrBadArgument
	}
	be := make([]byte, 32)
	i.FillBytes(be)
	return reverse(be), nil
}

// BytesToScalar implements group.Group; see ScalarToBytes for the endian note.
func (Group) BytesToScalar(b []byte) (*big.Int, error) {
	if len(b) != 32 {
		return nil, group.ErrBadArgument
	}
	be := reverse(append([]byte(nil), b...))
	i := new(big.Int).SetBytes(be)
	if i.Cmp(orderL) >= 0 {
		return nil, group.ErrBadArgument
	}
	return i, nil
}

// PasswordToScalar implements group.Group: the oversized HKDF expansion
// (scalar_size_bytes+16) reduces modular bias to a negligible amount before
// the final mod L.
func (Group) PasswordToScalar(pw []byte) (*big.Int, error) {
	oversized, err := group.ExpandPassword(pw, 32+16)
	if err != nil {
		return nil, err
	}
	i := group.BytesToNumber(oversized)
	return i.Mod(i, orderL), nil
}

// BytesToElement implements group.Group. It decompresses the Ed25519 point
// encoding (rejecting a y coordinate outside [0, 2^255-19) and points not on
// the curve), multiplies by the cofactor 8 to clear any small-order
// component, and then by 8^-1 mod L, so an encoding of a prime-order-subgroup
// element decodes back to that same element. Small-order inputs, which the
// cofactor multiplication sends to the identity, are rejected, so the
// decoder never returns a small-order point.
func (Group) BytesToElement(b []byte) (group.Element, error) {
	if len(b) != 32 {
		return nil, group.ErrInvalidElement
	}
	y := new(big.Int).SetBytes(reverse(append([]byte(nil), b...)))
	y.SetBit(y, 255, 0)
	fieldPrime := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))
	if y.Cmp(fieldPrime) >= 0 {
		return nil, group.ErrInvalidElement
	}
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, group.ErrInvalidElement
	}
	p.MultByCofactor(p)
	if p.Equal(edwards25519.NewIdentityPoint()) == 1 {
		return nil, group.ErrInvalidElement
	}
	invCofactor := new(big.Int).ModInverse(big.NewInt(8), orderL)
	return (&Element{p: p}).ScalarMult(invCofactor)
}

// ArbitraryElement implements group.Group. It expands seed to 32 bytes and
// attempts to decompress them as a point; on failure it deterministically
// perturbs the input (by appending an attempt counter) and retries. The
// resulting point is then multiplied by the cofactor 8, so the result is a
// prime-order-subgroup element with no known discrete log.
func (Group) ArbitraryElement(seed []byte) (group.Element, error) {
	for attempt := 0; attempt < maxArbitraryElementAttempts; attempt++ {
		candidateSeed := seed
		if attempt > 0 {
			candidateSeed = append(append([]byte(nil), seed...), byte(attempt))
		}
		candidate, err := group.ExpandArbitraryElementSeed(candidateSeed, 32)
		if err != nil {
			return nil, err
		}
		p, err := new(edwards25519.Point).SetBytes(candidate)
		if err != nil {
			continue
		}
		p.MultByCofactor(p)
		return &Element{p: p}, nil
	}
	return nil, group.ErrInvalidElement
}

// Add implements group.Element.
func (e *Element) Add(other group.Element) (group.Element, error) {
	o, ok := other.(*Element)
	if !ok {
		return nil, group.ErrBadArgument
	}
	return &Element{p: new(edwards25519.Point).Add(e.p, o.p)}, nil
}

// ScalarMult implements group.Element. i may be negative; it is reduced
// modulo L before being handed to the curve library.
func (e *Element) ScalarMult(i *big.Int) (group.Element, error) {
	if i == nil {
		return nil, group.ErrBadArgument
	}
	reduced := new(big.Int).Mod(i, orderL)
	be := make([]byte, 32)
	reduced.FillBytes(be)

	s, err := new(edwards25519.Scalar).SetCanonicalBytes(reverse(be))
	if err != nil {
		return nil, group.ErrBadArgument
	}
	return &Element{p: new(edwards25519.Point).ScalarMult(s, e.p)}, nil
}

// Bytes implements group.Element: the standard 32-byte compressed encoding.
func (e *Element) Bytes() []byte {
	return e.p.Bytes()
}

// Equal implements group.Element by comparing canonical encodings.
func (e *Element) Equal(other group.Element) bool {
	o, ok := other.(*Element)
	if !ok {
		return false
	}
	a, b := e.p.Bytes(), o.p.Bytes()
	if len(a) != len(b) {
		return false
	}
	diff := byte(0)
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

func reverse(b []byte) []byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

func mustDecimal(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("edwards25519: invalid order constant")
	}
	return n
}
