// Package group defines the abstract cyclic-group contract SPAKE2 is built
// on, plus the byte/integer utilities and KDF expansions every concrete
// backend shares. See the group/integer and group/edwards25519 subpackages
// for the two concrete backends.
package group

import "math/big"

// EntropyFunc returns n cryptographically random bytes, or an error if it
// cannot. The default implementation wraps crypto/rand.Read; tests may
// substitute a deterministic stream to pin reproducible vectors.
type EntropyFunc func(n int) ([]byte, error)

// Element is an opaque member of a group's prime-order subgroup. Two
// elements are equal exactly when their canonical encodings are equal.
type Element interface {
	// Add returns the group-law sum of the receiver and other. Returns
	// ErrBadArgument if other was not produced by the same Group.
	Add(other Element) (Element, error)

	// ScalarMult returns the receiver multiplied by i, implicitly reduced
	// modulo the group order. i may be negative.
	ScalarMult(i *big.Int) (Element, error)

	// Bytes returns the fixed-width canonical encoding of the element.
	Bytes() []byte

	// Equal reports whether other has the same canonical encoding.
	Equal(other Element) bool
}

// Group is the capability contract a SPAKE2 backend must satisfy: scalar
// sampling and encoding, element decoding with subgroup validation, and the
// two distinguished elements every group carries (Base, Zero).
type Group interface {
	// Name identifies the group for logging and parameter-set naming.
	Name() string

	// Order returns q, the prime order of the subgroup.
	Order() *big.Int

	// ScalarSizeBytes is the fixed width of a scalar's byte encoding.
	ScalarSizeBytes() int

	// ElementSizeBytes is the fixed width of an element's byte encoding.
	ElementSizeBytes() int

	// RandomScalar returns a uniformly random integer in [0, Order()).
	RandomScalar(entropy EntropyFunc) (*big.Int, error)

	// ScalarToBytes encodes i (0 <= i < Order()) to its fixed-width form.
	ScalarToBytes(i *big.Int) ([]byte, error)

	// BytesToScalar decodes a fixed-width scalar encoding.
	BytesToScalar(b []byte) (*big.Int, error)

	// PasswordToScalar derives a (biased-reduced, effectively uniform)
	// scalar from an arbitrary-length password.
	PasswordToScalar(pw []byte) (*big.Int, error)

	// BytesToElement decodes and validates a fixed-width element encoding,
	// returning ErrInvalidElement if it is not a subgroup member.
	BytesToElement(b []byte) (Element, error)

	// ArbitraryElement derives a subgroup element from seed such that no
	// party can feasibly know its discrete log.
	ArbitraryElement(seed []byte) (Element, error)

	// Base returns the group's generator.
	Base() Element

	// Zero returns the group's identity element.
	Zero() Element
}
