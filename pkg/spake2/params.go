package spake2

import (
	"encoding/hex"

	"github.com/openspake/spake2/pkg/crypto"
	"github.com/openspake/spake2/pkg/crypto/group"
	"github.com/openspake/spake2/pkg/crypto/group/edwards25519"
	"github.com/openspake/spake2/pkg/crypto/group/integer"
)

// Role tags a session (and its wire messages) with one of the three
// possible sides. The role byte is transport-only: it is never hashed into
// the transcript.
type Role byte

// Role values, each the ASCII byte it is encoded as on the wire.
const (
	RoleA         Role = 'A' // 0x41
	RoleB         Role = 'B' // 0x42
	RoleSymmetric Role = 'S' // 0x53
)

func (r Role) String() string {
	switch r {
	case RoleA:
		return "A"
	case RoleB:
		return "B"
	case RoleSymmetric:
		return "Symmetric"
	default:
		return "unknown"
	}
}

// ParameterSet is an immutable, process-global triple of blinding elements
// (M, N, S) derived from fixed public seeds over one group. A and B use M
// and N (respectively, and swapped for unblinding); the symmetric side uses
// S for both. Because the seeds are public and arbitrary_element is a
// random-oracle-like construction, nobody knows the discrete log of M, N,
// or S — this is essential to the security proof.
type ParameterSet struct {
	name  string
	group group.Group

	m, n, s group.Element

	fingerprintMN string
	fingerprintS  string
}

// Group returns the underlying group this parameter set was built over.
func (p *ParameterSet) Group() group.Group { return p.group }

// Name identifies the parameter set for logging and error messages.
func (p *ParameterSet) Name() string { return p.name }

// Fingerprint returns the short hex digest that guards deserialize against
// restoring a session under the wrong parameter set. Asymmetric roles and
// the symmetric role have distinct fingerprints, since they depend on
// different blinding elements.
func (p *ParameterSet) Fingerprint(role Role) (string, error) {
	switch role {
	case RoleA, RoleB:
		return p.fingerprintMN, nil
	case RoleSymmetric:
		return p.fingerprintS, nil
	default:
		return "", ErrBadArgument
	}
}

func newParameterSet(name string, g group.Group) (*ParameterSet, error) {
	m, err := g.ArbitraryElement([]byte("M"))
	if err != nil {
		return nil, err
	}
	n, err := g.ArbitraryElement([]byte("N"))
	if err != nil {
		return nil, err
	}
	s, err := g.ArbitraryElement([]byte("symmetric"))
	if err != nil {
		return nil, err
	}

	emptyElem, err := g.ArbitraryElement(nil)
	if err != nil {
		return nil, err
	}
	emptyScalar, err := g.PasswordToScalar(nil)
	if err != nil {
		return nil, err
	}
	emptyScalarBytes, err := g.ScalarToBytes(emptyScalar)
	if err != nil {
		return nil, err
	}

	return &ParameterSet{
		name:          name,
		group:         g,
		m:             m,
		n:             n,
		s:             s,
		fingerprintMN: fingerprintHex(emptyElem.Bytes(), emptyScalarBytes, m.Bytes(), n.Bytes()),
		fingerprintS:  fingerprintHex(emptyElem.Bytes(), emptyScalarBytes, s.Bytes()),
	}, nil
}

func fingerprintHex(parts ...[]byte) string {
	var buf []byte
	for _, p := range parts {
		buf = append(buf, p...)
	}
	return hex.EncodeToString(crypto.SHA256Slice(buf))
}

func mustNewParameterSet(name string, g group.Group) *ParameterSet {
	p, err := newParameterSet(name, g)
	if err != nil {
		panic("spake2: failed to build built-in parameter set " + name + ": " + err.Error())
	}
	return p
}

// The four built-in parameter sets. ParamsEd25519 is the default for new
// sessions; ParamsI2048 is the default where an integer-group default is
// needed for legacy compatibility.
var (
	ParamsI1024   = mustNewParameterSet("I1024", integer.I1024)
	ParamsI2048   = mustNewParameterSet("I2048", integer.I2048)
	ParamsI3072   = mustNewParameterSet("I3072", integer.I3072)
	ParamsEd25519 = mustNewParameterSet("Ed25519", edwards25519.New())
)
