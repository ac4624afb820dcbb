package spake2

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/pion/logging"

	"github.com/openspake/spake2/pkg/crypto/group"
)

// errFinishBeforeStart guards a precondition the upstream protocol never
// names as a distinct error kind (the reference implementation simply has
// no state to operate on yet); it is not part of the public error taxonomy
// in errors.go because no caller should be comparing against it directly.
var errFinishBeforeStart = errors.New("spake2: finish called before start")

// Config configures a new Session. Password is the only required field;
// everything else has a documented default.
type Config struct {
	// Password is the shared low-entropy secret. Required.
	Password []byte

	// IdA and IdB are optional identity strings for the asymmetric variant.
	// Both default to empty.
	IdA, IdB []byte

	// IdSymmetric is an optional identity string for the symmetric variant.
	// Defaults to empty.
	IdSymmetric []byte

	// Params selects the group and blinding elements. Defaults to ParamsEd25519.
	Params *ParameterSet

	// Entropy supplies randomness for scalar sampling. Defaults to a
	// wrapper around crypto/rand. Tests may substitute a deterministic
	// source (see internal/testprg) to pin reproducible vectors; this must
	// never be swapped in production code.
	Entropy group.EntropyFunc

	// LoggerFactory creates the session's scoped logger. Defaults to
	// logging.NewDefaultLoggerFactory().
	LoggerFactory logging.LoggerFactory
}

// Session is one party's view of a single SPAKE2 exchange. It is not safe
// for concurrent use by multiple goroutines, but distinct Sessions (and the
// two sides of the same exchange) may run concurrently.
type Session struct {
	role   Role
	params *ParameterSet

	password    []byte
	idA, idB    []byte
	idSymmetric []byte

	entropy group.EntropyFunc
	log     logging.LeveledLogger

	started  bool
	finished bool

	pwScalar *big.Int

	xy              *big.Int
	xyElem          group.Element
	outboundElem    group.Element
	outboundMessage []byte
}

// Role returns the session's role tag.
func (s *Session) Role() Role { return s.role }

// Started reports whether Start has been called.
func (s *Session) Started() bool { return s.started }

// Finished reports whether Finish has been called.
func (s *Session) Finished() bool { return s.finished }

// Params returns the session's parameter set.
func (s *Session) Params() *ParameterSet { return s.params }

func defaultEntropy(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

func loggerFor(factory logging.LoggerFactory) logging.LeveledLogger {
	if factory == nil {
		factory = logging.NewDefaultLoggerFactory()
	}
	return factory.NewLogger("spake2")
}

func newSession(role Role, config Config) (*Session, error) {
	if len(config.Password) == 0 {
		return nil, fmt.Errorf("spake2: %w: password is required", ErrBadArgument)
	}

	params := config.Params
	if params == nil {
		params = ParamsEd25519
	}
	entropy := config.Entropy
	if entropy == nil {
		entropy = defaultEntropy
	}

	pwScalar, err := params.Group().PasswordToScalar(config.Password)
	if err != nil {
		return nil, fmt.Errorf("spake2: derive password scalar: %w", err)
	}

	s := &Session{
		role:        role,
		params:      params,
		password:    append([]byte(nil), config.Password...),
		idA:         append([]byte(nil), config.IdA...),
		idB:         append([]byte(nil), config.IdB...),
		idSymmetric: append([]byte(nil), config.IdSymmetric...),
		entropy:     entropy,
		log:         loggerFor(config.LoggerFactory),
		pwScalar:    pwScalar,
	}
	return s, nil
}

// NewA constructs an asymmetric-variant session for side A.
func NewA(config Config) (*Session, error) { return newSession(RoleA, config) }

// NewB constructs an asymmetric-variant session for side B.
func NewB(config Config) (*Session, error) { return newSession(RoleB, config) }

// NewSymmetric constructs a symmetric-variant session.
func NewSymmetric(config Config) (*Session, error) { return newSession(RoleSymmetric, config) }

// blindingElement returns the element this side blinds its commitment with:
// M for A, N for B, S for the symmetric role.
func (s *Session) blindingElement() group.Element {
	switch s.role {
	case RoleA:
		return s.params.m
	case RoleB:
		return s.params.n
	default:
		return s.params.s
	}
}

// unblindingElement returns the element used to recover the shared point:
// N for A (the opposite of its own blinding element), M for B, S for the
// symmetric role.
func (s *Session) unblindingElement() group.Element {
	switch s.role {
	case RoleA:
		return s.params.n
	case RoleB:
		return s.params.m
	default:
		return s.params.s
	}
}

func (s *Session) expectedPeerRole() Role {
	switch s.role {
	case RoleA:
		return RoleB
	case RoleB:
		return RoleA
	default:
		return RoleSymmetric
	}
}

// Start samples a fresh scalar, computes this side's blinded commitment, and
// returns the tagged outbound message (role byte || element bytes). It may
// be called at most once per session.
func (s *Session) Start() ([]byte, error) {
	if s.started {
		return nil, ErrStartedTwice
	}

	g := s.params.Group()
	xy, err := g.RandomScalar(s.entropy)
	if err != nil {
		return nil, fmt.Errorf("spake2: sample scalar: %w", err)
	}

	xyElem, err := g.Base().ScalarMult(xy)
	if err != nil {
		return nil, fmt.Errorf("spake2: blind commitment: %w", err)
	}

	s.xy = xy
	s.xyElem = xyElem
	if err := s.computeOutbound(); err != nil {
		return nil, err
	}

	s.started = true
	s.log.Debugf("spake2: start role=%s", s.role)
	return s.outboundMessage, nil
}

// computeOutbound derives outboundElem and outboundMessage from xy and
// xyElem. It is shared by Start and deserialize, which both need to
// re-derive the same outbound message deterministically from xy.
func (s *Session) computeOutbound() error {
	blindContrib, err := s.blindingElement().ScalarMult(s.pwScalar)
	if err != nil {
		return fmt.Errorf("spake2: blind commitment: %w", err)
	}
	outboundElem, err := s.xyElem.Add(blindContrib)
	if err != nil {
		return fmt.Errorf("spake2: blind commitment: %w", err)
	}
	s.outboundElem = outboundElem
	s.outboundMessage = append([]byte{byte(s.role)}, outboundElem.Bytes()...)
	return nil
}

// Finish consumes the peer's tagged message, validates it against the
// role/reflection/subgroup guards in §4.8, recovers the shared element, and
// returns the 32-byte derived key. It may be called at most once per
// session, and only after Start.
func (s *Session) Finish(tagged []byte) ([]byte, error) {
	if !s.started {
		return nil, errFinishBeforeStart
	}
	if s.finished {
		return nil, ErrFinishedTwice
	}
	if len(tagged) < 1 {
		return nil, fmt.Errorf("spake2: %w: peer message is empty", ErrBadArgument)
	}

	peerRole := Role(tagged[0])
	peerElemBytes := tagged[1:]

	if peerRole != s.expectedPeerRole() {
		return nil, ErrOffSides
	}

	g := s.params.Group()
	peerElem, err := g.BytesToElement(peerElemBytes)
	if err != nil {
		return nil, fmt.Errorf("spake2: decode peer element: %w", ErrInvalidElement)
	}

	if bytes.Equal(peerElemBytes, s.outboundElem.Bytes()) {
		return nil, ErrReflectionThwarted
	}

	negPwScalar := new(big.Int).Neg(s.pwScalar)
	unblindContrib, err := s.unblindingElement().ScalarMult(negPwScalar)
	if err != nil {
		return nil, fmt.Errorf("spake2: unblind: %w", err)
	}
	shared, err := peerElem.Add(unblindContrib)
	if err != nil {
		return nil, fmt.Errorf("spake2: recover shared element: %w", err)
	}
	kElem, err := shared.ScalarMult(s.xy)
	if err != nil {
		return nil, fmt.Errorf("spake2: recover shared element: %w", err)
	}
	k := kElem.Bytes()

	var key []byte
	switch s.role {
	case RoleA:
		key = finalizeAsymmetric(s.password, s.idA, s.idB, s.outboundElem.Bytes(), peerElemBytes, k)
	case RoleB:
		key = finalizeAsymmetric(s.password, s.idA, s.idB, peerElemBytes, s.outboundElem.Bytes(), k)
	default:
		key = finalizeSymmetric(s.password, s.idSymmetric, s.outboundElem.Bytes(), peerElemBytes, k)
	}

	s.finished = true
	s.zeroSecrets()
	s.log.Debugf("spake2: finish role=%s", s.role)
	return key, nil
}

// zeroSecrets sets the per-session secret scalars to zero and drops the
// session's references to them once Finish no longer needs them.
// SetInt64(0) truncates each value; it does not overwrite the memory that
// held the old words.
func (s *Session) zeroSecrets() {
	if s.pwScalar != nil {
		s.pwScalar.SetInt64(0)
		s.pwScalar = nil
	}
	if s.xy != nil {
		s.xy.SetInt64(0)
		s.xy = nil
	}
}
