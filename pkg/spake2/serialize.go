package spake2

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// serializedState is the canonical on-wire shape of a saved session, mirroring
// the dict the upstream implementation builds in _serialize_to_dict /
// _deserialize_from_dict. Every field is hex- or ASCII-safe so the blob
// round-trips through JSON without escaping surprises.
type serializedState struct {
	HashedParams string `json:"hashed_params"`
	Side         string `json:"side"`
	IdA          string `json:"idA,omitempty"`
	IdB          string `json:"idB,omitempty"`
	IdSymmetric  string `json:"idS,omitempty"`
	Password     string `json:"password"`
	XYScalar     string `json:"xy_scalar"`
}

// Serialize snapshots a started session to a self-describing blob that
// DeserializeA/DeserializeB/DeserializeSymmetric can later restore. It is
// permitted only after Start and before Finish; the blob carries enough
// state (the sampled scalar, the password, and the parameter-set
// fingerprint) to re-derive everything Finish needs.
func (s *Session) Serialize() ([]byte, error) {
	if !s.started {
		return nil, ErrSerializedTooEarly
	}
	if s.finished {
		return nil, fmt.Errorf("spake2: serialize called after finish")
	}

	fingerprint, err := s.params.Fingerprint(s.role)
	if err != nil {
		return nil, err
	}
	xyBytes, err := s.params.Group().ScalarToBytes(s.xy)
	if err != nil {
		return nil, fmt.Errorf("spake2: encode scalar: %w", err)
	}

	st := serializedState{
		HashedParams: fingerprint,
		Side:         string(rune(s.role)),
		Password:     hex.EncodeToString(s.password),
		XYScalar:     hex.EncodeToString(xyBytes),
	}
	switch s.role {
	case RoleA, RoleB:
		st.IdA = hex.EncodeToString(s.idA)
		st.IdB = hex.EncodeToString(s.idB)
	default:
		st.IdSymmetric = hex.EncodeToString(s.idSymmetric)
	}

	return json.Marshal(st)
}

// DeserializeA restores a session previously serialized by side A.
func DeserializeA(data []byte, config Config) (*Session, error) {
	return deserialize(data, RoleA, config)
}

// DeserializeB restores a session previously serialized by side B.
func DeserializeB(data []byte, config Config) (*Session, error) {
	return deserialize(data, RoleB, config)
}

// DeserializeSymmetric restores a session previously serialized under the
// symmetric role.
func DeserializeSymmetric(data []byte, config Config) (*Session, error) {
	return deserialize(data, RoleSymmetric, config)
}

// deserialize rebuilds a Session from a blob produced by Serialize. It
// refuses to produce a session under a role other than wantRole (even when
// the blob is otherwise well-formed for some other role), and refuses a
// parameter-set mismatch detected via the fingerprint. Both checks are
// fatal: the caller receives an error, never a partially reconstructed
// session.
func deserialize(data []byte, wantRole Role, config Config) (*Session, error) {
	var st serializedState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("spake2: %w: %v", ErrBadArgument, err)
	}
	if len(st.Side) != 1 {
		return nil, fmt.Errorf("spake2: %w: malformed side tag", ErrBadArgument)
	}

	side := Role(st.Side[0])
	if side != wantRole {
		return nil, ErrWrongSideSerialized
	}

	params := config.Params
	if params == nil {
		params = ParamsEd25519
	}

	wantFingerprint, err := params.Fingerprint(side)
	if err != nil {
		return nil, err
	}
	if st.HashedParams != wantFingerprint {
		return nil, ErrWrongGroup
	}

	password, err := hex.DecodeString(st.Password)
	if err != nil {
		return nil, fmt.Errorf("spake2: %w: malformed password", ErrBadArgument)
	}
	xyBytes, err := hex.DecodeString(st.XYScalar)
	if err != nil {
		return nil, fmt.Errorf("spake2: %w: malformed scalar", ErrBadArgument)
	}
	xy, err := params.Group().BytesToScalar(xyBytes)
	if err != nil {
		return nil, fmt.Errorf("spake2: decode scalar: %w", err)
	}

	pwScalar, err := params.Group().PasswordToScalar(password)
	if err != nil {
		return nil, fmt.Errorf("spake2: derive password scalar: %w", err)
	}

	s := &Session{
		role:     side,
		params:   params,
		password: password,
		entropy:  config.Entropy,
		log:      loggerFor(config.LoggerFactory),
		pwScalar: pwScalar,
		xy:       xy,
	}
	if s.entropy == nil {
		s.entropy = defaultEntropy
	}

	switch side {
	case RoleA, RoleB:
		if s.idA, err = hex.DecodeString(st.IdA); err != nil {
			return nil, fmt.Errorf("spake2: %w: malformed idA", ErrBadArgument)
		}
		if s.idB, err = hex.DecodeString(st.IdB); err != nil {
			return nil, fmt.Errorf("spake2: %w: malformed idB", ErrBadArgument)
		}
	default:
		if s.idSymmetric, err = hex.DecodeString(st.IdSymmetric); err != nil {
			return nil, fmt.Errorf("spake2: %w: malformed idS", ErrBadArgument)
		}
	}

	xyElem, err := params.Group().Base().ScalarMult(xy)
	if err != nil {
		return nil, fmt.Errorf("spake2: blind commitment: %w", err)
	}
	s.xyElem = xyElem
	if err := s.computeOutbound(); err != nil {
		return nil, err
	}
	s.started = true

	return s, nil
}
