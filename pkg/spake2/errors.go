package spake2

import (
	"errors"

	"github.com/openspake/spake2/pkg/crypto/group"
)

// Sentinel errors for every fatal condition a Session can raise (§7). All of
// them are terminal: a Session that returns one from Finish must be
// discarded without producing a key.
var (
	// ErrStartedTwice is returned by Start when called on an already-started session.
	ErrStartedTwice = errors.New("spake2: start called more than once")

	// ErrFinishedTwice is returned by Finish when called on an already-finished session.
	ErrFinishedTwice = errors.New("spake2: finish called more than once")

	// ErrSerializedTooEarly is returned by Serialize before Start has run.
	ErrSerializedTooEarly = errors.New("spake2: serialize called before start")

	// ErrWrongSideSerialized is returned when deserializing a blob recorded
	// under a different role than the one requested.
	ErrWrongSideSerialized = errors.New("spake2: serialized session has the wrong role")

	// ErrWrongGroup is returned when a deserialized blob's parameter-set
	// fingerprint does not match the parameter set supplied to deserialize.
	ErrWrongGroup = errors.New("spake2: serialized session was produced with a different parameter set")

	// ErrOffSides is returned by Finish when the peer message's role byte
	// does not match the expected counterpart role.
	ErrOffSides = errors.New("spake2: peer message has an unexpected role byte")

	// ErrReflectionThwarted is returned by Finish when the peer message's
	// element bytes equal our own outbound element bytes.
	ErrReflectionThwarted = errors.New("spake2: peer message reflects our own outbound message")

	// ErrInvalidElement is returned by Finish when the peer's element bytes
	// fail to decode to a valid subgroup member.
	ErrInvalidElement = group.ErrInvalidElement

	// ErrEntropyExhausted is returned when unbiased scalar sampling exceeds its retry cap.
	ErrEntropyExhausted = group.ErrEntropyExhausted

	// ErrBadArgument is returned for malformed arguments: wrong-length
	// messages, nil configuration fields that have no default, and similar.
	ErrBadArgument = group.ErrBadArgument
)
