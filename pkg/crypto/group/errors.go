package group

import "errors"

// Sentinel errors returned by Group and Element implementations. Callers
// should compare against these with errors.Is.
var (
	// ErrBadArgument is returned when an operation is given a value of the
	// wrong kind: a scalar where an element was expected, an element where
	// an integer was expected, or a byte string of the wrong fixed width.
	ErrBadArgument = errors.New("group: bad argument")

	// ErrInvalidElement is returned when a byte string fails to decode to a
	// member of the prime-order subgroup.
	ErrInvalidElement = errors.New("group: invalid element encoding")

	// ErrEntropyExhausted is returned when unbiased rejection sampling
	// exceeds its retry cap without producing an in-range candidate.
	ErrEntropyExhausted = errors.New("group: entropy sampling exceeded retry limit")
)
