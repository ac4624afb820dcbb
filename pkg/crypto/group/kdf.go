package group

import "github.com/openspake/spake2/pkg/crypto"

// expandPasswordInfo and expandArbitraryElementInfo are the fixed HKDF info
// labels that domain-separate the two expansions SPAKE2 needs from the same
// underlying HKDF-SHA256 construction.
var (
	expandPasswordInfo         = []byte("SPAKE2 pw")
	expandArbitraryElementInfo = []byte("SPAKE2 arbitrary element")
)

// ExpandPassword deterministically expands ikm (a password) to n bytes via
// HKDF-SHA256 with an empty salt and the "SPAKE2 pw" info label.
func ExpandPassword(ikm []byte, n int) ([]byte, error) {
	return crypto.HKDFSHA256(ikm, nil, expandPasswordInfo, n)
}

// ExpandArbitraryElementSeed deterministically expands seed to n bytes via
// HKDF-SHA256 with an empty salt and the "SPAKE2 arbitrary element" info
// label.
func ExpandArbitraryElementSeed(seed []byte, n int) ([]byte, error) {
	return crypto.HKDFSHA256(seed, nil, expandArbitraryElementInfo, n)
}
