// Package testprg provides a deterministic entropy source for reproducible
// SPAKE2 test vectors: a SHA-256 counter-stream keyed by an arbitrary seed.
// It must never be used outside tests — determinism is the opposite of what
// production entropy needs.
package testprg

import (
	"crypto/sha256"
	"fmt"

	"github.com/openspake/spake2/pkg/crypto/group"
)

// New returns a group.EntropyFunc that yields the same byte stream every
// time for a given seed: block i is sha256("prng-<i>-<seed>"), consumed one
// byte at a time across successive blocks as more bytes are requested.
func New(seed []byte) group.EntropyFunc {
	counter := 0
	var block []byte
	pos := 0

	return func(n int) ([]byte, error) {
		out := make([]byte, 0, n)
		for len(out) < n {
			if pos == len(block) {
				cseed := append([]byte(fmt.Sprintf("prng-%d-", counter)), seed...)
				sum := sha256.Sum256(cseed)
				block = sum[:]
				pos = 0
				counter++
			}
			out = append(out, block[pos])
			pos++
		}
		return out, nil
	}
}
