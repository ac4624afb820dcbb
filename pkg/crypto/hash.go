// Package crypto provides the cryptographic primitives shared by the group and
// session packages: hashing and key derivation. Group arithmetic and curve
// code live in pkg/crypto/group and its subpackages.
package crypto

import "crypto/sha256"

// SHA-256 output size.
const (
	// SHA256LenBits is the SHA-256 output length in bits.
	SHA256LenBits = 256

	// SHA256LenBytes is the SHA-256 output length in bytes.
	SHA256LenBytes = 32
)

// SHA256 computes the SHA-256 digest of message.
func SHA256(message []byte) [SHA256LenBytes]byte {
	return sha256.Sum256(message)
}

// SHA256Slice computes the SHA-256 digest of message and returns it as a slice.
func SHA256Slice(message []byte) []byte {
	h := sha256.Sum256(message)
	return h[:]
}
