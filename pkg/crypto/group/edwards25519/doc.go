// Package edwards25519 implements the Ed25519 group backend: the Edwards
// curve group of prime order L = 2^252 + 27742317777372353535851937790883648493,
// cofactor 8. It is the default group for new SPAKE2 sessions.
//
// Curve and scalar arithmetic is delegated to filippo.io/edwards25519. This
// package's job is the SPAKE2-specific layer on top: cofactor clearing on
// every decode, deterministic retry-based arbitrary-element derivation, and
// the translation between the group package's big-endian integer scalars
// and the curve library's little-endian scalar wire format.
package edwards25519
