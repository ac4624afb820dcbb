// Package spake2 implements the two SPAKE2 protocol variants: the
// asymmetric variant with distinguished roles A and B, and the symmetric
// variant where both parties play an identical role. A Session is a
// single-owner, single-use object: construct it, call Start once, call
// Finish once, and discard it.
//
// Example:
//
//	sA, _ := spake2.NewA(spake2.Config{Password: []byte("password")})
//	sB, _ := spake2.NewB(spake2.Config{Password: []byte("password")})
//	msgA, _ := sA.Start()
//	msgB, _ := sB.Start()
//	keyA, _ := sA.Finish(msgB)
//	keyB, _ := sB.Finish(msgA)
//	// keyA == keyB
package spake2
