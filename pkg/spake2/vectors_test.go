package spake2_test

import (
	"bytes"
	"testing"

	"github.com/openspake/spake2/pkg/spake2"
	"github.com/openspake/spake2/pkg/spake2/internal/testprg"
)

// TestScenarioS1AsymmetricDeterministic pins scenario S1: Ed25519
// asymmetric, empty ids, seeded entropy. Role tags and key length/agreement
// are checked; the PRG makes the whole run bit-for-bit reproducible, which
// TestScenarioS1Reproducible exercises directly.
func TestScenarioS1AsymmetricDeterministic(t *testing.T) {
	pw := []byte("password")

	a, err := spake2.NewA(spake2.Config{Password: pw, Entropy: testprg.New([]byte("A"))})
	if err != nil {
		t.Fatalf("NewA: %v", err)
	}
	b, err := spake2.NewB(spake2.Config{Password: pw, Entropy: testprg.New([]byte("B"))})
	if err != nil {
		t.Fatalf("NewB: %v", err)
	}

	msgA, err := a.Start()
	if err != nil {
		t.Fatalf("A.Start: %v", err)
	}
	msgB, err := b.Start()
	if err != nil {
		t.Fatalf("B.Start: %v", err)
	}

	if msgA[0] != 0x41 {
		t.Fatalf("A message tag = %#x, want 0x41", msgA[0])
	}
	if msgB[0] != 0x42 {
		t.Fatalf("B message tag = %#x, want 0x42", msgB[0])
	}

	keyA, err := a.Finish(msgB)
	if err != nil {
		t.Fatalf("A.Finish: %v", err)
	}
	keyB, err := b.Finish(msgA)
	if err != nil {
		t.Fatalf("B.Finish: %v", err)
	}

	if len(keyA) != 32 {
		t.Fatalf("key length = %d, want 32", len(keyA))
	}
	if !bytes.Equal(keyA, keyB) {
		t.Fatalf("keys differ:\n  A: %x\n  B: %x", keyA, keyB)
	}
}

func TestScenarioS1Reproducible(t *testing.T) {
	run := func() []byte {
		pw := []byte("password")
		a, _ := spake2.NewA(spake2.Config{Password: pw, Entropy: testprg.New([]byte("A"))})
		b, _ := spake2.NewB(spake2.Config{Password: pw, Entropy: testprg.New([]byte("B"))})
		msgA, _ := a.Start()
		msgB, _ := b.Start()
		key, _ := a.Finish(msgB)
		_, _ = b.Finish(msgA)
		return key
	}

	first := run()
	second := run()
	if !bytes.Equal(first, second) {
		t.Fatalf("seeded runs diverged:\n  1: %x\n  2: %x", first, second)
	}
}

// TestScenarioS2SymmetricDeterministic pins scenario S2: Ed25519 symmetric,
// seeded entropy, commutative under which side sees which message first.
func TestScenarioS2SymmetricDeterministic(t *testing.T) {
	pw := []byte("password")

	s1, err := spake2.NewSymmetric(spake2.Config{Password: pw, Entropy: testprg.New([]byte("1"))})
	if err != nil {
		t.Fatalf("NewSymmetric: %v", err)
	}
	s2, err := spake2.NewSymmetric(spake2.Config{Password: pw, Entropy: testprg.New([]byte("2"))})
	if err != nil {
		t.Fatalf("NewSymmetric: %v", err)
	}

	msg1, err := s1.Start()
	if err != nil {
		t.Fatalf("s1.Start: %v", err)
	}
	msg2, err := s2.Start()
	if err != nil {
		t.Fatalf("s2.Start: %v", err)
	}

	if msg1[0] != 0x53 || msg2[0] != 0x53 {
		t.Fatalf("symmetric message tags = %#x, %#x, want both 0x53", msg1[0], msg2[0])
	}

	key1, err := s1.Finish(msg2)
	if err != nil {
		t.Fatalf("s1.Finish: %v", err)
	}
	key2, err := s2.Finish(msg1)
	if err != nil {
		t.Fatalf("s2.Finish: %v", err)
	}
	if !bytes.Equal(key1, key2) {
		t.Fatalf("keys differ:\n  1: %x\n  2: %x", key1, key2)
	}
}

// TestScenarioS5MismatchNoError pins scenario S5: differing passwords
// complete both sides without error, but produce different keys.
func TestScenarioS5MismatchNoError(t *testing.T) {
	a, err := spake2.NewA(spake2.Config{Password: []byte("password")})
	if err != nil {
		t.Fatalf("NewA: %v", err)
	}
	b, err := spake2.NewB(spake2.Config{Password: []byte("passwerd")})
	if err != nil {
		t.Fatalf("NewB: %v", err)
	}

	msgA, err := a.Start()
	if err != nil {
		t.Fatalf("A.Start: %v", err)
	}
	msgB, err := b.Start()
	if err != nil {
		t.Fatalf("B.Start: %v", err)
	}

	keyA, err := a.Finish(msgB)
	if err != nil {
		t.Fatalf("A.Finish: %v", err)
	}
	keyB, err := b.Finish(msgA)
	if err != nil {
		t.Fatalf("B.Finish: %v", err)
	}

	if bytes.Equal(keyA, keyB) {
		t.Fatal("mismatched passwords produced equal keys")
	}
}

// TestScenarioS6ReflectionRetagged pins scenario S6: re-tagging our own
// outbound message with the peer's role byte must still fail, because the
// check is on element equality, not the role byte.
func TestScenarioS6ReflectionRetagged(t *testing.T) {
	a, err := spake2.NewA(spake2.Config{Password: []byte("password")})
	if err != nil {
		t.Fatalf("NewA: %v", err)
	}
	msgA, err := a.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	retagged := append([]byte{byte(spake2.RoleB)}, msgA[1:]...)
	if _, err := a.Finish(retagged); err != spake2.ErrReflectionThwarted {
		t.Fatalf("Finish(retagged reflection): got %v, want ErrReflectionThwarted", err)
	}
}

// TestScenarioS7DeserializeWrongGroup pins scenario S7: deserializing a
// 1024-bit-group blob under the 3072-bit parameter set fails with
// WrongGroup before any cryptographic work happens.
func TestScenarioS7DeserializeWrongGroup(t *testing.T) {
	a, err := spake2.NewA(spake2.Config{Password: []byte("password"), Params: spake2.ParamsI1024})
	if err != nil {
		t.Fatalf("NewA: %v", err)
	}
	if _, err := a.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	blob, err := a.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	if _, err := spake2.DeserializeA(blob, spake2.Config{Params: spake2.ParamsI3072}); err != spake2.ErrWrongGroup {
		t.Fatalf("DeserializeA under wrong group: got %v, want ErrWrongGroup", err)
	}
}
