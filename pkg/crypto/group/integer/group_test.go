package integer

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/openspake/spake2/pkg/crypto/group"
)

func mustEntropy(n int) ([]byte, error) {
	return bytes.Repeat([]byte{0x42}, n), nil
}

func TestBuiltinGroupsWellFormed(t *testing.T) {
	for _, g := range []*Group{I1024, I2048, I3072} {
		if g.ScalarSizeBytes() <= 0 || g.ElementSizeBytes() <= 0 {
			t.Errorf("%s: bad sizes", g.Name())
		}
		if !g.isMember(g.base) {
			t.Errorf("%s: generator is not a subgroup member", g.Name())
		}
	}
}

// S3: password_to_scalar(b"pw") under I2048 must encode to this exact value.
func TestPasswordToScalarVectorS3(t *testing.T) {
	scalar, err := I2048.PasswordToScalar([]byte("pw"))
	if err != nil {
		t.Fatal(err)
	}
	enc, err := I2048.ScalarToBytes(scalar)
	if err != nil {
		t.Fatal(err)
	}
	want, err := hex.DecodeString("31bfa1a2f261b3d25cb1374659295dc4911970ef2f36b11c298e87b9")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc, want) {
		t.Errorf("password_to_scalar(pw) = %x, want %x", enc, want)
	}
}

func TestScalarEncodingRoundTrip(t *testing.T) {
	i := new(big.Int).Sub(I2048.Order(), big.NewInt(1))
	enc, err := I2048.ScalarToBytes(i)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := I2048.BytesToScalar(enc)
	if err != nil {
		t.Fatal(err)
	}
	if dec.Cmp(i) != 0 {
		t.Errorf("round trip mismatch: got %v, want %v", dec, i)
	}
}

func TestElementEncodingRoundTrip(t *testing.T) {
	e, err := I2048.ArbitraryElement([]byte("round-trip"))
	if err != nil {
		t.Fatal(err)
	}
	dec, err := I2048.BytesToElement(e.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !e.Equal(dec) {
		t.Error("bytes_to_element(e.to_bytes()) != e")
	}
}

func TestArbitraryElementDeterministic(t *testing.T) {
	a, err := I2048.ArbitraryElement([]byte("seed"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := I2048.ArbitraryElement([]byte("seed"))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("arbitrary_element not deterministic for identical seeds")
	}

	c, err := I2048.ArbitraryElement([]byte("different seed"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Error("different seeds produced the same arbitrary element")
	}
}

func TestBaseScalarMultByOrderIsZero(t *testing.T) {
	result, err := I2048.Base().ScalarMult(I2048.Order())
	if err != nil {
		t.Fatal(err)
	}
	if !result.Equal(I2048.Zero()) {
		t.Error("Base.scalarmult(q) != Zero")
	}
}

func TestBytesToElementRejectsNonMember(t *testing.T) {
	// 2 is very unlikely to be a member of the order-q subgroup of I2048.
	bad, err := group.NumberToBytes(big.NewInt(2), I2048.p)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := I2048.BytesToElement(bad); err == nil {
		t.Error("expected ErrInvalidElement for a non-member residue")
	}
}

func TestRandomScalarInRange(t *testing.T) {
	s, err := I2048.RandomScalar(mustEntropy)
	if err != nil {
		t.Fatal(err)
	}
	if s.Sign() < 0 || s.Cmp(I2048.Order()) >= 0 {
		t.Errorf("random_scalar out of range: %v", s)
	}
}
