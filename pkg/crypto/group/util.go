package group

import "math/big"

// maxUnbiasedRandrangeRetries caps the rejection-sampling loop in
// UnbiasedRandrange. Expected trials are under 2; this is a generous
// backstop against a broken entropy source, not a normal code path.
const maxUnbiasedRandrangeRetries = 10000

// SizeBits returns the number of bits needed to represent maxval, at least 1.
func SizeBits(maxval *big.Int) int {
	bits := maxval.BitLen()
	if bits == 0 {
		return 1
	}
	return bits
}

// SizeBytes returns ceil(SizeBits(maxval) / 8).
func SizeBytes(maxval *big.Int) int {
	return (SizeBits(maxval) + 7) / 8
}

// NumberToBytes encodes n as a big-endian byte string of length
// SizeBytes(maxval), failing if n exceeds maxval.
func NumberToBytes(n, maxval *big.Int) ([]byte, error) {
	if n.Sign() < 0 || n.Cmp(maxval) > 0 {
		return nil, ErrBadArgument
	}
	out := make([]byte, SizeBytes(maxval))
	n.FillBytes(out)
	return out, nil
}

// BytesToNumber is the inverse of NumberToBytes: it interprets b as a
// big-endian unsigned integer.
func BytesToNumber(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// generateMask returns the bitmask applied to the most-significant byte of a
// maxval-bit candidate, and the number of bytes to draw.
func generateMask(maxval *big.Int) (byte, int) {
	numBytes := SizeBytes(maxval)
	numBits := SizeBits(maxval)
	leftover := numBits % 8
	if leftover == 0 {
		return 0xff, numBytes
	}
	return byte(1<<uint(leftover) - 1), numBytes
}

// UnbiasedRandrange returns a uniformly distributed integer in [lo, hi) by
// rejection sampling: it draws the minimal number of random bytes that cover
// hi-lo-1, masks the top byte to the minimal bit width, and retries on an
// out-of-range candidate. Acceptance probability per trial is at least 1/2.
func UnbiasedRandrange(lo, hi *big.Int, entropy EntropyFunc) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	if span.Sign() <= 0 {
		return nil, ErrBadArgument
	}

	topMask, numBytes := generateMask(new(big.Int).Sub(span, big.NewInt(1)))
	for attempt := 0; attempt < maxUnbiasedRandrangeRetries; attempt++ {
		raw, err := entropy(numBytes)
		if err != nil {
			return nil, err
		}
		candidate := make([]byte, numBytes)
		copy(candidate, raw)
		candidate[0] &= topMask

		candidateInt := new(big.Int).SetBytes(candidate)
		if candidateInt.Cmp(span) < 0 {
			return new(big.Int).Add(lo, candidateInt), nil
		}
	}
	return nil, ErrEntropyExhausted
}
