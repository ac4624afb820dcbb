package spake2

import "github.com/openspake/spake2/pkg/crypto"

// finalizeAsymmetric implements §4.7's asymmetric transcript:
//
//	SHA256( SHA256(pw) || SHA256(idA) || SHA256(idB) || X* || Y* || K )
//
// xMsg is always A's outbound element bytes and yMsg is always B's,
// regardless of which side is computing the transcript. The password and
// identities are pre-hashed so they contribute a fixed-width, unambiguous
// span regardless of their own length. This follows the pre-hashed-password
// form of the upstream spake2.py finalizer, not the older raw-password
// variant.
func finalizeAsymmetric(pw, idA, idB, xMsg, yMsg, k []byte) []byte {
	var buf []byte
	buf = append(buf, crypto.SHA256Slice(pw)...)
	buf = append(buf, crypto.SHA256Slice(idA)...)
	buf = append(buf, crypto.SHA256Slice(idB)...)
	buf = append(buf, xMsg...)
	buf = append(buf, yMsg...)
	buf = append(buf, k...)
	return crypto.SHA256Slice(buf)
}

// finalizeSymmetric implements §4.7's symmetric transcript:
//
//	SHA256( SHA256(pw) || SHA256(idSymmetric) || first_msg || second_msg || K )
//
// ourMsg and peerMsg are sorted into ascending lexicographic byte order
// before hashing, so both sides produce an identical transcript without
// needing to agree on who went "first".
func finalizeSymmetric(pw, idSymmetric, ourMsg, peerMsg, k []byte) []byte {
	first, second := ourMsg, peerMsg
	if bytesGreater(first, second) {
		first, second = second, first
	}

	var buf []byte
	buf = append(buf, crypto.SHA256Slice(pw)...)
	buf = append(buf, crypto.SHA256Slice(idSymmetric)...)
	buf = append(buf, first...)
	buf = append(buf, second...)
	buf = append(buf, k...)
	return crypto.SHA256Slice(buf)
}

// bytesGreater reports whether a sorts after b in lexicographic byte order.
func bytesGreater(a, b []byte) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return len(a) > len(b)
}
