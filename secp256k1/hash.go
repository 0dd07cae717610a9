package secp256k1

import (
	"sync"

	sha256simd "github.com/minio/sha256-simd"
)

// ScalarTag is the default domain separation tag for ScalarFromHash.
const ScalarTag = "window/scalar"

var (
	scalarTagHash      [32]byte
	taggedHashInitOnce sync.Once
)

// getTaggedHashPrefix returns SHA256(tag), cached for ScalarTag
func getTaggedHashPrefix(tag []byte) [32]byte {
	if string(tag) == ScalarTag {
		taggedHashInitOnce.Do(func() {
			scalarTagHash = sha256simd.Sum256([]byte(ScalarTag))
		})
		return scalarTagHash
	}
	return sha256simd.Sum256(tag)
}

// TaggedHash computes the BIP-340 style tagged hash
// SHA256(SHA256(tag) || SHA256(tag) || data...).
func TaggedHash(tag []byte, data ...[]byte) [32]byte {
	tagHash := getTaggedHashPrefix(tag)

	h := sha256simd.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	for _, d := range data {
		h.Write(d)
	}
	var result [32]byte
	copy(result[:], h.Sum(nil))
	return result
}

// ScalarFromHash derives a scalar from the tagged hash of data, reduced modulo
// the group order. An empty tag selects ScalarTag.
func ScalarFromHash(tag []byte, data ...[]byte) *Scalar {
	if len(tag) == 0 {
		tag = []byte(ScalarTag)
	}
	sum := TaggedHash(tag, data...)
	return NewScalar(sum[:])
}
