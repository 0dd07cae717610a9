package secp256k1

import (
	"crypto/subtle"
	"math/bits"
	"unsafe"

	"window.mleku.dev"
)

// ScalarBits is the bit length of the secp256k1 group order.
const ScalarBits = 256

// Scalar represents a scalar modulo the group order of the secp256k1 curve
// as 4 uint64 limbs, least significant first.
type Scalar struct {
	d [4]uint64
}

// Group order constants (secp256k1 curve order n)
const (
	// Limbs of the secp256k1 order
	scalarN0 = 0xBFD25E8CD0364141
	scalarN1 = 0xBAAEDCE6AF48A03B
	scalarN2 = 0xFFFFFFFFFFFFFFFE
	scalarN3 = 0xFFFFFFFFFFFFFFFF
)

// Scalar constants
var (
	// ScalarZero represents the scalar 0
	ScalarZero = Scalar{d: [4]uint64{0, 0, 0, 0}}

	// ScalarOne represents the scalar 1
	ScalarOne = Scalar{d: [4]uint64{1, 0, 0, 0}}
)

// NewScalar creates a new scalar from a 32-byte big-endian array, reducing it
// modulo the group order.
func NewScalar(b32 []byte) *Scalar {
	if len(b32) != 32 {
		panic("input must be 32 bytes")
	}

	s := &Scalar{}
	s.setB32(b32)
	return s
}

// SetUint64 sets r to v.
func (r *Scalar) SetUint64(v uint64) *Scalar {
	r.d = [4]uint64{v, 0, 0, 0}
	return r
}

// setB32 sets a scalar from a 32-byte big-endian array, reducing modulo group order
func (r *Scalar) setB32(bin []byte) (overflow bool) {
	r.d[0] = readBE64(bin[24:32])
	r.d[1] = readBE64(bin[16:24])
	r.d[2] = readBE64(bin[8:16])
	r.d[3] = readBE64(bin[0:8])

	overflow = r.checkOverflow()
	if overflow {
		r.reduce(1)
	}

	return overflow
}

// getB32 converts a scalar to a 32-byte big-endian array
func (r *Scalar) getB32(bin []byte) {
	if len(bin) != 32 {
		panic("output buffer must be 32 bytes")
	}

	writeBE64(bin[0:8], r.d[3])
	writeBE64(bin[8:16], r.d[2])
	writeBE64(bin[16:24], r.d[1])
	writeBE64(bin[24:32], r.d[0])
}

// Bytes returns r as a 32-byte big-endian array.
func (r *Scalar) Bytes() (b [32]byte) {
	r.getB32(b[:])
	return b
}

// checkOverflow checks if the scalar is >= the group order
func (r *Scalar) checkOverflow() bool {
	if r.d[3] != scalarN3 {
		return r.d[3] > scalarN3
	}
	if r.d[2] != scalarN2 {
		return r.d[2] > scalarN2
	}
	if r.d[1] != scalarN1 {
		return r.d[1] > scalarN1
	}
	return r.d[0] >= scalarN0
}

// reduce subtracts overflow*n from the scalar
func (r *Scalar) reduce(overflow int) {
	if overflow < 0 || overflow > 1 {
		panic("overflow must be 0 or 1")
	}

	var borrow uint64
	r.d[0], borrow = bits.Sub64(r.d[0], uint64(overflow)*scalarN0, 0)
	r.d[1], borrow = bits.Sub64(r.d[1], uint64(overflow)*scalarN1, borrow)
	r.d[2], borrow = bits.Sub64(r.d[2], uint64(overflow)*scalarN2, borrow)
	r.d[3], _ = bits.Sub64(r.d[3], uint64(overflow)*scalarN3, borrow)
}

// Negate sets r = -a mod n.
func (r *Scalar) Negate(a *Scalar) *Scalar {
	if a.IsZero() {
		r.d = [4]uint64{}
		return r
	}
	var borrow uint64
	r.d[0], borrow = bits.Sub64(scalarN0, a.d[0], 0)
	r.d[1], borrow = bits.Sub64(scalarN1, a.d[1], borrow)
	r.d[2], borrow = bits.Sub64(scalarN2, a.d[2], borrow)
	r.d[3], _ = bits.Sub64(scalarN3, a.d[3], borrow)
	return r
}

// IsZero returns true if the scalar is zero.
func (r *Scalar) IsZero() bool {
	return r.d[0] == 0 && r.d[1] == 0 && r.d[2] == 0 && r.d[3] == 0
}

// Equal returns true if two scalars are equal.
func (r *Scalar) Equal(a *Scalar) bool {
	return subtle.ConstantTimeCompare(
		(*[32]byte)(unsafe.Pointer(&r.d[0]))[:32],
		(*[32]byte)(unsafe.Pointer(&a.d[0]))[:32],
	) == 1
}

// Block returns the canonical limbs of r, which is never negative.
func (r *Scalar) Block() window.Block {
	words := make([]window.Word, 0, ScalarBits/window.WordBits)
	for _, v := range r.d {
		words = window.AppendUint64(words, v)
	}
	return window.Block{Words: words}
}

// readBE64 reads a big-endian uint64 from 8 bytes
func readBE64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}

// writeBE64 writes v to 8 bytes in big-endian order
func writeBE64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}
