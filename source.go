package window

import (
	"math/big"

	"github.com/decred/dcrd/math/uint256"
)

// Block is the canonical limb form of a scalar: its magnitude as words, least
// significant first, and its sign.
type Block struct {
	Words    []Word
	Negative bool
}

// BlockSource is implemented by residue-class and field elements that can
// present their canonical value as a Block.
type BlockSource interface {
	Block() Block
}

// Mul sets z to y*base for an element y that exposes its canonical limbs.
func (m *Method[E, P]) Mul(z *E, y BlockSource) error {
	b := y.Block()
	return m.PowArray(z, b.Words, b.Negative)
}

// MulInt64 sets z to y*base.
func (m *Method[E, P]) MulInt64(z *E, y int64) error {
	u := uint64(y)
	if y < 0 {
		u = -u
	}
	var buf [2]Word
	return m.PowArray(z, AppendUint64(buf[:0], u), y < 0)
}

// MulBig sets z to y*base.
func (m *Method[E, P]) MulBig(z *E, y *big.Int) error {
	return m.PowArray(z, y.Bits(), y.Sign() < 0)
}

// MulUint256 sets z to y*base.
func (m *Method[E, P]) MulUint256(z *E, y *uint256.Uint256) error {
	b := y.Bytes()
	var buf [256 / WordBits]Word
	return m.PowArray(z, AppendBytes(buf[:0], b[:]), false)
}

// MulUint64s sets z to y*base, where y holds 64-bit limbs least significant
// first.
func (m *Method[E, P]) MulUint64s(z *E, y []uint64, isNegative bool) error {
	words := make([]Word, 0, len(y)*64/WordBits)
	for _, v := range y {
		words = AppendUint64(words, v)
	}
	return m.PowArray(z, words, isNegative)
}
