package window

import (
	"math/big"
	"math/bits"
)

// Word is the native limb type of scalars handed to a Method. It is the same
// type math/big uses, so big.Int.Bits can be passed straight through.
type Word = big.Word

// WordBits is the bit width of a Word.
const WordBits = bits.UintSize

// trimWords drops the most significant zero words of y.
func trimWords(y []Word) []Word {
	n := len(y)
	for n > 0 && y[n-1] == 0 {
		n--
	}
	return y[:n]
}

// bitLen returns the exact bit length of y, which must not have a zero top
// word.
func bitLen(y []Word) int {
	if len(y) == 0 {
		return 0
	}
	return (len(y)-1)*WordBits + bits.Len(uint(y[len(y)-1]))
}

// AppendUint64 appends v to dst as one or two words depending on WordBits,
// least significant first.
func AppendUint64(dst []Word, v uint64) []Word {
	if WordBits == 64 {
		return append(dst, Word(v))
	}
	return append(dst, Word(uint32(v)), Word(v>>32))
}

// AppendBytes appends the big-endian integer in b to dst as words, least
// significant first.
func AppendBytes(dst []Word, b []byte) []Word {
	const wordBytes = WordBits / 8
	for end := len(b); end > 0; end -= wordBytes {
		start := max(end-wordBytes, 0)
		var w Word
		for _, c := range b[start:end] {
			w = w<<8 | Word(c)
		}
		dst = append(dst, w)
	}
	return dst
}
