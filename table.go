package window

import (
	"math"
	"unsafe"
)

// MaxTableSize bounds the memory, in bytes, a single precomputed table may
// occupy. Init fails with ErrTableAlloc rather than exceed it.
var MaxTableSize uintptr = 1 << 31

// table stores blocks*2^winSize precomputed elements in one allocation. The
// entry for window value v of block i sits at i<<winSize + v.
type table[E any] struct {
	elems   []E
	winSize int
}

// resize drops the current contents and allocates room for blocks blocks of
// 2^winSize zero elements. It reports false, leaving the table empty, when the
// entry count overflows or the size exceeds MaxTableSize.
func (t *table[E]) resize(blocks, winSize int) bool {
	t.elems = nil
	t.winSize = 0
	if blocks < 0 || winSize < 0 || winSize >= WordBits-1 {
		return false
	}
	if blocks > math.MaxInt>>winSize {
		return false
	}
	n := blocks << winSize
	var zero E
	if sz := unsafe.Sizeof(zero); sz != 0 && uintptr(n) > MaxTableSize/sz {
		return false
	}
	t.elems = make([]E, n)
	t.winSize = winSize
	return true
}

// index is the flat position of window value v in block i.
func (t *table[E]) index(i int, v uint) int {
	return i<<t.winSize + int(v)
}

// at returns the entry for window value v of block i.
func (t *table[E]) at(i int, v uint) *E {
	return &t.elems[t.index(i, v)]
}

// block returns the 2^winSize entries of block i.
func (t *table[E]) block(i int) []E {
	lo := t.index(i, 0)
	hi := t.index(i+1, 0)
	return t.elems[lo:hi:hi]
}

func (t *table[E]) len() int {
	return len(t.elems)
}

// sizeBytes returns the memory held by the entries.
func (t *table[E]) sizeBytes() uintptr {
	var zero E
	return uintptr(len(t.elems)) * unsafe.Sizeof(zero)
}
