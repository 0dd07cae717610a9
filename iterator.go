package window

import "math/bits"

// Limb is one unsigned digit of a multi-limb integer. Limb arrays are stored
// least significant limb first.
type Limb interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// limbBits returns the bit width of T
func limbBits[T Limb]() int {
	return bits.Len64(uint64(^T(0)))
}

// makeMask returns a mask of the low w bits of T
func makeMask[T Limb](w int) T {
	if w == limbBits[T]() {
		return ^T(0)
	}
	return T(1)<<w - 1
}

// ExtractBits returns width bits of x starting at bit offset, where bit 0 is
// the least significant bit of x[0]. A read that runs past the end of x is
// padded with zero bits. width must be in [1, bit width of T].
func ExtractBits[T Limb](x []T, offset, width int) T {
	n := limbBits[T]()
	if width < 1 || width > n {
		panic("window: extraction width out of range")
	}
	if offset < 0 {
		panic("window: negative bit offset")
	}
	idx, pos := offset/n, offset%n
	var v T
	if idx < len(x) {
		v = x[idx] >> pos
	}
	if pos+width > n && idx+1 < len(x) {
		v |= x[idx+1] << (n - pos)
	}
	return v & makeMask[T](width)
}

// ArrayIterator reads fixed-width windows from the low bitSize bits of a limb
// array, least significant window first. It holds a view of the caller's
// array and never copies or writes it.
//
// An ArrayIterator is a single-use cursor. It must not be shared between
// goroutines.
type ArrayIterator[T Limb] struct {
	x       []T // x[0] is the limb under the cursor
	bitSize int // bits left to read
	w       int
	mask    T
	pos     int // bit offset within x[0], always below the limb width
}

// MakeArrayIterator returns an iterator over the low bitSize bits of x that
// yields w-bit windows. It panics when w is not in [1, bit width of T] or when
// bitSize does not fit in x.
func MakeArrayIterator[T Limb](x []T, bitSize, w int) ArrayIterator[T] {
	n := limbBits[T]()
	if w < 1 || w > n {
		panic("window: window width out of range")
	}
	if bitSize < 0 || bitSize > len(x)*n {
		panic("window: bit size exceeds limb array")
	}
	return ArrayIterator[T]{
		x:       x,
		bitSize: bitSize,
		w:       w,
		mask:    makeMask[T](w),
	}
}

// HasNext reports whether any bits remain.
func (it *ArrayIterator[T]) HasNext() bool { return it.bitSize > 0 }

// Remaining returns the number of bits not yet read.
func (it *ArrayIterator[T]) Remaining() int { return it.bitSize }

// Next returns the next window of the configured width.
func (it *ArrayIterator[T]) Next() T { return it.NextBits(0) }

// NextBits returns the next w-bit window and advances past it. A zero w
// selects the configured width. The final window is narrowed to the bits that
// remain.
func (it *ArrayIterator[T]) NextBits(w int) T {
	n := limbBits[T]()
	if !it.HasNext() {
		panic("window: read past end of data")
	}
	if w == 0 {
		w = it.w
	}
	if w < 0 || w > n {
		panic("window: window width out of range")
	}
	if w > it.bitSize {
		w = it.bitSize
	}
	mask := it.mask
	if w != it.w {
		mask = makeMask[T](w)
	}
	next := it.pos + w
	if next <= n {
		v := it.x[0] >> it.pos
		if next < n {
			it.pos = next
			v &= mask
		} else {
			// the window ends on the limb boundary, so the shift already
			// dropped everything below it
			it.pos = 0
			it.x = it.x[1:]
		}
		it.bitSize -= w
		return v
	}
	v := (it.x[0]>>it.pos | it.x[1]<<(n-it.pos)) & mask
	it.pos = next - n
	it.bitSize -= w
	it.x = it.x[1:]
	return v
}

// Peek1Bit returns the bit under the cursor without advancing.
func (it *ArrayIterator[T]) Peek1Bit() bool {
	if !it.HasNext() {
		panic("window: read past end of data")
	}
	return (it.x[0]>>it.pos)&1 == 1
}

// Consume1Bit advances the cursor by one bit.
func (it *ArrayIterator[T]) Consume1Bit() {
	if !it.HasNext() {
		panic("window: read past end of data")
	}
	it.pos++
	if it.pos == limbBits[T]() {
		it.pos = 0
		it.x = it.x[1:]
	}
	it.bitSize--
}
