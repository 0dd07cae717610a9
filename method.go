package window

import "fmt"

// MaxWindowSize is the widest window a Method accepts. Tables this wide are
// far beyond MaxTableSize in practice; the bound only keeps 2^winSize
// representable.
const MaxWindowSize = WordBits - 2

// Element is the group element contract a Method needs, satisfied by a
// pointer to a value type E. Each operation writes its result to the receiver
// and returns it, and must allow the receiver to alias its arguments. E is
// copied by value, so it must not share mutable state between copies.
type Element[E any] interface {
	*E

	// Add sets the receiver to a + b.
	Add(a, b *E) *E

	// Double sets the receiver to 2a.
	Double(a *E) *E

	// Neg sets the receiver to -a.
	Neg(a *E) *E

	// SetIdentity sets the receiver to the group identity.
	SetIdentity() *E

	// Normalize canonicalizes the receiver's representation. It is called
	// once per table entry after the entries of a block are complete.
	Normalize() *E
}

// Method multiplies a fixed base element by scalars using a precomputed
// fixed-window table. Block i of the table holds v*2^(i*winSize)*base for
// every window value v in [0, 2^winSize).
//
// The zero value is an empty Method that only accepts the zero scalar. After
// Init returns, the table is read-only and any number of goroutines may call
// the Mul methods concurrently. Init itself needs exclusive access.
type Method[E any, P Element[E]] struct {
	bitSize int
	winSize int
	blocks  int
	tbl     table[E]
}

// NewMethod returns a Method for base that accepts scalars of up to bitSize
// bits using winSize-bit windows.
func NewMethod[E any, P Element[E]](base *E, bitSize, winSize int) (*Method[E, P], error) {
	m := new(Method[E, P])
	if err := m.Init(base, bitSize, winSize); err != nil {
		return nil, err
	}
	return m, nil
}

// MustNewMethod is like NewMethod but panics if the table cannot be built.
func MustNewMethod[E any, P Element[E]](base *E, bitSize, winSize int) *Method[E, P] {
	m, err := NewMethod[E, P](base, bitSize, winSize)
	if err != nil {
		panic(err)
	}
	return m
}

// reset returns m to the empty state.
func (m *Method[E, P]) reset() {
	m.bitSize = 0
	m.winSize = 0
	m.blocks = 0
	m.tbl = table[E]{}
}

// Init builds the table for base, replacing any previous one. bitSize bounds
// the length of scalars later passed to the Mul methods and winSize is the
// window width in bits. On error m is left empty.
func (m *Method[E, P]) Init(base *E, bitSize, winSize int) error {
	m.reset()
	if winSize < 1 || winSize > MaxWindowSize {
		str := fmt.Sprintf("window size %d is outside [1, %d]", winSize,
			MaxWindowSize)
		return makeError(ErrInvalidWindow, str)
	}
	if bitSize < 0 {
		str := fmt.Sprintf("negative bit size %d", bitSize)
		return makeError(ErrInvalidBitSize, str)
	}

	blocks := bitSize / winSize
	if bitSize%winSize != 0 {
		blocks++
	}
	if !m.tbl.resize(blocks, winSize) {
		str := fmt.Sprintf("unable to allocate table for bit size %d, "+
			"window size %d", bitSize, winSize)
		log.Warnf("%s", str)
		return makeError(ErrTableAlloc, str)
	}
	m.bitSize = bitSize
	m.winSize = winSize
	m.blocks = blocks

	// t runs through base*2^(i*winSize); each pass of the doubling loop below
	// doubles it winSize times, which leaves it at the next block's base.
	r := 1 << winSize
	t := *base
	for i := 0; i < blocks; i++ {
		w := m.tbl.block(i)
		P(&w[0]).SetIdentity()
		for d := 1; d < r; d *= 2 {
			for j := 0; j < d; j++ {
				P(&w[j+d]).Add(&w[j], &t)
			}
			P(&t).Double(&t)
		}
		for j := range w {
			P(&w[j]).Normalize()
		}
	}

	log.Debugf("Built window table: %d blocks of %d entries (%d bytes) "+
		"for %d-bit scalars", blocks, r, m.tbl.sizeBytes(), bitSize)
	return nil
}

// BitSize returns the scalar bit size bound the table was built for.
func (m *Method[E, P]) BitSize() int { return m.bitSize }

// WindowSize returns the window width in bits.
func (m *Method[E, P]) WindowSize() int { return m.winSize }

// Blocks returns the number of table blocks, one per window position.
func (m *Method[E, P]) Blocks() int { return m.blocks }

// Len returns the number of table entries.
func (m *Method[E, P]) Len() int { return m.tbl.len() }

// TableSize returns the memory held by the table entries in bytes.
func (m *Method[E, P]) TableSize() uintptr { return m.tbl.sizeBytes() }

// Entry returns a copy of the table entry for window value v of block i.
func (m *Method[E, P]) Entry(i int, v uint) E {
	if i < 0 || i >= m.blocks || v >= 1<<m.winSize {
		panic("window: table entry out of range")
	}
	return *m.tbl.at(i, v)
}

// PowArray sets z to y*base, where y is the magnitude as words, least
// significant first, and isNegative gives the sign. Zero words above the most
// significant set bit are ignored, so a zero y yields the identity whatever
// its sign.
//
// When y needs more windows than the table holds, z is left at the identity
// and an ErrCapacity error is returned.
func (m *Method[E, P]) PowArray(z *E, y []Word, isNegative bool) error {
	P(z).SetIdentity()
	y = trimWords(y)
	if len(y) == 0 {
		return nil
	}
	n := bitLen(y)
	if m.winSize == 0 || blocksFor(n, m.winSize) > m.blocks {
		str := fmt.Sprintf("%d-bit scalar exceeds table capacity of %d "+
			"bits", n, m.blocks*m.winSize)
		log.Tracef("%s", str)
		return makeError(ErrCapacity, str)
	}

	it := MakeArrayIterator(y, n, m.winSize)
	for i := 0; it.HasNext(); i++ {
		if v := it.Next(); v != 0 {
			P(z).Add(z, m.tbl.at(i, uint(v)))
		}
	}
	if isNegative {
		P(z).Neg(z)
	}
	return nil
}

// MulBinary sets z to y*base by plain double-and-add without a table. y and
// isNegative are interpreted as by Method.PowArray. z may alias base.
func MulBinary[E any, P Element[E]](z, base *E, y []Word, isNegative bool) {
	t := *base
	P(z).SetIdentity()
	y = trimWords(y)
	if len(y) == 0 {
		return
	}
	it := MakeArrayIterator(y, bitLen(y), 1)
	for {
		if it.Peek1Bit() {
			P(z).Add(z, &t)
		}
		it.Consume1Bit()
		if !it.HasNext() {
			break
		}
		P(&t).Double(&t)
	}
	if isNegative {
		P(z).Neg(z)
	}
}

// blocksFor returns how many winSize-bit windows an n-bit scalar spans.
func blocksFor(n, winSize int) int {
	return (n + winSize - 1) / winSize
}
