package secp256k1

import (
	"sync"

	"window.mleku.dev"
)

// DefaultWindowSize is the window width of the shared generator table. Eight
// bits gives 32 blocks of 256 points.
const DefaultWindowSize = 8

// GeneratorTable is a fixed-window multiplication table for a secp256k1
// point.
type GeneratorTable = window.Method[Point, *Point]

var (
	// Global table for generator multiplication (initialized once)
	globalGenTable *GeneratorTable
	genTableOnce   sync.Once
)

// NewGeneratorTable builds a table of multiples of G covering full 256-bit
// scalars with winSize-bit windows.
func NewGeneratorTable(winSize int) (*GeneratorTable, error) {
	return NewPointTable(&Generator, winSize)
}

// NewPointTable builds a table of multiples of p covering full 256-bit
// scalars with winSize-bit windows.
func NewPointTable(p *Point, winSize int) (*GeneratorTable, error) {
	return window.NewMethod[Point, *Point](p, ScalarBits, winSize)
}

// getGlobalGenTable returns the shared generator table
func getGlobalGenTable() *GeneratorTable {
	genTableOnce.Do(func() {
		globalGenTable = window.MustNewMethod[Point, *Point](&Generator,
			ScalarBits, DefaultWindowSize)
	})
	return globalGenTable
}

// ScalarBaseMult sets r = k*G using the shared generator table, building it
// on first use.
func ScalarBaseMult(r *Point, k *Scalar) *Point {
	// k < n < 2^256 always fits the table
	if err := getGlobalGenTable().Mul(r, k); err != nil {
		panic(err)
	}
	return r
}

// ScalarMult sets r = k*p by double-and-add. It builds no table, so it suits
// points that are multiplied only once.
func ScalarMult(r *Point, k *Scalar, p *Point) *Point {
	window.MulBinary(r, p, k.Block().Words, false)
	return r
}
