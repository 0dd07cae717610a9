package window_test

import (
	"fmt"

	"window.mleku.dev"
	"window.mleku.dev/secp256k1"
)

// This example builds a table for 8-bit scalars with 4-bit windows, which
// holds two blocks of 16 points, and multiplies the generator by 0x1F with
// one addition per window.
func ExampleMethod_MulInt64() {
	m, err := window.NewMethod[secp256k1.Point, *secp256k1.Point](
		&secp256k1.Generator, 8, 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	var r secp256k1.Point
	if err := m.MulInt64(&r, 0x1F); err != nil {
		fmt.Println(err)
		return
	}

	var sum secp256k1.Point
	for i := 0; i < 0x1F; i++ {
		sum.Add(&sum, &secp256k1.Generator)
	}
	fmt.Println(m.Len(), r.Equal(&sum))

	// Output:
	// 32 true
}

// This example splits a two-limb value into 12-bit windows, least
// significant first. The last window holds the 8 bits that remain.
func ExampleArrayIterator() {
	x := []uint16{0xBEEF, 0xDEAD}
	it := window.MakeArrayIterator(x, 32, 12)
	for it.HasNext() {
		fmt.Printf("%#x\n", it.Next())
	}

	// Output:
	// 0xeef
	// 0xadb
	// 0xde
}

func ExampleMethod_PowArray_capacity() {
	m, err := window.NewMethod[secp256k1.Point, *secp256k1.Point](
		&secp256k1.Generator, 8, 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	var r secp256k1.Point
	err = m.PowArray(&r, []window.Word{0x100}, false)
	fmt.Println(err)
	fmt.Println(r.IsIdentity())

	// Output:
	// 9-bit scalar exceeds table capacity of 8 bits
	// true
}
