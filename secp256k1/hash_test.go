package secp256k1

import (
	"crypto/sha256"
	"testing"
)

func TestTaggedHash(t *testing.T) {
	tests := []struct {
		tag  string
		data [][]byte
	}{
		{ScalarTag, [][]byte{[]byte("abc")}},
		{"BIP0340/challenge", [][]byte{{1, 2, 3}, {4, 5}}},
		{"empty data", nil},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			tagHash := sha256.Sum256([]byte(tt.tag))
			h := sha256.New()
			h.Write(tagHash[:])
			h.Write(tagHash[:])
			for _, d := range tt.data {
				h.Write(d)
			}
			var want [32]byte
			copy(want[:], h.Sum(nil))

			if got := TaggedHash([]byte(tt.tag), tt.data...); got != want {
				t.Errorf("got %x, want %x", got, want)
			}
		})
	}
}

func TestScalarFromHash(t *testing.T) {
	a := ScalarFromHash(nil, []byte("seed"))
	b := ScalarFromHash([]byte(ScalarTag), []byte("seed"))
	if !a.Equal(b) {
		t.Error("empty tag should select the default tag")
	}
	c := ScalarFromHash([]byte("other"), []byte("seed"))
	if a.Equal(c) {
		t.Error("different tags should give different scalars")
	}
	d := ScalarFromHash(nil, []byte("seed2"))
	if a.Equal(d) {
		t.Error("different data should give different scalars")
	}
}
