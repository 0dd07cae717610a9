package secp256k1

import (
	"math/big"
	"testing"

	"window.mleku.dev"
)

var orderN, _ = new(big.Int).SetString(
	"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

// scalarFromBig reduces k modulo n and returns it as a Scalar.
func scalarFromBig(k *big.Int) *Scalar {
	v := new(big.Int).Mod(k, orderN)
	return NewScalar(v.FillBytes(make([]byte, 32)))
}

func scalarToBig(s *Scalar) *big.Int {
	b := s.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func TestScalarReduction(t *testing.T) {
	tests := []struct {
		name string
		in   *big.Int
		want *big.Int
	}{
		{"zero", big.NewInt(0), big.NewInt(0)},
		{"one", big.NewInt(1), big.NewInt(1)},
		{"n-1", new(big.Int).Sub(orderN, big.NewInt(1)),
			new(big.Int).Sub(orderN, big.NewInt(1))},
		{"n", orderN, big.NewInt(0)},
		{"n+1", new(big.Int).Add(orderN, big.NewInt(1)), big.NewInt(1)},
		{"2^256-1", new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256),
			big.NewInt(1)), new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1),
			256), new(big.Int).Add(orderN, big.NewInt(1)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScalar(tt.in.FillBytes(make([]byte, 32)))
			if got := scalarToBig(s); got.Cmp(tt.want) != 0 {
				t.Errorf("got %x, want %x", got, tt.want)
			}
		})
	}
}

func TestScalarNegate(t *testing.T) {
	nMinus1 := scalarFromBig(new(big.Int).Sub(orderN, big.NewInt(1)))
	var r Scalar
	if r.Negate(&ScalarZero); !r.IsZero() {
		t.Error("-0 should be 0")
	}
	if r.Negate(&ScalarOne); !r.Equal(nMinus1) {
		t.Errorf("-1 = %x, want n-1", r.Bytes())
	}
	if r.Negate(nMinus1); !r.Equal(&ScalarOne) {
		t.Errorf("-(n-1) = %x, want 1", r.Bytes())
	}

	k := ScalarFromHash(nil, []byte("negate"))
	want := new(big.Int).Sub(orderN, scalarToBig(k))
	if got := scalarToBig(r.Negate(k)); got.Cmp(want) != 0 {
		t.Errorf("-k = %x, want %x", got, want)
	}
	if r.Negate(&r); !r.Equal(k) {
		t.Error("-(-k) should be k")
	}
}

func TestScalarBlock(t *testing.T) {
	k := ScalarFromHash(nil, []byte("block"))
	b := k.Block()
	if b.Negative {
		t.Error("scalar block should never be negative")
	}
	if len(b.Words) != ScalarBits/window.WordBits {
		t.Errorf("block has %d words, want %d", len(b.Words),
			ScalarBits/window.WordBits)
	}
	got := new(big.Int).SetBits(b.Words)
	if want := scalarToBig(k); got.Cmp(want) != 0 {
		t.Errorf("block value %x, want %x", got, want)
	}

	var small Scalar
	small.SetUint64(0x1F)
	if got := new(big.Int).SetBits(small.Block().Words); got.Int64() != 0x1F {
		t.Errorf("small block value %x, want 1f", got)
	}
}

func TestNewScalarPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewScalar with 31 bytes should panic")
		}
	}()
	NewScalar(make([]byte, 31))
}
