package window

import "math/big"

// modP is the Mersenne prime 2^61-1. The additive group of integers modulo it
// is small enough to check exactly against math/big.
const modP = 1<<61 - 1

var bigModP = new(big.Int).SetUint64(modP)

// modElem is an element of the additive group mod modP. normalized records
// whether Normalize ran since the last arithmetic operation.
type modElem struct {
	v          uint64
	normalized bool
}

func (r *modElem) Add(a, b *modElem) *modElem {
	v := (a.v + b.v) % modP
	r.v, r.normalized = v, false
	return r
}

func (r *modElem) Double(a *modElem) *modElem {
	v := (a.v << 1) % modP
	r.v, r.normalized = v, false
	return r
}

func (r *modElem) Neg(a *modElem) *modElem {
	v := (modP - a.v) % modP
	r.v, r.normalized = v, false
	return r
}

func (r *modElem) SetIdentity() *modElem {
	r.v, r.normalized = 0, false
	return r
}

func (r *modElem) Normalize() *modElem {
	r.normalized = true
	return r
}

// modMul returns k*b mod modP.
func modMul(k *big.Int, b uint64) uint64 {
	v := new(big.Int).Mul(k, new(big.Int).SetUint64(b))
	return v.Mod(v, bigModP).Uint64()
}

type modMethod = Method[modElem, *modElem]
