package secp256k1

import (
	"errors"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Point is a point on the secp256k1 curve in Jacobian coordinates (x, y, z),
// standing for the affine point (x/z^2, y/z^3). A point with z == 0 is the
// point at infinity, the group identity.
//
// The zero value is the point at infinity.
type Point struct {
	p secp.JacobianPoint
}

// Generator is the secp256k1 base point G.
var Generator Point

func init() {
	// G = (0x79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798,
	//      0x483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8)
	gx := [32]byte{
		0x79, 0xBE, 0x66, 0x7E, 0xF9, 0xDC, 0xBB, 0xAC, 0x55, 0xA0, 0x62, 0x95, 0xCE, 0x87, 0x0B, 0x07,
		0x02, 0x9B, 0xFC, 0xDB, 0x2D, 0xCE, 0x28, 0xD9, 0x59, 0xF2, 0x81, 0x5B, 0x16, 0xF8, 0x17, 0x98,
	}
	gy := [32]byte{
		0x48, 0x3A, 0xDA, 0x77, 0x26, 0xA3, 0xC4, 0x65, 0x5D, 0xA4, 0xFB, 0xFC, 0x0E, 0x11, 0x08, 0xA8,
		0xFD, 0x17, 0xB4, 0x48, 0xA6, 0x85, 0x54, 0x19, 0x9C, 0x47, 0xD0, 0x8F, 0xFB, 0x10, 0xD4, 0xB8,
	}
	var x, y secp.FieldVal
	x.SetBytes(&gx)
	y.SetBytes(&gy)
	Generator.setXY(&x, &y)
}

// setXY sets r to the affine point (x, y), which must be normalized.
func (r *Point) setXY(x, y *secp.FieldVal) {
	r.p.X.Set(x)
	r.p.Y.Set(y)
	r.p.Z.SetInt(1)
}

// Set sets r = a.
func (r *Point) Set(a *Point) *Point {
	r.p.Set(&a.p)
	return r
}

// SetIdentity sets r to the point at infinity.
func (r *Point) SetIdentity() *Point {
	r.p.X.SetInt(0)
	r.p.Y.SetInt(0)
	r.p.Z.SetInt(0)
	return r
}

// IsIdentity returns true if r is the point at infinity.
func (r *Point) IsIdentity() bool {
	x, y, z := r.p.X, r.p.Y, r.p.Z
	x.Normalize()
	y.Normalize()
	z.Normalize()
	return z.IsZero() || (x.IsZero() && y.IsZero())
}

// Add sets r = a + b (variable time).
func (r *Point) Add(a, b *Point) *Point {
	var sum secp.JacobianPoint
	secp.AddNonConst(&a.p, &b.p, &sum)
	r.p.Set(&sum)
	return r
}

// Double sets r = 2*a (variable time).
func (r *Point) Double(a *Point) *Point {
	var dbl secp.JacobianPoint
	secp.DoubleNonConst(&a.p, &dbl)
	r.p.Set(&dbl)
	return r
}

// Neg sets r = -a (mirror around the x axis).
func (r *Point) Neg(a *Point) *Point {
	if a.IsIdentity() {
		return r.SetIdentity()
	}
	r.p.Set(&a.p)
	r.p.Y.Normalize()
	r.p.Y.Negate(1).Normalize()
	return r
}

// Normalize rescales r so that z == 1, making x and y the affine coordinates.
// The point at infinity is reset to its canonical all-zero form.
func (r *Point) Normalize() *Point {
	if r.IsIdentity() {
		return r.SetIdentity()
	}
	r.p.ToAffine()
	return r
}

// affine returns a normalized copy of r
func (r *Point) affine() Point {
	a := *r
	a.Normalize()
	return a
}

// Equal returns true if r and a are the same point.
func (r *Point) Equal(a *Point) bool {
	rInf, aInf := r.IsIdentity(), a.IsIdentity()
	if rInf || aInf {
		return rInf && aInf
	}
	ra, aa := r.affine(), a.affine()
	return ra.p.X.Equals(&aa.p.X) && ra.p.Y.Equals(&aa.p.Y)
}

// IsValid returns true if r is the point at infinity or lies on the curve
// y^2 = x^3 + 7.
func (r *Point) IsValid() bool {
	if r.IsIdentity() {
		return true
	}
	a := r.affine()
	var lhs, rhs secp.FieldVal
	lhs.SquareVal(&a.p.Y).Normalize()
	rhs.SquareVal(&a.p.X).Mul(&a.p.X).AddInt(7).Normalize()
	return lhs.Equals(&rhs)
}

// Bytes returns the affine coordinates of r as x || y, each 32 bytes
// big-endian. The point at infinity is all zeros.
func (r *Point) Bytes() (b [64]byte) {
	if r.IsIdentity() {
		return b
	}
	a := r.affine()
	a.p.X.PutBytes((*[32]byte)(b[:32]))
	a.p.Y.PutBytes((*[32]byte)(b[32:]))
	return b
}

var (
	errPointLength   = errors.New("point encoding must be 64 bytes")
	errPointOverflow = errors.New("point coordinate is not below the field prime")
	errNotOnCurve    = errors.New("point is not on the curve")
)

// SetBytes sets r from the 64-byte x || y encoding produced by Bytes.
func (r *Point) SetBytes(b []byte) error {
	if len(b) != 64 {
		return errPointLength
	}
	allZero := true
	for _, c := range b {
		if c != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		r.SetIdentity()
		return nil
	}
	var x, y secp.FieldVal
	if x.SetByteSlice(b[:32]) || y.SetByteSlice(b[32:]) {
		return errPointOverflow
	}
	var p Point
	p.setXY(x.Normalize(), y.Normalize())
	if !p.IsValid() {
		return errNotOnCurve
	}
	*r = p
	return nil
}

// SerializeCompressed returns the 33-byte SEC1 compressed encoding of r. The
// point at infinity encodes as the single byte 0x00.
func (r *Point) SerializeCompressed() []byte {
	if r.IsIdentity() {
		return []byte{0x00}
	}
	a := r.affine()
	b := make([]byte, 33)
	b[0] = 0x02
	if a.p.Y.IsOdd() {
		b[0] = 0x03
	}
	a.p.X.PutBytes((*[32]byte)(b[1:]))
	return b
}
