// Package secp256k1 provides the secp256k1 point group as a window.Element,
// together with scalars modulo the group order and precomputed generator
// tables built on package window.
//
// Point arithmetic is variable time.
package secp256k1
