// Package window implements fixed-window scalar multiplication over an
// abstract group.
//
// A Method precomputes, for a base element B, every multiple v*2^(i*w)*B with
// v in [0, 2^w) and one block i per w-bit window of the longest scalar it
// will see. Multiplying by a scalar then costs one table lookup and at most
// one group addition per window, with no doublings.
//
// Scalars are handed over as little-endian Word arrays, or through the
// convenience entry points for int64, *big.Int, *uint256.Uint256 and any
// BlockSource. ArrayIterator is the cursor that splits those arrays into
// windows; it is usable on its own for any unsigned limb type.
//
// Nothing here runs in constant time. Do not use it with secret scalars where
// timing is observable.
package window
