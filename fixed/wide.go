// SPDX-License-Identifier: MIT
// Package fixed: unexported 128-bit helpers built on math/bits.
// Intermediates of Mul and Invert do not fit 64 bits; these helpers keep the
// widening explicit and allocation-free. Magnitude shifts truncate toward
// zero.

package fixed

import "math/bits"

// shr128 shifts the unsigned 128-bit value hi:lo right by k bits.
// k may be any value >= 0; counts of 128 or more yield zero.
func shr128(hi, lo uint64, k int) (uint64, uint64) {
	switch {
	case k <= 0:
		return hi, lo
	case k < 64:
		return hi >> uint(k), hi<<uint(64-k) | lo>>uint(k)
	case k < 128:
		return 0, hi >> uint(k-64)
	default:
		return 0, 0
	}
}

// shiftBy multiplies v by 2^k: a left shift for k >= 0, an arithmetic
// (truncating toward minus infinity) right shift for k < 0. The caller must
// ensure a left shift cannot overflow.
func shiftBy(v int64, k int) int64 {
	if k >= 0 {
		return v << uint(k)
	}

	return v >> uint(-k)
}

// mulWide returns |a|*|b| as a 128-bit magnitude plus the product sign.
func mulWide(a, b int64) (hi, lo uint64, neg bool) {
	hi, lo = bits.Mul64(Abs64(a), Abs64(b))

	return hi, lo, (a < 0) != (b < 0)
}
