// SPDX-License-Identifier: MIT
// Package block: unexported 128-bit helpers for the accumulating kernels.
// Dot and MatVec accumulate exact signed 128-bit sums (two's complement in
// a hi:lo pair) before reducing to a 62-bit mantissa; magnitude shifts
// truncate toward zero.

package block

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

// neg128 returns the two's complement negation of hi:lo.
func neg128(hi, lo uint64) (uint64, uint64) {
	l, borrow := bits.Sub64(0, lo, 0)
	h, _ := bits.Sub64(0, hi, borrow)

	return h, l
}

// add128 returns the two's complement sum of two 128-bit values.
func add128(ahi, alo, bhi, blo uint64) (uint64, uint64) {
	lo, carry := bits.Add64(alo, blo, 0)
	hi, _ := bits.Add64(ahi, bhi, carry)

	return hi, lo
}

// shiftBy multiplies v by 2^k: a left shift for k >= 0, an arithmetic
// (truncating toward minus infinity) right shift for k < 0. The caller must
// ensure a left shift cannot overflow.
func shiftBy(v int64, k int) int64 {
	if k >= 0 {
		return v << uint(k)
	}

	return v >> uint(min(-k, maxBound))
}
