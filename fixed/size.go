// SPDX-License-Identifier: MIT
// Package fixed: bit-width estimation.

package fixed

// MaxSize is the largest representable bit-size: every mantissa satisfies
// |data| < 2^63 and therefore fits a signed 64-bit integer.
const MaxSize = 63

// DefaultSizeGuess seeds FindSize when the caller has no better estimate.
// The scan is directional, so a mid-range seed bounds the worst case at
// roughly 32 steps either way.
const DefaultSizeGuess = 31

// FindSize returns the smallest i >= 0 such that value>>i == 0, or
// equivalently the smallest i with (1 << i) > value.
//
// guess may be any value in [0,63]; FindSize panics outside that range,
// since a bad guess is a programmer error, never a data condition. The
// result does not depend on guess — only the number of steps does: the scan
// walks from guess toward the answer, so it is O(1) amortized when guess is
// close (e.g. the previous element's size during a region scan).
//
// CAUTION: value is unsigned; put signed mantissas through Abs64 first.
func FindSize(value uint64, guess int) int {
	if guess < 0 || guess > MaxSize {
		panic("fixed: FindSize guess outside [0,63]")
	}
	size := guess
	for value>>uint(size) != 0 {
		size++
	}
	for size > 0 && value>>uint(size-1) == 0 {
		size--
	}

	return size
}

// Abs64 returns |a| as an unsigned value. Unlike a signed abs it is total:
// even math.MinInt64 maps to its exact magnitude 2^63.
func Abs64(a int64) uint64 {
	if a < 0 {
		return uint64(-a)
	}

	return uint64(a)
}
