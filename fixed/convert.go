// SPDX-License-Identifier: MIT
// Package fixed: float64 conversion and approximate comparison.
// Verification surface only — float64 is not a supported persistence or
// interchange format for fixed-point values.

package fixed

import "math"

// DefaultTol is a reasonable relative tolerance for ApproxEqual when
// comparing results of a handful of chained operations.
const DefaultTol = 1e-9

// ToDouble returns the represented value data * 2^exponent as a float64.
// Mantissas wider than 53 bits lose precision in the conversion; that is
// acceptable for its only intended uses, inspection and testing.
func (s Scalar) ToDouble() float64 {
	return math.Ldexp(float64(s.data), s.exponent)
}

// ApproxEqual reports whether a and b represent the same value within the
// relative tolerance tol, after converting both to float64. Exactly equal
// conversions (including both zero) compare true regardless of tol.
func ApproxEqual(a, b Scalar, tol float64) bool {
	da, db := a.ToDouble(), b.ToDouble()
	if da == db {
		return true
	}

	return math.Abs(da-db) <= tol*(math.Abs(da)+math.Abs(db))
}
