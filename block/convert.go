// SPDX-License-Identifier: MIT
// Package block: float64 conversion for inspection and testing only.

package block

import "math"

// VectorElemToDouble converts logical element i of v to a float64:
// data * 2^exponent. Verification surface only — not a supported
// persistence format.
//
// Errors: ErrOutOfRange.
func VectorElemToDouble(v Vector, i int) (float64, error) {
	if err := validateIndex(i, v.dim); err != nil {
		return 0, blockErrorf(opToDouble, err)
	}

	return math.Ldexp(float64(v.region.data[v.at(i)]), v.region.exponent), nil
}
