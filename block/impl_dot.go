// SPDX-License-Identifier: MIT
// Package block: accumulating kernels (dot product, matrix-vector product).

package block

import (
	"math/bits"

	"github.com/katalvlaran/blockfp/fixed"
)

// accBits is the capacity of the signed 128-bit accumulator: products are
// pre-shifted so a full-length sum can never exceed 2^126 in magnitude.
const accBits = 126

// Dot computes the dot product y := sum a[i]*b[i] as a standalone scalar
// with a freshly computed exponent and tight size.
//
// Products are accumulated exactly in a signed 128-bit intermediate
// (pre-shifted only when size bounds prove a full-length sum could exceed
// it), then reduced to a mantissa of at most 62 bits. The operands may
// share a region: the kernel only reads.
//
// Errors: ErrDimMismatch.
// Complexity: O(dim).
func Dot(a, b Vector) (fixed.Scalar, error) {
	if err := requireSameDim(a, b); err != nil {
		return fixed.Scalar{}, blockErrorf(opDot, err)
	}

	ra, rb := a.region, b.region
	if ra.size == 0 || rb.size == 0 {
		return fixed.Scalar{}, nil
	}

	pre := max(0, ra.size+rb.size+ceilLog2(a.dim)-accBits)

	var hi, lo uint64
	for k := 0; k < a.dim; k++ {
		av := ra.data[a.at(k)]
		bv := rb.data[b.at(k)]
		ph, pl := bits.Mul64(fixed.Abs64(av), fixed.Abs64(bv))
		ph, pl = shr128(ph, pl, pre)
		if (av < 0) != (bv < 0) {
			ph, pl = neg128(ph, pl)
		}
		hi, lo = add128(hi, lo, ph, pl)
	}

	neg := hi>>63 == 1
	if neg {
		hi, lo = neg128(hi, lo)
	}
	k := max(0, size128(hi, lo)-maxStore)
	_, lo = shr128(hi, lo, k)
	d := int64(lo)
	if neg {
		d = -d
	}

	return fixed.NewScalar(d, ra.exponent+rb.exponent+pre+k), nil
}

// MatVec computes the matrix-vector product y := m * x.
//
// y must not share a region with x or m: each row sum is accumulated while
// x and m are read in full, so an output aliasing either input would be
// read after it was overwritten. m and x may share a region with each
// other. One conservative row-sum bound (m.size + x.size + log2(cols) + 1)
// fixes the pre-shift and the store shift up front, so the kernel is a
// single pass and allocation-free.
//
// Errors: ErrDimMismatch (x.Dim != cols or y.Dim != rows), ErrSameRegion.
// Complexity: O(rows * cols).
func MatVec(m Matrix, x, y Vector) error {
	if x.dim != m.cols || y.dim != m.rows {
		return blockErrorf(opMatVec, ErrDimMismatch)
	}
	if err := requireDistinctRegions(y.region, x.region, m.region); err != nil {
		return blockErrorf(opMatVec, err)
	}

	rm, rx := m.region, x.region
	if rm.size == 0 || rx.size == 0 {
		y.Zero()

		return nil
	}

	rawBound := rm.size + rx.size + ceilLog2(m.cols)
	pre := max(0, rawBound-accBits)
	b0 := rawBound - pre
	e0 := rm.exponent + rx.exponent + pre
	s := y.region.reserve(e0, b0)

	for i := 0; i < m.rows; i++ {
		var hi, lo uint64
		for j := 0; j < m.cols; j++ {
			mv := rm.data[m.at(i, j)]
			xv := rx.data[x.at(j)]
			ph, pl := bits.Mul64(fixed.Abs64(mv), fixed.Abs64(xv))
			ph, pl = shr128(ph, pl, pre)
			if (mv < 0) != (xv < 0) {
				ph, pl = neg128(ph, pl)
			}
			hi, lo = add128(hi, lo, ph, pl)
		}
		neg := hi>>63 == 1
		if neg {
			hi, lo = neg128(hi, lo)
		}
		if s > 0 {
			hi, lo = shr128(hi, lo, s)
		} else if s < 0 {
			lo <<= uint(-s) // hi is zero: b0 + |s| <= 62
		}
		v := int64(lo)
		if neg {
			v = -v
		}
		y.region.data[y.at(i)] = v
	}
	if nb := max(b0-s, 0); nb > y.region.size {
		y.region.size = nb
	}

	return nil
}

// ceilLog2 returns the smallest c >= 0 with n <= 2^c, for n >= 1: the bit
// growth a sum of n bounded terms can add.
func ceilLog2(n int) int {
	return fixed.FindSize(uint64(n-1), 16)
}

// size128 returns the bit-size of the unsigned 128-bit value hi:lo.
func size128(hi, lo uint64) int {
	if hi != 0 {
		return 64 + fixed.FindSize(hi, 31)
	}

	return fixed.FindSize(lo, 31)
}
