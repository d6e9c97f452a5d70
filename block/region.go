// SPDX-License-Identifier: MIT
// Package block: Region lifecycle and renormalization.

package block

import "github.com/katalvlaran/blockfp/fixed"

// maxBound is the hard cap on a region's size bound: every element fits a
// signed 64-bit integer, |x| < 2^63.
const maxBound = 63

// maxStore caps the bound of values a kernel writes into a region at 62
// bits, keeping one bit of headroom so an accumulating kernel (Axpy) can
// add one more term without renormalizing first.
const maxStore = 62

// NewRegion binds caller-owned storage into a Region. The current contents
// of data are interpreted at the given exponent; sizeHint seeds the scan
// that establishes the initial (valid, possibly loose) size bound.
//
// Inputs:
//   - data: backing slice, len > 0; the region aliases it, never copies.
//   - exponent: scale of the existing contents.
//   - sizeHint: caller's guess at the size, in [0,63].
//
// Errors: ErrEmptyRegion for an empty slice, ErrSizeHint for a hint
// outside [0,63].
// Complexity: O(dim) scan, O(1) amortized per element when the hint is
// close.
func NewRegion(data []int64, exponent, sizeHint int) (*Region, error) {
	if len(data) == 0 {
		return nil, blockErrorf(opNewRegion, ErrEmptyRegion)
	}
	if err := validateSizeHint(sizeHint); err != nil {
		return nil, blockErrorf(opNewRegion, err)
	}

	r := &Region{dim: len(data), exponent: exponent, data: data}
	r.size = scanSize(r, 0, r.dim, 1, sizeHint)

	return r, nil
}

// Zero sets every element to 0 and resets exponent and size to 0. Good to
// call occasionally on a long-lived region accessed only through narrow
// sub-views: kernels only ever grow the size bound, and Zero is what
// shrinks it back.
func (r *Region) Zero() {
	for i := 0; i < r.dim; i++ {
		r.data[i] = 0
	}
	r.exponent = 0
	r.size = 0
}

// SetSize recomputes the region's size bound from the current data, seeded
// by sizeHint. The result is tight for the data as scanned; it stays merely
// an upper bound once later kernels grow it conservatively.
//
// Errors: ErrSizeHint for a hint outside [0,63].
func (r *Region) SetSize(sizeHint int) error {
	if err := validateSizeHint(sizeHint); err != nil {
		return blockErrorf(opSetSize, err)
	}
	r.size = scanSize(r, 0, r.dim, 1, sizeHint)

	return nil
}

// At returns raw element i of the region's storage. Intended for
// inspection and testing; arithmetic access goes through views.
// Errors: ErrOutOfRange when i is outside [0,dim).
func (r *Region) At(i int) (int64, error) {
	if err := validateIndex(i, r.dim); err != nil {
		return 0, blockErrorf(opAt, err)
	}

	return r.data[i], nil
}

// ShiftRight divides every element by 2^k (arithmetic shift, truncating
// toward minus infinity) and raises the exponent by k, so each represented
// value is preserved up to the bits shifted out. The size bound shrinks by
// k, clamped at 1 while any element may be non-zero (a negative residue of
// an arithmetic shift is -1, never 0).
//
// Errors: ErrNegativeShift when k < 0.
func (r *Region) ShiftRight(k int) error {
	if k < 0 {
		return blockErrorf(opShiftRight, ErrNegativeShift)
	}
	r.shr(k)

	return nil
}

// ShiftLeft multiplies every element by 2^k (exact) and lowers the exponent
// by k. The size bound grows by k and must stay within 63 bits.
//
// Errors: ErrNegativeShift when k < 0, ErrShiftOverflow when
// size + k > 63.
func (r *Region) ShiftLeft(k int) error {
	if k < 0 {
		return blockErrorf(opShiftLeft, ErrNegativeShift)
	}
	if r.size+k > maxBound {
		return blockErrorf(opShiftLeft, ErrShiftOverflow)
	}
	r.shl(k)

	return nil
}

// shr is the raw right-shift; callers have validated k >= 0.
func (r *Region) shr(k int) {
	if k == 0 {
		return
	}
	sh := uint(min(k, maxBound))
	for i := 0; i < r.dim; i++ {
		r.data[i] >>= sh
	}
	r.exponent += k
	if r.size > 0 {
		r.size = max(r.size-k, 1)
	}
}

// shl is the raw left-shift; callers have validated size+k <= 63.
func (r *Region) shl(k int) {
	if k == 0 {
		return
	}
	for i := 0; i < r.dim; i++ {
		r.data[i] <<= uint(k)
	}
	r.exponent -= k
	if r.size > 0 {
		r.size += k
	}
}

// reserve prepares the region to receive values of bit-size b0 carried at
// exponent e0, and returns the right-shift s to apply to those values so
// they land at the region's (possibly adjusted) exponent:
//
//	stored = value >> s   (s < 0 means an exact left shift by -s)
//
// Two adjustments, both value-preserving for every resident:
//   - If s > 0 (the region's scale is coarser than the incoming values),
//     left-shift the region as far as its residents allow, reclaiming
//     precision that a plain truncating store would discard.
//   - If the values still need more than maxStore bits at the region's
//     exponent, right-shift the region to make room.
//
// Postcondition: b0 - s <= maxStore.
func (r *Region) reserve(e0, b0 int) int {
	s := r.exponent - e0
	if s > 0 {
		if t := min(s, maxStore-r.size); t > 0 {
			r.shl(t)
			s -= t
		}
	}
	if b0-s > maxStore {
		r.shr(b0 - s - maxStore)
		s = r.exponent - e0
	}

	return s
}

// scanSize returns the tight bit-size bound over dim strided elements,
// threading the running maximum back into FindSize as the next guess.
func scanSize(r *Region, off, dim, stride, hint int) int {
	size := 0
	guess := hint
	for k := 0; k < dim; k++ {
		n := fixed.FindSize(fixed.Abs64(r.data[off+k*stride]), guess)
		if n > size {
			size = n
		}
		guess = size
	}

	return size
}
