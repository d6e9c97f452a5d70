// SPDX-License-Identifier: MIT
// Package block: element-wise vector kernels.
//
// Every kernel follows one shape:
//   - Stage 1 (Validate): dimensions, then region distinctness — binary
//     kernels refuse same-region operands, since differing scale factors
//     make in-place aliasing silently corrupting.
//   - Stage 2 (Reserve): Region.reserve renormalizes the destination region
//     (value-preserving for all residents) until the incoming values fit at
//     its exponent, and yields the per-value shift s.
//   - Stage 3 (Execute): one flat pass; products widen through 128 bits and
//     their magnitudes truncate toward zero, plain copies shift
//     arithmetically (toward minus infinity).
//   - Stage 4 (Finalize): grow the destination region's size bound
//     conservatively — no rescan; Vector.FixSize is the tightening tool.

package block

import (
	"math/bits"

	"github.com/katalvlaran/blockfp/fixed"
)

// Copy copies src into dst, accounting for the two regions' exponents:
// dst ends up representing the same values src does, up to right-shift
// truncation when dst's scale is coarser than src's headroom allows.
//
// The size bookkeeping deliberately assumes the worst case over src's
// possible values (src.Region().Size() - shift) instead of rescanning —
// a precision/performance tradeoff; follow with FixSize when a tight bound
// matters.
//
// Errors: ErrDimMismatch, ErrSameRegion (src and dst must be from distinct
// regions).
// Complexity: O(dim).
func Copy(src, dst Vector) error {
	if err := requireSameDim(src, dst); err != nil {
		return blockErrorf(opCopy, err)
	}
	if err := requireDistinctRegions(dst.region, src.region); err != nil {
		return blockErrorf(opCopy, err)
	}

	b0 := src.region.size
	s := dst.region.reserve(src.region.exponent, b0)
	for k := 0; k < src.dim; k++ {
		dst.region.data[dst.at(k)] = shiftBy(src.region.data[src.at(k)], -s)
	}
	if b0 > 0 {
		// Arithmetic right shifts leave -1, not 0, so clamp the bound at 1.
		if nb := max(b0-s, 1); nb > dst.region.size {
			dst.region.size = nb
		}
	}

	return nil
}

// Scale computes y := a * x (element-wise scaling by a scalar).
//
// Errors: ErrDimMismatch, ErrSameRegion (x and y must be from distinct
// regions).
// Complexity: O(dim).
func Scale(a fixed.Scalar, x, y Vector) error {
	if err := requireSameDim(x, y); err != nil {
		return blockErrorf(opScale, err)
	}
	if err := requireDistinctRegions(y.region, x.region); err != nil {
		return blockErrorf(opScale, err)
	}
	if a.IsZero() || x.region.size == 0 {
		y.Zero()

		return nil
	}

	b0 := a.Size() + x.region.size
	e0 := a.Exponent() + x.region.exponent
	s := y.region.reserve(e0, b0)

	amag, aneg := fixed.Abs64(a.Data()), a.Data() < 0
	for k := 0; k < x.dim; k++ {
		xv := x.region.data[x.at(k)]
		y.region.data[y.at(k)] = mulShifted(amag, xv, aneg, s)
	}
	if nb := max(b0-s, 0); nb > y.region.size {
		y.region.size = nb
	}

	return nil
}

// Axpy computes y := a*x + y (BLAS saxpy).
//
// The destination region is first renormalized so both the incoming
// products and the existing residents stay within 62 bits; the per-element
// sum then fits 63 bits without intermediate overflow.
//
// Errors: ErrDimMismatch, ErrSameRegion (x and y must be from distinct
// regions).
// Complexity: O(dim).
func Axpy(a fixed.Scalar, x, y Vector) error {
	if err := requireSameDim(x, y); err != nil {
		return blockErrorf(opAxpy, err)
	}
	if err := requireDistinctRegions(y.region, x.region); err != nil {
		return blockErrorf(opAxpy, err)
	}
	if a.IsZero() || x.region.size == 0 {
		return nil
	}

	b0 := a.Size() + x.region.size
	e0 := a.Exponent() + x.region.exponent
	if y.region.size > maxStore {
		y.region.shr(y.region.size - maxStore)
	}
	s := y.region.reserve(e0, b0)

	amag, aneg := fixed.Abs64(a.Data()), a.Data() < 0
	for k := 0; k < x.dim; k++ {
		xv := x.region.data[x.at(k)]
		y.region.data[y.at(k)] += mulShifted(amag, xv, aneg, s)
	}
	if nb := max(max(b0-s, 0), y.region.size) + 1; nb > y.region.size {
		y.region.size = nb
	}

	return nil
}

// AddScalar computes y[i] += a for every element of y.
// Complexity: O(dim).
func AddScalar(a fixed.Scalar, y Vector) error {
	if a.IsZero() {
		return nil
	}

	b0, e0 := a.Size(), a.Exponent()
	if y.region.size > maxStore {
		y.region.shr(y.region.size - maxStore)
	}
	s := y.region.reserve(e0, b0)
	t := alignTerm(a.Data(), s)
	for k := 0; k < y.dim; k++ {
		y.region.data[y.at(k)] += t
	}
	if nb := max(max(b0-s, 0), y.region.size) + 1; nb > y.region.size {
		y.region.size = nb
	}

	return nil
}

// SetScalar computes y[i] := a for every element of y.
// Complexity: O(dim).
func SetScalar(a fixed.Scalar, y Vector) error {
	if a.IsZero() {
		y.Zero()

		return nil
	}

	b0, e0 := a.Size(), a.Exponent()
	s := y.region.reserve(e0, b0)
	t := alignTerm(a.Data(), s)
	for k := 0; k < y.dim; k++ {
		y.region.data[y.at(k)] = t
	}
	if nb := max(b0-s, 0); nb > y.region.size {
		y.region.size = nb
	}

	return nil
}

// mulShifted returns (amag * |xv|) >> s with the combined sign applied, or
// the exact left shift by -s when s < 0. reserve guarantees the result
// magnitude is < 2^62, so the narrowing to int64 is safe.
func mulShifted(amag uint64, xv int64, aneg bool, s int) int64 {
	hi, lo := bits.Mul64(amag, fixed.Abs64(xv))
	if s > 0 {
		hi, lo = shr128(hi, lo, s)
	} else if s < 0 {
		lo <<= uint(-s) // hi is zero: bound + |s| <= 62
	}
	v := int64(lo)
	if aneg != (xv < 0) {
		v = -v
	}

	return v
}

// alignTerm rescales a scalar mantissa by 2^-s: magnitude truncation toward
// zero for s > 0, an exact left shift for s <= 0.
func alignTerm(data int64, s int) int64 {
	if s <= 0 {
		return data << uint(-s)
	}
	mag := fixed.Abs64(data) >> uint(s)
	if data < 0 {
		return -int64(mag)
	}

	return int64(mag)
}
