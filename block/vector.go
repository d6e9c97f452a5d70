// SPDX-License-Identifier: MIT
// Package block: Vector construction, sub-views, overlap testing and
// single-element transfer between scalars and region storage.

package block

import "github.com/katalvlaran/blockfp/fixed"

// NewVector builds a strided view over dim elements of the region, with
// logical element k at storage index off + k*stride.
//
// Errors: ErrNilRegion, ErrBadDim (dim <= 0), ErrZeroStride, ErrOutOfRange
// (either end of the span outside region storage).
// Complexity: O(1); no data is read.
func NewVector(r *Region, off, dim, stride int) (Vector, error) {
	if r == nil {
		return Vector{}, blockErrorf(opNewVector, ErrNilRegion)
	}
	if err := validateSpan(r, off, dim, stride); err != nil {
		return Vector{}, blockErrorf(opNewVector, err)
	}

	return Vector{region: r, dim: dim, stride: stride, off: off}, nil
}

// Sub derives a view into the same region: logical element k of the result
// is logical element offset + k*stride of v. Strides compose by
// multiplication, so a reversed sub-view of a reversed view walks forward.
//
// Errors: ErrBadDim, ErrZeroStride, ErrOutOfRange (sub-span escapes v).
func (v Vector) Sub(offset, dim, stride int) (Vector, error) {
	if dim <= 0 {
		return Vector{}, blockErrorf(opSubVector, ErrBadDim)
	}
	if stride == 0 {
		return Vector{}, blockErrorf(opSubVector, ErrZeroStride)
	}
	end := offset + (dim-1)*stride
	if offset < 0 || offset >= v.dim || end < 0 || end >= v.dim {
		return Vector{}, blockErrorf(opSubVector, ErrOutOfRange)
	}

	return Vector{
		region: v.region,
		dim:    dim,
		stride: stride * v.stride,
		off:    v.off + offset*v.stride,
	}, nil
}

// span returns the lowest and highest storage indices the vector addresses.
func (v Vector) span() (lo, hi int) {
	last := v.off + (v.dim-1)*v.stride
	if v.stride > 0 {
		return v.off, last
	}

	return last, v.off
}

// VectorsOverlap conservatively reports whether two vectors may share
// memory. Vectors from distinct regions never overlap (regions never share
// storage). For vectors of one region the test compares address ranges
// only, ignoring stride interleaving, so it can report true for vectors
// that touch disjoint elements — callers must not rely on same-region
// precision, which is why the binary kernels demand distinct regions
// outright.
func VectorsOverlap(a, b Vector) bool {
	if a.region != b.region {
		return false
	}
	aLo, aHi := a.span()
	bLo, bHi := b.span()

	return aLo <= bHi && bLo <= aHi
}

// Zero sets the addressed elements to 0 without touching the region's
// exponent or size. Internal building block for composite kernels; the
// region-level Zero is what resets the scale.
func (v Vector) Zero() {
	for k := 0; k < v.dim; k++ {
		v.region.data[v.at(k)] = 0
	}
}

// FixSize tightens the owning region's size bound from a full scan of v's
// elements. Use when an accurate bound matters — after a long chain of
// kernels whose conservative updates have inflated it. The scan covers only
// v; if other residents of the region are larger, call SetSize on the
// region instead.
func (v Vector) FixSize() {
	v.region.size = scanSize(v.region, v.off, v.dim, v.stride,
		min(v.region.size, maxBound))
}

// storeScaled writes the value data * 2^exponent (tight bit-size `size`)
// into region storage at idx, rescaling to the region's exponent. reserve
// renormalizes the region first when the value would not fit at its current
// scale; the region's bound then grows conservatively, not by rescan.
func storeScaled(r *Region, idx int, data int64, size, exponent int) {
	s := r.reserve(exponent, size)
	r.data[idx] = shiftBy(data, -s)
	if size > 0 {
		if nb := max(size-s, 1); nb > r.size {
			r.size = nb
		}
	}
}

// CopyIntToVectorElem sets logical element i of v to the integer value,
// i.e. a[i] = value with exponent-0 semantics: the value is rescaled to the
// region's exponent internally (for scaled inputs build a fixed.Scalar and
// use CopyScalarToVectorElem). sizeHint, in [0,63], seeds the size
// computation for value.
//
// Errors: ErrOutOfRange (i outside [0,dim)), ErrSizeHint.
func CopyIntToVectorElem(i int, value int64, sizeHint int, v Vector) error {
	if err := validateIndex(i, v.dim); err != nil {
		return blockErrorf(opIntInject, err)
	}
	if err := validateSizeHint(sizeHint); err != nil {
		return blockErrorf(opIntInject, err)
	}
	storeScaled(v.region, v.at(i), value,
		fixed.FindSize(fixed.Abs64(value), sizeHint), 0)

	return nil
}

// CopyVectorElemToScalar extracts logical element i of v as a standalone
// scalar carrying the region's exponent and a freshly computed tight size:
// y = a[i].
//
// Errors: ErrOutOfRange.
func CopyVectorElemToScalar(v Vector, i int) (fixed.Scalar, error) {
	if err := validateIndex(i, v.dim); err != nil {
		return fixed.Scalar{}, blockErrorf(opElemFetch, err)
	}

	return fixed.NewScalar(v.region.data[v.at(i)], v.region.exponent), nil
}

// CopyScalarToVectorElem injects s into logical element i of v: a[i] = s,
// translating between the scalar's own exponent and the region's.
//
// Errors: ErrOutOfRange.
func CopyScalarToVectorElem(s fixed.Scalar, i int, v Vector) error {
	if err := validateIndex(i, v.dim); err != nil {
		return blockErrorf(opElemInject, err)
	}
	storeScaled(v.region, v.at(i), s.Data(), s.Size(), s.Exponent())

	return nil
}
