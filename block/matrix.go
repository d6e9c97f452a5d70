// SPDX-License-Identifier: MIT
// Package block: Matrix construction and row access.

package block

// NewMatrix builds a rows x cols window over the region with element (r,c)
// at storage index off + r*rowStride + c*colStride.
//
// colStride must be 1: non-unit column strides are unsupported by the
// kernels and are rejected here rather than miscomputed later. rowStride
// must be at least cols so rows cannot overlap.
//
// Errors: ErrNilRegion, ErrBadDim (rows or cols <= 0), ErrColStride,
// ErrRowStride, ErrOutOfRange (corner elements outside region storage).
// Complexity: O(1); no data is read.
func NewMatrix(r *Region, off, rows, cols, rowStride, colStride int) (Matrix, error) {
	if r == nil {
		return Matrix{}, blockErrorf(opNewMatrix, ErrNilRegion)
	}
	if rows <= 0 || cols <= 0 {
		return Matrix{}, blockErrorf(opNewMatrix, ErrBadDim)
	}
	if colStride != 1 {
		return Matrix{}, blockErrorf(opNewMatrix, ErrColStride)
	}
	if rowStride < cols {
		return Matrix{}, blockErrorf(opNewMatrix, ErrRowStride)
	}
	maxOffset := (rows-1)*rowStride + (cols - 1)
	if off < 0 || off+maxOffset >= r.dim {
		return Matrix{}, blockErrorf(opNewMatrix, ErrOutOfRange)
	}

	return Matrix{
		region:    r,
		rows:      rows,
		cols:      cols,
		rowStride: rowStride,
		colStride: 1,
		off:       off,
	}, nil
}

// Row returns row i as a unit-stride Vector over the same region.
//
// Errors: ErrOutOfRange when i is outside [0,rows).
func (m Matrix) Row(i int) (Vector, error) {
	if err := validateIndex(i, m.rows); err != nil {
		return Vector{}, blockErrorf(opRow, err)
	}

	return Vector{
		region: m.region,
		dim:    m.cols,
		stride: 1,
		off:    m.at(i, 0),
	}, nil
}
