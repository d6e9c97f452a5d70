// SPDX-License-Identifier: MIT
// Package block: domain types. Only type definitions and O(1) accessors live
// here; constructors and validation are in region.go/vector.go/matrix.go/
// elem.go, kernels in impl_*.go.

package block

// Region is a shared backing store: one exponent and one conservative
// magnitude bound for all the integers it holds. The backing slice is owned
// by the caller; a region never allocates, resizes or frees it, and the
// framework assumes no memory location belongs to more than one region.
//
// Invariant: |data[i]| < 2^size for every element. The bound need not be
// tight (see Vector.FixSize for tightening); the represented value of
// element i is data[i] * 2^exponent.
type Region struct {
	dim      int     // number of elements, > 0
	exponent int     // power-of-two scale shared by all views
	size     int     // conservative bit-size bound, in [0,63]
	data     []int64 // caller-owned storage, len >= dim
}

// Dim returns the number of elements in the region.
func (r *Region) Dim() int { return r.dim }

// Exponent returns the region's shared power-of-two scale.
func (r *Region) Exponent() int { return r.exponent }

// Size returns the conservative bit-size bound: |data[i]| < 2^Size() holds
// for every element, but the bound is not necessarily tight.
func (r *Region) Size() int { return r.size }

// Vector is a strided, dimension-bounded window over a region. It holds a
// reference to the region — never a cached copy of the exponent — so
// renormalizing the region is instantly visible through every vector.
// Multiple vectors may alias one region for reading; mutating overlapping
// vectors is undefined.
type Vector struct {
	region *Region // owning region, source of truth for exponent/size
	dim    int     // number of logical elements, > 0
	stride int     // distance between logical elements, != 0
	off    int     // index of logical element 0 in region storage
}

// Region returns the owning region.
func (v Vector) Region() *Region { return v.region }

// Dim returns the number of logical elements.
func (v Vector) Dim() int { return v.dim }

// Stride returns the distance, in region elements, between consecutive
// logical elements. Negative strides walk the region backwards.
func (v Vector) Stride() int { return v.stride }

// at returns the region storage index of logical element k.
// Bounds were proven at construction; k must be in [0,dim).
func (v Vector) at(k int) int { return v.off + k*v.stride }

// Matrix is a row-major window over a region. The column stride is always 1
// (non-unit column strides are rejected at construction) and the row stride
// is at least the number of columns, so rows never overlap. Element (r,c)
// lives at off + r*rowStride + c.
type Matrix struct {
	region    *Region
	rows      int // number of rows, > 0
	cols      int // number of columns, > 0
	rowStride int // distance between rows, >= cols
	colStride int // always 1
	off       int // index of element (0,0)
}

// Region returns the owning region.
func (m Matrix) Region() *Region { return m.region }

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// at returns the region storage index of element (r,c).
func (m Matrix) at(r, c int) int { return m.off + r*m.rowStride + c }

// Elem is a one-element handle sharing its region's exponent: a Scalar-like
// position inside a region, used to move a single number in or out without
// a full Vector wrapper.
type Elem struct {
	region *Region
	off    int // index of the element in region storage
}

// Region returns the owning region.
func (e Elem) Region() *Region { return e.region }
